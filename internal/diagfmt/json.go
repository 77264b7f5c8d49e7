package diagfmt

import (
	"encoding/json"
	"io"

	"surge/internal/diag"
	"surge/internal/source"
)

type jsonDiagnostic struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Path     string `json:"path"`
	Start    jsonPos `json:"start"`
	End      jsonPos `json:"end"`
}

type jsonPos struct {
	Line   uint32 `json:"line"`
	Col    uint32 `json:"col"`
	Offset uint32 `json:"offset"`
}

// JSON writes every diagnostic in bag to w as a JSON array, one object per
// diagnostic, suitable for editor integrations and CI log parsing.
func JSON(w io.Writer, fs *source.FileSet, bag *diag.Bag, opts JSONOpts) error {
	out := make([]jsonDiagnostic, 0, bag.Len())
	for _, d := range bag.Sorted() {
		f := fs.Get(d.Span.File)
		start, end := fs.Resolve(d.Span)
		out = append(out, jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     string(d.Code),
			Message:  d.Message,
			Path:     renderPath(f.Path, opts.PathMode),
			Start:    jsonPos{Line: start.Line, Col: start.Col, Offset: d.Span.Start},
			End:      jsonPos{Line: end.Line, Col: end.Col, Offset: d.Span.End},
		})
	}
	enc := json.NewEncoder(w)
	if opts.Indent != "" {
		enc.SetIndent("", opts.Indent)
	}
	return enc.Encode(out)
}
