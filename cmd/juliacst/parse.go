package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"surge/internal/cst"
	"surge/internal/diagfmt"
	"surge/internal/driver"
	"surge/internal/literal"
	"surge/internal/source"
	"surge/internal/token"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.jl|directory>",
	Short: "Parse a source file or every *.jl file in a directory into a lossless tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory input (0=auto)")
	parseCmd.Flags().Bool("decode", false, "also resolve number/string/identifier literals to their decoded values")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	features, err := resolveFeatures(cmd)
	if err != nil {
		return err
	}
	decode, err := cmd.Flags().GetBool("decode")
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	fs := source.NewFileSet()

	if !st.IsDir() {
		res, err := driver.Parse(fs, path, features)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if err := printDiagnostics(cmd, fs, res.Bag); err != nil {
			return err
		}
		if err := writeTree(cmd, format, fs.Get(res.FileID), res); err != nil {
			return err
		}
		if decode {
			return writeDecoded(format, fs.Get(res.FileID), res.Root)
		}

		return nil
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	results, err := driver.ParseDir(cmd.Context(), fs, path, features, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	var allOK = true
	for _, r := range results {
		if err := printDiagnostics(cmd, fs, r.Bag); err != nil {
			return err
		}
		if r.Bag.HasErrors() {
			allOK = false
		}
		if r.Root == nil {
			continue
		}
		fmt.Printf("--- %s ---\n", r.Path)
		if err := writeTree(cmd, format, fs.Get(r.FileID), r); err != nil {
			return err
		}
		if decode {
			if err := writeDecoded(format, fs.Get(r.FileID), r.Root); err != nil {
				return err
			}
		}
	}
	if !allOK {
		os.Exit(1)
	}
	return nil
}

// decodedJSON is the JSON-serializable shape of one driver.DecodedLiteral.
type decodedJSON struct {
	Kind    string `json:"kind"`
	Start   uint32 `json:"start"`
	End     uint32 `json:"end"`
	Value   string `json:"value,omitempty"`
	Dynamic bool   `json:"dynamic,omitempty"`
	Error   string `json:"error,omitempty"`
}

// decodedText renders one driver.DecodedLiteral's payload as a single
// display string, regardless of which of Number/Text/Ident it carries.
func decodedText(d driver.DecodedLiteral) string {
	if d.Err != nil {
		return fmt.Sprintf("<error: %v>", d.Err)
	}
	if d.Dynamic {
		return "<dynamic>"
	}
	switch d.Kind {
	case token.IntegerLit, token.HexIntLit, token.OctIntLit, token.BinIntLit, token.FloatLit:
		return decodedNumberText(d.Number)
	case token.Identifier:
		return d.Ident
	default:
		return d.Text
	}
}

// decodedNumberText renders whichever of literal.Number's typed fields n's
// Kind selects.
func decodedNumberText(n literal.Number) string {
	switch n.Kind {
	case literal.KindInt:
		return fmt.Sprintf("%d", n.Int)
	case literal.KindInt64:
		return fmt.Sprintf("%d", n.Int64)
	case literal.KindInt128, literal.KindBigInt, literal.KindUint128, literal.KindBigUint:
		return n.BigInt.String()
	case literal.KindUint8:
		return fmt.Sprintf("%d", n.Uint8)
	case literal.KindUint16:
		return fmt.Sprintf("%d", n.Uint16)
	case literal.KindUint32:
		return fmt.Sprintf("%d", n.Uint32)
	case literal.KindUint64:
		return fmt.Sprintf("%d", n.Uint64)
	case literal.KindFloat32:
		return fmt.Sprintf("%g", n.Float32)
	case literal.KindFloat64:
		return fmt.Sprintf("%g", n.Float64)
	case literal.KindBigFloat:
		return n.BigFloat.Text('g', -1)
	default:
		return "<unknown>"
	}
}

// writeDecoded resolves every number/string/identifier literal under root
// and prints the decoded values alongside the tree dump.
func writeDecoded(format string, file *source.File, root *cst.Node) error {
	decoded := driver.DecodeLiterals(file, root)
	switch format {
	case "json":
		out := make([]decodedJSON, len(decoded))
		for i, d := range decoded {
			out[i] = decodedJSON{
				Kind:    d.Kind.String(),
				Start:   d.Span.Start,
				End:     d.Span.End,
				Value:   decodedText(d),
				Dynamic: d.Dynamic,
			}
			if d.Err != nil {
				out[i].Error = d.Err.Error()
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		for _, d := range decoded {
			fmt.Printf("%-16s [%d, %d) = %s\n", d.Kind.String(), d.Span.Start, d.Span.End, decodedText(d))
		}
		return nil
	}
}

func writeTree(cmd *cobra.Command, format string, file *source.File, res driver.ParseResult) error {
	switch format {
	case "pretty", "tree":
		opts := diagfmt.DefaultTreeOpts()
		opts.Color = false
		if format == "pretty" {
			useColor, err := resolveColor(cmd, os.Stdout)
			if err != nil {
				return err
			}
			opts.Color = useColor
		}
		return diagfmt.Tree(os.Stdout, file, res.Root, opts)
	case "json":
		return diagfmt.TreeJSON(os.Stdout, file, res.Root, diagfmt.DefaultJSONOpts())
	default:
		return fmt.Errorf("unknown format %q (must be pretty, tree, or json)", format)
	}
}
