package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"surge/internal/diag"
	"surge/internal/source"
)

func TestJSON_EncodesEveryField(t *testing.T) {
	fs, id := makeFileSet("let x = 1\n")
	bag := diag.NewBag()
	bag.Add(diag.New(diag.SeverityWarning, diag.CodeExpectedTok, source.Span{File: id, Start: 4, End: 5}, "missing token"))

	var buf bytes.Buffer
	if err := JSON(&buf, fs, bag, DefaultJSONOpts()); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out []jsonDiagnostic
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(out))
	}
	d := out[0]
	if d.Severity != "warning" {
		t.Fatalf("expected severity %q, got %q", "warning", d.Severity)
	}
	if d.Code != string(diag.CodeExpectedTok) {
		t.Fatalf("expected code %q, got %q", diag.CodeExpectedTok, d.Code)
	}
	if d.Message != "missing token" {
		t.Fatalf("expected message %q, got %q", "missing token", d.Message)
	}
	if d.Start.Offset != 4 || d.End.Offset != 5 {
		t.Fatalf("expected offsets 4/5, got %d/%d", d.Start.Offset, d.End.Offset)
	}
}

func TestJSON_EmptyBagEncodesEmptyArray(t *testing.T) {
	fs, _ := makeFileSet("a\n")
	bag := diag.NewBag()

	var buf bytes.Buffer
	if err := JSON(&buf, fs, bag, DefaultJSONOpts()); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out []jsonDiagnostic
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty array, got %d entries", len(out))
	}
}

func TestJSON_OrdersBySpanLikeSorted(t *testing.T) {
	fs, id := makeFileSet("aaaa\nbbbb\n")
	bag := diag.NewBag()
	bag.Add(diag.New(diag.SeverityError, diag.CodeUnexpectedTok, source.Span{File: id, Start: 5, End: 6}, "second"))
	bag.Add(diag.New(diag.SeverityError, diag.CodeUnexpectedTok, source.Span{File: id, Start: 0, End: 1}, "first"))

	var buf bytes.Buffer
	if err := JSON(&buf, fs, bag, DefaultJSONOpts()); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out []jsonDiagnostic
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 2 || out[0].Message != "first" || out[1].Message != "second" {
		t.Fatalf("expected diagnostics ordered by span start, got %+v", out)
	}
}
