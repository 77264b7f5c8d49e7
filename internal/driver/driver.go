// Package driver bridges the CLI in cmd/juliacst to the lexer, parser, and
// tree builder: it knows how to turn a path on disk into tokens,
// a built tree, or a diagnostic bag. Tokenize consults internal/parsecache
// so a repeated run over an unchanged file skips re-lexing it; parsing is
// never cached.
package driver

import (
	"surge/internal/cst"
	"surge/internal/diag"
	"surge/internal/langver"
	"surge/internal/lexer"
	"surge/internal/parser"
	"surge/internal/parsecache"
	"surge/internal/source"
	"surge/internal/testkit"
	"surge/internal/token"
)

// TokenizeResult is the outcome of lexing a single file to completion.
type TokenizeResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.RawToken
	Bag    *diag.Bag
	Cached bool
}

// lexErrMessage turns a non-NoErr token.ErrorCode into a reader-facing
// message; the lexer never aborts on these, it just tags the offending
// token, so the driver is the first place they become a diag.Diagnostic.
func lexErrMessage(c token.ErrorCode) string {
	switch c {
	case token.EOFMultiComment:
		return "unterminated block comment"
	case token.EOFChar:
		return "unterminated string or character literal"
	case token.InvalidNumericConstant:
		return "invalid numeric literal"
	case token.InvalidOperator:
		return "invalid operator"
	case token.InvalidInterpolationTerminator:
		return "unterminated string interpolation"
	default:
		return "unrecognized lexeme"
	}
}

// Tokenize lexes path to completion, converting any lex-time error codes
// into diagnostics. cache may be nil, in which case every call re-lexes.
func Tokenize(fs *source.FileSet, cache *parsecache.Cache, path string) (TokenizeResult, error) {
	fileID, err := fs.Load(path)
	if err != nil {
		return TokenizeResult{Path: path}, err
	}
	return TokenizeLoaded(fs, cache, path, fileID)
}

// TokenizeLoaded lexes a file that has already been registered in fs under
// fileID — the directory fan-out path preloads every file sequentially
// (FileSet.Load is not safe for concurrent callers) and then has each
// worker call this instead of Tokenize.
func TokenizeLoaded(fs *source.FileSet, cache *parsecache.Cache, path string, fileID source.FileID) (TokenizeResult, error) {
	file := fs.Get(fileID)

	key := parsecache.HashContent(file.Content)
	if artifact, ok, err := cache.Get(key); err == nil && ok {
		bag := diag.NewBag()
		for _, d := range parsecache.ToDiagnostics(artifact.Diagnostics, fileID) {
			bag.Add(d)
		}
		return TokenizeResult{
			Path:   path,
			FileID: fileID,
			Tokens: parsecache.ToRawTokens(artifact.Tokens),
			Bag:    bag,
			Cached: true,
		}, nil
	}

	bag := diag.NewBag()
	lx := lexer.New(file, lexer.Options{})
	var toks []token.RawToken
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Err != token.NoErr {
			bag.Add(diag.New(diag.SeverityError, diag.CodeLexError, t.Span(fileID), lexErrMessage(t.Err)))
		}
		if t.Kind == token.EOF {
			break
		}
	}

	_ = cache.Put(key, &parsecache.Artifact{
		Tokens:      parsecache.ToCachedTokens(toks),
		Diagnostics: parsecache.ToCachedDiagnostics(bag),
	})
	return TokenizeResult{Path: path, FileID: fileID, Tokens: toks, Bag: bag}, nil
}

// ParseResult is the outcome of parsing a single file into a tree.
type ParseResult struct {
	Path   string
	FileID source.FileID
	Root   *cst.Node
	Bag    *diag.Bag
}

// Parse builds the tree for path under the given feature set. It does not
// consult parsecache — the cache stores only tokens and diagnostics, not a
// built tree, since a cached tree's spans would need to be re-anchored
// against whatever FileID this run assigns anyway.
func Parse(fs *source.FileSet, path string, features langver.Set) (ParseResult, error) {
	fileID, err := fs.Load(path)
	if err != nil {
		return ParseResult{Path: path}, err
	}
	return ParseLoaded(fs, path, fileID, features)
}

// ParseLoaded parses a file already registered in fs under fileID. See
// TokenizeLoaded for why the directory fan-out path needs this split.
func ParseLoaded(fs *source.FileSet, path string, fileID source.FileID, features langver.Set) (ParseResult, error) {
	file := fs.Get(fileID)

	bag := diag.NewBag()
	p := parser.NewWithFeatures(file, bag, features)
	root := p.ParseFile()
	return ParseResult{Path: path, FileID: fileID, Root: root, Bag: bag}, nil
}

// DiagnoseResult is a ParseResult augmented with the structural invariant
// violations testkit finds in the built tree.
type DiagnoseResult struct {
	Path       string
	FileID     source.FileID
	Root       *cst.Node
	Bag        *diag.Bag
	Violations []testkit.Violation
}

// Diagnose parses path and additionally runs every testkit invariant check
// against the resulting tree.
func Diagnose(fs *source.FileSet, path string, features langver.Set) (DiagnoseResult, error) {
	res, err := Parse(fs, path, features)
	if err != nil {
		return DiagnoseResult{Path: path}, err
	}
	return diagnoseFrom(fs, res), nil
}

// DiagnoseLoaded diagnoses a file already registered in fs under fileID.
func DiagnoseLoaded(fs *source.FileSet, path string, fileID source.FileID, features langver.Set) (DiagnoseResult, error) {
	res, err := ParseLoaded(fs, path, fileID, features)
	if err != nil {
		return DiagnoseResult{Path: path}, err
	}
	return diagnoseFrom(fs, res), nil
}

func diagnoseFrom(fs *source.FileSet, res ParseResult) DiagnoseResult {
	file := fs.Get(res.FileID)
	violations := testkit.CheckAll(res.Root, uint32(len(file.Content)))
	return DiagnoseResult{
		Path:       res.Path,
		FileID:     res.FileID,
		Root:       res.Root,
		Bag:        res.Bag,
		Violations: violations,
	}
}
