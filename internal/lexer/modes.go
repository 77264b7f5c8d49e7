package lexer

// modeKind distinguishes the lexer's two scanning disciplines: ordinary
// token-at-a-time scanning, and inside-a-string-literal piece scanning.
// A stack of frames (not just a depth counter) is required because
// "$(...)" interpolation re-enters ordinary scanning while still logically
// nested inside the enclosing string, which may itself be nested inside
// another interpolation — spec.md §4.1 and §9 both call this out
// ("the lexer must track an interpolation-depth stack").
type modeKind uint8

const (
	modeNormal modeKind = iota
	modeString
)

// stringFlavor records which of the four string-like literal forms a
// modeString frame is scanning.
type stringFlavor uint8

const (
	flavorString stringFlavor = iota
	flavorStringTriple
	flavorCmd
	flavorCmdTriple
)

func (f stringFlavor) quote() byte {
	if f == flavorCmd || f == flavorCmdTriple {
		return '`'
	}
	return '"'
}

func (f stringFlavor) triple() bool {
	return f == flavorStringTriple || f == flavorCmdTriple
}

// frame is one entry of the lexer's mode stack.
type frame struct {
	kind modeKind
	// valid when kind == modeString
	flavor stringFlavor
	// valid when kind == modeNormal and this frame was pushed by a "$("
	// interpolation entry: counts nested '(' so the matching ')' can be
	// told apart from one that actually closes the interpolation.
	parenDepth   int
	isInterpFrame bool
}

func (lx *Lexer) pushFrame(f frame) { lx.modes = append(lx.modes, f) }

func (lx *Lexer) popFrame() frame {
	f := lx.modes[len(lx.modes)-1]
	lx.modes = lx.modes[:len(lx.modes)-1]
	return f
}

func (lx *Lexer) topFrame() *frame {
	if len(lx.modes) == 0 {
		return nil
	}
	return &lx.modes[len(lx.modes)-1]
}

func (lx *Lexer) inStringMode() bool {
	top := lx.topFrame()
	return top != nil && top.kind == modeString
}
