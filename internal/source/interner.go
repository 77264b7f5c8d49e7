package source

// StringID names an interned string. The zero value, NoStringID, always
// denotes the empty string.
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates decoded identifier/keyword text so the parser and
// anything downstream can compare StringIDs instead of strings.
type Interner struct {
	byID  []string
	index map[string]StringID
}

// NewInterner creates an Interner with NoStringID already bound to "".
func NewInterner() *Interner {
	return &Interner{byID: []string{""}, index: map[string]StringID{"": NoStringID}}
}

// Intern returns s's StringID, assigning a new one if s was not seen before.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	cpy := string([]byte(s)) // detach from caller's backing array
	id := StringID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// Lookup returns the string bound to id, and whether id is valid.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup returns the string bound to id, panicking if id is invalid.
// Used where id provably came from this interner (programmer error
// otherwise, not a recoverable condition).
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid StringID")
	}
	return s
}
