package typescript

import (
	"strings"

	"github.com/thisuxhq/pockettypes"
)

// PascalCase converts a collection name to a type identifier.
//
// The name is split into maximal runs of ASCII letters and digits; the first
// byte of each run is upper-cased and the runs are joined. Everything else is
// dropped, so a name without any alphanumerics yields "".
//
// Examples:
//
//	"user_profiles" -> "UserProfiles"
//	"2fa-codes"     -> "2faCodes"
//	"orders"        -> "Orders"
func PascalCase(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	start := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isAlnum(c) {
			start = true
			continue
		}

		if start && 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}

		b.WriteByte(c)
		start = false
	}

	return b.String()
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// NameTable maps collection ids to their canonical type names.
// It is built once and read-only afterwards.
type NameTable struct {
	names map[string]string
}

// NewNameTable builds the table from the collections that will be emitted.
// Callers filter out views before calling it so that relations to views
// do not resolve. Collections with an empty raw name are not resolvable.
func NewNameTable(collections []*pockettypes.Collection) NameTable {
	names := make(map[string]string, len(collections))
	for _, c := range collections {
		if c.Name == "" {
			continue
		}

		names[c.ID] = PascalCase(c.Name)
	}

	return NameTable{names: names}
}

// Lookup returns the type name for a collection id.
func (t NameTable) Lookup(id string) (string, bool) {
	if id == "" {
		return "", false
	}

	name, ok := t.names[id]

	return name, ok
}
