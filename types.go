package pockettypes

// FieldType identifies the kind of a collection field.
//
// The set is closed: tags that are not part of the catalog parse to
// FieldUnknown so that unfamiliar schemas still generate.
type FieldType uint8

// Field types.
const (
	FieldUnknown FieldType = iota
	FieldText
	FieldNumber
	FieldBool
	FieldEmail
	FieldURL
	FieldDate
	FieldAutodate
	FieldSelect
	FieldFile
	FieldPassword
	FieldJSON
	FieldRelation
)

var fieldTypeNames = [...]string{
	FieldUnknown:  "unknown",
	FieldText:     "text",
	FieldNumber:   "number",
	FieldBool:     "bool",
	FieldEmail:    "email",
	FieldURL:      "url",
	FieldDate:     "date",
	FieldAutodate: "autodate",
	FieldSelect:   "select",
	FieldFile:     "file",
	FieldPassword: "password",
	FieldJSON:     "json",
	FieldRelation: "relation",
}

// fieldTypeAliases maps accepted spellings that are not canonical tags.
var fieldTypeAliases = map[string]FieldType{
	"boolean": FieldBool,
}

// ParseFieldType returns the FieldType for a PocketBase type tag.
// Matching is exact. Unrecognized tags, other spellings included, return
// FieldUnknown.
func ParseFieldType(tag string) FieldType {
	for i, name := range fieldTypeNames {
		if FieldType(i) != FieldUnknown && name == tag {
			return FieldType(i)
		}
	}

	if t, ok := fieldTypeAliases[tag]; ok {
		return t
	}

	return FieldUnknown
}

// String returns the canonical tag.
func (t FieldType) String() string {
	if int(t) < len(fieldTypeNames) {
		return fieldTypeNames[t]
	}

	return fieldTypeNames[FieldUnknown]
}

// IsMultiValued reports whether the type honours MaxSelect.
func (t FieldType) IsMultiValued() bool {
	switch t {
	case FieldSelect, FieldFile, FieldRelation:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t FieldType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FieldType) UnmarshalText(text []byte) error {
	*t = ParseFieldType(string(text))

	return nil
}
