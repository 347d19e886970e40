package typescript

import "github.com/thisuxhq/pockettypes"

// TypeScript type expressions.
const (
	typeString  = "string"
	typeNumber  = "number"
	typeBoolean = "boolean"
	typeAny     = "any"
	typeNull    = "null"
)

// MapFieldType returns the TypeScript type expression for a field.
//
// Relation fields resolve through names and are never null-unioned.
// Every other field gets "| null" appended when it is not required.
func MapFieldType(f *pockettypes.Field, names NameTable) string {
	if f.Type == pockettypes.FieldRelation {
		typ, _ := RelationType(f, names)
		return typ
	}

	typ := scalarType(f)
	if !f.Required {
		return typ + " | " + typeNull
	}

	return typ
}

// RelationType resolves a relation field to the target's type name.
//
// If the target collection is unknown the result is ("string", false) with no
// array wrapping, whatever MaxSelect says.
func RelationType(f *pockettypes.Field, names NameTable) (string, bool) {
	name, ok := names.Lookup(f.Options.CollectionID)
	if !ok {
		return typeString, false
	}

	return arrayIf(name, isMulti(f)), true
}

func scalarType(f *pockettypes.Field) string {
	switch f.Type {
	case pockettypes.FieldText,
		pockettypes.FieldEmail,
		pockettypes.FieldURL,
		pockettypes.FieldDate,
		pockettypes.FieldAutodate,
		pockettypes.FieldPassword:
		return typeString
	case pockettypes.FieldNumber:
		return typeNumber
	case pockettypes.FieldBool:
		return typeBoolean
	case pockettypes.FieldJSON:
		return typeAny
	case pockettypes.FieldSelect, pockettypes.FieldFile:
		return arrayIf(typeString, isMulti(f))
	case pockettypes.FieldRelation, pockettypes.FieldUnknown:
		return typeAny
	default:
		return typeAny
	}
}

// isMulti applies the cardinality threshold; MaxSelect 0 means unset.
func isMulti(f *pockettypes.Field) bool {
	return f.Type.IsMultiValued() && f.Options.MaxSelect > 1
}

func arrayIf(typ string, array bool) string {
	if array {
		return typ + "[]"
	}

	return typ
}
