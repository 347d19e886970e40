package pockettypes

// Generator is the tool identity written into generated banners.
const Generator = "pockettypes"

// Source names.
const (
	SourcePocketBase = "pocketbase"
	SourceFile       = "file"
)

// Language names.
const (
	LangTypeScript = "typescript"
)

// Defaults.
const (
	DefaultOutput         = "pb.types.ts"
	DefaultAuthCollection = "_superusers"
)

// BaseFieldNames are declared once in the shared Base shape.
var BaseFieldNames = []string{"id", "created", "updated"}
