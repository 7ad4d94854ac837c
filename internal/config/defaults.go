// Package config provides configuration handling for cgen.
package config

// DefaultTypeMappings returns default Go to C type mappings.
//
// A mapping that ends in an array suffix such as "[16]" is split around
// the member name when rendered.
func DefaultTypeMappings() map[string]string {
	return map[string]string{
		// Basic types
		"bool":    "unsigned char",
		"int":     "long",
		"int8":    "signed char",
		"int16":   "short",
		"int32":   "int",
		"int64":   "long long",
		"uint":    "unsigned long",
		"uint8":   "unsigned char",
		"uint16":  "unsigned short",
		"uint32":  "unsigned int",
		"uint64":  "unsigned long long",
		"uintptr": "unsigned long",
		"byte":    "unsigned char",
		"rune":    "int",
		"float32": "float",
		"float64": "double",
		"string":  "char*",

		// Special types
		"[]byte":        "unsigned char*",
		"time.Time":     "long long", // Unix seconds
		"time.Duration": "long long", // Nanoseconds

		// UUID types (common libraries)
		"uuid.UUID":                   "unsigned char[16]",
		"github.com/google/uuid.UUID": "unsigned char[16]",
	}
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		BlankLines:   1,
		ExportedOnly: true,
	}
}
