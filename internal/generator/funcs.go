package generator

import (
	"errors"
	"strings"
	"unicode"

	"cgen/internal/config"
	"cgen/internal/model"
)

var errUnsupported = errors.New("no C representation")

// mapType looks up the configured C spelling for a Go type reference.
func mapType(cfg *config.Config, t model.TypeRef) (string, bool) {
	// Check for exact raw match first
	if mapped, ok := cfg.MapType(t.Raw); ok {
		return mapped, true
	}

	// Check for full name match (package.Type)
	if t.Package != "" {
		return cfg.MapType(t.FullName())
	}
	return "", false
}

// splitArray splits a C type spelling such as "unsigned char[16]" into the
// base type and the array suffix written after the declared name.
func splitArray(ctype string) (string, string) {
	if i := strings.IndexByte(ctype, '['); i >= 0 {
		return strings.TrimSpace(ctype[:i]), ctype[i:]
	}
	return ctype, ""
}

// helperName names a generated helper function or table for a type.
func helperName(opts config.Options, typeName, suffix string) string {
	if opts.SnakeCase {
		typeName = snakeCase(typeName)
	}
	return opts.Prefix + typeName + "_" + suffix
}

// snakeCase converts to snake_case.
func snakeCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// splitWords splits a string into words (handles camelCase, PascalCase, snake_case, etc.).
func splitWords(s string) []string {
	var words []string
	var current []rune

	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' {
			if len(current) > 0 {
				words = append(words, string(current))
				current = nil
			}
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			// Start a new word after a lower-case rune, or at the last
			// capital of an acronym ("HTTPServer" -> "HTTP", "Server").
			prev := runes[i-1]
			if unicode.IsLower(prev) || (i+1 < len(runes) && unicode.IsLower(runes[i+1])) {
				if len(current) > 0 {
					words = append(words, string(current))
					current = nil
				}
			}
		}

		current = append(current, r)
	}

	if len(current) > 0 {
		words = append(words, string(current))
	}

	return words
}

// formatDocComment formats a documentation comment as a C block comment.
func formatDocComment(comment string) string {
	if comment == "" {
		return ""
	}
	comment = strings.ReplaceAll(comment, "*/", "* /")
	lines := strings.Split(strings.TrimSpace(comment), "\n")
	if len(lines) == 1 {
		return "/* " + strings.TrimSpace(lines[0]) + " */"
	}
	result := []string{"/*"}
	for _, line := range lines {
		result = append(result, strings.TrimRight(" * "+strings.TrimSpace(line), " "))
	}
	result = append(result, " */")
	return strings.Join(result, "\n")
}
