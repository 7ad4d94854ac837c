package cgen

import (
	"reflect"
	"strings"
)

// Node is any element of a C source tree.
//
// String returns the node's full text. Lines returns the same text as an
// ordered sequence of lines, so that strings.Join(n.Lines(), "\n") is
// always equal to n.String().
type Node interface {
	String() string
	Lines() []string
}

// Text is a raw fragment of C, rendered verbatim.
type Text string

func (t Text) String() string { return string(t) }

// Lines splits the fragment on newlines.
func (t Text) Lines() []string { return splitLines(string(t)) }

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// spliceLines continues the last line of dst with the first line of each
// following part. dst must hold at least one line.
func spliceLines(dst []string, parts ...[]string) []string {
	for _, next := range parts {
		if len(next) == 0 {
			continue
		}
		dst[len(dst)-1] += next[0]
		dst = append(dst, next[1:]...)
	}
	return dst
}

// isNil reports whether n is nil or a nil pointer of a concrete node
// type, e.g. a declaration left unset after a failed constructor. Such
// nodes render as empty text.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func nodeText(n Node) string {
	if isNil(n) {
		return ""
	}
	return n.String()
}

func nodeLines(n Node) []string {
	if isNil(n) {
		return []string{""}
	}
	return n.Lines()
}
