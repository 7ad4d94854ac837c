package cgen

import "strings"

// Block is a braced scope. The tail is written right after the closing
// brace, e.g. ";" for a struct definition.
type Block struct {
	code *Code
	tail string
}

// NewBlock creates a block holding nodes.
func NewBlock(nodes ...Node) *Block {
	return &Block{code: NewCode(nodes...)}
}

// Append adds nodes to the block.
func (b *Block) Append(nodes ...Node) {
	b.code.Append(nodes...)
}

// Extend appends every node of code.
func (b *Block) Extend(code *Code) {
	b.code.Extend(code)
}

// Code returns the container owned by the block.
func (b *Block) Code() *Code { return b.code }

// Len returns the number of nodes in the block.
func (b *Block) Len() int { return b.code.Len() }

// SetTail sets the text written after the closing brace.
func (b *Block) SetTail(tail string) { b.tail = tail }

// Tail returns the text written after the closing brace.
func (b *Block) Tail() string { return b.tail }

func (b *Block) String() string {
	if b.code.Len() == 0 {
		return "{\n}" + b.tail
	}
	texts := make([]string, 0, b.code.Len())
	for _, n := range b.code.nodes {
		texts = append(texts, nodeText(n))
	}
	return "{\n" + strings.Join(texts, "\n") + "\n}" + b.tail
}

// Lines returns the opening brace, one entry per node and the closing
// brace with the tail. Nodes are not split further.
func (b *Block) Lines() []string {
	lines := make([]string, 0, b.code.Len()+2)
	lines = append(lines, "{")
	for _, n := range b.code.nodes {
		lines = append(lines, nodeText(n))
	}
	return append(lines, "}"+b.tail)
}
