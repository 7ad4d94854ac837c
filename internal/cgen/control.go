package cgen

import "strings"

type branch struct {
	cond  string
	block *Block
}

// IfStatement is an if / else if / else chain.
type IfStatement struct {
	branches  []branch
	elseBlock *Block
}

// NewIf creates an if statement on cond. A nil block is replaced by an
// empty one.
func NewIf(cond string, block *Block) *IfStatement {
	return &IfStatement{branches: []branch{{cond: cond, block: orEmpty(block)}}}
}

// AppendElif adds an "else if" branch after the existing ones.
func (s *IfStatement) AppendElif(cond string, block *Block) {
	s.branches = append(s.branches, branch{cond: cond, block: orEmpty(block)})
}

// SetElse sets the trailing else block; nil removes it.
func (s *IfStatement) SetElse(block *Block) { s.elseBlock = block }

func (s *IfStatement) heads() []string {
	heads := make([]string, 0, len(s.branches)+1)
	for i, br := range s.branches {
		if i == 0 {
			heads = append(heads, "if ("+br.cond+") ")
		} else {
			heads = append(heads, "else if ("+br.cond+") ")
		}
	}
	return heads
}

func (s *IfStatement) String() string {
	parts := make([]string, 0, len(s.branches)+1)
	for i, head := range s.heads() {
		parts = append(parts, head+s.branches[i].block.String())
	}
	if s.elseBlock != nil {
		parts = append(parts, "else "+s.elseBlock.String())
	}
	return strings.Join(parts, "\n")
}

func (s *IfStatement) Lines() []string {
	lines := []string{""}
	for i, head := range s.heads() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = spliceLines(lines, []string{head}, s.branches[i].block.Lines())
	}
	if s.elseBlock != nil {
		lines = append(lines, "")
		lines = spliceLines(lines, []string{"else "}, s.elseBlock.Lines())
	}
	return lines
}

// ForIter is a for loop. The header parts are not checked.
type ForIter struct {
	header string
	block  *Block
}

// NewFor creates "for (<init>;<cond>;<incr>)" with an empty body.
func NewFor(init, cond, incr string) *ForIter {
	return &ForIter{
		header: "for (" + init + ";" + cond + ";" + incr + ")",
		block:  NewBlock(),
	}
}

// Append adds nodes to the loop body.
func (f *ForIter) Append(nodes ...Node) { f.block.Append(nodes...) }

// SetBlock replaces the loop body; nil resets it to an empty block.
func (f *ForIter) SetBlock(block *Block) { f.block = orEmpty(block) }

// Block returns the loop body.
func (f *ForIter) Block() *Block { return f.block }

func (f *ForIter) String() string {
	return f.header + " " + f.block.String()
}

func (f *ForIter) Lines() []string {
	return spliceLines([]string{f.header + " "}, f.block.Lines())
}

func orEmpty(b *Block) *Block {
	if b == nil {
		return NewBlock()
	}
	return b
}
