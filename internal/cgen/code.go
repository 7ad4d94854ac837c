package cgen

import "strings"

// Code is an ordered sequence of nodes. Insertion order is rendering order.
type Code struct {
	nodes []Node
}

// NewCode creates a Code container holding nodes.
func NewCode(nodes ...Node) *Code {
	c := &Code{}
	c.Append(nodes...)
	return c
}

// Append adds nodes to the end of the container.
func (c *Code) Append(nodes ...Node) {
	c.nodes = append(c.nodes, nodes...)
}

// Extend appends every node of other.
func (c *Code) Extend(other *Code) {
	if other == nil {
		return
	}
	c.nodes = append(c.nodes, other.nodes...)
}

// Len returns the number of nodes.
func (c *Code) Len() int { return len(c.nodes) }

// Nodes returns the nodes in rendering order.
func (c *Code) Nodes() []Node {
	return append([]Node(nil), c.nodes...)
}

// String renders every node followed by a newline. A Blank already
// carries its own newlines, so no separator follows it.
func (c *Code) String() string {
	var b strings.Builder
	for _, n := range c.nodes {
		b.WriteString(nodeText(n))
		if !isBlank(n) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Lines flattens the lines of every node.
func (c *Code) Lines() []string {
	lines := []string{""}
	for _, n := range c.nodes {
		lines = spliceLines(lines, nodeLines(n))
		if !isBlank(n) {
			lines = append(lines, "")
		}
	}
	return lines
}

func isBlank(n Node) bool {
	_, ok := n.(*Blank)
	return ok
}
