package cgen

// Member is a struct member given as a type and a name.
type Member struct {
	Type string
	Name string
}

// Struct is a named struct definition.
type Struct struct {
	name  string
	block *Block
}

// NewStruct creates an empty struct.
func NewStruct(name string) *Struct {
	return &Struct{name: name, block: NewBlock()}
}

// Name returns the struct tag.
func (s *Struct) Name() string { return s.name }

// Block returns the member block.
func (s *Struct) Block() *Block { return s.block }

// Append adds a raw "<type> <name>" member.
func (s *Struct) Append(typ, name string) {
	s.block.Append(Text(typ + " " + name))
}

// AppendList adds members in order.
func (s *Struct) AppendList(members []Member) {
	for _, m := range members {
		s.Append(m.Type, m.Name)
	}
}

// AppendNode adds any node as a member entry.
func (s *Struct) AppendNode(n Node) {
	s.block.Append(n)
}

func (s *Struct) String() string {
	return "struct " + s.name + "\n" + s.block.String()
}

func (s *Struct) Lines() []string {
	return append([]string{"struct " + s.name}, s.block.Lines()...)
}

// Enum is a named enum definition.
type Enum struct {
	name  string
	block *Block
}

// NewEnum creates an empty enum.
func NewEnum(name string) *Enum {
	return &Enum{name: name, block: NewBlock()}
}

// Name returns the enum tag.
func (e *Enum) Name() string { return e.name }

// Block returns the value block.
func (e *Enum) Block() *Block { return e.block }

// Append adds a raw value entry.
func (e *Enum) Append(value string) {
	e.block.Append(Text(value))
}

// AppendWithInit adds a "<value> = <init>" entry.
func (e *Enum) AppendWithInit(value, init string) {
	e.Append(value + " = " + init)
}

func (e *Enum) String() string {
	return "enum " + e.name + "\n" + e.block.String()
}

func (e *Enum) Lines() []string {
	return append([]string{"enum " + e.name}, e.block.Lines()...)
}

// Typedef aliases base under a new name. Nothing is validated.
type Typedef struct {
	base  Node
	alias string
}

// NewTypedef creates "typedef <base> <alias>".
func NewTypedef(base Node, alias string) *Typedef {
	return &Typedef{base: base, alias: alias}
}

func (t *Typedef) String() string {
	return "typedef " + nodeText(t.base) + " " + t.alias
}

func (t *Typedef) Lines() []string {
	return spliceLines([]string{"typedef "}, nodeLines(t.base), []string{" " + t.alias})
}
