package cgen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustVariable(t *testing.T, typ, name string) *Variable {
	t.Helper()
	v, err := NewVariable(typ, name)
	require.NoError(t, err)
	return v
}

func sampleNodes(t *testing.T) map[string]Node {
	t.Helper()

	arr, err := NewArray("int", "arr", "1", "2", "3")
	require.NoError(t, err)
	ptr, err := NewPointer("char", "buf")
	require.NoError(t, err)
	ptr.SetInit("0")

	st := NewStruct("point")
	st.Append("int", "x")
	st.AppendNode(Stmt("int y"))
	st.Block().SetTail(";")

	en := NewEnum("color")
	en.Append("RED,")
	en.AppendWithInit("GREEN", "4")

	ifs := NewIf("a > b", NewBlock(Stmt("return 1")))
	ifs.AppendElif("a == b", NewBlock(NewBlock(Stmt("x = 1"))))
	ifs.SetElse(NewBlock())

	loop := NewFor("i = 0", "i < 10", "i++")
	loop.Append(Stmt("sum += i"), NewBlank(1))

	fn := NewFunction("add", "int", "int a", "int b")
	fn.SetStatic(true)
	fn.Append(Stmt("return a + b"))

	code := NewCode(NewInclude("stdio.h", true), NewBlank(2), st, nil, NewBlank(0), fn)

	hfile := NewHFile("include/point.h")
	hfile.Code().Extend(code)

	cfile := NewCFile("point.c")
	cfile.AddInclude(NewInclude("point.h", false))
	cfile.Code().Append(NewBlank(1), loop)

	return map[string]Node{
		"text":       Text("a\nb"),
		"variable":   mustVariable(t, "int", "a"),
		"array":      arr,
		"pointer":    ptr,
		"struct":     st,
		"enum":       en,
		"typedef":    NewTypedef(st, "point_t"),
		"statement":  NewStatement(NewFuncCall("printf", `"%d\n"`, "a")),
		"include":    NewInclude("local.h", false),
		"ifndef":     NewIfndef("X"),
		"define":     DefineValue("N", "10"),
		"endif":      NewEndif(),
		"blank":      NewBlank(3),
		"empty code": NewCode(),
		"block":      NewBlock(Stmt("a"), NewBlank(2), NewBlock(Stmt("b"))),
		"if":         ifs,
		"for":        loop,
		"function":   fn,
		"prototype":  fn.Prototype(),
		"code":       code,
		"hfile":      hfile,
		"cfile":      cfile,
	}
}

func TestLinesJoinToText(t *testing.T) {
	for name, n := range sampleNodes(t) {
		t.Run(name, func(t *testing.T) {
			joined := strings.Join(n.Lines(), "\n")
			if diff := cmp.Diff(n.String(), joined); diff != "" {
				t.Errorf("Lines() joined differs from String() (-text +lines):\n%s", diff)
			}
		})
	}
}

func TestTextLines(t *testing.T) {
	require.Equal(t, []string{"a", "b", ""}, Text("a\nb\n").Lines())
	require.Equal(t, []string{""}, Text("").Lines())
}

func TestNilPointerNodesRenderEmpty(t *testing.T) {
	var missing *Variable
	nodes := []Node{(*Variable)(nil), (*Block)(nil), (*Function)(nil)}

	code := NewCode(Stmt("a"))
	code.Append(nodes...)
	require.Equal(t, "a;\n\n\n\n", code.String())
	require.Equal(t, code.String(), strings.Join(code.Lines(), "\n"))

	block := NewBlock(missing, Stmt("b"))
	require.Equal(t, "{\n\nb;\n}", block.String())

	stmt := NewStatement(missing)
	require.Equal(t, ";", stmt.String())
	require.Equal(t, []string{";"}, stmt.Lines())

	td := NewTypedef((*Struct)(nil), "empty_t")
	require.Equal(t, "typedef  empty_t", td.String())
	require.Equal(t, td.String(), strings.Join(td.Lines(), "\n"))
}
