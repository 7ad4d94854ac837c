package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgen/internal/config"
	"cgen/internal/model"
	"cgen/internal/parser"
)

const shopSource = `package shop

// Status is an order state.
type Status int

const (
	StatusNew Status = iota
	StatusPaid
)

type Money = int64

// Order is a customer order.
type Order struct {
	Status Status
	Total  Money
	Lines  [2]Line
	Next   *Order
	Tags   []string
}

type Line struct {
	Qty uint16
}
`

func parseShop(t *testing.T) *model.File {
	t.Helper()
	file, err := parser.New().ParseSource("shop.go", shopSource)
	require.NoError(t, err)
	return file
}

func lines(l ...string) string { return strings.Join(l, "\n") }

func TestGenerate_Shop(t *testing.T) {
	var logged []string
	gen := New(config.New())
	gen.SetLogger(func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	})

	out, err := gen.Generate(parseShop(t))
	require.NoError(t, err)

	wantHeader := lines(
		"#ifndef __SHOP_H__",
		"#define __SHOP_H__",
		"typedef long long Money;",
		"",
		"/* Status is an order state. */",
		"enum Status",
		"{",
		"StatusNew = 0,",
		"StatusPaid = 1,",
		"};",
		"",
		"struct Line",
		"{",
		"unsigned short Qty;",
		"};",
		"",
		"/* Order is a customer order. */",
		"struct Order",
		"{",
		"enum Status Status;",
		"Money Total;",
		"struct Line Lines[2];",
		"struct Order* Next;",
		"};",
		"",
		"extern const int Status_values[2];",
		"int Status_valid(int v);",
		"const char* Status_name(int v);",
		"void Line_init(struct Line *p);",
		"void Order_init(struct Order *p);",
		"#endif",
	)

	wantSource := lines(
		`#include "shop.h"`,
		"",
		"const int Status_values[2] = {StatusNew,StatusPaid};",
		"",
		"int Status_valid(int v) ",
		"{",
		"unsigned long i;",
		"for (i = 0;i < 2;i++) {",
		"if (Status_values[i] == v) {",
		"return 1;",
		"}",
		"}",
		"return 0;",
		"}",
		"",
		"const char* Status_name(int v) ",
		"{",
		"if (!Status_valid(v)) {",
		`return "";`,
		"}",
		"if (v == StatusNew) {",
		`return "StatusNew";`,
		"}",
		"else if (v == StatusPaid) {",
		`return "StatusPaid";`,
		"}",
		"else {",
		`return "";`,
		"}",
		"}",
		"",
		"void Line_init(struct Line *p) ",
		"{",
		"unsigned char* raw=(unsigned char *)p;",
		"unsigned long i;",
		"for (i = 0;i < sizeof(*p);i++) {",
		"raw[i] = 0;",
		"}",
		"}",
		"",
		"void Order_init(struct Order *p) ",
		"{",
		"unsigned char* raw=(unsigned char *)p;",
		"unsigned long i;",
		"for (i = 0;i < sizeof(*p);i++) {",
		"raw[i] = 0;",
		"}",
		"}",
		"",
	)

	if diff := cmp.Diff(wantHeader, out.Header.String()); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantSource, out.Source.String()); diff != "" {
		t.Errorf("source mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"skipping field Order.Tags: no C representation: []string"}, logged)
}

func TestGenerate_StaticHelpersAndTypedefs(t *testing.T) {
	cfg := config.New()
	cfg.Options.StaticHelpers = true
	cfg.Options.Typedefs = true
	cfg.Options.Includes = []string{"stddef.h"}

	out, err := New(cfg).Generate(parseShop(t))
	require.NoError(t, err)

	header := out.Header.String()
	assert.True(t, strings.HasPrefix(header, "#ifndef __SHOP_H__\n#define __SHOP_H__\n#include <stddef.h>\n\n"))
	assert.Contains(t, header, "};\ntypedef enum Status Status;\n")
	assert.Contains(t, header, "};\ntypedef struct Order Order;\n")
	assert.NotContains(t, header, "_init(")
	assert.NotContains(t, header, "extern")

	source := out.Source.String()
	assert.Contains(t, source, "static const int Status_values[2] = {StatusNew,StatusPaid};\n")
	assert.Contains(t, source, "static int Status_valid(int v) \n{")
	assert.Contains(t, source, "static void Order_init(struct Order *p) \n{")
}

func TestGenerate_Naming(t *testing.T) {
	cfg := config.New()
	cfg.Options.Prefix = "shop_"
	cfg.Options.SnakeCase = true
	cfg.Options.BlankLines = 0

	out, err := New(cfg).Generate(parseShop(t))
	require.NoError(t, err)

	header := out.Header.String()
	assert.Contains(t, header, "void shop_line_init(struct Line *p);")
	assert.Contains(t, header, "extern const int shop_status_values[2];")
	assert.NotContains(t, header, "\n\n")
}

func TestGenerate_Filters(t *testing.T) {
	cfg := config.New()
	cfg.Options.ExcludeTypes = []string{"Line"}

	var logged []string
	gen := New(cfg)
	gen.SetLogger(func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	})

	out, err := gen.Generate(parseShop(t))
	require.NoError(t, err)
	assert.NotContains(t, out.Header.String(), "struct Line\n")
	assert.Contains(t, logged, "skipping field Order.Lines: no C representation: Line")
}

func TestGenerate_Guard(t *testing.T) {
	file := parseShop(t)

	cfg := config.New()
	cfg.Options.Guard = "SHOP_API"
	out, err := New(cfg).Generate(file)
	require.NoError(t, err)
	assert.Equal(t, "SHOP_API", out.Header.Guard())

	cfg = config.New()
	cfg.Options.UniqueGuard = true
	cfg.Options.GuardNamespace = "6ba7b811-9dad-11d1-80b4-00c04fd430c8"
	first, err := New(cfg).Generate(file)
	require.NoError(t, err)
	second, err := New(cfg).Generate(file)
	require.NoError(t, err)
	assert.Equal(t, first.Header.Guard(), second.Header.Guard())
	assert.Regexp(t, regexp.MustCompile(`^__SHOP_H_[0-9A-F]{32}__$`), first.Header.Guard())

	cfg.Options.GuardNamespace = ""
	random, err := New(cfg).Generate(file)
	require.NoError(t, err)
	assert.NotEqual(t, first.Header.Guard(), random.Header.Guard())
}

func TestGenerate_EmbeddedFields(t *testing.T) {
	src := `package audit

type Stamp struct {
	Created int64
	Updated int64
}

type Entry struct {
	ID int32
	Stamp
	*Other
}
`
	file, err := parser.New().ParseSource("audit.go", src)
	require.NoError(t, err)

	out, err := New(config.New()).Generate(file)
	require.NoError(t, err)
	assert.Contains(t, out.Header.String(), "struct Entry\n{\nint ID;\nlong long Created;\nlong long Updated;\n};")
}

func TestWriteAndRender(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "gen")
	cfg := config.New()
	cfg.Options.OutputDir = dir
	cfg.Options.BaseName = "orders"
	gen := New(cfg)
	file := parseShop(t)

	paths, err := gen.Write(file)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "orders.h"), filepath.Join(dir, "orders.c")}, paths)

	out, err := gen.Generate(file)
	require.NoError(t, err)
	for i, f := range out.Files() {
		data, err := os.ReadFile(paths[i])
		require.NoError(t, err)
		assert.Equal(t, f.String(), string(data))
	}
	assert.Contains(t, out.Source.String(), `#include "orders.h"`)

	var buf bytes.Buffer
	require.NoError(t, gen.Render(file, &buf))
	assert.Equal(t, out.Header.String()+"\n"+out.Source.String(), buf.String())
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"OrderItem":  "order_item",
		"HTTPServer": "http_server",
		"ID":         "id",
		"already_ok": "already_ok",
	}
	for in, want := range tests {
		assert.Equal(t, want, snakeCase(in), in)
	}
}

func TestFormatDocComment(t *testing.T) {
	assert.Equal(t, "", formatDocComment(""))
	assert.Equal(t, "/* One line. */", formatDocComment("One line."))
	assert.Equal(t, "/*\n * First.\n *\n * Second * /\n */", formatDocComment("First.\n\nSecond */"))
}

func generateSource(t *testing.T, src string) (*Output, []string) {
	t.Helper()
	file, err := parser.New().ParseSource("input.go", src)
	require.NoError(t, err)

	var logged []string
	gen := New(config.New())
	gen.SetLogger(func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	})

	out, err := gen.Generate(file)
	require.NoError(t, err)
	return out, logged
}

func TestGenerate_OnlyIntegerConstTypesBecomeEnums(t *testing.T) {
	out, _ := generateSource(t, `package paint

type Color string

const (
	Red  Color = "red"
	Blue Color = "blue"
)

type Ratio float64

const Half Ratio = 0.5

type Level uint8

const (
	Low Level = iota
	High
)

type Brush struct {
	Color Color
	Ratio Ratio
	Level Level
}
`)

	header := out.Header.String()
	assert.Contains(t, header, "typedef char* Color;\ntypedef double Ratio;\n")
	assert.Contains(t, header, "enum Level\n{\nLow = 0,\nHigh = 1,\n};")
	assert.Contains(t, header, "struct Brush\n{\nColor Color;\nRatio Ratio;\nenum Level Level;\n};")
	assert.NotContains(t, header, "enum Color")
	assert.NotContains(t, header, "enum Ratio")

	source := out.Source.String()
	assert.NotContains(t, source, "Color_values")
	assert.NotContains(t, source, "Ratio_values")
	assert.Contains(t, source, "const int Level_values[2] = {Low,High};")
}

func TestGenerate_NamedTypesDeclaredOutOfOrder(t *testing.T) {
	out, logged := generateSource(t, `package users

type UserID ID

type ID int32

type User struct {
	ID UserID
}
`)

	header := out.Header.String()
	assert.Empty(t, logged)
	assert.Contains(t, header, "typedef int ID;\ntypedef ID UserID;\n")
	assert.Contains(t, header, "struct User\n{\nUserID ID;\n};")
}

func TestGenerate_SkipsStructsWithoutMembers(t *testing.T) {
	out, logged := generateSource(t, `package bag

type Bag struct {
	Items []string
	Meta  map[string]int
}

type Holder struct {
	Bag  Bag
	Tags []string
}

type Keeper struct {
	Count  int32
	Holder *Holder
}
`)

	header := out.Header.String()
	assert.NotContains(t, header, "struct Bag")
	assert.NotContains(t, header, "struct Holder")
	assert.Contains(t, header, "struct Keeper\n{\nint Count;\n};")

	source := out.Source.String()
	assert.NotContains(t, source, "Bag_init")
	assert.NotContains(t, source, "Holder_init")
	assert.Contains(t, source, "void Keeper_init(struct Keeper *p)")

	assert.Contains(t, logged, "skipping struct Bag: no field has a C representation")
	assert.Contains(t, logged, "skipping struct Holder: no field has a C representation")
	assert.Contains(t, logged, "skipping field Keeper.Holder: no C representation: Holder")
}
