// Package pyast models the structural subset of a Python module that the
// linter reads: top-level statements, class declarations with their direct
// members, and callable signatures. Every node kind carries all of its fields,
// possibly as empty slices, so consumers never probe for optional data.
package pyast

// Node is one statement of a module or class body.
type Node interface {
	Line() uint32
	node()
}

// Module is a parsed source file.
type Module struct {
	Path     string
	Body     []Node
	Comments map[uint32]string
}

// Comment returns the text following '#' on the given line.
func (m *Module) Comment(line uint32) (string, bool) {
	c, ok := m.Comments[line]
	return c, ok
}

// Classes returns the top-level class declarations in declaration order.
func (m *Module) Classes() []*ClassDef {
	var classes []*ClassDef

	for _, n := range m.Body {
		if c, ok := n.(*ClassDef); ok {
			classes = append(classes, c)
		}
	}

	return classes
}

// BaseRef is one entry of a class base list. Name is set only when the base
// is a bare identifier; attribute access, subscripts, calls and starred
// expressions keep Name empty.
type BaseRef struct {
	Expr string
	Name string
}

// ClassDef is a class statement. DecoratorLine is the line of the first
// decorator, 0 when the class is not decorated.
type ClassDef struct {
	Name          string
	Lineno        uint32
	DecoratorLine uint32
	Bases         []BaseRef
	Decorators    []string
	Body          []Node
}

// FuncDef is a def or async def statement.
type FuncDef struct {
	Name       string
	Lineno     uint32
	Params     []string
	Decorators []string
	Async      bool
}

// Other is any statement the linter has no use for.
type Other struct {
	Lineno uint32
}

func (c *ClassDef) Line() uint32 { return c.Lineno }
func (f *FuncDef) Line() uint32  { return f.Lineno }
func (o *Other) Line() uint32    { return o.Lineno }

func (*ClassDef) node() {}
func (*FuncDef) node()  {}
func (*Other) node()    {}

// Methods returns the callables declared directly in the class body.
func (c *ClassDef) Methods() []*FuncDef {
	var methods []*FuncDef

	for _, n := range c.Body {
		if f, ok := n.(*FuncDef); ok {
			methods = append(methods, f)
		}
	}

	return methods
}

// HasBase reports whether a base of the class is literally named name.
func (c *ClassDef) HasBase(name string) bool {
	for _, base := range c.Bases {
		if base.Name != "" && base.Name == name {
			return true
		}
	}

	return false
}
