// Package lua exposes the s-expression parser to gopher-lua.
//
// Nodes are represented as single-key tables:
//
//	(a "b" 1 2.5)  =>  {list={{symbol="a"}, {string="b"}, {int=1}, {float=2.5}}}
//
// Lua numbers are float64, so ints beyond 2^53 lose precision on the way in.
package lua

import (
	"errors"
	"math"

	"github.com/alttpo/sexpr"
	"github.com/yuin/gopher-lua"
)

const ModuleName = "sexpr"

var ErrNotANode = errors.New("value is not an s-expression node table")

func ToLua(l *lua.LState, n *sexpr.Node) lua.LValue {
	if n == nil {
		return lua.LNil
	}

	t := l.CreateTable(0, 1)
	switch n.Kind {
	case sexpr.KindList:
		list := l.CreateTable(len(n.List), 0)
		for _, c := range n.List {
			list.Append(ToLua(l, c))
		}
		t.RawSetString("list", list)
	case sexpr.KindSymbol:
		t.RawSetString("symbol", lua.LString(n.Text))
	case sexpr.KindString:
		t.RawSetString("string", lua.LString(n.Text))
	case sexpr.KindInt:
		t.RawSetString("int", lua.LNumber(n.Int))
	case sexpr.KindFloat:
		t.RawSetString("float", lua.LNumber(n.Float))
	}
	return t
}

// FromLua converts a node table back. Tables are walked with an explicit
// stack, matching the parser.
func FromLua(v lua.LValue) (n *sexpr.Node, err error) {
	type frame struct {
		src  *lua.LTable
		next int
		node *sexpr.Node
	}

	var root *sexpr.Node
	var stack []*frame

	visit := func(v lua.LValue) (leaf *sexpr.Node, list *lua.LTable, err error) {
		t, ok := v.(*lua.LTable)
		if !ok {
			return nil, nil, ErrNotANode
		}
		if lt, ok := t.RawGetString("list").(*lua.LTable); ok {
			return nil, lt, nil
		}
		if s, ok := t.RawGetString("symbol").(lua.LString); ok {
			leaf, err = sexpr.LaxProducer.Symbol(string(s))
			return
		}
		if s, ok := t.RawGetString("string").(lua.LString); ok {
			return sexpr.String(string(s)), nil, nil
		}
		if f, ok := t.RawGetString("int").(lua.LNumber); ok {
			if float64(f) != math.Trunc(float64(f)) {
				return nil, nil, ErrNotANode
			}
			return sexpr.Int(int64(f)), nil, nil
		}
		if f, ok := t.RawGetString("float").(lua.LNumber); ok {
			return sexpr.Float(float64(f)), nil, nil
		}
		return nil, nil, ErrNotANode
	}

	// attach places a finished node in its parent, or makes it the root.
	attach := func(c *sexpr.Node) {
		if len(stack) == 0 {
			root = c
			return
		}
		top := stack[len(stack)-1]
		top.node.List = append(top.node.List, c)
	}

	leaf, list, err := visit(v)
	if err != nil {
		return nil, err
	}
	if leaf != nil {
		return leaf, nil
	}
	stack = append(stack, &frame{src: list, next: 1, node: sexpr.List()})

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next > top.src.Len() {
			stack = stack[:len(stack)-1]
			attach(top.node)
			continue
		}

		child := top.src.RawGetInt(top.next)
		top.next++

		leaf, list, err = visit(child)
		if err != nil {
			return nil, err
		}
		if leaf != nil {
			attach(leaf)
			continue
		}
		stack = append(stack, &frame{src: list, next: 1, node: sexpr.List()})
	}

	return root, nil
}

// Loader is an lua.LGFunction for use with PreloadModule.
func Loader(l *lua.LState) int {
	mod := l.SetFuncs(l.NewTable(), map[string]lua.LGFunction{
		"parse":  parse,
		"render": render,
	})
	l.Push(mod)
	return 1
}

// Preload makes require("sexpr") available in l.
func Preload(l *lua.LState) {
	l.PreloadModule(ModuleName, Loader)
}

// parse(text) returns node, or nil and an error message.
func parse(l *lua.LState) int {
	text := l.CheckString(1)

	n, err := sexpr.Parse(text)
	if err != nil {
		l.Push(lua.LNil)
		l.Push(lua.LString(err.Error()))
		return 2
	}

	l.Push(ToLua(l, n))
	return 1
}

// render(node) returns the text form of node.
func render(l *lua.LState) int {
	n, err := FromLua(l.CheckTable(1))
	if err != nil {
		l.ArgError(1, err.Error())
		return 0
	}

	l.Push(lua.LString(n.String()))
	return 1
}
