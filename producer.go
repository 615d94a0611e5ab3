package sexpr

import (
	"strings"
)

type Producer interface {
	Symbol(s string) (n *Node, err error)
	String(s string) (n *Node, err error)
	List(children ...*Node) (n *Node, err error)
}

type producer struct {
	// strict only accepts values that read back unchanged.
	strict bool
}

var StrictProducer = producer{strict: true}
var LaxProducer = producer{strict: false}

func MustSymbol(s string) (n *Node) {
	var err error
	n, err = StrictProducer.Symbol(s)
	if err != nil {
		panic(err)
	}
	return n
}
func (e producer) Symbol(s string) (n *Node, err error) {
	if s == "" {
		return nil, ErrInvalidSymbol
	}
	for i, r := range s {
		if isSpace(r) {
			return nil, ErrInvalidSymbol
		}
		if e.strict && i == 0 && (r == '(' || r == ')' || r == '"' || isDigit(r)) {
			return nil, ErrInvalidSymbol
		}
	}

	return &Node{
		Kind: KindSymbol,
		Text: s,
	}, nil
}

func (e producer) String(s string) (n *Node, err error) {
	if e.strict && strings.ContainsRune(s, '"') {
		return nil, ErrInvalidString
	}

	return &Node{
		Kind: KindString,
		Text: s,
	}, nil
}

func (e producer) List(children ...*Node) (n *Node, err error) {
	return List(children...), nil
}

func List(children ...*Node) (n *Node) {
	if children == nil {
		children = make([]*Node, 0, 0)
	}
	return &Node{
		Kind: KindList,
		List: children,
	}
}

func String(s string) (n *Node) {
	return &Node{
		Kind: KindString,
		Text: s,
	}
}

func Int(i int64) (n *Node) {
	return &Node{
		Kind: KindInt,
		Int:  i,
	}
}

func Float(f float64) (n *Node) {
	return &Node{
		Kind:  KindFloat,
		Float: f,
	}
}
