package sexpr

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type Kind int

const (
	KindList Kind = iota
	KindSymbol
	KindString
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindSymbol:
		return "symbol"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is one parsed value. Kind selects which payload field is meaningful:
// Text for KindSymbol and KindString, Int for KindInt, Float for KindFloat and
// List for KindList.
type Node struct {
	Kind
	Text  string
	Int   int64
	Float float64
	List  []*Node
}

func (n *Node) String() string {
	var sb strings.Builder
	n.appendToBuilder(&sb)
	return sb.String()
}

func (n *Node) appendToBuilder(sb *strings.Builder) {
	if n == nil {
		return
	}

	switch n.Kind {
	case KindList:
		sb.WriteRune('(')
		for i, c := range n.List {
			c.appendToBuilder(sb)
			if i < len(n.List)-1 {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune(')')
	case KindSymbol:
		sb.WriteString(n.Text)
	case KindString:
		sb.WriteString(strconv.Quote(n.Text))
	case KindInt:
		sb.WriteString(strconv.FormatInt(n.Int, 10))
	case KindFloat:
		sb.WriteString(formatFloat(n.Float))
	}
}

// formatFloat never uses exponent form and always includes a decimal point,
// so the result reads back as the same float.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Equal reports whether n and o are structurally the same tree.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind {
		return false
	}

	switch n.Kind {
	case KindList:
		if len(n.List) != len(o.List) {
			return false
		}
		for i := range n.List {
			if !n.List[i].Equal(o.List[i]) {
				return false
			}
		}
		return true
	case KindSymbol, KindString:
		return n.Text == o.Text
	case KindInt:
		return n.Int == o.Int
	case KindFloat:
		return n.Float == o.Float
	}

	return false
}

type jsonSymbol struct {
	Symbol string `json:"symbol"`
}

// MarshalJSON encodes lists as arrays, strings and numbers as their JSON
// counterparts and symbols as {"symbol": text} so they stay distinct from
// strings. Non-finite floats cannot be encoded.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}

	switch n.Kind {
	case KindList:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, c := range n.List {
			b, err := c.MarshalJSON()
			if err != nil {
				return nil, err
			}
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindSymbol:
		return json.Marshal(jsonSymbol{Symbol: n.Text})
	case KindString:
		return json.Marshal(n.Text)
	case KindInt:
		return []byte(strconv.FormatInt(n.Int, 10)), nil
	case KindFloat:
		return json.Marshal(n.Float)
	}

	return nil, &json.UnsupportedValueError{Str: n.Kind.String()}
}
