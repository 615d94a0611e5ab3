package sexpr

import (
	"bytes"
	"io"
	"strconv"
	"strings"
)

// Parse parses all of input. See the package documentation for the format.
func Parse(input string) (n *Node, err error) {
	return ParseRunes(strings.NewReader(input))
}

func ParseBytes(input []byte) (n *Node, err error) {
	return ParseRunes(bytes.NewReader(input))
}

// ParseReader reads r to the end before parsing.
func ParseReader(r io.Reader) (n *Node, err error) {
	var b []byte
	b, err = io.ReadAll(r)
	if err != nil {
		return
	}
	return ParseBytes(b)
}

// ParseRunes consumes s to the end. At most one rune is unread at a time.
// Read errors other than io.EOF are returned as is.
func ParseRunes(s io.RuneScanner) (n *Node, err error) {
	// stack of open lists; stack[0] collects the top-level values.
	stack := make([][]*Node, 1, 16)
	stack[0] = make([]*Node, 0, 10)

	var r rune
	for {
		r, _, err = s.ReadRune()
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			return nil, err
		}

		if isSpace(r) {
			continue
		}

		top := len(stack) - 1

		var child *Node
		switch {
		case r == '(':
			stack = append(stack, make([]*Node, 0, 10))
			continue
		case r == ')':
			if top == 0 {
				return nil, ErrNoMatchingOpenParen
			}
			child = &Node{
				Kind: KindList,
				List: stack[top],
			}
			stack = stack[:top]
		case r == '"':
			child, err = parseString(s)
		case isDigit(r):
			child, err = parseNumber(s, r)
		default:
			child, err = parseSymbol(s, r)
		}
		if err != nil {
			return nil, err
		}

		top = len(stack) - 1
		stack[top] = append(stack[top], child)
	}

	if len(stack) > 1 {
		return nil, ErrExpectedClosingParen
	}

	if len(stack[0]) == 1 {
		return stack[0][0], nil
	}
	return &Node{
		Kind: KindList,
		List: stack[0],
	}, nil
}

// isSpace matches ASCII whitespace except '\v'.
func isSpace(r rune) bool {
	return r == ' ' ||
		r == '\t' ||
		r == '\n' ||
		r == '\f' ||
		r == '\r'
}

func isDigit(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	return false
}

// parseString is called after the opening quote.
func parseString(s io.RuneScanner) (n *Node, err error) {
	var sb strings.Builder

	var r rune
	for {
		r, _, err = s.ReadRune()
		if err == io.EOF {
			return nil, ErrUnclosedString
		}
		if err != nil {
			return
		}

		if r == '"' {
			break
		}

		sb.WriteRune(r)
	}

	n = &Node{
		Kind: KindString,
		Text: sb.String(),
	}
	return
}

// readDigits appends digits to sb and leaves the first non-digit unread.
func readDigits(s io.RuneScanner, sb *strings.Builder) (eof bool, err error) {
	var r rune
	for {
		r, _, err = s.ReadRune()
		if err == io.EOF {
			return true, nil
		}
		if err != nil {
			return
		}

		if !isDigit(r) {
			err = s.UnreadRune()
			return
		}

		sb.WriteRune(r)
	}
}

func parseNumber(s io.RuneScanner, first rune) (n *Node, err error) {
	var sb strings.Builder
	sb.WriteRune(first)

	var eof bool
	eof, err = readDigits(s, &sb)
	if err != nil {
		return
	}

	isFloat := false
	if !eof {
		var r rune
		r, _, err = s.ReadRune()
		if err != nil {
			return
		}

		if r == '.' {
			isFloat = true
			sb.WriteRune(r)
			_, err = readDigits(s, &sb)
		} else {
			err = s.UnreadRune()
		}
		if err != nil {
			return
		}
	}

	if isFloat {
		var f float64
		f, err = strconv.ParseFloat(sb.String(), 64)
		if err != nil {
			return nil, &NumberError{Float: true, Err: err}
		}
		n = &Node{
			Kind:  KindFloat,
			Float: f,
		}
		return
	}

	var i int64
	i, err = strconv.ParseInt(sb.String(), 10, 64)
	if err != nil {
		return nil, &NumberError{Float: false, Err: err}
	}
	n = &Node{
		Kind: KindInt,
		Int:  i,
	}
	return
}

// parseSymbol reads up to whitespace or end of input. Parentheses and quotes
// do not end a symbol.
func parseSymbol(s io.RuneScanner, first rune) (n *Node, err error) {
	var sb strings.Builder
	sb.WriteRune(first)

	var r rune
	for {
		r, _, err = s.ReadRune()
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			return
		}

		if isSpace(r) {
			break
		}

		sb.WriteRune(r)
	}

	n = &Node{
		Kind: KindSymbol,
		Text: sb.String(),
	}
	return
}
