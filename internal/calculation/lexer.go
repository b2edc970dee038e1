package calculation

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenName
	tokenSymbol
)

type token struct {
	kind  tokenKind
	text  string
	pos   int
	value float64
}

func (t token) String() string {
	if t.kind == tokenEOF {
		return "end of expression"
	}
	return "`" + t.text + "`"
}

type syntaxError struct {
	pos int
	msg string
}

func (e *syntaxError) Error() string {
	return fmt.Sprintf("%s at position %d", e.msg, e.pos)
}

const symbols = "+-*/%^().,"

func lex(src string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			start := i
			i = scanNumber(src, i)
			value, err := strconv.ParseFloat(src[start:i], 64)
			if err != nil {
				return nil, &syntaxError{pos: start, msg: fmt.Sprintf("Invalid number `%s`", src[start:i])}
			}
			tokens = append(tokens, token{kind: tokenNumber, text: src[start:i], pos: start, value: value})
		case isNameStart(c):
			start := i
			i = scanName(src, i)
			tokens = append(tokens, token{kind: tokenName, text: src[start:i], pos: start})
		case strings.IndexByte(symbols, c) >= 0:
			tokens = append(tokens, token{kind: tokenSymbol, text: string(c), pos: i})
			i++
		default:
			return nil, &syntaxError{pos: i, msg: fmt.Sprintf("Unexpected character %q", c)}
		}
	}
	return append(tokens, token{kind: tokenEOF, pos: len(src)}), nil
}

func scanNumber(src string, i int) int {
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			i = j
			for i < len(src) && isDigit(src[i]) {
				i++
			}
		}
	}
	return i
}

// scanName reads name or namespace:path.
func scanName(src string, i int) int {
	for i < len(src) && isNameRune(src[i]) {
		i++
	}
	if i+1 < len(src) && src[i] == ':' && isNameStart(src[i+1]) {
		i++
		for i < len(src) && (isNameRune(src[i]) || src[i] == '/') {
			i++
		}
	}
	return i
}

func isDigit(c byte) bool     { return c >= '0' && c <= '9' }
func isNameStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') }
func isNameRune(c byte) bool  { return isNameStart(c) || isDigit(c) }
