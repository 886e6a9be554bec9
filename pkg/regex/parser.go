package regex

import (
	"strings"
	"unicode"

	"github.com/aretw0/automata/pkg/domain"
)

const (
	opUnion  = '|'
	opConcat = '.'
	opStar   = '*'
	opOpen   = '('
	opClose  = ')'
)

// priority of each operator on the shunting-yard stack; '(' never pops.
var priority = map[rune]int{
	opStar:   3,
	opConcat: 2,
	opUnion:  1,
	opOpen:   0,
}

type token struct {
	r   rune
	pos int
	lit bool
}

// lex splits pattern into tokens, dropping whitespace and inserting explicit
// concatenation between adjacent operands.
func lex(pattern string) ([]token, error) {
	var out []token
	pos := -1
	for _, r := range pattern {
		pos++
		if unicode.IsSpace(r) {
			continue
		}
		tok := token{r: r, pos: pos}
		switch r {
		case opUnion, opConcat, opStar, opOpen, opClose:
		default:
			if domain.Symbol(string(r)).IsEpsilon() {
				return nil, &SyntaxError{Pattern: pattern, Pos: pos, Reason: "epsilon marker is not a valid literal"}
			}
			tok.lit = true
		}
		if len(out) > 0 && endsOperand(out[len(out)-1]) && startsOperand(tok) {
			out = append(out, token{r: opConcat, pos: pos})
		}
		out = append(out, tok)
	}
	return out, nil
}

func endsOperand(t token) bool {
	return t.lit || t.r == opClose || t.r == opStar
}

func startsOperand(t token) bool {
	return t.lit || t.r == opOpen
}

// InsertConcat returns pattern with whitespace removed and every implicit
// concatenation made explicit with '.'.
func InsertConcat(pattern string) (string, error) {
	tokens, err := lex(pattern)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteRune(t.r)
	}
	return sb.String(), nil
}

// ToPostfix converts an infix pattern to postfix notation.
func ToPostfix(pattern string) (string, error) {
	tokens, err := postfix(pattern)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteRune(t.r)
	}
	return sb.String(), nil
}

func postfix(pattern string) ([]token, error) {
	tokens, err := lex(pattern)
	if err != nil {
		return nil, err
	}

	var out, stack []token
	for _, t := range tokens {
		switch {
		case t.lit:
			out = append(out, t)
		case t.r == opOpen:
			stack = append(stack, t)
		case t.r == opClose:
			for {
				if len(stack) == 0 {
					return nil, &SyntaxError{Pattern: pattern, Pos: t.pos, Reason: "unmatched ')'"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.r == opOpen {
					break
				}
				out = append(out, top)
			}
		default:
			for len(stack) > 0 && priority[stack[len(stack)-1].r] >= priority[t.r] {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.r == opOpen {
			return nil, &SyntaxError{Pattern: pattern, Pos: top.pos, Reason: "unmatched '('"}
		}
		out = append(out, top)
	}
	return out, nil
}

// Parse builds the expression tree of pattern.
func Parse(pattern string) (Node, error) {
	tokens, err := postfix(pattern)
	if err != nil {
		return nil, err
	}

	var stack []Node
	pop := func() Node {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n
	}

	for _, t := range tokens {
		if t.lit {
			stack = append(stack, Literal{Symbol: domain.Symbol(string(t.r))})
			continue
		}
		arity := 2
		if t.r == opStar {
			arity = 1
		}
		if len(stack) < arity {
			return nil, &SyntaxError{Pattern: pattern, Pos: t.pos, Reason: "missing operand for '" + string(t.r) + "'"}
		}
		switch t.r {
		case opStar:
			stack = append(stack, Star{Operand: pop()})
		case opConcat:
			right, left := pop(), pop()
			stack = append(stack, Concat{Left: left, Right: right})
		case opUnion:
			right, left := pop(), pop()
			stack = append(stack, Union{Left: left, Right: right})
		}
	}

	switch len(stack) {
	case 0:
		return nil, &SyntaxError{Pattern: pattern, Pos: 0, Reason: "empty expression"}
	case 1:
		return stack[0], nil
	default:
		return nil, &SyntaxError{Pattern: pattern, Pos: len([]rune(pattern)), Reason: "dangling operands"}
	}
}
