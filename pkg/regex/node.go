package regex

import (
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// Node is an expression tree node: Literal, Union, Concat or Star.
type Node interface {
	node()
}

// Literal matches a single symbol.
type Literal struct {
	Symbol domain.Symbol
}

// Union matches either side.
type Union struct {
	Left, Right Node
}

// Concat matches Left followed by Right.
type Concat struct {
	Left, Right Node
}

// Star matches zero or more repetitions of Operand.
type Star struct {
	Operand Node
}

func (Literal) node() {}
func (Union) node()   {}
func (Concat) node()  {}
func (Star) node()    {}

// Postfix renders n in postfix notation with explicit operators.
func Postfix(n Node) string {
	var sb strings.Builder
	writePostfix(&sb, n)
	return sb.String()
}

func writePostfix(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case Literal:
		sb.WriteString(string(n.Symbol))
	case Union:
		writePostfix(sb, n.Left)
		writePostfix(sb, n.Right)
		sb.WriteRune(opUnion)
	case Concat:
		writePostfix(sb, n.Left)
		writePostfix(sb, n.Right)
		sb.WriteRune(opConcat)
	case Star:
		writePostfix(sb, n.Operand)
		sb.WriteRune(opStar)
	}
}
