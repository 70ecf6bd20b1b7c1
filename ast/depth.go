package ast

import "github.com/KimNorgaard/go-lox/token"

// DefaultMaxDepth is the default limit on how deeply nodes may nest. The
// parser and the interpreter share it so that every program that parses
// within the limit also evaluates within it.
const DefaultMaxDepth = 1000

// Depth returns the number of nodes on the longest path from n down to a
// leaf, counting n itself. Nodes more than limit levels down are not
// visited, so the result is at most limit+1.
func Depth(n Node, limit int) int {
	if limit <= 0 {
		return 1
	}
	deepest := 0
	for _, child := range children(n) {
		deepest = max(deepest, Depth(child, limit-1))
	}
	return deepest + 1
}

func children(n Node) []Node {
	switch n := n.(type) {
	case *Assign:
		return []Node{n.Value}
	case *Binary:
		return []Node{n.Left, n.Right}
	case *Grouping:
		return []Node{n.Expression}
	case *Logical:
		return []Node{n.Left, n.Right}
	case *Unary:
		return []Node{n.Right}
	case *Block:
		nodes := make([]Node, len(n.Statements))
		for i, s := range n.Statements {
			nodes[i] = s
		}
		return nodes
	case *Expression:
		return []Node{n.Expression}
	case *If:
		if n.Else == nil {
			return []Node{n.Condition, n.Then}
		}
		return []Node{n.Condition, n.Then, n.Else}
	case *Print:
		return []Node{n.Expression}
	case *While:
		return []Node{n.Condition, n.Body}
	case *Var:
		if n.Initializer == nil {
			return nil
		}
		return []Node{n.Initializer}
	}
	return nil
}

// Anchor returns the token a diagnostic about n is reported at. An
// expression statement is reported at its expression.
func Anchor(n Node) token.Token {
	switch n := n.(type) {
	case *Assign:
		return n.Name
	case *Binary:
		return n.Operator
	case *Grouping:
		return n.Paren
	case *Literal:
		return n.Token
	case *Logical:
		return n.Operator
	case *Unary:
		return n.Operator
	case *Variable:
		return n.Name
	case *Block:
		return n.Brace
	case *Expression:
		return Anchor(n.Expression)
	case *If:
		return n.Keyword
	case *Print:
		return n.Keyword
	case *While:
		return n.Keyword
	case *Var:
		return n.Name
	}
	return token.Token{}
}
