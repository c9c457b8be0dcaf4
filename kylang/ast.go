package kylang

import "strings"

// Node is a closed sum type; the unexported method keeps it closed.
type Node interface {
	Position() Pos
	String() string
	node()
}

type Binary struct {
	Pos Pos
	Lhs Node
	Op  Symbol
	Rhs Node
}

type Unary struct {
	Pos     Pos
	Op      Symbol
	Operand Node
}

type Call struct {
	Pos       Pos
	Target    Node
	Arguments []Node
}

type Block struct {
	Pos  Pos
	Body []Node
}

type Literal struct {
	Pos   Pos
	Value Value
}

type Declaration struct {
	Pos   Pos
	Op    Keyword
	ID    string
	Value Node
}

// If is part of the tree model; the parser reports if expressions as not yet implemented.
type If struct {
	Pos       Pos
	Condition Node
	Body      Node
	// nil without an else branch
	Else Node
}

// While is part of the tree model; the parser reports while expressions as not yet implemented.
type While struct {
	Pos       Pos
	Condition Node
	Body      Node
}

// Jump is return, break or continue.
type Jump struct {
	Pos    Pos
	Op     Keyword
	Result Node
}

type Typeof struct {
	Pos     Pos
	Operand Node
}

type Identifier struct {
	Pos  Pos
	Name string
}

type Access struct {
	Pos    Pos
	Target Node
	Field  string
}

var (
	_ Node = new(Binary)
	_ Node = new(Unary)
	_ Node = new(Call)
	_ Node = new(Block)
	_ Node = new(Literal)
	_ Node = new(Declaration)
	_ Node = new(If)
	_ Node = new(While)
	_ Node = new(Jump)
	_ Node = new(Typeof)
	_ Node = new(Identifier)
	_ Node = new(Access)
)

func (*Binary) node()      {}
func (*Unary) node()       {}
func (*Call) node()        {}
func (*Block) node()       {}
func (*Literal) node()     {}
func (*Declaration) node() {}
func (*If) node()          {}
func (*While) node()       {}
func (*Jump) node()        {}
func (*Typeof) node()      {}
func (*Identifier) node()  {}
func (*Access) node()      {}

func (n *Binary) Position() Pos      { return n.Pos }
func (n *Unary) Position() Pos       { return n.Pos }
func (n *Call) Position() Pos        { return n.Pos }
func (n *Block) Position() Pos       { return n.Pos }
func (n *Literal) Position() Pos     { return n.Pos }
func (n *Declaration) Position() Pos { return n.Pos }
func (n *If) Position() Pos          { return n.Pos }
func (n *While) Position() Pos       { return n.Pos }
func (n *Jump) Position() Pos        { return n.Pos }
func (n *Typeof) Position() Pos      { return n.Pos }
func (n *Identifier) Position() Pos  { return n.Pos }
func (n *Access) Position() Pos      { return n.Pos }

func (n *Binary) String() string {
	return "Binary(" + n.Op.String() + ", " + n.Lhs.String() + ", " + n.Rhs.String() + ")"
}

func (n *Unary) String() string {
	return "Unary(" + n.Op.String() + ", " + n.Operand.String() + ")"
}

func (n *Call) String() string {
	return "Call(" + n.Target.String() + ", " + nodeList(n.Arguments) + ")"
}

func (n *Block) String() string {
	return "Block(" + nodeList(n.Body) + ")"
}

func (n *Literal) String() string {
	return "Literal(" + n.Value.String() + ")"
}

func (n *Declaration) String() string {
	return "Declaration(" + n.Op.String() + ", " + n.ID + ", " + n.Value.String() + ")"
}

func (n *If) String() string {
	if n.Else == nil {
		return "If(" + n.Condition.String() + ", " + n.Body.String() + ")"
	}
	return "If(" + n.Condition.String() + ", " + n.Body.String() + ", " + n.Else.String() + ")"
}

func (n *While) String() string {
	return "While(" + n.Condition.String() + ", " + n.Body.String() + ")"
}

func (n *Jump) String() string {
	return "Jump(" + n.Op.String() + ", " + n.Result.String() + ")"
}

func (n *Typeof) String() string {
	return "Typeof(" + n.Operand.String() + ")"
}

func (n *Identifier) String() string {
	return "Identifier(" + n.Name + ")"
}

func (n *Access) String() string {
	return "Access(" + n.Target.String() + ", " + n.Field + ")"
}

func nodeList(nodes []Node) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, node := range nodes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(node.String())
	}
	sb.WriteString("]")
	return sb.String()
}
