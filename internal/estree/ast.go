package estree

// Node is the base interface for every AST node this evaluator recognizes.
// Unlike a compiler frontend's own AST (built by its own parser), these
// nodes are never constructed except by Decode, so Node carries no
// expressionNode()/statementNode() marker methods — the node kinds that may
// legally appear in a given position are enforced by the evaluator's type
// switches, not by the type system, because ESTree itself does not separate
// Statement and Expression at the grammar level precisely enough for Go's
// interfaces to do it for free (a FunctionExpression is an Expression; a
// FunctionDeclaration is a Statement; both decode through the same switch).
type Node interface {
	// Type is the ESTree discriminant string, e.g. "BinaryExpression".
	Type() string
	// Loc is the node's optional source location, nil if the parser omitted it.
	Loc() *SourceLocation
}

type base struct {
	NodeType string          `json:"-"`
	Location *SourceLocation `json:"-"`
}

func (b *base) Type() string         { return b.NodeType }
func (b *base) Loc() *SourceLocation { return b.Location }

// ScalarKind tags the JSON shape of a Literal's value: the JSON form is
// string|number|boolean|null, and null must map to the Null variant rather
// than the zero value of a string. This intentionally avoids representing
// Literal.Value as `any`: a fixed, inspectable set of variants is simpler
// and safer for the evaluator to switch over than a boxed dynamic value.
type ScalarKind uint8

const (
	ScalarString ScalarKind = iota
	ScalarNumber
	ScalarBoolean
	ScalarNull
)

// Scalar is a decoded Literal.value.
type Scalar struct {
	Kind ScalarKind
	Str  string
	Num  float64
	Bool bool
}

// Program is the root ESTree node. It is never evaluated directly — the
// entry point always receives a BlockStatement — but it is still a
// recognized node kind so that a tree built by wrapping a script in
// `{type:"Program", body:[...]}` fails with a clear Unimplemented error
// rather than a decode error.
type Program struct {
	base
	Body []Node
}

// BlockStatement is `{ ... }`: a sequence of statements evaluated in a
// freshly extended environment.
type BlockStatement struct {
	base
	Body []Node
}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	base
	Expression Node
}

// Literal is a constant: string, number, boolean, or null.
type Literal struct {
	base
	Value Scalar
}

// Identifier is a bare name reference.
type Identifier struct {
	base
	Name string
}

// VariableDeclaration is `var|let|const x = ..., y = ...;`.
type VariableDeclaration struct {
	base
	Declarations []*VariableDeclarator
	Kind         string // "var" | "let" | "const"
}

// VariableDeclarator is one `x = init` clause within a VariableDeclaration.
type VariableDeclarator struct {
	base
	Id   *Identifier
	Init Node // nil if uninitialized
}

// AssignmentExpression is `left op right`. Only `=` is implemented (§4.6);
// Left is either an *Identifier or a non-computed *MemberExpression.
type AssignmentExpression struct {
	base
	Operator string
	Left     Node
	Right    Node
}

// UnaryExpression is a prefix operator applied to a single operand.
type UnaryExpression struct {
	base
	Operator string
	Argument Node
}

// BinaryExpression is an infix arithmetic/comparison/bitwise operator.
type BinaryExpression struct {
	base
	Operator string
	Left     Node
	Right    Node
}

// LogicalExpression is `&&` or `||`, short-circuiting.
type LogicalExpression struct {
	base
	Operator string
	Left     Node
	Right    Node
}

// ConditionalExpression is the ternary `test ? consequent : alternate`.
type ConditionalExpression struct {
	base
	Test       Node
	Consequent Node
	Alternate  Node
}

// IfStatement is `if (test) consequent else alternate`.
type IfStatement struct {
	base
	Test       Node
	Consequent Node
	Alternate  Node // nil if no else clause
}

// ReturnStatement is `return argument;`.
type ReturnStatement struct {
	base
	Argument Node // nil for a bare `return;`
}

// FunctionDeclaration is `function name(params) { body }` used as a statement.
type FunctionDeclaration struct {
	base
	Id     *Identifier
	Params []*Identifier
	Body   *BlockStatement
}

// FunctionExpression is the expression-position form of a function literal.
type FunctionExpression struct {
	base
	Id     *Identifier
	Params []*Identifier
	Body   *BlockStatement
}

// ArrowFunctionExpression is `(params) => body`. Body is either a
// *BlockStatement or a bare expression; Decode normalizes the latter into a
// BlockStatement wrapping a synthetic ReturnStatement.
type ArrowFunctionExpression struct {
	base
	Params []*Identifier
	Body   *BlockStatement
}

// CallExpression is `callee(arguments...)`.
type CallExpression struct {
	base
	Callee    Node
	Arguments []Node
}

// MemberExpression is `object.property` (non-computed) — computed member
// access (`object[property]`) is an open question and is rejected.
type MemberExpression struct {
	base
	Object   Node
	Property *Identifier
	Computed bool
}

// ObjectExpression is `{ key: value, ... }`.
type ObjectExpression struct {
	base
	Properties []*Property
}

// Property is one `key: value` entry of an ObjectExpression.
type Property struct {
	base
	Key      Node // *Identifier, *Literal, or any expression (evaluated, then stringified)
	Value    Node
	Kind     string // "init"
	Computed bool
}
