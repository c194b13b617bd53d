// Package evalerr provides the error taxonomy for the evaluator: a single
// tagged error type carrying a category and an optional source position —
// minus source-context carets, since the evaluator never holds the original
// source text, only the parsed JSON tree.
package evalerr

import (
	"fmt"

	"github.com/estreejs/esjs/internal/estree"
)

// Category tags the kind of failure.
type Category string

const (
	// Deserialization covers malformed JSON or an unrecognized node type.
	Deserialization Category = "Deserialization"
	// Environment covers DuplicateDeclaration, ReassignmentConst and UndefinedVariable.
	Environment Category = "Environment"
	// InvalidType covers operating on a value of the wrong runtime kind.
	InvalidType Category = "InvalidType"
	// Unimplemented covers a recognized-but-unsupported AST construct.
	Unimplemented Category = "Unimplemented"
	// Runtime is an ambient addition alongside the four language-level
	// kinds: it guards the Go call stack against unbounded recursive
	// evaluation.
	Runtime Category = "Runtime"
)

// EvalError is the single error type surfaced by this module. It is never
// wrapped or retried — the first one produced aborts the evaluation and
// bubbles, unchanged, to the entry point.
type EvalError struct {
	Category Category
	Message  string
	Pos      *estree.Position
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("%s error at %s: %s", e.Category, e.Pos, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Category, e.Message)
}

// New builds an EvalError with no position information.
func New(category Category, format string, args ...any) *EvalError {
	return &EvalError{Category: category, Message: fmt.Sprintf(format, args...)}
}

// NewAt builds an EvalError positioned at a node's source location, when known.
func NewAt(category Category, pos *estree.Position, format string, args ...any) *EvalError {
	return &EvalError{Category: category, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// NewAtNode is NewAt, taking the offending node directly rather than making
// every call site unpack its SourceLocation by hand. A node whose parser
// omitted `loc` degrades to the no-position form, same as New.
func NewAtNode(category Category, node estree.Node, format string, args ...any) *EvalError {
	return NewAt(category, posOf(node), format, args...)
}

func posOf(node estree.Node) *estree.Position {
	loc := node.Loc()
	if loc == nil {
		return nil
	}
	return &loc.Start
}

// Is reports whether err is an *EvalError of the given category, so callers
// can branch on failure kind (e.g. the environment tests checking for the
// Environment category) without type-asserting on the concrete type themselves.
func Is(err error, category Category) bool {
	ee, ok := err.(*EvalError)
	return ok && ee.Category == category
}

// Specific constructors for the Environment category's sub-kinds.

// DuplicateDeclaration reports that `define` collided with an existing
// binding in the same frame.
func DuplicateDeclaration(name string) *EvalError {
	return New(Environment, "duplicate declaration: %s", name)
}

// ReassignmentConst reports that `update` targeted a const binding.
func ReassignmentConst(name string) *EvalError {
	return New(Environment, "cannot reassign const: %s", name)
}

// UndefinedVariable reports that `update` or `lookup` found no binding in
// the chain.
func UndefinedVariable(name string) *EvalError {
	return New(Environment, "undefined variable: %s", name)
}
