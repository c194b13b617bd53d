// Package evaluator reduces a decoded ESTree tree (internal/estree) to a
// jsvalue.Value, threading an environment.Frame chain through the
// recursive AST walk.
package evaluator

import "github.com/estreejs/esjs/internal/jsvalue"

// Completion is the result of evaluating a statement: either a normal
// value, or a `return` carrying its argument. Every statement evaluator in
// this package returns a Completion instead of a bare Value, and every
// caller that can contain nested statements (a block's sequence, an
// IfStatement's branch) checks IsReturn before continuing — this is what
// lets a `return` buried inside an `if` or a non-leading block position
// unwind correctly, instead of only being detected at the head of a
// sequence.
type Completion struct {
	Value    jsvalue.Value
	IsReturn bool
}

// Normal wraps a value produced without a `return`.
func Normal(v jsvalue.Value) Completion {
	return Completion{Value: v}
}

// Returning wraps a value produced by a `return` statement.
func Returning(v jsvalue.Value) Completion {
	return Completion{Value: v, IsReturn: true}
}
