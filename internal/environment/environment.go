// Package environment implements the lexical scope chain the evaluator
// threads through every node: a chain of frames, each holding its own
// bindings and a pointer to the frame it extends. Bindings are
// case-sensitive (JS identifiers are), and each binding carries a
// declaration Kind so const reassignment can be rejected.
package environment

import "github.com/estreejs/esjs/internal/evalerr"

// Value is the minimal shape a bound value must provide. It is satisfied
// structurally by jsvalue.Value without this package importing jsvalue;
// jsvalue.Closure in turn holds its *Frame as `any`, so neither package
// imports the other.
type Value interface{}

// Kind is the declaration form a binding was introduced with.
type Kind uint8

const (
	Var Kind = iota
	Let
	Const
)

type binding struct {
	kind  Kind
	value Value
}

// Frame is one lexical scope: a set of bindings plus a pointer to the
// enclosing scope. The chain is searched outward on lookup, exactly as the
// teacher's Environment does, but Frame additionally refuses a Define that
// collides with an existing binding in the SAME frame (spec's
// DuplicateDeclaration), and an Update that targets a Const binding
// anywhere in the chain (spec's ReassignmentConst).
type Frame struct {
	store map[string]*binding
	outer *Frame
}

// New creates a root frame with no enclosing scope.
func New() *Frame {
	return &Frame{store: make(map[string]*binding)}
}

// NewEnclosed creates a frame extending outer, the way a block, function
// call, or closure invocation opens a fresh scope in the evaluator.
func NewEnclosed(outer *Frame) *Frame {
	return &Frame{store: make(map[string]*binding), outer: outer}
}

// Outer returns the enclosing frame, or nil at the root.
func (f *Frame) Outer() *Frame {
	return f.outer
}

// Define introduces a new binding in this frame. It fails with
// DuplicateDeclaration if the name is already bound in this frame (not in
// an outer one — shadowing an outer binding is allowed).
func (f *Frame) Define(name string, kind Kind, value Value) error {
	if _, exists := f.store[name]; exists {
		return evalerr.DuplicateDeclaration(name)
	}
	f.store[name] = &binding{kind: kind, value: value}
	return nil
}

// Lookup searches this frame, then each enclosing frame in turn, for name.
// It fails with UndefinedVariable if no frame in the chain binds it.
func (f *Frame) Lookup(name string) (Value, error) {
	for frame := f; frame != nil; frame = frame.outer {
		if b, ok := frame.store[name]; ok {
			return b.value, nil
		}
	}
	return nil, evalerr.UndefinedVariable(name)
}

// Has reports whether name is bound anywhere in the chain, without the
// error-allocation cost of a failed Lookup.
func (f *Frame) Has(name string) bool {
	for frame := f; frame != nil; frame = frame.outer {
		if _, ok := frame.store[name]; ok {
			return true
		}
	}
	return false
}

// Update assigns a new value to an existing binding, searching outward the
// same way Lookup does. It fails with UndefinedVariable if no frame binds
// name, and with ReassignmentConst if the binding it found was declared
// const.
func (f *Frame) Update(name string, value Value) error {
	for frame := f; frame != nil; frame = frame.outer {
		if b, ok := frame.store[name]; ok {
			if b.kind == Const {
				return evalerr.ReassignmentConst(name)
			}
			b.value = value
			return nil
		}
	}
	return evalerr.UndefinedVariable(name)
}
