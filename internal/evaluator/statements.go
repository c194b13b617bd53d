package evaluator

import (
	"github.com/estreejs/esjs/internal/environment"
	"github.com/estreejs/esjs/internal/estree"
	"github.com/estreejs/esjs/internal/evalerr"
	"github.com/estreejs/esjs/internal/jsvalue"
)

// maxFrameDepth guards the Go call stack against unbounded recursive
// evaluation, such as an ungrounded recursive call like `function f(){ f() }`.
// This is the ambient Runtime error category (internal/evalerr), not one of
// the language's own named failure kinds: it is pure engineering
// self-defense, not new language semantics.
const maxFrameDepth = 2000

// EvalProgram evaluates the top-level BlockStatement the entry point
// receives. Program itself is never the entry point; the host always hands
// over a script already wrapped in a BlockStatement. This is the one place
// depth tracking starts.
func EvalProgram(body *estree.BlockStatement) (jsvalue.Value, error) {
	frame := environment.New()
	completion, err := evalBlock(body, frame, 0)
	if err != nil {
		return jsvalue.Value{}, err
	}
	return completion.Value, nil
}

// evalBlock extends env with a fresh frame and evaluates the body sequence
// in it.
func evalBlock(block *estree.BlockStatement, outer *environment.Frame, depth int) (Completion, error) {
	if depth > maxFrameDepth {
		return Completion{}, evalerr.New(evalerr.Runtime, "maximum call depth exceeded")
	}
	frame := environment.NewEnclosed(outer)
	return evalSequence(block.Body, frame, depth)
}

// evalSequence evaluates a statement list left-to-right. An empty sequence
// yields undefined, and a `return` encountered anywhere in the sequence
// (not only at its head) immediately stops evaluation and bubbles.
func evalSequence(body []estree.Node, frame *environment.Frame, depth int) (Completion, error) {
	if len(body) == 0 {
		return Normal(jsvalue.Undefined), nil
	}
	var last Completion
	for _, stmt := range body {
		c, err := evalStatement(stmt, frame, depth)
		if err != nil {
			return Completion{}, err
		}
		if c.IsReturn {
			return c, nil
		}
		last = c
	}
	return last, nil
}

// evalStatement dispatches the node kinds that can legally occupy a
// statement position, minus the pure expression kinds which only ever
// reach here wrapped in an ExpressionStatement.
func evalStatement(node estree.Node, frame *environment.Frame, depth int) (Completion, error) {
	switch n := node.(type) {
	case *estree.ExpressionStatement:
		v, err := evalExpr(n.Expression, frame, depth)
		if err != nil {
			return Completion{}, err
		}
		return Normal(v), nil

	case *estree.BlockStatement:
		return evalBlock(n, frame, depth+1)

	case *estree.IfStatement:
		return evalIf(n, frame, depth)

	case *estree.ReturnStatement:
		if n.Argument == nil {
			return Returning(jsvalue.Undefined), nil
		}
		v, err := evalExpr(n.Argument, frame, depth)
		if err != nil {
			return Completion{}, err
		}
		return Returning(v), nil

	case *estree.VariableDeclaration:
		return evalVariableDeclaration(n, frame, depth)

	case *estree.FunctionDeclaration:
		closure := buildClosure(n.Id.Name, n.Params, n.Body, frame)
		if err := frame.Define(normalizeName(n.Id.Name), environment.Let, closure); err != nil {
			return Completion{}, err
		}
		return Normal(jsvalue.Undefined), nil

	case *estree.Program:
		return Completion{}, evalerr.NewAtNode(evalerr.Unimplemented, n, "Program reached directly; entry point must be a BlockStatement")

	default:
		return Completion{}, evalerr.NewAtNode(evalerr.Unimplemented, node, "%s cannot appear in statement position", node.Type())
	}
}

// evalIf evaluates an IfStatement: the statement's own value is always
// undefined regardless of which branch ran, but a `return` inside either
// branch still propagates — an `if` is not a barrier to a `return` bubbling
// further up.
func evalIf(n *estree.IfStatement, frame *environment.Frame, depth int) (Completion, error) {
	test, err := evalExpr(n.Test, frame, depth)
	if err != nil {
		return Completion{}, err
	}
	var branch estree.Node
	if test.ToBoolean() {
		branch = n.Consequent
	} else {
		branch = n.Alternate
	}
	if branch == nil {
		return Normal(jsvalue.Undefined), nil
	}
	c, err := evalStatement(branch, frame, depth)
	if err != nil {
		return Completion{}, err
	}
	if c.IsReturn {
		return c, nil
	}
	return Normal(jsvalue.Undefined), nil
}

// evalVariableDeclaration evaluates a var/let/const declaration: each
// declarator's init is evaluated (or defaulted to undefined) and defined
// under the declaration's kind; the statement's own value is null.
func evalVariableDeclaration(n *estree.VariableDeclaration, frame *environment.Frame, depth int) (Completion, error) {
	kind, err := declarationKind(n, n.Kind)
	if err != nil {
		return Completion{}, err
	}
	for _, decl := range n.Declarations {
		value := jsvalue.Undefined
		if decl.Init != nil {
			value, err = evalExpr(decl.Init, frame, depth)
			if err != nil {
				return Completion{}, err
			}
		}
		if err := frame.Define(normalizeName(decl.Id.Name), kind, value); err != nil {
			return Completion{}, err
		}
	}
	return Normal(jsvalue.Null), nil
}

func declarationKind(node estree.Node, kind string) (environment.Kind, error) {
	switch kind {
	case "var":
		return environment.Var, nil
	case "let":
		return environment.Let, nil
	case "const":
		return environment.Const, nil
	default:
		return 0, evalerr.NewAtNode(evalerr.Deserialization, node, "unknown declaration kind: %q", kind)
	}
}
