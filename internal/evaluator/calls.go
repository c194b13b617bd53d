package evaluator

import (
	"github.com/estreejs/esjs/internal/environment"
	"github.com/estreejs/esjs/internal/estree"
	"github.com/estreejs/esjs/internal/evalerr"
	"github.com/estreejs/esjs/internal/jsvalue"
)

// buildClosure captures the frame active at the point a function/arrow
// literal is evaluated — the captured environment is fixed at creation,
// not at call.
func buildClosure(name string, params []*estree.Identifier, body *estree.BlockStatement, frame *environment.Frame) jsvalue.Value {
	return jsvalue.Fn(&jsvalue.Closure{
		Name:   name,
		Params: params,
		Body:   body,
		Frame:  frame,
	})
}

// evalCall evaluates a CallExpression: the callee is resolved by evaluating
// it as any expression and dispatching on the resulting value rather than
// its node kind, so any expression that evaluates to a closure is callable,
// not only an Identifier or MemberExpression. Arguments are evaluated
// left-to-right, padded/truncated to the closure's parameter count, and
// bound under `let` in a fresh frame extending the closure's captured
// frame — not the caller's current frame.
func evalCall(n *estree.CallExpression, frame *environment.Frame, depth int) (jsvalue.Value, error) {
	callee, err := evalExpr(n.Callee, frame, depth)
	if err != nil {
		return jsvalue.Value{}, err
	}
	if callee.Kind != jsvalue.KindClosure {
		return jsvalue.Value{}, evalerr.NewAtNode(evalerr.InvalidType, n, "cannot call a %s", callee.TypeName())
	}
	closure := callee.Closure

	args := make([]jsvalue.Value, len(closure.Params))
	for i := range args {
		args[i] = jsvalue.Undefined
	}
	for i, argNode := range n.Arguments {
		v, err := evalExpr(argNode, frame, depth)
		if err != nil {
			return jsvalue.Value{}, err
		}
		if i < len(args) {
			args[i] = v
		}
		// extra arguments beyond len(params) are evaluated for side effect,
		// left-to-right, and then discarded.
	}

	capturedFrame, _ := closure.Frame.(*environment.Frame)
	callFrame := environment.NewEnclosed(capturedFrame)
	for i, param := range closure.Params {
		if err := callFrame.Define(normalizeName(param.Name), environment.Let, args[i]); err != nil {
			return jsvalue.Value{}, err
		}
	}

	completion, err := evalBlock(closure.Body, callFrame, depth+1)
	if err != nil {
		return jsvalue.Value{}, err
	}
	// A function body that never executes a `return` yields undefined — the
	// call boundary discards evalSequence's last-statement-value fallback,
	// which exists for the outer program's own result but does not apply
	// across a call boundary in real ECMAScript.
	if completion.IsReturn {
		return completion.Value, nil
	}
	return jsvalue.Undefined, nil
}
