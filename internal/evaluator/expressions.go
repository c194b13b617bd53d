package evaluator

import (
	"github.com/estreejs/esjs/internal/environment"
	"github.com/estreejs/esjs/internal/estree"
	"github.com/estreejs/esjs/internal/evalerr"
	"github.com/estreejs/esjs/internal/jsvalue"
)

// evalExpr dispatches the node kinds that produce a value directly. Nodes
// that can also appear in statement position (BlockStatement, IfStatement,
// ...) are intentionally absent here; they are never reached except
// through evalStatement.
func evalExpr(node estree.Node, frame *environment.Frame, depth int) (jsvalue.Value, error) {
	switch n := node.(type) {
	case *estree.Literal:
		return literalValue(n.Value), nil

	case *estree.Identifier:
		return lookupIdentifier(n, frame)

	case *estree.AssignmentExpression:
		return evalAssignment(n, frame, depth)

	case *estree.UnaryExpression:
		return evalUnary(n, frame, depth)

	case *estree.BinaryExpression:
		return evalBinary(n, frame, depth)

	case *estree.LogicalExpression:
		return evalLogical(n, frame, depth)

	case *estree.ConditionalExpression:
		test, err := evalExpr(n.Test, frame, depth)
		if err != nil {
			return jsvalue.Value{}, err
		}
		if test.ToBoolean() {
			return evalExpr(n.Consequent, frame, depth)
		}
		return evalExpr(n.Alternate, frame, depth)

	case *estree.FunctionExpression:
		name := ""
		if n.Id != nil {
			name = n.Id.Name
		}
		return buildClosure(name, n.Params, n.Body, frame), nil

	case *estree.ArrowFunctionExpression:
		return buildClosure("", n.Params, n.Body, frame), nil

	case *estree.CallExpression:
		return evalCall(n, frame, depth)

	case *estree.MemberExpression:
		return evalMember(n, frame, depth)

	case *estree.ObjectExpression:
		return evalObjectExpression(n, frame, depth)

	default:
		return jsvalue.Value{}, evalerr.NewAtNode(evalerr.Unimplemented, node, "%s cannot appear in expression position", node.Type())
	}
}

func literalValue(s estree.Scalar) jsvalue.Value {
	switch s.Kind {
	case estree.ScalarString:
		return jsvalue.Str(s.Str)
	case estree.ScalarNumber:
		return jsvalue.Num(s.Num)
	case estree.ScalarBoolean:
		return jsvalue.Bool(s.Bool)
	case estree.ScalarNull:
		return jsvalue.Null
	default:
		return jsvalue.Undefined
	}
}

// lookupIdentifier reads an identifier's value: a missing name yields
// undefined, not an error — distinct from AssignmentExpression's target
// resolution, which does fail with UndefinedVariable.
func lookupIdentifier(n *estree.Identifier, frame *environment.Frame) (jsvalue.Value, error) {
	v, err := frame.Lookup(normalizeName(n.Name))
	if err != nil {
		return jsvalue.Undefined, nil
	}
	return v.(jsvalue.Value), nil
}

// evalAssignment evaluates an assignment expression: only `=` is
// supported; the left-hand side is an Identifier or a non-computed
// MemberExpression. The right-hand side is evaluated first.
func evalAssignment(n *estree.AssignmentExpression, frame *environment.Frame, depth int) (jsvalue.Value, error) {
	if n.Operator != "=" {
		return jsvalue.Value{}, evalerr.NewAtNode(evalerr.Unimplemented, n, "assignment operator %q is not supported", n.Operator)
	}
	value, err := evalExpr(n.Right, frame, depth)
	if err != nil {
		return jsvalue.Value{}, err
	}
	switch left := n.Left.(type) {
	case *estree.Identifier:
		if err := frame.Update(normalizeName(left.Name), value); err != nil {
			return jsvalue.Value{}, err
		}
		return value, nil

	case *estree.MemberExpression:
		if left.Computed {
			return jsvalue.Value{}, evalerr.NewAtNode(evalerr.Unimplemented, left, "computed member assignment is not supported")
		}
		target, err := evalExpr(left.Object, frame, depth)
		if err != nil {
			return jsvalue.Value{}, err
		}
		if target.Kind != jsvalue.KindObject {
			return jsvalue.Value{}, evalerr.NewAtNode(evalerr.InvalidType, left, "cannot assign property %q of a %s", left.Property.Name, target.TypeName())
		}
		target.Object.Set(normalizeName(left.Property.Name), value)
		return value, nil

	default:
		return jsvalue.Value{}, evalerr.NewAtNode(evalerr.Unimplemented, n.Left, "assignment target %s is not supported", n.Left.Type())
	}
}

// evalLogical evaluates `&&`/`||`: each returns the original left or right
// operand value, short-circuiting on the coerced truthiness of the left
// operand (canonical ECMAScript, not a coerced boolean result).
func evalLogical(n *estree.LogicalExpression, frame *environment.Frame, depth int) (jsvalue.Value, error) {
	left, err := evalExpr(n.Left, frame, depth)
	if err != nil {
		return jsvalue.Value{}, err
	}
	switch n.Operator {
	case "&&":
		if !left.ToBoolean() {
			return left, nil
		}
		return evalExpr(n.Right, frame, depth)
	case "||":
		if left.ToBoolean() {
			return left, nil
		}
		return evalExpr(n.Right, frame, depth)
	default:
		return jsvalue.Value{}, evalerr.NewAtNode(evalerr.Unimplemented, n, "logical operator %q is not supported", n.Operator)
	}
}

// evalObjectExpression evaluates each property's value before computing its
// key, so a computed key with a side effect (`{[f()]: g()}`) observes `g()`
// running before `f()`.
func evalObjectExpression(n *estree.ObjectExpression, frame *environment.Frame, depth int) (jsvalue.Value, error) {
	obj := jsvalue.NewObject()
	for _, prop := range n.Properties {
		value, err := evalExpr(prop.Value, frame, depth)
		if err != nil {
			return jsvalue.Value{}, err
		}
		key, err := propertyKey(prop.Key, frame, depth)
		if err != nil {
			return jsvalue.Value{}, err
		}
		obj.Set(key, value)
	}
	return jsvalue.Obj(obj), nil
}

// propertyKey computes an object property's key: an Identifier contributes
// its own name, a Literal contributes the ToString of its value, and
// anything else is evaluated then stringified.
func propertyKey(key estree.Node, frame *environment.Frame, depth int) (string, error) {
	switch k := key.(type) {
	case *estree.Identifier:
		return normalizeName(k.Name), nil
	case *estree.Literal:
		return literalValue(k.Value).ToString(), nil
	default:
		v, err := evalExpr(key, frame, depth)
		if err != nil {
			return "", err
		}
		return v.ToString(), nil
	}
}

// evalMember evaluates non-computed property access on an object; a
// missing key yields undefined, and the returned value preserves
// object-reference identity for aliasing.
func evalMember(n *estree.MemberExpression, frame *environment.Frame, depth int) (jsvalue.Value, error) {
	if n.Computed {
		return jsvalue.Value{}, evalerr.NewAtNode(evalerr.Unimplemented, n, "computed member access is not supported")
	}
	obj, err := evalExpr(n.Object, frame, depth)
	if err != nil {
		return jsvalue.Value{}, err
	}
	if obj.Kind != jsvalue.KindObject {
		return jsvalue.Value{}, evalerr.NewAtNode(evalerr.InvalidType, n, "cannot read property %q of a %s", n.Property.Name, obj.TypeName())
	}
	v, ok := obj.Object.Get(normalizeName(n.Property.Name))
	if !ok {
		return jsvalue.Undefined, nil
	}
	return v, nil
}
