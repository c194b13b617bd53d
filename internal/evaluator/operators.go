package evaluator

import (
	"github.com/estreejs/esjs/internal/environment"
	"github.com/estreejs/esjs/internal/estree"
	"github.com/estreejs/esjs/internal/evalerr"
	"github.com/estreejs/esjs/internal/jsvalue"
)

// evalUnary evaluates a unary operator against every value kind. Rather
// than hand-coding each operator×kind combination, every branch delegates
// to the general ToNumber/ToBoolean coercions (internal/jsvalue), which
// already reduce to the right per-kind result for every primitive kind and
// extend sensibly to objects and closures too.
func evalUnary(n *estree.UnaryExpression, frame *environment.Frame, depth int) (jsvalue.Value, error) {
	arg, err := evalExpr(n.Argument, frame, depth)
	if err != nil {
		return jsvalue.Value{}, err
	}
	switch n.Operator {
	// Unary +/- both go through ToNumber, so a numeric string coerces
	// (-"5" is -5) rather than producing NaN for every string operand; this
	// is the intended reading, matching ToNumber's own string-parsing rule.
	case "-":
		num := arg.ToNumber()
		if num.NaN {
			return jsvalue.NaN(), nil
		}
		return jsvalue.Num(-num.Value), nil

	case "+":
		num := arg.ToNumber()
		if num.NaN {
			return jsvalue.NaN(), nil
		}
		return jsvalue.Num(num.Value), nil

	case "!":
		return jsvalue.Bool(!arg.ToBoolean()), nil

	case "typeof":
		return jsvalue.Str(typeofKind(arg)), nil

	case "void":
		// void always discards its operand and yields undefined, for any
		// operand kind including strings.
		return jsvalue.Undefined, nil

	case "delete":
		if arg.Kind == jsvalue.KindUndefined {
			return jsvalue.Bool(false), nil
		}
		if arg.Kind == jsvalue.KindNumber && arg.Num.NaN {
			return jsvalue.Bool(false), nil
		}
		return jsvalue.Bool(true), nil

	default:
		return jsvalue.Value{}, evalerr.NewAtNode(evalerr.Unimplemented, n, "unary operator %q is not supported", n.Operator)
	}
}

// typeofKind implements `typeof` for every value kind: "object" for null
// (the classic ECMAScript quirk) and also for a genuine Object value, and
// "function" for a Closure.
func typeofKind(v jsvalue.Value) string {
	switch v.Kind {
	case jsvalue.KindString:
		return "string"
	case jsvalue.KindBoolean:
		return "boolean"
	case jsvalue.KindNull, jsvalue.KindObject:
		return "object"
	case jsvalue.KindNumber:
		return "number"
	case jsvalue.KindUndefined:
		return "undefined"
	case jsvalue.KindClosure:
		return "function"
	default:
		return "undefined"
	}
}

// evalBinary evaluates both operands of a binary expression and delegates
// to the jsvalue coercion algebra.
func evalBinary(n *estree.BinaryExpression, frame *environment.Frame, depth int) (jsvalue.Value, error) {
	left, err := evalExpr(n.Left, frame, depth)
	if err != nil {
		return jsvalue.Value{}, err
	}
	right, err := evalExpr(n.Right, frame, depth)
	if err != nil {
		return jsvalue.Value{}, err
	}
	switch n.Operator {
	case "+":
		return jsvalue.Add(left, right), nil
	case "-":
		return jsvalue.Sub(left, right), nil
	case "*":
		return jsvalue.Mul(left, right), nil
	case "/":
		return jsvalue.Div(left, right), nil
	case "%":
		return jsvalue.Mod(left, right), nil
	case "&":
		return jsvalue.BitwiseAnd(left, right), nil
	case "|":
		return jsvalue.BitwiseOr(left, right), nil
	case "^":
		return jsvalue.BitwiseXor(left, right), nil
	case "<<":
		return jsvalue.ShiftLeft(left, right), nil
	case ">>":
		return jsvalue.ShiftRightSigned(left, right), nil
	case ">>>":
		return jsvalue.ShiftRightUnsigned(left, right), nil
	case "<":
		return jsvalue.Bool(jsvalue.Less(left, right)), nil
	case "<=":
		return jsvalue.Bool(jsvalue.LessOrEqual(left, right)), nil
	case ">":
		return jsvalue.Bool(jsvalue.Greater(left, right)), nil
	case ">=":
		return jsvalue.Bool(jsvalue.GreaterOrEqual(left, right)), nil
	case "===":
		return jsvalue.Bool(jsvalue.StrictEquals(left, right)), nil
	case "!==":
		return jsvalue.Bool(!jsvalue.StrictEquals(left, right)), nil
	case "==":
		return jsvalue.Bool(jsvalue.AbstractEquals(left, right)), nil
	case "!=":
		return jsvalue.Bool(!jsvalue.AbstractEquals(left, right)), nil
	default:
		return jsvalue.Value{}, evalerr.NewAtNode(evalerr.Unimplemented, n, "binary operator %q is not supported", n.Operator)
	}
}
