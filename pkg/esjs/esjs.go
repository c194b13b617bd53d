// Package esjs is the public entry point: it decodes a serialized ESTree
// document, evaluates it, and marshals the result across the host boundary.
package esjs

import (
	"github.com/estreejs/esjs/internal/estree"
	"github.com/estreejs/esjs/internal/evalerr"
	"github.com/estreejs/esjs/internal/evaluator"
	"github.com/estreejs/esjs/internal/jsvalue"
)

// HostValue is the boundary-crossing result: either a primitive Go value
// (string, bool, nil, float64) or a pre-stringified form for the values
// that cross as a stringified representation (NaN, object).
type HostValue struct {
	// Kind mirrors the jsvalue.Kind the evaluator produced, so a caller that
	// wants more than the bare marshalled form (e.g. the CLI reporting a
	// diagnostic type name) doesn't have to re-derive it from Raw.
	Kind string
	// Raw is the marshalled value: string, bool, nil, or float64. NaN and
	// objects are marshalled as strings and a closure as nil (undefined), so
	// Raw is always one of those four Go types.
	Raw any
}

// Evaluate decodes astJSON (raw bytes of a serialized ESTree document,
// expected to be a top-level BlockStatement) and evaluates it to a single
// HostValue. Any failure — malformed JSON, an unsupported construct, a
// runtime type error — returns a non-nil error and a zero HostValue; the
// evaluator never partially completes.
func Evaluate(astJSON []byte) (HostValue, error) {
	node, err := estree.Decode(astJSON)
	if err != nil {
		return HostValue{}, err
	}
	block, err := topLevelBlock(node)
	if err != nil {
		return HostValue{}, err
	}
	result, err := evaluator.EvalProgram(block)
	if err != nil {
		return HostValue{}, err
	}
	return marshal(result), nil
}

// topLevelBlock enforces that the top level is a BlockStatement. A bare
// Program is a recognized node (so Decode succeeds on one) but is not
// executable as the entry point.
func topLevelBlock(node estree.Node) (*estree.BlockStatement, error) {
	if block, ok := node.(*estree.BlockStatement); ok {
		return block, nil
	}
	return nil, evalerr.New(evalerr.Unimplemented, "entry point must be a BlockStatement, got %s", node.Type())
}

// marshal maps a final evaluator value to its host-boundary representation.
// A closure that reaches the top-level result position is a special case:
// a bare closure never assigned, called, or stored crosses the boundary as
// undefined rather than its stringified form — the stringified "[Function]"
// form (Value.ToString, jsvalue/coerce.go) still applies to a closure held
// inside an object, reached through objectString's per-value ToString
// call, just not to one that is itself the whole program's result.
func marshal(v jsvalue.Value) HostValue {
	switch v.Kind {
	case jsvalue.KindString:
		return HostValue{Kind: "string", Raw: v.Str}
	case jsvalue.KindBoolean:
		return HostValue{Kind: "boolean", Raw: v.Bool}
	case jsvalue.KindNull:
		return HostValue{Kind: "null", Raw: nil}
	case jsvalue.KindUndefined, jsvalue.KindClosure:
		return HostValue{Kind: "undefined", Raw: nil}
	case jsvalue.KindNumber:
		if v.Num.NaN {
			return HostValue{Kind: "number", Raw: "NaN"}
		}
		return HostValue{Kind: "number", Raw: v.Num.Value}
	case jsvalue.KindObject:
		return HostValue{Kind: "object", Raw: v.ToString()}
	default:
		return HostValue{Kind: "undefined", Raw: nil}
	}
}
