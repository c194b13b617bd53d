package evaluator

import (
	"testing"

	"github.com/estreejs/esjs/internal/jsvalue"
)

func evalExprProgram(t *testing.T, exprJSON string) jsvalue.Value {
	t.Helper()
	v, err := EvalProgram(mustProgram(t, `{
		"type":"BlockStatement",
		"body":[{"type":"ExpressionStatement","expression":`+exprJSON+`}]
	}`))
	if err != nil {
		t.Fatalf("EvalProgram: %v", err)
	}
	return v
}

// TestTypeofTypeofIsAlwaysString checks the quantified property that
// typeof (typeof x) is "string" for any x.
func TestTypeofTypeofIsAlwaysString(t *testing.T) {
	operands := []string{
		`{"type":"Literal","value":1}`,
		`{"type":"Literal","value":"s"}`,
		`{"type":"Literal","value":true}`,
		`{"type":"Literal","value":null}`,
		`{"type":"Identifier","name":"undeclared"}`,
	}
	for _, operand := range operands {
		v := evalExprProgram(t, `{"type":"UnaryExpression","operator":"typeof","argument":{"type":"UnaryExpression","operator":"typeof","argument":`+operand+`}}`)
		if v.Kind != jsvalue.KindString || v.Str != "string" {
			t.Fatalf("typeof typeof %s = %+v, want string \"string\"", operand, v)
		}
	}
}

func TestTypeofNullIsObject(t *testing.T) {
	v := evalExprProgram(t, `{"type":"UnaryExpression","operator":"typeof","argument":{"type":"Literal","value":null}}`)
	if v.Str != "object" {
		t.Fatalf("typeof null = %q, want object", v.Str)
	}
}

// TestVoidIsAlwaysUndefined checks the quantified property that for any
// expression e, void e is undefined — including the string-operand case.
func TestVoidIsAlwaysUndefined(t *testing.T) {
	operands := []string{
		`{"type":"Literal","value":1}`,
		`{"type":"Literal","value":"s"}`,
		`{"type":"Literal","value":true}`,
		`{"type":"Literal","value":null}`,
	}
	for _, operand := range operands {
		v := evalExprProgram(t, `{"type":"UnaryExpression","operator":"void","argument":`+operand+`}`)
		if v.Kind != jsvalue.KindUndefined {
			t.Fatalf("void %s = %+v, want undefined", operand, v)
		}
	}
}

func TestUnaryNegationAndPlus(t *testing.T) {
	v := evalExprProgram(t, `{"type":"UnaryExpression","operator":"-","argument":{"type":"Literal","value":5}}`)
	if v.Num.Value != -5 {
		t.Fatalf("-5 = %v, want -5", v.Num.Value)
	}
	v = evalExprProgram(t, `{"type":"UnaryExpression","operator":"+","argument":{"type":"Literal","value":"3"}}`)
	if v.Num.Value != 3 {
		t.Fatalf("+\"3\" = %v, want 3", v.Num.Value)
	}
}

func TestUnaryNotCoercesToBoolean(t *testing.T) {
	v := evalExprProgram(t, `{"type":"UnaryExpression","operator":"!","argument":{"type":"Literal","value":0}}`)
	if v.Kind != jsvalue.KindBoolean || !v.Bool {
		t.Fatalf("!0 = %+v, want true", v)
	}
}

func TestBinaryStrictVsAbstractEquality(t *testing.T) {
	v := evalExprProgram(t, `{"type":"BinaryExpression","operator":"===","left":{"type":"Literal","value":1},"right":{"type":"Literal","value":"1"}}`)
	if v.Bool {
		t.Fatal(`1 === "1" should be false`)
	}
	v = evalExprProgram(t, `{"type":"BinaryExpression","operator":"==","left":{"type":"Literal","value":1},"right":{"type":"Literal","value":"1"}}`)
	if !v.Bool {
		t.Fatal(`1 == "1" should be true`)
	}
}

func TestBinaryUnimplementedOperatorFails(t *testing.T) {
	_, err := EvalProgram(mustProgram(t, `{
		"type":"BlockStatement",
		"body":[{"type":"ExpressionStatement","expression":{"type":"BinaryExpression","operator":"instanceof","left":{"type":"Literal","value":1},"right":{"type":"Literal","value":1}}}]
	}`))
	if err == nil {
		t.Fatal("expected an Unimplemented error for instanceof")
	}
}
