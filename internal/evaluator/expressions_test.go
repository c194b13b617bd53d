package evaluator

import (
	"testing"

	"github.com/estreejs/esjs/internal/jsvalue"
)

func TestUndeclaredIdentifierAsRvalueIsUndefined(t *testing.T) {
	v, err := EvalProgram(mustProgram(t, `{
		"type":"BlockStatement",
		"body":[{"type":"ExpressionStatement","expression":{"type":"Identifier","name":"undeclared"}}]
	}`))
	if err != nil {
		t.Fatalf("EvalProgram: %v", err)
	}
	if v.Kind != jsvalue.KindUndefined {
		t.Fatalf("got %+v, want undefined", v)
	}
}

func TestAssignToUndeclaredIdentifierFails(t *testing.T) {
	_, err := EvalProgram(mustProgram(t, `{
		"type":"BlockStatement",
		"body":[{
			"type":"ExpressionStatement",
			"expression":{"type":"AssignmentExpression","operator":"=","left":{"type":"Identifier","name":"undeclared"},"right":{"type":"Literal","value":1}}
		}]
	}`))
	if err == nil {
		t.Fatal("expected an UndefinedVariable error")
	}
}

// TestObjectAliasingObservesMutation checks the quantified property that
// for an object literal bound to two names, mutating through one is
// observable through the other.
func TestObjectAliasingObservesMutation(t *testing.T) {
	v, err := EvalProgram(mustProgram(t, `{
		"type":"BlockStatement",
		"body":[
			{"type":"VariableDeclaration","kind":"let","declarations":[
				{"type":"VariableDeclarator","id":{"type":"Identifier","name":"a"},"init":{
					"type":"ObjectExpression","properties":[
						{"type":"Property","kind":"init","computed":false,"key":{"type":"Identifier","name":"b"},"value":{"type":"Literal","value":1}}
					]
				}}
			]},
			{"type":"VariableDeclaration","kind":"let","declarations":[
				{"type":"VariableDeclarator","id":{"type":"Identifier","name":"c"},"init":{"type":"Identifier","name":"a"}}
			]},
			{"type":"ExpressionStatement","expression":{
				"type":"AssignmentExpression","operator":"=",
				"left":{"type":"MemberExpression","computed":false,"object":{"type":"Identifier","name":"c"},"property":{"type":"Identifier","name":"b"}},
				"right":{"type":"Literal","value":2}
			}},
			{"type":"ExpressionStatement","expression":{"type":"MemberExpression","computed":false,"object":{"type":"Identifier","name":"a"},"property":{"type":"Identifier","name":"b"}}}
		]
	}`))
	if err != nil {
		t.Fatalf("EvalProgram: %v", err)
	}
	if v.Kind != jsvalue.KindNumber || v.Num.Value != 2 {
		t.Fatalf("got %+v, want number 2 (mutation through alias c observed via a)", v)
	}
}

func TestMemberAccessOnNonObjectIsInvalidType(t *testing.T) {
	_, err := EvalProgram(mustProgram(t, `{
		"type":"BlockStatement",
		"body":[{"type":"ExpressionStatement","expression":{
			"type":"MemberExpression","computed":false,
			"object":{"type":"Literal","value":1},
			"property":{"type":"Identifier","name":"b"}
		}}]
	}`))
	if err == nil {
		t.Fatal("expected an InvalidType error for member access on a number")
	}
}

func TestMissingPropertyIsUndefined(t *testing.T) {
	v, err := EvalProgram(mustProgram(t, `{
		"type":"BlockStatement",
		"body":[
			{"type":"VariableDeclaration","kind":"let","declarations":[
				{"type":"VariableDeclarator","id":{"type":"Identifier","name":"a"},"init":{"type":"ObjectExpression","properties":[]}}
			]},
			{"type":"ExpressionStatement","expression":{"type":"MemberExpression","computed":false,"object":{"type":"Identifier","name":"a"},"property":{"type":"Identifier","name":"missing"}}}
		]
	}`))
	if err != nil {
		t.Fatalf("EvalProgram: %v", err)
	}
	if v.Kind != jsvalue.KindUndefined {
		t.Fatalf("got %+v, want undefined", v)
	}
}

func TestLogicalAndReturnsOperandNotCoercedBoolean(t *testing.T) {
	v, err := EvalProgram(mustProgram(t, `{
		"type":"BlockStatement",
		"body":[{"type":"ExpressionStatement","expression":{
			"type":"LogicalExpression","operator":"&&",
			"left":{"type":"Literal","value":1},
			"right":{"type":"Literal","value":"hit"}
		}}]
	}`))
	if err != nil {
		t.Fatalf("EvalProgram: %v", err)
	}
	if v.Kind != jsvalue.KindString || v.Str != "hit" {
		t.Fatalf("got %+v, want string hit", v)
	}
}

func TestLogicalAndShortCircuits(t *testing.T) {
	v, err := EvalProgram(mustProgram(t, `{
		"type":"BlockStatement",
		"body":[{"type":"ExpressionStatement","expression":{
			"type":"LogicalExpression","operator":"&&",
			"left":{"type":"Literal","value":0},
			"right":{"type":"Literal","value":"unreached"}
		}}]
	}`))
	if err != nil {
		t.Fatalf("EvalProgram: %v", err)
	}
	if v.Kind != jsvalue.KindNumber || v.Num.Value != 0 {
		t.Fatalf("got %+v, want number 0 (short-circuited left operand)", v)
	}
}
