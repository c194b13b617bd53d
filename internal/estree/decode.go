package estree

import (
	"encoding/json"

	"github.com/estreejs/esjs/internal/evalerr"
	"github.com/tidwall/gjson"
)

// Decode parses a serialized ESTree JSON document into a typed AST. It
// accepts the raw bytes as received across the host boundary: BOM-sniffed
// and transcoded from UTF-16 if necessary (decodeBoundaryBytes), since a
// browser host may deliver the document in its native UTF-16 form rather
// than UTF-8.
//
// Decode is a pure function: it carries no context and has no side effects
// beyond allocating the returned tree.
func Decode(raw []byte) (Node, error) {
	data, err := decodeBoundaryBytes(raw)
	if err != nil {
		return nil, evalerr.New(evalerr.Deserialization, "%s", err)
	}
	return decodeNode(data)
}

// decodeNode dispatches on the `type` discriminant. gjson.GetBytes peeks
// that single field without unmarshalling the whole (possibly large,
// possibly deeply nested) payload — the right tool for a tagged union that
// encoding/json cannot express natively via struct tags.
func decodeNode(data []byte) (Node, error) {
	typeField := gjson.GetBytes(data, "type")
	if !typeField.Exists() || typeField.Type != gjson.String {
		return nil, evalerr.New(evalerr.Deserialization, "node missing string \"type\" field")
	}
	typ := typeField.String()

	loc, err := decodeLoc(data)
	if err != nil {
		return nil, err
	}

	switch typ {
	case "Program":
		var raw struct {
			Body []json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		body, err := decodeNodeList(raw.Body)
		if err != nil {
			return nil, err
		}
		return &Program{base: base{typ, loc}, Body: body}, nil

	case "BlockStatement":
		var raw struct {
			Body []json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		body, err := decodeNodeList(raw.Body)
		if err != nil {
			return nil, err
		}
		return &BlockStatement{base: base{typ, loc}, Body: body}, nil

	case "ExpressionStatement":
		var raw struct {
			Expression json.RawMessage `json:"expression"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		expr, err := decodeNode(raw.Expression)
		if err != nil {
			return nil, err
		}
		return &ExpressionStatement{base: base{typ, loc}, Expression: expr}, nil

	case "Literal":
		scalar, err := decodeScalar(data)
		if err != nil {
			return nil, err
		}
		return &Literal{base: base{typ, loc}, Value: scalar}, nil

	case "Identifier":
		var raw struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		return &Identifier{base: base{typ, loc}, Name: raw.Name}, nil

	case "VariableDeclaration":
		var raw struct {
			Declarations []json.RawMessage `json:"declarations"`
			Kind         string            `json:"kind"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		decls := make([]*VariableDeclarator, 0, len(raw.Declarations))
		for _, d := range raw.Declarations {
			decl, err := decodeNode(d)
			if err != nil {
				return nil, err
			}
			vd, ok := decl.(*VariableDeclarator)
			if !ok {
				return nil, evalerr.New(evalerr.Deserialization, "VariableDeclaration.declarations contains a %s, not a VariableDeclarator", decl.Type())
			}
			decls = append(decls, vd)
		}
		return &VariableDeclaration{base: base{typ, loc}, Declarations: decls, Kind: raw.Kind}, nil

	case "VariableDeclarator":
		var raw struct {
			Id   json.RawMessage `json:"id"`
			Init json.RawMessage `json:"init"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		id, err := decodeIdentifier(raw.Id)
		if err != nil {
			return nil, err
		}
		var init Node
		if len(raw.Init) > 0 && string(raw.Init) != "null" {
			init, err = decodeNode(raw.Init)
			if err != nil {
				return nil, err
			}
		}
		return &VariableDeclarator{base: base{typ, loc}, Id: id, Init: init}, nil

	case "AssignmentExpression":
		left, right, op, err := decodeBinaryish(data)
		if err != nil {
			return nil, err
		}
		return &AssignmentExpression{base: base{typ, loc}, Operator: op, Left: left, Right: right}, nil

	case "UnaryExpression":
		var raw struct {
			Operator string          `json:"operator"`
			Argument json.RawMessage `json:"argument"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		arg, err := decodeNode(raw.Argument)
		if err != nil {
			return nil, err
		}
		return &UnaryExpression{base: base{typ, loc}, Operator: raw.Operator, Argument: arg}, nil

	case "BinaryExpression":
		left, right, op, err := decodeBinaryish(data)
		if err != nil {
			return nil, err
		}
		return &BinaryExpression{base: base{typ, loc}, Operator: op, Left: left, Right: right}, nil

	case "LogicalExpression":
		left, right, op, err := decodeBinaryish(data)
		if err != nil {
			return nil, err
		}
		return &LogicalExpression{base: base{typ, loc}, Operator: op, Left: left, Right: right}, nil

	case "ConditionalExpression":
		var raw struct {
			Test       json.RawMessage `json:"test"`
			Consequent json.RawMessage `json:"consequent"`
			Alternate  json.RawMessage `json:"alternate"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		test, err := decodeNode(raw.Test)
		if err != nil {
			return nil, err
		}
		cons, err := decodeNode(raw.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := decodeNode(raw.Alternate)
		if err != nil {
			return nil, err
		}
		return &ConditionalExpression{base: base{typ, loc}, Test: test, Consequent: cons, Alternate: alt}, nil

	case "IfStatement":
		var raw struct {
			Test       json.RawMessage `json:"test"`
			Consequent json.RawMessage `json:"consequent"`
			Alternate  json.RawMessage `json:"alternate"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		test, err := decodeNode(raw.Test)
		if err != nil {
			return nil, err
		}
		cons, err := decodeNode(raw.Consequent)
		if err != nil {
			return nil, err
		}
		var alt Node
		if len(raw.Alternate) > 0 && string(raw.Alternate) != "null" {
			alt, err = decodeNode(raw.Alternate)
			if err != nil {
				return nil, err
			}
		}
		return &IfStatement{base: base{typ, loc}, Test: test, Consequent: cons, Alternate: alt}, nil

	case "ReturnStatement":
		var raw struct {
			Argument json.RawMessage `json:"argument"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		var arg Node
		if len(raw.Argument) > 0 && string(raw.Argument) != "null" {
			arg, err := decodeNode(raw.Argument)
			if err != nil {
				return nil, err
			}
			return &ReturnStatement{base: base{typ, loc}, Argument: arg}, nil
		}
		return &ReturnStatement{base: base{typ, loc}, Argument: arg}, nil

	case "FunctionDeclaration", "FunctionExpression":
		var raw struct {
			Id     json.RawMessage   `json:"id"`
			Params []json.RawMessage `json:"params"`
			Body   json.RawMessage   `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		var id *Identifier
		if len(raw.Id) > 0 && string(raw.Id) != "null" {
			id, err = decodeIdentifier(raw.Id)
			if err != nil {
				return nil, err
			}
		}
		params, err := decodeIdentifierList(raw.Params)
		if err != nil {
			return nil, err
		}
		body, err := decodeBlock(raw.Body)
		if err != nil {
			return nil, err
		}
		if typ == "FunctionDeclaration" {
			return &FunctionDeclaration{base: base{typ, loc}, Id: id, Params: params, Body: body}, nil
		}
		return &FunctionExpression{base: base{typ, loc}, Id: id, Params: params, Body: body}, nil

	case "ArrowFunctionExpression":
		var raw struct {
			Params     []json.RawMessage `json:"params"`
			Body       json.RawMessage   `json:"body"`
			Expression bool              `json:"expression"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		params, err := decodeIdentifierList(raw.Params)
		if err != nil {
			return nil, err
		}
		// Normalize a bare-expression arrow body into a block with a single
		// return statement, unifying the call path with
		// FunctionDeclaration/FunctionExpression bodies.
		var body *BlockStatement
		if raw.Expression {
			exprNode, err := decodeNode(raw.Body)
			if err != nil {
				return nil, err
			}
			body = &BlockStatement{
				base: base{"BlockStatement", loc},
				Body: []Node{&ReturnStatement{base: base{"ReturnStatement", loc}, Argument: exprNode}},
			}
		} else {
			body, err = decodeBlock(raw.Body)
			if err != nil {
				return nil, err
			}
		}
		return &ArrowFunctionExpression{base: base{typ, loc}, Params: params, Body: body}, nil

	case "CallExpression":
		var raw struct {
			Callee    json.RawMessage   `json:"callee"`
			Arguments []json.RawMessage `json:"arguments"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		callee, err := decodeNode(raw.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeNodeList(raw.Arguments)
		if err != nil {
			return nil, err
		}
		return &CallExpression{base: base{typ, loc}, Callee: callee, Arguments: args}, nil

	case "MemberExpression":
		var raw struct {
			Object   json.RawMessage `json:"object"`
			Property json.RawMessage `json:"property"`
			Computed bool            `json:"computed"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		obj, err := decodeNode(raw.Object)
		if err != nil {
			return nil, err
		}
		var prop *Identifier
		if !raw.Computed {
			prop, err = decodeIdentifier(raw.Property)
			if err != nil {
				return nil, err
			}
		}
		return &MemberExpression{base: base{typ, loc}, Object: obj, Property: prop, Computed: raw.Computed}, nil

	case "ObjectExpression":
		var raw struct {
			Properties []json.RawMessage `json:"properties"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		props := make([]*Property, 0, len(raw.Properties))
		for _, p := range raw.Properties {
			pn, err := decodeNode(p)
			if err != nil {
				return nil, err
			}
			prop, ok := pn.(*Property)
			if !ok {
				return nil, evalerr.New(evalerr.Deserialization, "ObjectExpression.properties contains a %s, not a Property", pn.Type())
			}
			props = append(props, prop)
		}
		return &ObjectExpression{base: base{typ, loc}, Properties: props}, nil

	case "Property":
		var raw struct {
			Key      json.RawMessage `json:"key"`
			Value    json.RawMessage `json:"value"`
			Kind     string          `json:"kind"`
			Computed bool            `json:"computed"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, deserErr(typ, err)
		}
		key, err := decodeNode(raw.Key)
		if err != nil {
			return nil, err
		}
		val, err := decodeNode(raw.Value)
		if err != nil {
			return nil, err
		}
		return &Property{base: base{typ, loc}, Key: key, Value: val, Kind: raw.Kind, Computed: raw.Computed}, nil

	default:
		return nil, evalerr.New(evalerr.Deserialization, "unknown node type: %q", typ)
	}
}

// decodeBinaryish decodes the common {operator, left, right} shape shared by
// AssignmentExpression, BinaryExpression and LogicalExpression.
func decodeBinaryish(data []byte) (left, right Node, operator string, err error) {
	var raw struct {
		Operator string          `json:"operator"`
		Left     json.RawMessage `json:"left"`
		Right    json.RawMessage `json:"right"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, "", evalerr.New(evalerr.Deserialization, "%s", err)
	}
	left, err = decodeNode(raw.Left)
	if err != nil {
		return nil, nil, "", err
	}
	right, err = decodeNode(raw.Right)
	if err != nil {
		return nil, nil, "", err
	}
	return left, right, raw.Operator, nil
}

func decodeNodeList(raw []json.RawMessage) ([]Node, error) {
	nodes := make([]Node, 0, len(raw))
	for _, r := range raw {
		n, err := decodeNode(r)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeIdentifierList(raw []json.RawMessage) ([]*Identifier, error) {
	ids := make([]*Identifier, 0, len(raw))
	for _, r := range raw {
		id, err := decodeIdentifier(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func decodeIdentifier(raw json.RawMessage) (*Identifier, error) {
	n, err := decodeNode(raw)
	if err != nil {
		return nil, err
	}
	id, ok := n.(*Identifier)
	if !ok {
		return nil, evalerr.New(evalerr.Deserialization, "expected Identifier, got %s", n.Type())
	}
	return id, nil
}

func decodeBlock(raw json.RawMessage) (*BlockStatement, error) {
	n, err := decodeNode(raw)
	if err != nil {
		return nil, err
	}
	block, ok := n.(*BlockStatement)
	if !ok {
		return nil, evalerr.New(evalerr.Deserialization, "expected BlockStatement, got %s", n.Type())
	}
	return block, nil
}

func decodeLoc(data []byte) (*SourceLocation, error) {
	var raw struct {
		Loc *SourceLocation `json:"loc"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, evalerr.New(evalerr.Deserialization, "%s", err)
	}
	return raw.Loc, nil
}

// decodeScalar decodes Literal.value using gjson's own type tag rather than
// round-tripping through encoding/json's `any`, so JSON null maps to
// ScalarNull, never the zero-value empty string.
func decodeScalar(data []byte) (Scalar, error) {
	v := gjson.GetBytes(data, "value")
	switch v.Type {
	case gjson.Null:
		return Scalar{Kind: ScalarNull}, nil
	case gjson.Number:
		return Scalar{Kind: ScalarNumber, Num: v.Float()}, nil
	case gjson.True, gjson.False:
		return Scalar{Kind: ScalarBoolean, Bool: v.Bool()}, nil
	case gjson.String:
		return Scalar{Kind: ScalarString, Str: v.String()}, nil
	default:
		return Scalar{}, evalerr.New(evalerr.Deserialization, "unsupported literal value shape")
	}
}

func deserErr(nodeType string, err error) error {
	return evalerr.New(evalerr.Deserialization, "decoding %s: %s", nodeType, err)
}
