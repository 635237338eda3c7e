package astio

import (
	"fmt"

	"github.com/ugorji/go/codec"

	"github.com/shubham1882003/plipy/pkg/ast"
)

// DecodeJSON reads a JSON-serialized tagged-map program back into AST
// values.
func DecodeJSON(data []byte) (*ast.Program, error) {
	return decodeWith(&handles.jh, data)
}

// DecodeMsgpack reads a msgpack-serialized tagged-map program back into
// AST values.
func DecodeMsgpack(data []byte) (*ast.Program, error) {
	return decodeWith(&handles.mh, data)
}

func decodeWith(h codec.Handle, data []byte) (*ast.Program, error) {
	var iface interface{}
	dec := codec.NewDecoderBytes(data, h)
	if err := dec.Decode(&iface); err != nil {
		return nil, fmt.Errorf("astio: decode: %w", err)
	}
	root, ok := iface.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("astio: root is %T, want a tagged map", iface)
	}
	node, err := DecodeNode(root)
	if err != nil {
		return nil, err
	}
	program, ok := node.(*ast.Program)
	if !ok {
		return nil, fmt.Errorf("astio: decoded %s, want Program", node.NodeType())
	}
	return program, nil
}

// DecodeNode rebuilds one node (and its children) from the tagged-map
// interchange form.
func DecodeNode(node map[string]interface{}) (ast.Node, error) {
	typ, _ := node["type"].(string)
	switch ast.NodeType(typ) {
	case ast.NodeIdentifier:
		name, err := fieldString(node, typ, "name")
		if err != nil {
			return nil, err
		}
		return ast.NewIdentifier(name), nil
	case ast.NodeIntegerLiteral:
		value, err := fieldInt64(node, typ, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewIntegerLiteral(value), nil
	case ast.NodeUnaryExpression:
		opStr, err := fieldString(node, typ, "operator")
		if err != nil {
			return nil, err
		}
		op := ast.UnaryOperator(opStr)
		if op != ast.UnaryOperatorNegate && op != ast.UnaryOperatorNot {
			return nil, fmt.Errorf("astio: unknown unary operator %q", opStr)
		}
		operand, err := fieldExpression(node, typ, "operand")
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(op, operand), nil
	case ast.NodeBinaryExpression:
		opStr, err := fieldString(node, typ, "operator")
		if err != nil {
			return nil, err
		}
		op := ast.BinaryOperator(opStr)
		switch op {
		case ast.BinaryOperatorAdd, ast.BinaryOperatorSubtract, ast.BinaryOperatorMultiply,
			ast.BinaryOperatorDivide, ast.BinaryOperatorEqual, ast.BinaryOperatorLessEq:
		default:
			return nil, fmt.Errorf("astio: unknown binary operator %q", opStr)
		}
		left, err := fieldExpression(node, typ, "left")
		if err != nil {
			return nil, err
		}
		right, err := fieldExpression(node, typ, "right")
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryExpression(op, left, right), nil
	case ast.NodeCallExpression:
		callee, err := fieldString(node, typ, "callee")
		if err != nil {
			return nil, err
		}
		args, err := fieldExpressionList(node, typ, "arguments")
		if err != nil {
			return nil, err
		}
		return ast.NewCallExpression(callee, args), nil
	case ast.NodeDeclareScalar:
		name, err := fieldString(node, typ, "name")
		if err != nil {
			return nil, err
		}
		initializer, err := optionalExpression(node, typ, "initializer")
		if err != nil {
			return nil, err
		}
		return ast.NewDeclareScalar(name, initializer), nil
	case ast.NodeDeclareFunction:
		name, err := fieldString(node, typ, "name")
		if err != nil {
			return nil, err
		}
		formals, err := fieldStringList(node, typ, "formals")
		if err != nil {
			return nil, err
		}
		body, err := fieldStatement(node, typ, "body")
		if err != nil {
			return nil, err
		}
		return ast.NewDeclareFunction(name, formals, body), nil
	case ast.NodeAssignStatement:
		name, err := fieldString(node, typ, "name")
		if err != nil {
			return nil, err
		}
		value, err := fieldExpression(node, typ, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewAssignStatement(name, value), nil
	case ast.NodeGetStatement:
		name, err := fieldString(node, typ, "name")
		if err != nil {
			return nil, err
		}
		return ast.NewGetStatement(name), nil
	case ast.NodePutStatement:
		value, err := fieldExpression(node, typ, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewPutStatement(value), nil
	case ast.NodeCallStatement:
		callee, err := fieldString(node, typ, "callee")
		if err != nil {
			return nil, err
		}
		args, err := fieldExpressionList(node, typ, "arguments")
		if err != nil {
			return nil, err
		}
		return ast.NewCallStatement(callee, args), nil
	case ast.NodeReturnStatement:
		value, err := optionalExpression(node, typ, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewReturnStatement(value), nil
	case ast.NodeWhileStatement:
		condition, err := fieldExpression(node, typ, "condition")
		if err != nil {
			return nil, err
		}
		body, err := fieldStatement(node, typ, "body")
		if err != nil {
			return nil, err
		}
		return ast.NewWhileStatement(condition, body), nil
	case ast.NodeIfStatement:
		condition, err := fieldExpression(node, typ, "condition")
		if err != nil {
			return nil, err
		}
		then, err := fieldStatement(node, typ, "then")
		if err != nil {
			return nil, err
		}
		var els ast.Statement
		if _, present := node["else"]; present {
			els, err = fieldStatement(node, typ, "else")
			if err != nil {
				return nil, err
			}
		}
		return ast.NewIfStatement(condition, then, els), nil
	case ast.NodeBlockStatement:
		stmts, err := fieldStatementList(node, typ, "statements")
		if err != nil {
			return nil, err
		}
		return ast.NewBlockStatement(stmts), nil
	case ast.NodeProgram:
		stmts, err := fieldStatementList(node, typ, "statements")
		if err != nil {
			return nil, err
		}
		return ast.NewProgram(stmts), nil
	default:
		return nil, fmt.Errorf("astio: unknown node type %q", typ)
	}
}

func fieldString(node map[string]interface{}, typ, key string) (string, error) {
	value, ok := node[key].(string)
	if !ok {
		return "", fmt.Errorf("astio: %s: %q must be a string, got %T", typ, key, node[key])
	}
	return value, nil
}

// fieldInt64 accepts the integer representations the two handles and
// third-party producers emit.
func fieldInt64(node map[string]interface{}, typ, key string) (int64, error) {
	switch v := node[key].(type) {
	case int64:
		return v, nil
	case uint64:
		return int64(v), nil
	case float64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("astio: %s: %q must be an integer, got %T", typ, key, node[key])
	}
}

func fieldChild(node map[string]interface{}, typ, key string) (ast.Node, error) {
	raw, ok := node[key].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("astio: %s: %q must be a tagged map, got %T", typ, key, node[key])
	}
	return DecodeNode(raw)
}

func fieldExpression(node map[string]interface{}, typ, key string) (ast.Expression, error) {
	child, err := fieldChild(node, typ, key)
	if err != nil {
		return nil, err
	}
	expr, ok := child.(ast.Expression)
	if !ok {
		return nil, fmt.Errorf("astio: %s: %q holds %s, want an expression", typ, key, child.NodeType())
	}
	return expr, nil
}

func optionalExpression(node map[string]interface{}, typ, key string) (ast.Expression, error) {
	if raw, present := node[key]; !present || raw == nil {
		return nil, nil
	}
	return fieldExpression(node, typ, key)
}

func fieldStatement(node map[string]interface{}, typ, key string) (ast.Statement, error) {
	child, err := fieldChild(node, typ, key)
	if err != nil {
		return nil, err
	}
	stmt, ok := child.(ast.Statement)
	if !ok {
		return nil, fmt.Errorf("astio: %s: %q holds %s, want a statement", typ, key, child.NodeType())
	}
	return stmt, nil
}

func fieldExpressionList(node map[string]interface{}, typ, key string) ([]ast.Expression, error) {
	raw, _ := node[key].([]interface{})
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]ast.Expression, 0, len(raw))
	for i, item := range raw {
		childMap, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("astio: %s: %q[%d] must be a tagged map, got %T", typ, key, i, item)
		}
		child, err := DecodeNode(childMap)
		if err != nil {
			return nil, err
		}
		expr, ok := child.(ast.Expression)
		if !ok {
			return nil, fmt.Errorf("astio: %s: %q[%d] holds %s, want an expression", typ, key, i, child.NodeType())
		}
		out = append(out, expr)
	}
	return out, nil
}

func fieldStatementList(node map[string]interface{}, typ, key string) ([]ast.Statement, error) {
	raw, _ := node[key].([]interface{})
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]ast.Statement, 0, len(raw))
	for i, item := range raw {
		childMap, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("astio: %s: %q[%d] must be a tagged map, got %T", typ, key, i, item)
		}
		child, err := DecodeNode(childMap)
		if err != nil {
			return nil, err
		}
		stmt, ok := child.(ast.Statement)
		if !ok {
			return nil, fmt.Errorf("astio: %s: %q[%d] holds %s, want a statement", typ, key, i, child.NodeType())
		}
		out = append(out, stmt)
	}
	return out, nil
}

func fieldStringList(node map[string]interface{}, typ, key string) ([]string, error) {
	raw, _ := node[key].([]interface{})
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(raw))
	for i, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("astio: %s: %q[%d] must be a string, got %T", typ, key, i, item)
		}
		out = append(out, s)
	}
	return out, nil
}
