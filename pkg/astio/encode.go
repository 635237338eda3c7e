// Package astio serializes Cuppa3 syntax trees for backend handoff.
//
// The interchange form is a self-describing tagged map per node: the
// "type" key names the node type and the remaining keys mirror the AST
// field names. The maps travel as JSON or msgpack through identically
// configured ugorji codec handles, so a consumer can pick either
// serialization and see the same shape.
package astio

import (
	"bytes"
	"reflect"

	"github.com/ugorji/go/codec"

	"github.com/shubham1882003/plipy/pkg/ast"
)

type handleHelper struct {
	initialized bool
	mh          codec.MsgpackHandle
	jh          codec.JsonHandle
}

func (m *handleHelper) init() {
	if m.initialized {
		return
	}

	m.mh.MapType = reflect.TypeOf(map[string]interface{}(nil))
	m.mh.RawToString = true
	m.mh.WriteExt = true
	m.mh.SignedInteger = true
	m.mh.Canonical = true // sort maps before writing them

	m.jh.MapType = reflect.TypeOf(map[string]interface{}(nil))
	m.jh.SignedInteger = true
	m.jh.Canonical = true

	m.initialized = true
}

var handles handleHelper

func init() {
	handles.init()
}

// EncodeJSON renders a program in the tagged-map form as JSON.
func EncodeJSON(program *ast.Program) ([]byte, error) {
	return encodeWith(&handles.jh, program)
}

// EncodeMsgpack renders a program in the tagged-map form as msgpack.
func EncodeMsgpack(program *ast.Program) ([]byte, error) {
	return encodeWith(&handles.mh, program)
}

func encodeWith(h codec.Handle, program *ast.Program) ([]byte, error) {
	iface := EncodeNode(program)
	var w bytes.Buffer
	enc := codec.NewEncoder(&w, h)
	if err := enc.Encode(&iface); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// EncodeNode converts one node (and its children) to the tagged-map
// interchange form.
func EncodeNode(node ast.Node) map[string]interface{} {
	switch n := node.(type) {
	case *ast.Identifier:
		return tagged(n, "name", n.Name)
	case *ast.IntegerLiteral:
		return tagged(n, "value", n.Value)
	case *ast.UnaryExpression:
		return tagged(n,
			"operator", string(n.Operator),
			"operand", EncodeNode(n.Operand))
	case *ast.BinaryExpression:
		return tagged(n,
			"operator", string(n.Operator),
			"left", EncodeNode(n.Left),
			"right", EncodeNode(n.Right))
	case *ast.CallExpression:
		return tagged(n,
			"callee", n.Callee,
			"arguments", encodeExpressions(n.Arguments))
	case *ast.DeclareScalar:
		m := tagged(n, "name", n.Name)
		if n.Initializer != nil {
			m["initializer"] = EncodeNode(n.Initializer)
		}
		return m
	case *ast.DeclareFunction:
		return tagged(n,
			"name", n.Name,
			"formals", encodeStrings(n.Formals),
			"body", EncodeNode(n.Body))
	case *ast.AssignStatement:
		return tagged(n,
			"name", n.Name,
			"value", EncodeNode(n.Value))
	case *ast.GetStatement:
		return tagged(n, "name", n.Name)
	case *ast.PutStatement:
		return tagged(n, "value", EncodeNode(n.Value))
	case *ast.CallStatement:
		return tagged(n,
			"callee", n.Callee,
			"arguments", encodeExpressions(n.Arguments))
	case *ast.ReturnStatement:
		m := tagged(n)
		if n.Value != nil {
			m["value"] = EncodeNode(n.Value)
		}
		return m
	case *ast.WhileStatement:
		return tagged(n,
			"condition", EncodeNode(n.Condition),
			"body", EncodeNode(n.Body))
	case *ast.IfStatement:
		m := tagged(n,
			"condition", EncodeNode(n.Condition),
			"then", EncodeNode(n.Then))
		if n.Else != nil {
			m["else"] = EncodeNode(n.Else)
		}
		return m
	case *ast.BlockStatement:
		return tagged(n, "statements", encodeStatements(n.Statements))
	case *ast.Program:
		return tagged(n, "statements", encodeStatements(n.Statements))
	default:
		// Every node type is enumerated above; a miss is a programming
		// error in this package.
		panic("astio: unhandled node type " + string(node.NodeType()))
	}
}

func tagged(node ast.Node, pairs ...interface{}) map[string]interface{} {
	m := map[string]interface{}{"type": string(node.NodeType())}
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i].(string)] = pairs[i+1]
	}
	return m
}

func encodeExpressions(exprs []ast.Expression) []interface{} {
	out := make([]interface{}, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, EncodeNode(expr))
	}
	return out
}

func encodeStatements(stmts []ast.Statement) []interface{} {
	out := make([]interface{}, 0, len(stmts))
	for _, stmt := range stmts {
		out = append(out, EncodeNode(stmt))
	}
	return out
}

func encodeStrings(values []string) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
