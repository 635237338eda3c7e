package ast

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildersSetNodeTypes(t *testing.T) {
	cases := []struct {
		node Node
		want NodeType
	}{
		{ID("x"), NodeIdentifier},
		{Int(7), NodeIntegerLiteral},
		{Neg(Int(1)), NodeUnaryExpression},
		{Bin(BinaryOperatorAdd, Int(1), Int(2)), NodeBinaryExpression},
		{CallE("f", Int(1)), NodeCallExpression},
		{Decl("x", nil), NodeDeclareScalar},
		{Fn("f", []string{"a"}, Ret(ID("a"))), NodeDeclareFunction},
		{Assign("x", Int(1)), NodeAssignStatement},
		{Get("x"), NodeGetStatement},
		{Put(Int(1)), NodePutStatement},
		{CallS("f"), NodeCallStatement},
		{Ret(nil), NodeReturnStatement},
		{While(Int(0)), NodeWhileStatement},
		{If(Int(1), Block(), nil), NodeIfStatement},
		{Block(), NodeBlockStatement},
		{Prog(), NodeProgram},
	}
	for _, c := range cases {
		if got := c.node.NodeType(); got != c.want {
			t.Errorf("NodeType() = %q, want %q", got, c.want)
		}
	}
}

func TestFnWrapsBodyInBlock(t *testing.T) {
	fn := Fn("f", []string{"a", "b"}, Ret(ID("a")))
	block, ok := fn.Body.(*BlockStatement)
	if !ok {
		t.Fatalf("body is %T, want *BlockStatement", fn.Body)
	}
	if len(block.Statements) != 1 {
		t.Fatalf("body has %d statements, want 1", len(block.Statements))
	}
	if len(fn.Formals) != 2 || fn.Formals[0] != "a" || fn.Formals[1] != "b" {
		t.Fatalf("formals = %v", fn.Formals)
	}
}

func TestOptionalFieldsStayOmitted(t *testing.T) {
	data, err := json.Marshal(Decl("x", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "initializer") {
		t.Fatalf("nil initializer should be omitted, got %s", data)
	}

	data, err = json.Marshal(Ret(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "value") {
		t.Fatalf("nil return value should be omitted, got %s", data)
	}
}
