package interpreter

import (
	"fmt"

	"github.com/shubham1882003/plipy/pkg/ast"
	"github.com/shubham1882003/plipy/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.NewIntegerValue(n.Value), nil
	case *ast.Identifier:
		return i.evaluateIdentifier(n)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n)
	case *ast.CallExpression:
		return i.evaluateCallExpression(n)
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateIdentifier(id *ast.Identifier) (runtime.Value, error) {
	val, err := i.env.Lookup(id.Name)
	if err != nil {
		return nil, err
	}
	if val.Kind() != runtime.KindInteger {
		return nil, runtime.NewNotAScalarError(id.Name)
	}
	return val, nil
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand)
	if err != nil {
		return nil, err
	}
	val, err := requireInteger(operand)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.UnaryOperatorNegate:
		return runtime.NewIntegerValue(-val.Val), nil
	case ast.UnaryOperatorNot:
		if val.Val != 0 {
			return runtime.NewIntegerValue(0), nil
		}
		return runtime.NewIntegerValue(1), nil
	default:
		return nil, fmt.Errorf("unsupported unary operator: %s", expr.Operator)
	}
}

func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	lv, err := requireInteger(left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right)
	if err != nil {
		return nil, err
	}
	rv, err := requireInteger(right)
	if err != nil {
		return nil, err
	}
	return evaluateArithmetic(expr.Operator, lv, rv)
}

// evaluateArithmetic applies a binary operator to two integers. Comparisons
// produce 1 or 0; division truncates toward zero.
func evaluateArithmetic(op ast.BinaryOperator, left, right runtime.IntegerValue) (runtime.Value, error) {
	switch op {
	case ast.BinaryOperatorAdd:
		return runtime.NewIntegerValue(left.Val + right.Val), nil
	case ast.BinaryOperatorSubtract:
		return runtime.NewIntegerValue(left.Val - right.Val), nil
	case ast.BinaryOperatorMultiply:
		return runtime.NewIntegerValue(left.Val * right.Val), nil
	case ast.BinaryOperatorDivide:
		if right.Val == 0 {
			return nil, runtime.NewDivisionByZeroError()
		}
		return runtime.NewIntegerValue(left.Val / right.Val), nil
	case ast.BinaryOperatorEqual:
		return runtime.NewIntegerValue(boolToInt(left.Val == right.Val)), nil
	case ast.BinaryOperatorLessEq:
		return runtime.NewIntegerValue(boolToInt(left.Val <= right.Val)), nil
	default:
		return nil, fmt.Errorf("unsupported binary operator: %s", op)
	}
}

func (i *Interpreter) evaluateCallExpression(call *ast.CallExpression) (runtime.Value, error) {
	result, err := i.callFunction(call.Callee, call.Arguments)
	if err != nil {
		return nil, err
	}
	// Expression position requires a value; a callee that fell off the end
	// of its body produced none.
	if result == nil {
		return nil, runtime.NewVoidValueInExpressionError(call.Callee)
	}
	return result, nil
}

func requireInteger(v runtime.Value) (runtime.IntegerValue, error) {
	iv, ok := v.(runtime.IntegerValue)
	if !ok {
		return runtime.IntegerValue{}, fmt.Errorf("expected an integer value, got %s", v.Kind())
	}
	return iv, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
