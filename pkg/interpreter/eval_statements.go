package interpreter

import (
	"fmt"

	"github.com/shubham1882003/plipy/pkg/ast"
	"github.com/shubham1882003/plipy/pkg/runtime"
)

func (i *Interpreter) executeStatement(node ast.Statement) (completion, error) {
	switch n := node.(type) {
	case *ast.DeclareScalar:
		return i.executeDeclareScalar(n)
	case *ast.DeclareFunction:
		return i.executeDeclareFunction(n)
	case *ast.AssignStatement:
		return i.executeAssign(n)
	case *ast.GetStatement:
		return i.executeGet(n)
	case *ast.PutStatement:
		return i.executePut(n)
	case *ast.CallStatement:
		return i.executeCallStatement(n)
	case *ast.ReturnStatement:
		return i.executeReturn(n)
	case *ast.WhileStatement:
		return i.executeWhile(n)
	case *ast.IfStatement:
		return i.executeIf(n)
	case *ast.BlockStatement:
		return i.executeBlock(n)
	default:
		return normalCompletion, fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

func (i *Interpreter) executeDeclareScalar(decl *ast.DeclareScalar) (completion, error) {
	// The declared default is 0 when no initializer is present.
	value := runtime.NewIntegerValue(0)
	if decl.Initializer != nil {
		evaluated, err := i.evaluateExpression(decl.Initializer)
		if err != nil {
			return normalCompletion, err
		}
		value, err = requireInteger(evaluated)
		if err != nil {
			return normalCompletion, err
		}
	}
	if err := i.env.DeclareScalar(decl.Name, value); err != nil {
		return normalCompletion, err
	}
	return normalCompletion, nil
}

func (i *Interpreter) executeDeclareFunction(decl *ast.DeclareFunction) (completion, error) {
	// The snapshot taken here is the whole point: the function resolves
	// non-locals against the chain in effect at this exact moment, wherever
	// it is later called from.
	captured := i.env.Snapshot()
	fn := runtime.NewFunctionValue(decl.Name, decl.Formals, decl.Body, captured)
	if err := i.env.DeclareFunction(decl.Name, fn); err != nil {
		return normalCompletion, err
	}
	tracef("declared %s/%d capturing %d frames", decl.Name, len(decl.Formals), captured.Depth())
	return normalCompletion, nil
}

func (i *Interpreter) executeAssign(assign *ast.AssignStatement) (completion, error) {
	value, err := i.evaluateExpression(assign.Value)
	if err != nil {
		return normalCompletion, err
	}
	if err := i.env.Update(assign.Name, value); err != nil {
		return normalCompletion, err
	}
	return normalCompletion, nil
}

func (i *Interpreter) executeGet(get *ast.GetStatement) (completion, error) {
	val, err := i.io.Get(get.Name)
	if err != nil {
		return normalCompletion, err
	}
	if err := i.env.Update(get.Name, runtime.NewIntegerValue(val)); err != nil {
		return normalCompletion, err
	}
	return normalCompletion, nil
}

func (i *Interpreter) executePut(put *ast.PutStatement) (completion, error) {
	value, err := i.evaluateExpression(put.Value)
	if err != nil {
		return normalCompletion, err
	}
	intVal, err := requireInteger(value)
	if err != nil {
		return normalCompletion, err
	}
	if err := i.io.Put(intVal.Val); err != nil {
		return normalCompletion, err
	}
	return normalCompletion, nil
}

func (i *Interpreter) executeCallStatement(call *ast.CallStatement) (completion, error) {
	// Statement position: a value-less call is fine, any result is dropped.
	if _, err := i.callFunction(call.Callee, call.Arguments); err != nil {
		return normalCompletion, err
	}
	return normalCompletion, nil
}

func (i *Interpreter) executeReturn(ret *ast.ReturnStatement) (completion, error) {
	if ret.Value == nil {
		return completion{kind: completionReturn}, nil
	}
	value, err := i.evaluateExpression(ret.Value)
	if err != nil {
		return normalCompletion, err
	}
	return completion{kind: completionReturn, value: value}, nil
}

func (i *Interpreter) executeWhile(loop *ast.WhileStatement) (completion, error) {
	for {
		cond, err := i.evaluateExpression(loop.Condition)
		if err != nil {
			return normalCompletion, err
		}
		if !truthy(cond) {
			return normalCompletion, nil
		}
		comp, err := i.executeStatement(loop.Body)
		if err != nil {
			return normalCompletion, err
		}
		if comp.kind == completionReturn {
			return comp, nil
		}
	}
}

func (i *Interpreter) executeIf(stmt *ast.IfStatement) (completion, error) {
	cond, err := i.evaluateExpression(stmt.Condition)
	if err != nil {
		return normalCompletion, err
	}
	if truthy(cond) {
		return i.executeStatement(stmt.Then)
	}
	if stmt.Else != nil {
		return i.executeStatement(stmt.Else)
	}
	return normalCompletion, nil
}

func (i *Interpreter) executeBlock(block *ast.BlockStatement) (completion, error) {
	i.env.PushScope()
	tracef("block scope open, depth=%d", i.env.Depth())
	defer i.env.PopScope()
	for _, stmt := range block.Statements {
		comp, err := i.executeStatement(stmt)
		if err != nil {
			return normalCompletion, err
		}
		if comp.kind == completionReturn {
			// Early return skips the remaining statements; the deferred pop
			// still closes this block's frame on the way out.
			return comp, nil
		}
	}
	return normalCompletion, nil
}

// truthy follows the language rule: any non-zero integer is true.
func truthy(v runtime.Value) bool {
	iv, ok := v.(runtime.IntegerValue)
	return ok && iv.Val != 0
}
