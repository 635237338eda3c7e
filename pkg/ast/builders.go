package ast

// Compact constructors used by tests and tooling to assemble trees without
// the ceremony of the New* constructors.

func Prog(stmts ...Statement) *Program { return NewProgram(stmts) }

func Block(stmts ...Statement) *BlockStatement { return NewBlockStatement(stmts) }

func ID(name string) *Identifier { return NewIdentifier(name) }

func Int(value int64) *IntegerLiteral { return NewIntegerLiteral(value) }

func Bin(op BinaryOperator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(op, left, right)
}

func Neg(operand Expression) *UnaryExpression {
	return NewUnaryExpression(UnaryOperatorNegate, operand)
}

func Not(operand Expression) *UnaryExpression {
	return NewUnaryExpression(UnaryOperatorNot, operand)
}

func CallE(callee string, args ...Expression) *CallExpression {
	return NewCallExpression(callee, args)
}

func CallS(callee string, args ...Expression) *CallStatement {
	return NewCallStatement(callee, args)
}

// Decl declares a scalar; pass nil for a declaration without initializer.
func Decl(name string, init Expression) *DeclareScalar { return NewDeclareScalar(name, init) }

// Fn declares a function whose body is the given statements in a block.
func Fn(name string, formals []string, body ...Statement) *DeclareFunction {
	return NewDeclareFunction(name, formals, NewBlockStatement(body))
}

func Assign(name string, value Expression) *AssignStatement { return NewAssignStatement(name, value) }

func Get(name string) *GetStatement { return NewGetStatement(name) }

func Put(value Expression) *PutStatement { return NewPutStatement(value) }

// Ret returns from the enclosing call; pass nil for a value-less return.
func Ret(value Expression) *ReturnStatement { return NewReturnStatement(value) }

func While(cond Expression, body ...Statement) *WhileStatement {
	return NewWhileStatement(cond, NewBlockStatement(body))
}

// If builds a two-armed conditional; pass nil for a missing else arm.
func If(cond Expression, then, els Statement) *IfStatement {
	return NewIfStatement(cond, then, els)
}
