package ast

// Declarations

// DeclareScalar introduces a scalar variable in the current scope frame.
// When Initializer is nil the variable starts at the documented default 0.
type DeclareScalar struct {
	nodeImpl
	statementMarker

	Name        string     `json:"name"`
	Initializer Expression `json:"initializer,omitempty"`
}

func NewDeclareScalar(name string, initializer Expression) *DeclareScalar {
	return &DeclareScalar{nodeImpl: newNodeImpl(NodeDeclareScalar), Name: name, Initializer: initializer}
}

// DeclareFunction introduces a function in the current scope frame. The
// formal parameter list is positional; the body is usually a BlockStatement
// but any statement is legal.
type DeclareFunction struct {
	nodeImpl
	statementMarker

	Name    string    `json:"name"`
	Formals []string  `json:"formals"`
	Body    Statement `json:"body"`
}

func NewDeclareFunction(name string, formals []string, body Statement) *DeclareFunction {
	return &DeclareFunction{nodeImpl: newNodeImpl(NodeDeclareFunction), Name: name, Formals: formals, Body: body}
}

// Statements

type AssignStatement struct {
	nodeImpl
	statementMarker

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func NewAssignStatement(name string, value Expression) *AssignStatement {
	return &AssignStatement{nodeImpl: newNodeImpl(NodeAssignStatement), Name: name, Value: value}
}

// GetStatement reads one integer from the input collaborator into an
// already-declared variable.
type GetStatement struct {
	nodeImpl
	statementMarker

	Name string `json:"name"`
}

func NewGetStatement(name string) *GetStatement {
	return &GetStatement{nodeImpl: newNodeImpl(NodeGetStatement), Name: name}
}

// PutStatement writes one evaluated integer to the output collaborator.
type PutStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value"`
}

func NewPutStatement(value Expression) *PutStatement {
	return &PutStatement{nodeImpl: newNodeImpl(NodePutStatement), Value: value}
}

// CallStatement is a call in statement position; any produced value is
// discarded.
type CallStatement struct {
	nodeImpl
	statementMarker

	Callee    string       `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewCallStatement(callee string, args []Expression) *CallStatement {
	return &CallStatement{nodeImpl: newNodeImpl(NodeCallStatement), Callee: callee, Arguments: args}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value,omitempty"`
}

func NewReturnStatement(value Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Value: value}
}

// Control flow

type WhileStatement struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Body      Statement  `json:"body"`
}

func NewWhileStatement(condition Expression, body Statement) *WhileStatement {
	return &WhileStatement{nodeImpl: newNodeImpl(NodeWhileStatement), Condition: condition, Body: body}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Then      Statement  `json:"then"`
	Else      Statement  `json:"else,omitempty"`
}

func NewIfStatement(condition Expression, then, els Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Then: then, Else: els}
}

// BlockStatement opens a fresh scope frame around its statements.
type BlockStatement struct {
	nodeImpl
	statementMarker

	Statements []Statement `json:"statements"`
}

func NewBlockStatement(statements []Statement) *BlockStatement {
	return &BlockStatement{nodeImpl: newNodeImpl(NodeBlockStatement), Statements: statements}
}

// Program root

type Program struct {
	nodeImpl

	Statements []Statement `json:"statements"`
}

func NewProgram(statements []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Statements: statements}
}
