package ast

type NodeType string

const (
	NodeIdentifier       NodeType = "Identifier"
	NodeIntegerLiteral   NodeType = "IntegerLiteral"
	NodeUnaryExpression  NodeType = "UnaryExpression"
	NodeBinaryExpression NodeType = "BinaryExpression"
	NodeCallExpression   NodeType = "CallExpression"
	NodeDeclareScalar    NodeType = "DeclareScalar"
	NodeDeclareFunction  NodeType = "DeclareFunction"
	NodeAssignStatement  NodeType = "AssignStatement"
	NodeGetStatement     NodeType = "GetStatement"
	NodePutStatement     NodeType = "PutStatement"
	NodeCallStatement    NodeType = "CallStatement"
	NodeReturnStatement  NodeType = "ReturnStatement"
	NodeWhileStatement   NodeType = "WhileStatement"
	NodeIfStatement      NodeType = "IfStatement"
	NodeBlockStatement   NodeType = "BlockStatement"
	NodeProgram          NodeType = "Program"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type IntegerLiteral struct {
	nodeImpl
	expressionMarker

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

// Expressions

type UnaryOperator string

const (
	UnaryOperatorNegate UnaryOperator = "-"
	UnaryOperatorNot    UnaryOperator = "!"
)

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator UnaryOperator `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnaryExpression(operator UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

type BinaryOperator string

const (
	BinaryOperatorAdd      BinaryOperator = "+"
	BinaryOperatorSubtract BinaryOperator = "-"
	BinaryOperatorMultiply BinaryOperator = "*"
	BinaryOperatorDivide   BinaryOperator = "/"
	BinaryOperatorEqual    BinaryOperator = "=="
	BinaryOperatorLessEq   BinaryOperator = "<="
)

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator BinaryOperator `json:"operator"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

// CallExpression is a call in expression position. The callee must produce a
// value; a value-less callee is a runtime error at the call site.
type CallExpression struct {
	nodeImpl
	expressionMarker

	Callee    string       `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpression(callee string, args []Expression) *CallExpression {
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Callee: callee, Arguments: args}
}
