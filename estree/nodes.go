package estree

// Field tags name the ESTree property each struct field is decoded from and
// matched against. Fields whose type implements Node (or is a slice of such)
// are children; everything else is a scalar attribute.

// Program is the root of every tree.
type Program struct {
	base
	Body       []Node `estree:"body"`
	SourceType string `estree:"sourceType"`
}

// Statements

type ExpressionStatement struct {
	base
	Expression Node   `estree:"expression"`
	Directive  string `estree:"directive"`
}

type BlockStatement struct {
	base
	Body []Node `estree:"body"`
}

type ReturnStatement struct {
	base
	Argument Node `estree:"argument"`
}

type IfStatement struct {
	base
	Test       Node `estree:"test"`
	Consequent Node `estree:"consequent"`
	Alternate  Node `estree:"alternate"`
}

type SwitchStatement struct {
	base
	Discriminant Node          `estree:"discriminant"`
	Cases        []*SwitchCase `estree:"cases"`
}

type SwitchCase struct {
	base
	Test       Node   `estree:"test"`
	Consequent []Node `estree:"consequent"`
}

type TryStatement struct {
	base
	Block     *BlockStatement `estree:"block"`
	Handler   *CatchClause    `estree:"handler"`
	Finalizer *BlockStatement `estree:"finalizer"`
}

type CatchClause struct {
	base
	Param Node            `estree:"param"`
	Body  *BlockStatement `estree:"body"`
}

// Declarations

type VariableDeclaration struct {
	base
	Declarations []*VariableDeclarator `estree:"declarations"`
	Kind         string                `estree:"kind"`
}

type VariableDeclarator struct {
	base
	ID   Node `estree:"id"`
	Init Node `estree:"init"`
}

type FunctionDeclaration struct {
	base
	ID        *Identifier `estree:"id"`
	Params    []Node      `estree:"params"`
	Body      Node        `estree:"body"`
	Async     bool        `estree:"async"`
	Generator bool        `estree:"generator"`
}

type FunctionExpression struct {
	base
	ID        *Identifier `estree:"id"`
	Params    []Node      `estree:"params"`
	Body      Node        `estree:"body"`
	Async     bool        `estree:"async"`
	Generator bool        `estree:"generator"`
}

// ArrowFunctionExpression has an expression Body when Expression is true and a
// *BlockStatement otherwise.
type ArrowFunctionExpression struct {
	base
	Params     []Node `estree:"params"`
	Body       Node   `estree:"body"`
	Async      bool   `estree:"async"`
	Expression bool   `estree:"expression"`
}

type ClassDeclaration struct {
	base
	ID         *Identifier `estree:"id"`
	SuperClass Node        `estree:"superClass"`
	Body       *ClassBody  `estree:"body"`
}

type ClassExpression struct {
	base
	ID         *Identifier `estree:"id"`
	SuperClass Node        `estree:"superClass"`
	Body       *ClassBody  `estree:"body"`
}

type ClassBody struct {
	base
	Body []Node `estree:"body"`
}

type MethodDefinition struct {
	base
	Key      Node                `estree:"key"`
	Value    *FunctionExpression `estree:"value"`
	Kind     string              `estree:"kind"`
	Computed bool                `estree:"computed"`
	Static   bool                `estree:"static"`
}

type PropertyDefinition struct {
	base
	Key      Node `estree:"key"`
	Value    Node `estree:"value"`
	Computed bool `estree:"computed"`
	Static   bool `estree:"static"`
}

type ExportNamedDeclaration struct {
	base
	Declaration Node `estree:"declaration"`
}

type ExportDefaultDeclaration struct {
	base
	Declaration Node `estree:"declaration"`
}

// Expressions

type Identifier struct {
	base
	Name string `estree:"name"`
}

type ThisExpression struct {
	base
}

// Literal holds a string, float64, bool or nil Value. Raw is the literal's
// source spelling, which tells a null literal apart from an unrepresentable one.
type Literal struct {
	base
	Value interface{} `estree:"value"`
	Raw   string      `estree:"raw"`
}

type TemplateLiteral struct {
	base
	Quasis      []*TemplateElement `estree:"quasis"`
	Expressions []Node             `estree:"expressions"`
}

// TemplateValue is the text of a template chunk.
type TemplateValue struct {
	Raw    string `json:"raw"`
	Cooked string `json:"cooked"`
}

type TemplateElement struct {
	base
	Value TemplateValue `estree:"value"`
	Tail  bool          `estree:"tail"`
}

// ArrayExpression elements may contain nil entries for holes.
type ArrayExpression struct {
	base
	Elements []Node `estree:"elements"`
}

type ObjectExpression struct {
	base
	Properties []Node `estree:"properties"`
}

type Property struct {
	base
	Key       Node   `estree:"key"`
	Value     Node   `estree:"value"`
	Kind      string `estree:"kind"`
	Computed  bool   `estree:"computed"`
	Method    bool   `estree:"method"`
	Shorthand bool   `estree:"shorthand"`
}

type SpreadElement struct {
	base
	Argument Node `estree:"argument"`
}

type MemberExpression struct {
	base
	Object   Node `estree:"object"`
	Property Node `estree:"property"`
	Computed bool `estree:"computed"`
	Optional bool `estree:"optional"`
}

type CallExpression struct {
	base
	Callee    Node   `estree:"callee"`
	Arguments []Node `estree:"arguments"`
	Optional  bool   `estree:"optional"`
}

type NewExpression struct {
	base
	Callee    Node   `estree:"callee"`
	Arguments []Node `estree:"arguments"`
}

type UnaryExpression struct {
	base
	Operator string `estree:"operator"`
	Prefix   bool   `estree:"prefix"`
	Argument Node   `estree:"argument"`
}

type UpdateExpression struct {
	base
	Operator string `estree:"operator"`
	Prefix   bool   `estree:"prefix"`
	Argument Node   `estree:"argument"`
}

type BinaryExpression struct {
	base
	Left     Node   `estree:"left"`
	Operator string `estree:"operator"`
	Right    Node   `estree:"right"`
}

type LogicalExpression struct {
	base
	Left     Node   `estree:"left"`
	Operator string `estree:"operator"`
	Right    Node   `estree:"right"`
}

type AssignmentExpression struct {
	base
	Left     Node   `estree:"left"`
	Operator string `estree:"operator"`
	Right    Node   `estree:"right"`
}

type ConditionalExpression struct {
	base
	Test       Node `estree:"test"`
	Consequent Node `estree:"consequent"`
	Alternate  Node `estree:"alternate"`
}

type SequenceExpression struct {
	base
	Expressions []Node `estree:"expressions"`
}

type AwaitExpression struct {
	base
	Argument Node `estree:"argument"`
}

type ChainExpression struct {
	base
	Expression Node `estree:"expression"`
}

type TSNonNullExpression struct {
	base
	Expression Node `estree:"expression"`
}

// TSAsExpression keeps the expression operand only; type annotations are not
// modelled.
type TSAsExpression struct {
	base
	Expression Node `estree:"expression"`
}

// Patterns

type ArrayPattern struct {
	base
	Elements []Node `estree:"elements"`
}

type ObjectPattern struct {
	base
	Properties []Node `estree:"properties"`
}

type RestElement struct {
	base
	Argument Node `estree:"argument"`
}

type AssignmentPattern struct {
	base
	Left  Node `estree:"left"`
	Right Node `estree:"right"`
}

// JSX

type JSXElement struct {
	base
	OpeningElement *JSXOpeningElement `estree:"openingElement"`
	Children       []Node             `estree:"children"`
	ClosingElement *JSXClosingElement `estree:"closingElement"`
}

type JSXFragment struct {
	base
	OpeningFragment *JSXOpeningFragment `estree:"openingFragment"`
	Children        []Node              `estree:"children"`
	ClosingFragment *JSXClosingFragment `estree:"closingFragment"`
}

// JSXOpeningElement's Name is a *JSXIdentifier, *JSXMemberExpression or
// *JSXNamespacedName.
type JSXOpeningElement struct {
	base
	Name        Node   `estree:"name"`
	Attributes  []Node `estree:"attributes"`
	SelfClosing bool   `estree:"selfClosing"`
}

type JSXClosingElement struct {
	base
	Name Node `estree:"name"`
}

type JSXOpeningFragment struct {
	base
}

type JSXClosingFragment struct {
	base
}

type JSXAttribute struct {
	base
	Name  Node `estree:"name"`
	Value Node `estree:"value"`
}

type JSXSpreadAttribute struct {
	base
	Argument Node `estree:"argument"`
}

type JSXIdentifier struct {
	base
	Name string `estree:"name"`
}

type JSXMemberExpression struct {
	base
	Object   Node           `estree:"object"`
	Property *JSXIdentifier `estree:"property"`
}

type JSXNamespacedName struct {
	base
	Namespace *JSXIdentifier `estree:"namespace"`
	Name      *JSXIdentifier `estree:"name"`
}

type JSXExpressionContainer struct {
	base
	Expression Node `estree:"expression"`
}

type JSXEmptyExpression struct {
	base
}

type JSXText struct {
	base
	Value string `estree:"value"`
	Raw   string `estree:"raw"`
}

type JSXSpreadChild struct {
	base
	Expression Node `estree:"expression"`
}

// Unknown stands in for node kinds the decoder does not model, such as
// TypeScript type annotations. Its subtree is not retained.
type Unknown struct {
	base
	Kind string
}

func (*Program) Type() Type                  { return TypeProgram }
func (*ExpressionStatement) Type() Type      { return TypeExpressionStatement }
func (*BlockStatement) Type() Type           { return TypeBlockStatement }
func (*ReturnStatement) Type() Type          { return TypeReturnStatement }
func (*IfStatement) Type() Type              { return TypeIfStatement }
func (*SwitchStatement) Type() Type          { return TypeSwitchStatement }
func (*SwitchCase) Type() Type               { return TypeSwitchCase }
func (*TryStatement) Type() Type             { return TypeTryStatement }
func (*CatchClause) Type() Type              { return TypeCatchClause }
func (*VariableDeclaration) Type() Type      { return TypeVariableDeclaration }
func (*VariableDeclarator) Type() Type       { return TypeVariableDeclarator }
func (*FunctionDeclaration) Type() Type      { return TypeFunctionDeclaration }
func (*FunctionExpression) Type() Type       { return TypeFunctionExpression }
func (*ArrowFunctionExpression) Type() Type  { return TypeArrowFunctionExpression }
func (*ClassDeclaration) Type() Type         { return TypeClassDeclaration }
func (*ClassExpression) Type() Type          { return TypeClassExpression }
func (*ClassBody) Type() Type                { return TypeClassBody }
func (*MethodDefinition) Type() Type         { return TypeMethodDefinition }
func (*PropertyDefinition) Type() Type       { return TypePropertyDefinition }
func (*ExportNamedDeclaration) Type() Type   { return TypeExportNamedDeclaration }
func (*ExportDefaultDeclaration) Type() Type { return TypeExportDefaultDeclaration }
func (*Identifier) Type() Type               { return TypeIdentifier }
func (*ThisExpression) Type() Type           { return TypeThisExpression }
func (*Literal) Type() Type                  { return TypeLiteral }
func (*TemplateLiteral) Type() Type          { return TypeTemplateLiteral }
func (*TemplateElement) Type() Type          { return TypeTemplateElement }
func (*ArrayExpression) Type() Type          { return TypeArrayExpression }
func (*ObjectExpression) Type() Type         { return TypeObjectExpression }
func (*Property) Type() Type                 { return TypeProperty }
func (*SpreadElement) Type() Type            { return TypeSpreadElement }
func (*MemberExpression) Type() Type         { return TypeMemberExpression }
func (*CallExpression) Type() Type           { return TypeCallExpression }
func (*NewExpression) Type() Type            { return TypeNewExpression }
func (*UnaryExpression) Type() Type          { return TypeUnaryExpression }
func (*UpdateExpression) Type() Type         { return TypeUpdateExpression }
func (*BinaryExpression) Type() Type         { return TypeBinaryExpression }
func (*LogicalExpression) Type() Type        { return TypeLogicalExpression }
func (*AssignmentExpression) Type() Type     { return TypeAssignmentExpression }
func (*ConditionalExpression) Type() Type    { return TypeConditionalExpression }
func (*SequenceExpression) Type() Type       { return TypeSequenceExpression }
func (*AwaitExpression) Type() Type          { return TypeAwaitExpression }
func (*ChainExpression) Type() Type          { return TypeChainExpression }
func (*TSNonNullExpression) Type() Type      { return TypeTSNonNullExpression }
func (*TSAsExpression) Type() Type           { return TypeTSAsExpression }
func (*ArrayPattern) Type() Type             { return TypeArrayPattern }
func (*ObjectPattern) Type() Type            { return TypeObjectPattern }
func (*RestElement) Type() Type              { return TypeRestElement }
func (*AssignmentPattern) Type() Type        { return TypeAssignmentPattern }
func (*JSXElement) Type() Type               { return TypeJSXElement }
func (*JSXFragment) Type() Type              { return TypeJSXFragment }
func (*JSXOpeningElement) Type() Type        { return TypeJSXOpeningElement }
func (*JSXClosingElement) Type() Type        { return TypeJSXClosingElement }
func (*JSXOpeningFragment) Type() Type       { return TypeJSXOpeningFragment }
func (*JSXClosingFragment) Type() Type       { return TypeJSXClosingFragment }
func (*JSXAttribute) Type() Type             { return TypeJSXAttribute }
func (*JSXSpreadAttribute) Type() Type       { return TypeJSXSpreadAttribute }
func (*JSXIdentifier) Type() Type            { return TypeJSXIdentifier }
func (*JSXMemberExpression) Type() Type      { return TypeJSXMemberExpression }
func (*JSXNamespacedName) Type() Type        { return TypeJSXNamespacedName }
func (*JSXExpressionContainer) Type() Type   { return TypeJSXExpressionContainer }
func (*JSXEmptyExpression) Type() Type       { return TypeJSXEmptyExpression }
func (*JSXText) Type() Type                  { return TypeJSXText }
func (*JSXSpreadChild) Type() Type           { return TypeJSXSpreadChild }
func (*Unknown) Type() Type                  { return TypeUnknown }

// constructors allocates an empty node per type for the decoder.
var constructors = map[Type]func() Node{
	TypeProgram:                  func() Node { return new(Program) },
	TypeExpressionStatement:      func() Node { return new(ExpressionStatement) },
	TypeBlockStatement:           func() Node { return new(BlockStatement) },
	TypeReturnStatement:          func() Node { return new(ReturnStatement) },
	TypeIfStatement:              func() Node { return new(IfStatement) },
	TypeSwitchStatement:          func() Node { return new(SwitchStatement) },
	TypeSwitchCase:               func() Node { return new(SwitchCase) },
	TypeTryStatement:             func() Node { return new(TryStatement) },
	TypeCatchClause:              func() Node { return new(CatchClause) },
	TypeVariableDeclaration:      func() Node { return new(VariableDeclaration) },
	TypeVariableDeclarator:       func() Node { return new(VariableDeclarator) },
	TypeFunctionDeclaration:      func() Node { return new(FunctionDeclaration) },
	TypeFunctionExpression:       func() Node { return new(FunctionExpression) },
	TypeArrowFunctionExpression:  func() Node { return new(ArrowFunctionExpression) },
	TypeClassDeclaration:         func() Node { return new(ClassDeclaration) },
	TypeClassExpression:          func() Node { return new(ClassExpression) },
	TypeClassBody:                func() Node { return new(ClassBody) },
	TypeMethodDefinition:         func() Node { return new(MethodDefinition) },
	TypePropertyDefinition:       func() Node { return new(PropertyDefinition) },
	TypeExportNamedDeclaration:   func() Node { return new(ExportNamedDeclaration) },
	TypeExportDefaultDeclaration: func() Node { return new(ExportDefaultDeclaration) },
	TypeIdentifier:               func() Node { return new(Identifier) },
	TypeThisExpression:           func() Node { return new(ThisExpression) },
	TypeLiteral:                  func() Node { return new(Literal) },
	TypeTemplateLiteral:          func() Node { return new(TemplateLiteral) },
	TypeTemplateElement:          func() Node { return new(TemplateElement) },
	TypeArrayExpression:          func() Node { return new(ArrayExpression) },
	TypeObjectExpression:         func() Node { return new(ObjectExpression) },
	TypeProperty:                 func() Node { return new(Property) },
	TypeSpreadElement:            func() Node { return new(SpreadElement) },
	TypeMemberExpression:         func() Node { return new(MemberExpression) },
	TypeCallExpression:           func() Node { return new(CallExpression) },
	TypeNewExpression:            func() Node { return new(NewExpression) },
	TypeUnaryExpression:          func() Node { return new(UnaryExpression) },
	TypeUpdateExpression:         func() Node { return new(UpdateExpression) },
	TypeBinaryExpression:         func() Node { return new(BinaryExpression) },
	TypeLogicalExpression:        func() Node { return new(LogicalExpression) },
	TypeAssignmentExpression:     func() Node { return new(AssignmentExpression) },
	TypeConditionalExpression:    func() Node { return new(ConditionalExpression) },
	TypeSequenceExpression:       func() Node { return new(SequenceExpression) },
	TypeAwaitExpression:          func() Node { return new(AwaitExpression) },
	TypeChainExpression:          func() Node { return new(ChainExpression) },
	TypeTSNonNullExpression:      func() Node { return new(TSNonNullExpression) },
	TypeTSAsExpression:           func() Node { return new(TSAsExpression) },
	TypeArrayPattern:             func() Node { return new(ArrayPattern) },
	TypeObjectPattern:            func() Node { return new(ObjectPattern) },
	TypeRestElement:              func() Node { return new(RestElement) },
	TypeAssignmentPattern:        func() Node { return new(AssignmentPattern) },
	TypeJSXElement:               func() Node { return new(JSXElement) },
	TypeJSXFragment:              func() Node { return new(JSXFragment) },
	TypeJSXOpeningElement:        func() Node { return new(JSXOpeningElement) },
	TypeJSXClosingElement:        func() Node { return new(JSXClosingElement) },
	TypeJSXOpeningFragment:       func() Node { return new(JSXOpeningFragment) },
	TypeJSXClosingFragment:       func() Node { return new(JSXClosingFragment) },
	TypeJSXAttribute:             func() Node { return new(JSXAttribute) },
	TypeJSXSpreadAttribute:       func() Node { return new(JSXSpreadAttribute) },
	TypeJSXIdentifier:            func() Node { return new(JSXIdentifier) },
	TypeJSXMemberExpression:      func() Node { return new(JSXMemberExpression) },
	TypeJSXNamespacedName:        func() Node { return new(JSXNamespacedName) },
	TypeJSXExpressionContainer:   func() Node { return new(JSXExpressionContainer) },
	TypeJSXEmptyExpression:       func() Node { return new(JSXEmptyExpression) },
	TypeJSXText:                  func() Node { return new(JSXText) },
	TypeJSXSpreadChild:           func() Node { return new(JSXSpreadChild) },
}

// New allocates an empty node of type t, or an *Unknown for TypeUnknown.
func New(t Type) Node {
	if ctor, ok := constructors[t]; ok {
		return ctor()
	}
	return new(Unknown)
}
