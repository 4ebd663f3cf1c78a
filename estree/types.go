// Package estree models the ESTree syntax tree (with the JSX extension) that an
// external parser produces for UI-component source code. The set of node types
// is closed: every node is one of the structs declared in this package.
package estree

// Type identifies the kind of a syntax-tree node.
type Type uint8

// Node types enumeration
const (
	TypeUnknown Type = iota
	TypeProgram
	TypeExpressionStatement
	TypeBlockStatement
	TypeReturnStatement
	TypeIfStatement
	TypeSwitchStatement
	TypeSwitchCase
	TypeTryStatement
	TypeCatchClause
	TypeVariableDeclaration
	TypeVariableDeclarator
	TypeFunctionDeclaration
	TypeFunctionExpression
	TypeArrowFunctionExpression
	TypeClassDeclaration
	TypeClassExpression
	TypeClassBody
	TypeMethodDefinition
	TypePropertyDefinition
	TypeExportNamedDeclaration
	TypeExportDefaultDeclaration
	TypeIdentifier
	TypeThisExpression
	TypeLiteral
	TypeTemplateLiteral
	TypeTemplateElement
	TypeArrayExpression
	TypeObjectExpression
	TypeProperty
	TypeSpreadElement
	TypeMemberExpression
	TypeCallExpression
	TypeNewExpression
	TypeUnaryExpression
	TypeUpdateExpression
	TypeBinaryExpression
	TypeLogicalExpression
	TypeAssignmentExpression
	TypeConditionalExpression
	TypeSequenceExpression
	TypeAwaitExpression
	TypeChainExpression
	TypeTSNonNullExpression
	TypeTSAsExpression
	TypeArrayPattern
	TypeObjectPattern
	TypeRestElement
	TypeAssignmentPattern
	TypeJSXElement
	TypeJSXFragment
	TypeJSXOpeningElement
	TypeJSXClosingElement
	TypeJSXOpeningFragment
	TypeJSXClosingFragment
	TypeJSXAttribute
	TypeJSXSpreadAttribute
	TypeJSXIdentifier
	TypeJSXMemberExpression
	TypeJSXNamespacedName
	TypeJSXExpressionContainer
	TypeJSXEmptyExpression
	TypeJSXText
	TypeJSXSpreadChild

	typeCount
)

// typeNames maps Type to its ESTree name
var typeNames = [typeCount]string{
	TypeUnknown:                  "Unknown",
	TypeProgram:                  "Program",
	TypeExpressionStatement:      "ExpressionStatement",
	TypeBlockStatement:           "BlockStatement",
	TypeReturnStatement:          "ReturnStatement",
	TypeIfStatement:              "IfStatement",
	TypeSwitchStatement:          "SwitchStatement",
	TypeSwitchCase:               "SwitchCase",
	TypeTryStatement:             "TryStatement",
	TypeCatchClause:              "CatchClause",
	TypeVariableDeclaration:      "VariableDeclaration",
	TypeVariableDeclarator:       "VariableDeclarator",
	TypeFunctionDeclaration:      "FunctionDeclaration",
	TypeFunctionExpression:       "FunctionExpression",
	TypeArrowFunctionExpression:  "ArrowFunctionExpression",
	TypeClassDeclaration:         "ClassDeclaration",
	TypeClassExpression:          "ClassExpression",
	TypeClassBody:                "ClassBody",
	TypeMethodDefinition:         "MethodDefinition",
	TypePropertyDefinition:       "PropertyDefinition",
	TypeExportNamedDeclaration:   "ExportNamedDeclaration",
	TypeExportDefaultDeclaration: "ExportDefaultDeclaration",
	TypeIdentifier:               "Identifier",
	TypeThisExpression:           "ThisExpression",
	TypeLiteral:                  "Literal",
	TypeTemplateLiteral:          "TemplateLiteral",
	TypeTemplateElement:          "TemplateElement",
	TypeArrayExpression:          "ArrayExpression",
	TypeObjectExpression:         "ObjectExpression",
	TypeProperty:                 "Property",
	TypeSpreadElement:            "SpreadElement",
	TypeMemberExpression:         "MemberExpression",
	TypeCallExpression:           "CallExpression",
	TypeNewExpression:            "NewExpression",
	TypeUnaryExpression:          "UnaryExpression",
	TypeUpdateExpression:         "UpdateExpression",
	TypeBinaryExpression:         "BinaryExpression",
	TypeLogicalExpression:        "LogicalExpression",
	TypeAssignmentExpression:     "AssignmentExpression",
	TypeConditionalExpression:    "ConditionalExpression",
	TypeSequenceExpression:       "SequenceExpression",
	TypeAwaitExpression:          "AwaitExpression",
	TypeChainExpression:          "ChainExpression",
	TypeTSNonNullExpression:      "TSNonNullExpression",
	TypeTSAsExpression:           "TSAsExpression",
	TypeArrayPattern:             "ArrayPattern",
	TypeObjectPattern:            "ObjectPattern",
	TypeRestElement:              "RestElement",
	TypeAssignmentPattern:        "AssignmentPattern",
	TypeJSXElement:               "JSXElement",
	TypeJSXFragment:              "JSXFragment",
	TypeJSXOpeningElement:        "JSXOpeningElement",
	TypeJSXClosingElement:        "JSXClosingElement",
	TypeJSXOpeningFragment:       "JSXOpeningFragment",
	TypeJSXClosingFragment:       "JSXClosingFragment",
	TypeJSXAttribute:             "JSXAttribute",
	TypeJSXSpreadAttribute:       "JSXSpreadAttribute",
	TypeJSXIdentifier:            "JSXIdentifier",
	TypeJSXMemberExpression:      "JSXMemberExpression",
	TypeJSXNamespacedName:        "JSXNamespacedName",
	TypeJSXExpressionContainer:   "JSXExpressionContainer",
	TypeJSXEmptyExpression:       "JSXEmptyExpression",
	TypeJSXText:                  "JSXText",
	TypeJSXSpreadChild:           "JSXSpreadChild",
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, typeCount)
	for t, name := range typeNames {
		m[name] = Type(t)
	}
	return m
}()

// String returns the ESTree name of the node type.
func (t Type) String() string {
	if t < typeCount {
		return typeNames[t]
	}
	return "Unknown"
}

// ParseType returns the Type for an ESTree type name.
// The boolean is false when the name is not part of the enumeration.
func ParseType(name string) (Type, bool) {
	t, ok := typesByName[name]
	if !ok || t == TypeUnknown {
		return TypeUnknown, false
	}
	return t, true
}

// Types returns every known node type except TypeUnknown, in declaration order.
func Types() []Type {
	out := make([]Type, 0, typeCount-1)
	for t := TypeProgram; t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}
