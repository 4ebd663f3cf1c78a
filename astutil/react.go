package astutil

import (
	"regexp"
	"strings"

	"github.com/input-output-hk/jsxlint/estree"
	"github.com/input-output-hk/jsxlint/pattern"
)

var (
	componentNameRe = regexp.MustCompile(`^[A-Z]`)
	hookNameRe      = regexp.MustCompile(`^use[A-Z\d]`)
)

// IsComponentName reports whether name follows the component naming
// convention (leading capital letter).
func IsComponentName(name string) bool {
	return componentNameRe.MatchString(name)
}

// IsHookName reports whether name follows the hook naming convention
// (`use` followed by a capital letter or digit).
func IsHookName(name string) bool {
	return hookNameRe.MatchString(name)
}

// ComponentIdentifier returns the identifier naming a function: its own id,
// or the identifier of the variable it is assigned to.
func ComponentIdentifier(fn estree.Node) *estree.Identifier {
	switch fn := fn.(type) {
	case *estree.FunctionDeclaration:
		if fn != nil {
			return fn.ID
		}
	case *estree.FunctionExpression:
		if fn == nil {
			return nil
		}
		if fn.ID != nil {
			return fn.ID
		}
		return boundIdentifier(fn)
	case *estree.ArrowFunctionExpression:
		if fn != nil {
			return boundIdentifier(fn)
		}
	}
	return nil
}

func boundIdentifier(fn estree.Node) *estree.Identifier {
	if decl, ok := fn.Parent().(*estree.VariableDeclarator); ok {
		id, _ := decl.ID.(*estree.Identifier)
		return id
	}
	return nil
}

// IsPossibleNamedComponent reports whether n is a function whose name
// follows the component naming convention.
func IsPossibleNamedComponent(n estree.Node) bool {
	if !IsFunction(n) {
		return false
	}
	id := ComponentIdentifier(n)
	return id != nil && IsComponentName(id.Name)
}

var mapCall = pattern.Shape(pattern.Fields{
	"callee": pattern.Shape(pattern.Fields{
		"property": pattern.Shape(pattern.Fields{"name": "map"}),
	}),
})

// IsMapCall reports whether n is a call whose callee property is `map`, such
// as `items.map(fn)`. It does not check what is being mapped.
func IsMapCall(n estree.Node) bool {
	return Is(n, estree.TypeCallExpression) && mapCall.Match(n)
}

// IsCreateElementCall reports whether n calls `<pragma>.createElement` or a
// bare `createElement`.
func IsCreateElementCall(n estree.Node, pragma string) bool {
	call, ok := n.(*estree.CallExpression)
	if !ok || call == nil {
		return false
	}
	return IsIdentifierNamed(call.Callee, "createElement") ||
		pattern.Of(estree.TypeMemberExpression, pattern.Fields{
			"object":   pattern.Of(estree.TypeIdentifier, pattern.Fields{"name": pragma}),
			"property": pattern.Of(estree.TypeIdentifier, pattern.Fields{"name": "createElement"}),
			"computed": false,
		}).Match(call.Callee)
}

// IsFragmentElement reports whether n is a `<Fragment>` or
// `<pragma.Fragment>` element, with fragment naming the Fragment component.
func IsFragmentElement(n estree.Node, pragma, fragment string) bool {
	el, ok := n.(*estree.JSXElement)
	if !ok || el == nil || el.OpeningElement == nil {
		return false
	}
	name := JSXElementName(el.OpeningElement.Name)
	return name == fragment || name == pragma+"."+fragment
}

// JSXElementName renders a JSX element name: `div`, `Ctx.Provider` or
// `svg:path`.
func JSXElementName(n estree.Node) string {
	switch n := n.(type) {
	case *estree.JSXIdentifier:
		if n != nil {
			return n.Name
		}
	case *estree.JSXMemberExpression:
		if n != nil && n.Property != nil {
			return JSXElementName(n.Object) + "." + n.Property.Name
		}
	case *estree.JSXNamespacedName:
		if n != nil && n.Namespace != nil && n.Name != nil {
			return n.Namespace.Name + ":" + n.Name.Name
		}
	}
	return ""
}

// FindAttribute returns the attribute called name on an opening element, or
// nil. Spread attributes are not searched.
func FindAttribute(opening *estree.JSXOpeningElement, name string) *estree.JSXAttribute {
	if opening == nil {
		return nil
	}
	for _, a := range opening.Attributes {
		attr, ok := a.(*estree.JSXAttribute)
		if ok && JSXElementName(attr.Name) == name {
			return attr
		}
	}
	return nil
}

// HasAttribute reports whether an element carries the attribute called name.
func HasAttribute(el *estree.JSXElement, name string) bool {
	return el != nil && FindAttribute(el.OpeningElement, name) != nil
}

// FindProperty returns the property of an object literal whose key is the
// identifier key, or nil.
func FindProperty(properties []estree.Node, key string) *estree.Property {
	for _, p := range properties {
		if IsPropertyWithKey(p, key) {
			return p.(*estree.Property)
		}
	}
	return nil
}

// StaticString returns the string value of a string literal, a template
// literal without expressions, or an expression container holding either.
func StaticString(n estree.Node) (string, bool) {
	switch n := n.(type) {
	case *estree.Literal:
		if n != nil {
			s, ok := n.Value.(string)
			return s, ok
		}
	case *estree.TemplateLiteral:
		if n != nil && len(n.Expressions) == 0 && len(n.Quasis) == 1 {
			return n.Quasis[0].Value.Cooked, true
		}
	case *estree.JSXExpressionContainer:
		if n != nil {
			return StaticString(n.Expression)
		}
	}
	return "", false
}

// KeyText returns the source text of the member-access chain n belongs to,
// e.g. `props.user.name` for the `props` identifier.
func KeyText(n estree.Node, src *estree.SourceCode) string {
	return src.GetText(WalkUpWhile(n, estree.TypeMemberExpression, estree.TypeIdentifier))
}

// IsInRenderProp reports whether the function n is passed as a render prop:
// a `render*` object property, a direct child expression of an element, or a
// `render*` or `children` attribute value.
func IsInRenderProp(n estree.Node) bool {
	if estree.IsNil(n) {
		return false
	}
	switch parent := n.Parent().(type) {
	case *estree.Property:
		if id, ok := parent.Key.(*estree.Identifier); ok && strings.HasPrefix(id.Name, "render") {
			return true
		}
	case *estree.JSXExpressionContainer:
		if Is(parent.Parent(), estree.TypeJSXElement) {
			return true
		}
	}

	container := WalkUpUntil(n, OfType(estree.TypeJSXExpressionContainer))
	if container == nil {
		return false
	}
	attr, ok := container.Parent().(*estree.JSXAttribute)
	if !ok {
		return false
	}
	name, ok := attr.Name.(*estree.JSXIdentifier)
	if !ok {
		return false
	}
	return strings.HasPrefix(name.Name, "render") || name.Name == "children"
}

// IsRenderable reports whether an expression produces JSX, directly or
// through one branch of a conditional or the right side of a logical
// expression.
func IsRenderable(n estree.Node) bool {
	switch n := n.(type) {
	case *estree.JSXElement, *estree.JSXFragment:
		return !estree.IsNil(n)
	case *estree.ConditionalExpression:
		return n != nil && (IsRenderable(n.Consequent) || IsRenderable(n.Alternate))
	case *estree.LogicalExpression:
		return n != nil && IsRenderable(n.Right)
	}
	return false
}

// ReturnsJSX reports whether the function fn returns something renderable.
// Return statements are looked up through c.
func ReturnsJSX(fn estree.Node, c *Collector) bool {
	if arrow, ok := fn.(*estree.ArrowFunctionExpression); ok && arrow != nil && !Is(arrow.Body, estree.TypeBlockStatement) {
		return IsRenderable(arrow.Body)
	}
	body, ok := estree.Field(fn, "body")
	if !ok {
		return false
	}
	node, _ := body.(estree.Node)
	for _, ret := range c.NestedReturnStatements(node) {
		if IsRenderable(ret.Argument) {
			return true
		}
	}
	return false
}

// IsFunctionComponent reports whether fn is a function with a component name
// that returns JSX.
func IsFunctionComponent(fn estree.Node, c *Collector) bool {
	return IsPossibleNamedComponent(fn) && ReturnsJSX(fn, c)
}

// IsClassComponent reports whether n is a class extending Component or
// PureComponent, either bare or on pragma.
func IsClassComponent(n estree.Node, pragma string) bool {
	var super estree.Node
	switch n := n.(type) {
	case *estree.ClassDeclaration:
		if n != nil {
			super = n.SuperClass
		}
	case *estree.ClassExpression:
		if n != nil {
			super = n.SuperClass
		}
	}
	if IsIdentifierNamedOneOf(super, "Component", "PureComponent") {
		return true
	}
	return pattern.Of(estree.TypeMemberExpression, pattern.Fields{
		"object":   pattern.Of(estree.TypeIdentifier, pattern.Fields{"name": pragma}),
		"property": pattern.Of(estree.TypeIdentifier, pattern.Fields{"name": pattern.OneOf("Component", "PureComponent")}),
	}).Match(super)
}
