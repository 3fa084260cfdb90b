package docnamer

import "strings"

// CallableKind identifies the kind of member a lookup targets.
type CallableKind string

// Supported callable kinds.
const (
	KindMethod      CallableKind = "method"
	KindConstructor CallableKind = "constructor"
)

// Callable identifies one method or constructor: the fully-qualified type
// that declares it, its simple name (empty for constructors), and its
// declared parameter types in order. The parameter type sequence
// disambiguates overloads, so it must spell types the way source code
// declares them (e.g. "java.lang.String", "int[]", "List<String>").
// A Callable is immutable once constructed.
type Callable struct {
	Kind           CallableKind
	DeclaringType  string
	Name           string
	ParameterTypes []string
}

// Validate returns an error if the callable cannot be looked up.
// An unsupported kind is a programmer error, reported as EINVALID.
func (c *Callable) Validate() error {
	if c.DeclaringType == "" {
		return Errorf(EINVALID, "callable declaring type required")
	}
	switch c.Kind {
	case KindMethod:
		if c.Name == "" {
			return Errorf(EINVALID, "method name required")
		}
	case KindConstructor:
		if c.Name != "" {
			return Errorf(EINVALID, "constructor must not carry a simple name, got %q", c.Name)
		}
	default:
		return Errorf(EINVALID, "unsupported callable kind %q", c.Kind)
	}
	return nil
}

// SimpleTypeName returns the declaring type's unqualified name, which is
// the heading constructors are documented under.
func (c *Callable) SimpleTypeName() string {
	if i := strings.LastIndex(c.DeclaringType, "."); i >= 0 {
		return c.DeclaringType[i+1:]
	}
	return c.DeclaringType
}

// String renders the callable in the form used in error messages and cache
// keys: "com.example.Foo#process(java.lang.String,int)". Constructors use
// the "<init>" marker.
func (c *Callable) String() string {
	name := c.Name
	if c.Kind == KindConstructor {
		name = "<init>"
	}
	var b strings.Builder
	b.WriteString(c.DeclaringType)
	b.WriteByte('#')
	b.WriteString(name)
	b.WriteByte('(')
	b.WriteString(strings.Join(c.ParameterTypes, ","))
	b.WriteByte(')')
	return b.String()
}
