package docnamer

import "strings"

// Documentation path conventions shared by all backends.
const (
	// PackageListFile is the sentinel resource every documentation root
	// must serve. Its presence signals "this root is a documentation
	// root" and is checked once at locator construction.
	PackageListFile = "package-list"

	// PageSuffix is the file suffix of a type's documentation page.
	PageSuffix = ".html"

	// ArrayMarker is appended before PageSuffix for array types.
	ArrayMarker = "[]"
)

// TypePagePath maps a fully-qualified type name to the relative path of its
// documentation page: package separators become directory separators and
// the page suffix is appended, so "com.example.Foo" resolves to
// "com/example/Foo.html". Array types resolve through their component type
// with the array marker appended before the suffix.
//
// Nested types are not supported: documentation pages for "Outer.Inner"
// live at "Outer.Inner.html", which is indistinguishable from a package
// path once separators are replaced. Names carrying the JVM nested-type
// qualifier "$" therefore fail resolution rather than produce a wrong path.
func TypePagePath(typeName string) (string, error) {
	if typeName == "" {
		return "", Errorf(EINVALID, "type name required")
	}
	if strings.Contains(typeName, "$") {
		return "", Errorf(EINVALID, "nested type %q has no resolvable documentation path", typeName)
	}
	if component, ok := strings.CutSuffix(typeName, ArrayMarker); ok {
		path, err := TypePagePath(component)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(path, PageSuffix) + ArrayMarker + PageSuffix, nil
	}
	return strings.ReplaceAll(typeName, ".", "/") + PageSuffix, nil
}
