package asciidoc

import "errors"

// ErrIncludeNotSupported is returned by the default include resolver for
// every request; it signals to callers that no resolver was configured.
var ErrIncludeNotSupported = errors.New("asciidoc: include directive resolution not configured")

// IncludeResolver supplies the external content for an
// `include::path[attrs]` directive. Implementations decide how to
// interpret path (filesystem, network, embedded archive) and how attrs
// affects the result (line ranges, tagged regions, indentation).
type IncludeResolver interface {
	ResolveInclude(path string, attrs Attrlist) (string, error)
}

// IncludeResolverFunc adapts a function to an IncludeResolver.
type IncludeResolverFunc func(path string, attrs Attrlist) (string, error)

// ResolveInclude calls f.
func (f IncludeResolverFunc) ResolveInclude(path string, attrs Attrlist) (string, error) {
	return f(path, attrs)
}

// defaultIncludeResolver always fails with ErrIncludeNotSupported.
var defaultIncludeResolver = IncludeResolverFunc(func(string, Attrlist) (string, error) {
	return "", ErrIncludeNotSupported
})

// TableParser receives the opaque span captured between a table's
// `|===`/`,===`/`:===`/`!===` delimiters, along with the attrlist that
// preceded it. Table body parsing itself is not specified here; a
// conformant parser works correctly with no TableParser configured, in
// which case the table's content is retained only as a RawDelimited
// block with Context "table".
type TableParser interface {
	ParseTable(delimiter string, attrs *Attrlist, content Span) (any, error)
}
