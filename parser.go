package asciidoc

import (
	"errors"
	"strings"
)

// errInvalidUTF8 is returned by Parse when the input is not well-formed
// UTF-8: that is the one case the parser rejects at the boundary rather
// than producing a best-effort tree.
var errInvalidUTF8 = errors.New("asciidoc: source is not valid UTF-8")

// Parser holds document-attribute state and drives the block recognizer
// to produce a Document. A Parser instance is single-threaded: exactly
// one goroutine may call its methods at a time, and instances are not
// shared.
type Parser struct {
	attributes map[string]string
	locked     map[string]bool

	includeResolver IncludeResolver
	tableParser     TableParser

	catalog *Catalog
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithInitialAttributes seeds the document-attribute state before parsing
// begins, as if each entry appeared in the header with the lowest
// precedence.
func WithInitialAttributes(attrs map[string]string) Option {
	return func(p *Parser) {
		for k, v := range attrs {
			p.attributes[k] = v
		}
	}
}

// WithLockedAttributes marks names that cannot be overridden by attribute
// entries encountered in the source.
func WithLockedAttributes(names []string) Option {
	return func(p *Parser) {
		for _, n := range names {
			p.locked[n] = true
		}
	}
}

// WithIncludeResolver installs a collaborator for `include::path[attrs]`
// directives. The recognizer does not call it: an include directive is
// kept as raw text whether or not a resolver is installed.
func WithIncludeResolver(r IncludeResolver) Option {
	return func(p *Parser) { p.includeResolver = r }
}

// WithTableParser installs the collaborator that receives a table's
// opaque delimited span.
func WithTableParser(t TableParser) Option {
	return func(p *Parser) { p.tableParser = t }
}

// NewParser constructs a Parser ready to parse one or more documents.
// Document-attribute state set by a prior Parse call carries into the
// next call on the same instance; construct a fresh Parser per document
// to avoid that.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		attributes:      make(map[string]string),
		locked:          make(map[string]bool),
		includeResolver: defaultIncludeResolver,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// AttributeValue returns the current value of a document attribute.
func (p *Parser) AttributeValue(name string) (string, bool) {
	switch name {
	case "sp":
		return " ", true
	case "nbsp":
		return " ", true
	case "blank", "empty":
		return "", true
	}

	v, ok := p.attributes[name]

	return v, ok
}

// SetAttribute sets a document attribute's value, honoring any lock. It
// returns false (without effect) if name is locked.
func (p *Parser) SetAttribute(name, value string) bool {
	if p.locked[name] {
		return false
	}

	p.attributes[name] = value

	return true
}

// UnsetAttribute removes a document attribute, honoring any lock.
func (p *Parser) UnsetAttribute(name string) bool {
	if p.locked[name] {
		return false
	}

	delete(p.attributes, name)

	return true
}

// Parse ingests a UTF-8 source document and returns its structured tree.
// Parse never returns a non-nil error for well-formed UTF-8 input: all
// structural problems are reported as warnings on the returned Document.
func Parse(source string) (*Document, error) {
	return NewParser().Parse(source)
}

// Parse ingests source using p's current attribute state, locking in the
// attributes declared in the document header once assembly completes.
func (p *Parser) Parse(source string) (*Document, error) {
	if !isValidUTF8(source) {
		return nil, errInvalidUTF8
	}

	sink := &warningSink{}
	p.catalog = newCatalog()

	full := NewSpan(source)

	header, afterHeader := parseHeader(full, p, sink)
	for name := range header.attributesSet {
		p.locked[name] = true
	}

	body := parsePreambleAndSections(afterHeader, p, sink)

	return &Document{
		Header:   header.Header,
		Blocks:   body,
		Source:   full,
		Warnings: sink.warnings,
		Catalog:  p.catalog,
	}, nil
}

func isValidUTF8(s string) bool {
	return strings.ToValidUTF8(s, "�") == s
}
