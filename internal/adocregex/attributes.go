package adocregex

import "regexp"

// AttributeRef matches a `{name}` document-attribute reference, with an
// optional leading backslash marking it as escaped.
var AttributeRef = regexp.MustCompile(`\\?\{([A-Za-z0-9_-]+)\}`)
