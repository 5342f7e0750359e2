package adocregex

import "regexp"

var (
	PassInline = regexp.MustCompile(`pass:([qam,]*)\[(.*?)\]`)
	TriplePlus = regexp.MustCompile(`\+\+\+(.+?)\+\+\+`)
	SinglePlus = regexp.MustCompile(`(^|\s)\+([^+\s](?:[^+]*[^+\s])?)\+(\s|$)`)

	ImageInline = regexp.MustCompile(`image:([^\s\[\]]+)\[(.*?)\]`)
	LinkInline  = regexp.MustCompile(`link:([^\s\[\]]+)\[(.*?)\]`)
	Mailto      = regexp.MustCompile(`mailto:([^\s\[\]]+)\[(.*?)\]`)
	Autolink    = regexp.MustCompile(`\b(https?://[^\s\[\]<>]+)(\[(.*?)\])?`)
)
