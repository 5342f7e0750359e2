package adocregex

import "regexp"

var (
	Ellipsis   = regexp.MustCompile(`\.\.\.`)
	EmDash     = regexp.MustCompile(`(\w)--(\w)`)
	Copyright  = regexp.MustCompile(`\(C\)`)
	Registered = regexp.MustCompile(`\(R\)`)
	Trademark  = regexp.MustCompile(`\(TM\)`)

	RightArrow  = regexp.MustCompile(`->`)
	LeftArrow   = regexp.MustCompile(`<-`)
	RightDArrow = regexp.MustCompile(`=>`)
	LeftDArrow  = regexp.MustCompile(`<=`)

	Apostrophe = regexp.MustCompile(`(\w)'(\w)`)

	HardBreak = regexp.MustCompile(` \+\r?\n`)
)
