// Command adoc parses and inspects AsciiDoc source files.
package main

import (
	"github.com/alecthomas/kong"

	"github.com/go-asciidoc/asciidoc/cmd"
)

func main() {
	cli := &cmd.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("adoc"),
		kong.Description("Parse, lint, and inspect AsciiDoc documents"),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
