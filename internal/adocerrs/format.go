package adocerrs

import "fmt"

// UnknownFormatError indicates a `--format` flag value this command does
// not understand.
type UnknownFormatError struct {
	Format    string
	Supported []string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q (supported: %v)", e.Format, e.Supported)
}
