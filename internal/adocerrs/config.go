package adocerrs

import "fmt"

// ConfigParseError indicates a `.adoc.yaml` configuration file failed to
// parse.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("failed to parse config %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}
