package depot

import "github.com/rs/zerolog"

// Config holds global configuration for the package.
var Config = config{logger: zerolog.Nop()}

type config struct {
	logger zerolog.Logger
}

// SetLogger wires a logger for entity lifecycle, command application, and
// access conflict events. The default logger discards everything.
func (c *config) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}
