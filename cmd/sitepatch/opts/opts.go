package opts

import (
	"io"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// Debug raises the structured log level
	Debug bool
	// Out receives the human facing console output
	Out io.Writer
}
