package effectchain

import "github.com/karatoken/karafx/dsp/backend"

// Context provides environmental information that effect runtimes need.
type Context struct {
	SampleRate float64
	Backend    backend.Backend
}
