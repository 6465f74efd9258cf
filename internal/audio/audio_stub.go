//go:build !audio

package audio

import "errors"

// Enabled reports whether this build carries audio support.
const Enabled = false

// Pourer is a placeholder used when the audio build tag is absent.
type Pourer struct{}

// NewPourer reports that audio support was not compiled in.
func NewPourer() (*Pourer, error) {
	return nil, errors.New("audio support requires building with the 'audio' tag")
}

// Pour is a no-op in builds without audio.
func (p *Pourer) Pour(int) {}

// Close is a no-op in builds without audio.
func (p *Pourer) Close() {}
