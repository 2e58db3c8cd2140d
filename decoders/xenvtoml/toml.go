// Package xenvtoml decodes TOML documents for the xenv loader.
package xenvtoml

import (
	"github.com/pelletier/go-toml/v2"
)

// Decoder of TOML files.
type Decoder struct{}

// New toml decoder.
func New() *Decoder { return &Decoder{} }

// Format of the decoder.
func (d *Decoder) Format() string {
	return "toml"
}

// Unmarshal decodes the given data into v.
func (d *Decoder) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
