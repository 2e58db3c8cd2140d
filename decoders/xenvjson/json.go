// Package xenvjson decodes JSON documents for the xenv loader.
package xenvjson

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Decoder of json.
type Decoder struct{}

// New json decoder.
func New() *Decoder { return &Decoder{} }

// Format of the decoder.
func (d *Decoder) Format() string {
	return "json"
}

// Unmarshal decodes the given data into v. Numbers decode as json.Number
// so integers wider than a float64 mantissa keep every digit.
func (d *Decoder) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
