// Package xenvdotenv decodes dotenv files for the xenv loader.
//
// A dotenv file has no sections: the loader merges the whole document
// regardless of the requested section name.
package xenvdotenv

import (
	"fmt"

	"github.com/joho/godotenv"
)

// Decoder parses KEY=VALUE files.
type Decoder struct{}

// New creates a new Decoder.
func New() *Decoder { return &Decoder{} }

// Format returns the format of the decoder.
func (d *Decoder) Format() string {
	return "env"
}

// Sectionless reports that dotenv documents are flat.
func (d *Decoder) Sectionless() bool {
	return true
}

// Unmarshal parses data and stores the pairs in v, which must be a
// *map[string]string or a *map[string]any.
func (d *Decoder) Unmarshal(data []byte, v any) error {
	pairs, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return err
	}

	switch out := v.(type) {
	case *map[string]string:
		if out == nil {
			return fmt.Errorf("xenvdotenv: Unmarshal: nil %T", v)
		}
		if *out == nil {
			*out = make(map[string]string, len(pairs))
		}
		for key, value := range pairs {
			(*out)[key] = value
		}
	case *map[string]any:
		if out == nil {
			return fmt.Errorf("xenvdotenv: Unmarshal: nil %T", v)
		}
		if *out == nil {
			*out = make(map[string]any, len(pairs))
		}
		for key, value := range pairs {
			(*out)[key] = value
		}
	default:
		return fmt.Errorf("xenvdotenv: Unmarshal: unsupported target %T", v)
	}

	return nil
}
