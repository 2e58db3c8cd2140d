// Package loader reads layered configuration files and merges one section of
// each into a flat key/value table.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sxwebdev/xenv/decoders/xenvdotenv"
	"github.com/sxwebdev/xenv/decoders/xenvjson"
	"github.com/sxwebdev/xenv/decoders/xenvtoml"
	"github.com/sxwebdev/xenv/decoders/xenvyaml"
	"github.com/sxwebdev/xenv/flat"
	"go.uber.org/zap"
)

var (
	// ErrNoDecoder is returned when a file extension has no decoder and the
	// loader has no fallback.
	ErrNoDecoder = errors.New("no decoder registered for format")
	// ErrFileNotFound is returned for missing files that are not optional.
	ErrFileNotFound = errors.New("config file not found")
)

// Decoder maps the source bytes of a document into v.
type Decoder interface {
	Format() string
	Unmarshal(data []byte, v any) error
}

// sectionless is implemented by decoders of flat formats like dotenv, whose
// whole document is merged whatever the requested section.
type sectionless interface {
	Sectionless() bool
}

// LoadError reports a config file that exists but could not be read or parsed.
type LoadError struct {
	Path string // Offending file
	Err  error  // Underlying error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load config file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// File is a candidate config file.
type File struct {
	Path string
	// Optional indicates if a file that does not exist should be ignored.
	Optional bool
}

// Files builds a File for each path. Empty paths are dropped when optional
// is true and kept otherwise, so Load reports them as ErrFileNotFound.
func Files(paths []string, optional bool) []File {
	files := make([]File, 0, len(paths))
	for _, path := range paths {
		if path == "" && optional {
			continue
		}
		files = append(files, File{Path: path, Optional: optional})
	}
	return files
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used to report loaded and skipped files.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithFallback sets the decoder used for unknown file extensions.
func WithFallback(decoder Decoder) Option {
	return func(l *Loader) {
		l.fallback = decoder
	}
}

// Loader maps file extensions to decoders.
type Loader struct {
	decoders map[string]Decoder
	fallback Decoder
	logger   *zap.Logger
}

// NewLoader returns a Loader with the given decoders keyed by file extension.
func NewLoader(decoders map[string]Decoder, opts ...Option) (*Loader, error) {
	l := &Loader{
		decoders: make(map[string]Decoder, len(decoders)),
		logger:   zap.NewNop(),
	}

	for format, decoder := range decoders {
		if err := l.RegisterDecoder(format, decoder); err != nil {
			return nil, fmt.Errorf("failed to register decoder for format %q: %w", format, err)
		}
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Default returns a Loader for toml, yaml, yml, json and env files. Files
// with any other extension are decoded as TOML.
func Default(opts ...Option) *Loader {
	toml := xenvtoml.New()
	yaml := xenvyaml.New()

	l := &Loader{
		decoders: map[string]Decoder{
			"toml": toml,
			"yaml": yaml,
			"yml":  yaml,
			"json": xenvjson.New(),
			"env":  xenvdotenv.New(),
		},
		fallback: toml,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// RegisterDecoder registers a new decoder for the given format.
func (l *Loader) RegisterDecoder(format string, decoder Decoder) error {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if format == "" {
		return errors.New("format cannot be empty")
	}

	if decoder == nil {
		return errors.New("decoder cannot be nil")
	}

	if l.decoders == nil {
		l.decoders = make(map[string]Decoder)
	}

	if _, ok := l.decoders[format]; ok {
		return fmt.Errorf("decoder for format %q already registered", format)
	}

	l.decoders[format] = decoder

	return nil
}

// Load reads files in order and merges their section into one table, later
// files overriding earlier ones. Missing optional files contribute nothing.
// Any other failure aborts the whole load with a *LoadError.
func (l *Loader) Load(section string, files ...File) (map[string]string, error) {
	merged := make(map[string]string)

	for _, file := range files {
		values, err := l.read(file, section)
		if err != nil {
			return nil, err
		}

		for key, value := range values {
			merged[key] = value
		}
	}

	return merged, nil
}

func (l *Loader) read(file File, section string) (map[string]string, error) {
	src, err := os.ReadFile(file.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if file.Optional {
				l.logger.Debug("config file skipped", zap.String("path", file.Path))
				return nil, nil
			}
			return nil, &LoadError{Path: file.Path, Err: fmt.Errorf("%w: %w", ErrFileNotFound, err)}
		}
		return nil, &LoadError{Path: file.Path, Err: err}
	}

	decoder, err := l.decoder(file.Path)
	if err != nil {
		return nil, &LoadError{Path: file.Path, Err: err}
	}

	doc := map[string]any{}
	if err := decoder.Unmarshal(src, &doc); err != nil {
		return nil, &LoadError{Path: file.Path, Err: err}
	}

	var values map[string]string
	if s, ok := decoder.(sectionless); ok && s.Sectionless() {
		values = flat.Strings(doc)
	} else {
		values = flat.Section(doc, section)
	}

	l.logger.Debug("config file loaded",
		zap.String("path", file.Path),
		zap.String("format", decoder.Format()),
		zap.String("section", section),
		zap.Int("keys", len(values)),
	)

	return values, nil
}

func (l *Loader) decoder(path string) (Decoder, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	if decoder, ok := l.decoders[format]; ok {
		return decoder, nil
	}

	if l.fallback != nil {
		return l.fallback, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrNoDecoder, format)
}
