package xenv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sxwebdev/xenv/loader"
)

var (
	// ErrMissingVariables matches any *MissingVariablesError.
	ErrMissingVariables = errors.New("missing required environment variables")
	// ErrUnknownKeys matches any *UnknownKeysError.
	ErrUnknownKeys = errors.New("unknown keys in configuration files")
)

// ConfigLoadError reports a candidate config file that exists but could not
// be read or parsed. Path names the offending file.
type ConfigLoadError = loader.LoadError

// MissingVariablesError lists every declared variable that resolved to
// nothing, sorted by name.
type MissingVariablesError struct {
	Names []string
}

func (e *MissingVariablesError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingVariables, strings.Join(e.Names, ", "))
}

func (e *MissingVariablesError) Is(target error) bool {
	return target == ErrMissingVariables
}

// UnknownKeysError lists config file keys that no variable declares.
type UnknownKeysError struct {
	Section string
	Keys    []string
}

func (e *UnknownKeysError) Error() string {
	return fmt.Sprintf("%v [%s]: %s", ErrUnknownKeys, e.Section, strings.Join(e.Keys, ", "))
}

func (e *UnknownKeysError) Is(target error) bool {
	return target == ErrUnknownKeys
}
