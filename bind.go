package xenv

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sxwebdev/xenv/flat"
)

const (
	envTag     = "env"
	defaultTag = "default"
	usageTag   = "usage"
	secretTag  = "secret"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

type setDefaults interface {
	SetDefaults()
}

type validate interface {
	Validate() error
}

// RegisterStruct declares one variable per exported leaf field of conf, which
// must be a pointer to a struct. The variable is named by the env tag or,
// without one, by the field path in SCREAMING_SNAKE form; env:"-" skips the
// field. The default comes from the default tag, else from the current field
// value when it is not zero. SetDefaults is called first when conf has it.
func (r *Registry) RegisterStruct(conf any) error {
	if s, ok := conf.(setDefaults); ok {
		s.SetDefaults()
	}

	fields, err := flat.View(conf)
	if err != nil {
		return err
	}

	vars := make([]Var, 0, len(fields))
	for _, f := range fields {
		name, ok := varName(f)
		if !ok {
			continue
		}

		var v Var
		if def, ok := f.Tag(defaultTag); ok {
			v = Default(name, def)
		} else if !f.IsZero() {
			v = Default(name, f.String())
		} else {
			v = Required(name)
		}

		if usage, ok := f.Tag(usageTag); ok {
			v = v.WithUsage(usage)
		}

		if _, ok := f.Tag(secretTag); ok {
			v = v.AsSecret()
		}

		vars = append(vars, v)
	}

	r.Register(vars...)

	return nil
}

// RegisterStruct declares the fields of conf in the global registry.
func RegisterStruct(conf any) error {
	return global.RegisterStruct(conf)
}

// Bind stores resolved values into the fields of conf, named the way
// RegisterStruct names them, then validates conf with its Validate method
// and its validate tags.
func Bind(conf any, values Values) error {
	fields, err := flat.View(conf)
	if err != nil {
		return err
	}

	for _, f := range fields {
		name, ok := varName(f)
		if !ok {
			continue
		}

		value, ok := values.Lookup(name)
		if !ok {
			continue
		}

		if err := f.Set(value); err != nil {
			return fmt.Errorf("bind %s from %s: %w", f.Name(), name, err)
		}
	}

	if v, ok := conf.(validate); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return structValidator.Struct(conf)
}

func varName(f flat.Field) (string, bool) {
	name, ok := f.Tag(envTag)
	if name == "-" {
		return "", false
	}

	if !ok || name == "" {
		name = f.EnvName()
	}

	return name, true
}
