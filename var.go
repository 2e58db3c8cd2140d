package xenv

// Var declares one named parameter a component depends on. A Var is a value:
// the modifiers return copies and never change the receiver.
type Var struct {
	name       string
	def        string
	hasDefault bool
	usage      string
	secret     bool
}

// Required declares a variable without a default. It must be supplied by
// the environment or a config file.
func Required(name string) Var {
	return newVar(name)
}

// Default declares a variable that falls back to value when neither the
// environment nor a config file supplies it.
func Default(name, value string) Var {
	v := newVar(name)
	v.def = value
	v.hasDefault = true
	return v
}

func newVar(name string) Var {
	if name == "" {
		panic("xenv: variable name cannot be empty")
	}

	return Var{name: name}
}

// Name of the variable.
func (v Var) Name() string {
	return v.name
}

// Default returns the default value and whether one was declared.
func (v Var) Default() (string, bool) {
	return v.def, v.hasDefault
}

// Usage is a human readable description shown in reports.
func (v Var) Usage() string {
	return v.usage
}

// Secret reports whether values of v are masked in reports.
func (v Var) Secret() bool {
	return v.secret
}

// WithUsage returns a copy of v with the given description.
func (v Var) WithUsage(usage string) Var {
	v.usage = usage
	return v
}

// AsSecret returns a copy of v whose values are masked in reports.
func (v Var) AsSecret() Var {
	v.secret = true
	return v
}

func (v Var) String() string {
	if v.hasDefault && !v.secret {
		return v.name + "=" + v.def
	}

	return v.name
}
