package xenv

import (
	"slices"

	"github.com/sxwebdev/xenv/loader"
	"github.com/sxwebdev/xenv/sources"
	"go.uber.org/zap"
)

// Register adds declarations to the global registry. Call it from init:
//
//	func init() {
//		xenv.Register(xenv.Required("DATABASE_URL"), xenv.Default("PORT", "8080"))
//	}
func Register(vars ...Var) {
	global.Register(vars...)
}

// Validate checks the global registry, see Registry.Validate.
func Validate(paths []string, section string, opts ...Option) error {
	return global.Validate(paths, section, opts...)
}

// Load resolves the global registry, see Registry.Load.
func Load(paths []string, section string, opts ...Option) (Values, error) {
	return global.Load(paths, section, opts...)
}

// ListAllVars returns the sorted names declared in the global registry.
func ListAllVars() []string {
	return global.ListAllVars()
}

// DumpAllVars resolves every variable of the global registry, see
// Registry.DumpAllVars.
func DumpAllVars(paths []string, section string, opts ...Option) (Values, error) {
	return global.DumpAllVars(paths, section, opts...)
}

// UnknownKeys reports config file keys the global registry does not declare.
func UnknownKeys(paths []string, section string, opts ...Option) ([]string, error) {
	return global.UnknownKeys(paths, section, opts...)
}

// Validate loads the config files once, resolves every declared variable and
// returns nil when all of them resolved. A file that exists but cannot be
// parsed fails with *ConfigLoadError before anything is resolved; otherwise
// unresolved variables fail with a *MissingVariablesError listing every one
// of them.
func (r *Registry) Validate(paths []string, section string, opts ...Option) error {
	_, err := r.Load(paths, section, opts...)
	return err
}

// Load is Validate returning the resolutions as well. On a
// *MissingVariablesError the returned Values are still complete.
func (r *Registry) Load(paths []string, section string, opts ...Option) (Values, error) {
	o := newOptions(opts...)

	values, file, err := r.resolve(paths, section, o)
	if err != nil {
		return nil, err
	}

	if missing := values.Unresolved(); len(missing) > 0 {
		o.logger.Debug("variables unresolved", zap.Strings("names", missing))
		return values, &MissingVariablesError{Names: missing}
	}

	if o.disallowUnknownKeys {
		if unknown := r.unknownKeys(file); len(unknown) > 0 {
			return values, &UnknownKeysError{Section: section, Keys: unknown}
		}
	}

	return values, nil
}

// ListAllVars returns the sorted, de-duplicated declared names.
func (r *Registry) ListAllVars() []string {
	return r.Names()
}

// DumpAllVars resolves every declared variable for diagnostics. Unresolved
// variables are reported in the result, never as an error; only a config
// file load failure is returned.
func (r *Registry) DumpAllVars(paths []string, section string, opts ...Option) (Values, error) {
	values, _, err := r.resolve(paths, section, newOptions(opts...))
	return values, err
}

// UnknownKeys returns the sorted keys of the merged config file section that
// no variable declares.
func (r *Registry) UnknownKeys(paths []string, section string, opts ...Option) ([]string, error) {
	o := newOptions(opts...)

	file, err := o.loader.Load(section, loader.Files(paths, !o.strictFiles)...)
	if err != nil {
		return nil, err
	}

	return r.unknownKeys(file), nil
}

func (r *Registry) resolve(paths []string, section string, o *options) (Values, map[string]string, error) {
	file, err := o.loader.Load(section, loader.Files(paths, !o.strictFiles)...)
	if err != nil {
		return nil, nil, err
	}

	resolver := NewResolver(sources.Env(o.envPrefix, o.lookup), sources.Map("file", file))

	vars := r.declarations()
	values := make(Values, len(vars))
	for _, v := range vars {
		res := resolver.Resolve(v)
		values[v.name] = res

		o.logger.Debug("variable resolved",
			zap.String("name", v.name),
			zap.String("source", string(res.Source)),
		)
	}

	return values, file, nil
}

func (r *Registry) unknownKeys(file map[string]string) []string {
	declared := make(map[string]struct{})
	for v := range r.All() {
		declared[v.name] = struct{}{}
	}

	unknown := make([]string, 0)
	for key := range file {
		if _, ok := declared[key]; !ok {
			unknown = append(unknown, key)
		}
	}

	slices.Sort(unknown)

	return unknown
}
