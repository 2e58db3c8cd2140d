// Package xenv declares, discovers and validates the environment variables
// an application depends on.
//
// # Overview
//
// In an application assembled from independent packages, each package knows
// which variables it needs but nobody knows the complete list. xenv lets
// every package register its own requirements, wherever it lives, and lets
// main check all of them in one pass before any application logic runs.
//
// # Registering variables
//
// Register from an init function:
//
//	package storage
//
//	func init() {
//	    xenv.Register(
//	        xenv.Required("DATABASE_URL").WithUsage("Postgres DSN").AsSecret(),
//	        xenv.Default("DATABASE_MAX_CONNS", "10"),
//	    )
//	}
//
// A name may be registered by several packages. When more than one
// registration carries a default, the first registered default wins.
//
// # Validating
//
// Validate once, early in main:
//
//	err := xenv.Validate([]string{"config/base.toml", "config/local.toml"}, "env")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Every variable is resolved in this order:
//  1. The environment variable of the same name, even when set to ""
//  2. The key of the same name in the given section of the config files,
//     later files overriding earlier ones
//  3. The declared default
//
// Validate fails with a *MissingVariablesError carrying the sorted names of
// every variable that resolved to nothing, so a single run reports all of
// them. Config files that do not exist are skipped. A file that exists but
// cannot be parsed fails with a *ConfigLoadError naming it.
//
// # Config files
//
// Files are decoded by extension: toml, yaml, yml, json and env (dotenv).
// Any other extension is read as TOML. The section argument selects one
// top-level table of each document:
//
//	[env]
//	DATABASE_URL = "postgres://localhost/app"
//	DATABASE_MAX_CONNS = 20
//
// Non-string values are rendered as strings; arrays and tables as JSON.
// Dotenv files have no sections and are merged whole.
//
// # Structs
//
// RegisterStruct declares one variable per struct field and Bind fills the
// struct from the resolved values:
//
//	type Config struct {
//	    Host string `env:"HOST" default:"localhost" usage:"Server host"`
//	    Port int    `default:"8080" validate:"gte=1,lte=65535"`
//	    DB   struct {
//	        DSN string `secret:""`
//	    }
//	}
//
//	cfg := &Config{}
//	if err := xenv.RegisterStruct(cfg); err != nil {
//	    log.Fatal(err)
//	}
//	values, err := xenv.Load(paths, "env")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := xenv.Bind(cfg, values); err != nil {
//	    log.Fatal(err)
//	}
//
// Here Port reads PORT and DB.DSN reads DB_DSN.
//
// # Introspection
//
// ListAllVars, DumpAllVars, UnknownKeys, Usage and GenerateMarkdown report
// what is declared and how it resolves. They are meant for humans and never
// fail on unresolved variables.
//
// # Options
//
//	xenv.Validate(paths, "env",
//	    xenv.WithEnvPrefix("MYAPP"),       // read MYAPP_PORT for PORT
//	    xenv.WithStrictFiles(),            // missing files are errors
//	    xenv.WithDisallowUnknownKeys(),    // undeclared file keys are errors
//	    xenv.WithLogger(logger),           // *zap.Logger, debug level
//	)
package xenv
