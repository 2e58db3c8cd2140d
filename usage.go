package xenv

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
)

const secretMask = "******"

var usageHeaders = []string{"name", "source", "value", "default", "secret", "usage"}

// Usage prints out every declared variable of the global registry with its
// resolution, see Registry.Usage.
func Usage(paths []string, section string, opts ...Option) (string, error) {
	return global.Usage(paths, section, opts...)
}

// Usage prints out every declared variable with where its value comes from.
// Values and defaults of secret variables are masked. Unresolved variables
// are listed, not reported as an error.
func (r *Registry) Usage(paths []string, section string, opts ...Option) (string, error) {
	values, err := r.DumpAllVars(paths, section, opts...)
	if err != nil {
		return "", err
	}

	buf := bytes.NewBuffer(nil)
	w := tabwriter.NewWriter(buf, 0, 0, 4, ' ', 0)
	fmt.Fprintf(w, "\nDeclared Variables:\n")
	fmt.Fprintln(w, strings.ToUpper(strings.Join(usageHeaders, "\t")))

	dashes := make([]string, len(usageHeaders))
	for i, h := range usageHeaders {
		dashes[i] = strings.Repeat("-", max(len(h), 5))
	}
	fmt.Fprintln(w, strings.Join(dashes, "\t"))

	for _, v := range r.declarations() {
		res := values[v.name]

		value := res.String()
		def, _ := v.Default()
		secret := ""

		if v.secret {
			secret = "yes"
			def = mask(def)
			if res.Resolved() {
				value = mask(value)
			}
		}

		fmt.Fprintln(w, strings.Join([]string{v.name, string(res.Source), value, def, secret, v.usage}, "\t"))
	}

	if err := w.Flush(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func mask(value string) string {
	if value == "" {
		return ""
	}

	return secretMask
}
