// Package config feeds kong flags from a YAML file and a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding ones already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// YAML is a kong.ConfigurationLoader. Keys are flag names in kebab or snake
// case, either at the top level or nested under a command name:
//
//	debug: true
//	convert:
//	  input: export.csv
//	expand:
//	  years: [2024, 2023]
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]interface{}{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid YAML config: %w", err)
	}

	var f kong.ResolverFunc = func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		if parent != nil && parent.Command != nil {
			if scoped, ok := values[parent.Command.Name].(map[string]interface{}); ok {
				if raw, ok := lookup(scoped, flag.Name); ok {
					return flatten(raw), nil
				}
			}
		}
		if raw, ok := lookup(values, flag.Name); ok {
			return flatten(raw), nil
		}
		return nil, nil
	}
	return f, nil
}

func lookup(values map[string]interface{}, name string) (interface{}, bool) {
	for _, key := range []string{name, strings.ReplaceAll(name, "-", "_")} {
		if raw, ok := values[key]; ok {
			if _, nested := raw.(map[string]interface{}); nested {
				continue
			}
			return raw, true
		}
	}
	return nil, false
}

// flatten renders a YAML value as the string kong would see on the command
// line; sequences become the comma separated form used by slice flags.
func flatten(raw interface{}) string {
	list, ok := raw.([]interface{})
	if !ok {
		return fmt.Sprint(raw)
	}
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}
