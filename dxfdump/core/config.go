package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader is a kong configuration loader for TOML files. Keys are the
// long flag names; snake_case spellings are accepted too.
func TOMLLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		return lookup(values, flag.Name), nil
	}), nil
}

func lookup(values map[string]any, name string) any {
	if v, ok := values[name]; ok {
		return v
	}
	if v, ok := values[strings.ReplaceAll(name, "-", "_")]; ok {
		return v
	}
	return nil
}
