package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
)

// Loads a TOML defaults file as a kong resolver.
//
// Top-level keys name flags. Dashes in flag names may be written as
// underscores. Tables are ignored.
func tomlLoader(r io.Reader) (kong.Resolver, error) {
	values := make(map[string]any)
	if _, err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("config parse failed: %w", err)
	}

	var resolver kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			v, ok := values[key]
			if !ok {
				continue
			}
			if _, table := v.(map[string]any); table {
				return nil, nil
			}
			return v, nil
		}
		return nil, nil
	}
	return resolver, nil
}
