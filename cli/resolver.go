package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] that reads flag values from a
// YAML mapping.
//
// Keys match flag names; hyphens may be written as underscores. Nested
// mappings are flattened with hyphenated keys, so
//
//	log:
//	  level: debug
//	  pretty: true
//
// applies to flags --log-level and --log-pretty. Command-line flags
// override config file values.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	values := map[string]any{}

	err = yaml.Unmarshal(data, &values)
	if err != nil {
		// Malformed config files never block parsing.
		return yamlConfig{}, nil
	}

	flat := make(yamlConfig, len(values))
	flatten(flat, "", values)

	return flat, nil
}

// yamlConfig implements [kong.Resolver] for flattened YAML mappings.
type yamlConfig map[string]string

// Validate implements [kong.Resolver].
func (yamlConfig) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c yamlConfig) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	// Not found: let Kong use defaults.
	return nil, nil
}

// flatten converts nested mappings into hyphenated scalar keys. Underscores
// normalize to hyphens so config keys can mirror flag names either way.
func flatten(dst yamlConfig, prefix string, src map[string]any) {
	for key, value := range src {
		key = strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		switch v := value.(type) {
		case map[string]any:
			flatten(dst, key, v)

		default:
			dst[key] = fmt.Sprint(v)
		}
	}
}
