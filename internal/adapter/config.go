package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/compatfix/internal/model"
)

// ErrUnsupportedConfigFormat is returned for unknown config file extensions.
var ErrUnsupportedConfigFormat = errors.New("unsupported config format")

// configDecoder turns raw file contents into a generic mapping.
type configDecoder func(name string, data []byte) (map[string]any, error)

var configDecoders = map[string]configDecoder{
	".yaml":  decodeYAML,
	".yml":   decodeYAML,
	".toml":  decodeTOML,
	".json":  decodeJSONC,
	".jsonc": decodeJSONC,
	".hcl":   decodeHCL,
}

// SupportedConfigExtensions lists the file extensions LoadConfig accepts.
func SupportedConfigExtensions() []string {
	return []string{".yaml", ".yml", ".toml", ".json", ".jsonc", ".hcl"}
}

// LoadConfig reads a configuration file, choosing the decoder by extension.
// Keys absent from the file keep their DefaultConfig value.
func LoadConfig(path string) (m.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return m.Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return ParseConfig(path, data)
}

// ParseConfig decodes data as if read from a file called name.
func ParseConfig(name string, data []byte) (m.Config, error) {
	ext := strings.ToLower(filepath.Ext(name))

	decode, ok := configDecoders[ext]
	if !ok {
		return m.Config{}, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}

	values, err := decode(name, data)
	if err != nil {
		return m.Config{}, fmt.Errorf("failed to parse config %s: %w", name, err)
	}

	cfg, err := ConfigFromMap(m.DefaultConfig(), values)
	if err != nil {
		return m.Config{}, fmt.Errorf("invalid config %s: %w", name, err)
	}

	return cfg, nil
}

// ConfigFromMap overrides base with the keys present in values. A nil value
// means None/disabled. Unknown keys are kept in Extra.
func ConfigFromMap(base m.Config, values map[string]any) (m.Config, error) {
	cfg := base
	if len(base.Extra) > 0 {
		cfg.Extra = make(map[string]any, len(base.Extra))
		for k, v := range base.Extra {
			cfg.Extra[k] = v
		}
	}

	var errs []error

	for key, value := range values {
		if err := applyConfigValue(&cfg, key, value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}

	if len(errs) > 0 {
		return base, errors.Join(errs...)
	}

	return cfg, nil
}

func applyConfigValue(cfg *m.Config, key string, value any) error {
	var err error

	switch key {
	case m.KeyLoggingLevel:
		cfg.LoggingLevel, err = loggingLevelValue(value)
	case m.KeyEnableWarnings:
		cfg.EnableWarnings, err = boolValue(value)
	case m.KeyPatchInjectedObjects:
		cfg.PatchInjectedObjects, err = markerValue(value)
	case m.KeyIncludeFixerIDs:
		cfg.Policy.IncludeIDs, err = RuleValue(value)
	case m.KeyIncludeFixerFamilies:
		cfg.Policy.IncludeFamilies, err = RuleValue(value)
	case m.KeyExcludeFixerIDs:
		cfg.Policy.ExcludeIDs, err = RuleValue(value)
	case m.KeyExcludeFixerFamilies:
		cfg.Policy.ExcludeFamilies, err = RuleValue(value)
	default:
		if cfg.Extra == nil {
			cfg.Extra = make(map[string]any)
		}

		cfg.Extra[key] = value
	}

	return err
}

func loggingLevelValue(value any) (string, error) {
	if value == nil {
		return "", nil
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected a level name, got %T", value)
	}

	if _, err := ParseLevel(s); err != nil {
		return "", err
	}

	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE", "OFF":
		return "", nil
	default:
		return strings.ToUpper(strings.TrimSpace(s)), nil
	}
}

func boolValue(value any) (bool, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	default:
		return false, fmt.Errorf("expected a boolean, got %T", value)
	}
}

func markerValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case bool:
		if v {
			return m.DefaultPatchMarker, nil
		}

		return "", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("expected a boolean or a marker name, got %T", value)
	}
}

// RuleValue converts a decoded config value into a Rule: nil is None, a
// string is parsed with model.ParseRule, a list is an explicit set.
func RuleValue(value any) (m.Rule, error) {
	switch v := value.(type) {
	case nil:
		return m.NoneRule(), nil
	case string:
		return m.ParseRule(v), nil
	case []string:
		return listRule(v), nil
	case []any:
		names := make([]string, 0, len(v))

		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return m.Rule{}, fmt.Errorf("expected a list of strings, found %T", item)
			}

			names = append(names, s)
		}

		return listRule(names), nil
	default:
		return m.Rule{}, fmt.Errorf("expected null, \"*\" or a list of strings, got %T", value)
	}
}

func listRule(names []string) m.Rule {
	for _, name := range names {
		if name == m.Wildcard {
			return m.WildcardRule()
		}
	}

	return m.RuleOf(names...)
}
