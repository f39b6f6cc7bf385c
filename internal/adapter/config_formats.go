package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

func decodeYAML(_ string, data []byte) (map[string]any, error) {
	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}

	return values, nil
}

// decodeTOML reads TOML. TOML has no null: write "none" to disable a rule.
func decodeTOML(_ string, data []byte) (map[string]any, error) {
	values := map[string]any{}
	if _, err := toml.Decode(string(data), &values); err != nil {
		return nil, err
	}

	return values, nil
}

func decodeJSONC(_ string, data []byte) (map[string]any, error) {
	values := map[string]any{}
	if err := json.Unmarshal(jsonc.ToJSON(data), &values); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	return values, nil
}
