package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Rules holds the optional keyword-rule extensions loaded from a YAML file.
// Keys are intent names, then language codes, then extra trigger keywords
// merged into the built-in rule tables:
//
//	intents:
//	  website_request:
//	    en: ["landing page", "online store"]
//	    pl: ["sklep"]
type Rules struct {
	Intents map[string]map[string][]string `yaml:"intents"`
}

// LoadRules loads keyword-rule extensions from filepath. A missing file is
// not an error; the built-in rules are complete on their own.
func LoadRules(filepath string) (*Rules, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Rules{}, nil
		}
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing rules YAML: %w", err)
	}

	return &rules, nil
}
