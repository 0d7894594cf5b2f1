package config

import (
	"bytes"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// YAMLIndent is the indentation used when encoding configs.
const YAMLIndent = 2

// ToYAML encodes the configuration. CLI-only fields are not written.
func (c *Config) ToYAML() ([]byte, error) {
	return c.ToYAMLWithHeader("")
}

// ToYAMLWithHeader encodes the configuration after a comment header and a
// blank line.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	if header != "" {
		buf.WriteString(header)
		if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(YAMLIndent)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// FromYAML parses a config file. JSON is accepted as a YAML subset. Fields
// missing from data stay zero so the result merges over defaults.
func FromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Extensions.Markdown = slices.Clone(c.Extensions.Markdown)
	clone.Extensions.HTML = slices.Clone(c.Extensions.HTML)
	clone.Ignore = slices.Clone(c.Ignore)
	return &clone
}
