package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdbridge/pkg/config"
)

// envVarPrefix is the prefix for all mdbridge environment variables.
const envVarPrefix = "MDBRIDGE_"

// envVar binds one MDBRIDGE_* variable to a config field.
type envVar struct {
	suffix      string
	field       string
	description string
	apply       func(cfg *config.Config, value string) error
}

//nolint:gochecknoglobals // read-only lookup table
var envVars = []envVar{
	{"ENGINE", "engine", "Markdown to HTML engine: lite or commonmark",
		func(c *config.Config, v string) error { c.Engine = config.Engine(v); return nil }},
	{"FLAVOR", "flavor", "commonmark engine flavor: commonmark or gfm",
		func(c *config.Config, v string) error { c.Flavor = config.Flavor(v); return nil }},
	{"DIRECTION", "direction", "Convert direction: auto, md2html or html2md",
		func(c *config.Config, v string) error { c.Direction = config.Direction(v); return nil }},
	{"FORMAT", "format", "Report format: text, json or diff",
		func(c *config.Config, v string) error { c.Format = config.OutputFormat(v); return nil }},
	{"HIGHLIGHT", "highlight", "Highlight fenced code with the commonmark engine",
		boolSetter(func(c *config.Config) *bool { return &c.Highlight })},
	{"BACKUP", "backup", "Back up outputs before overwriting",
		boolSetter(func(c *config.Config) *bool { return &c.Backup })},
	{"DRY_RUN", "dry_run", "Show what would be written without writing",
		boolSetter(func(c *config.Config) *bool { return &c.DryRun })},
	{"JOBS", "jobs", "Number of parallel workers (0 = auto)",
		func(c *config.Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid integer %q", v)
			}
			c.Jobs = n
			return nil
		}},
	{"IGNORE", "ignore", "Comma-separated ignore patterns",
		func(c *config.Config, v string) error { c.Ignore = splitList(v); return nil }},
	{"MARKDOWN_EXTENSIONS", "extensions.markdown", "Comma-separated Markdown file extensions",
		func(c *config.Config, v string) error { c.Extensions.Markdown = splitList(v); return nil }},
	{"HTML_EXTENSIONS", "extensions.html", "Comma-separated HTML file extensions",
		func(c *config.Config, v string) error { c.Extensions.HTML = splitList(v); return nil }},
}

func boolSetter(field func(*config.Config) *bool) func(*config.Config, string) error {
	return func(c *config.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", v)
		}
		*field(c) = b
		return nil
	}
}

// LoadFromEnv applies MDBRIDGE_* overrides to cfg. Empty variables are
// ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	for _, ev := range envVars {
		name := envVarPrefix + ev.suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := ev.apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(value string) []string {
	var items []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// GetEnvVarName returns the environment variable for a config field, or "".
func GetEnvVarName(field string) string {
	for _, ev := range envVars {
		if ev.field == field {
			return envVarPrefix + ev.suffix
		}
	}
	return ""
}

// ListEnvVars returns every supported variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envVars))
	for _, ev := range envVars {
		vars[envVarPrefix+ev.suffix] = ev.description
	}
	return vars
}
