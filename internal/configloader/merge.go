package configloader

import "github.com/yaklabco/mdbridge/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Booleans: only true overrides, so a layer cannot switch a flag off
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Engine != "" {
		result.Engine = override.Engine
	}
	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Direction != "" {
		result.Direction = override.Direction
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	if override.Highlight {
		result.Highlight = true
	}
	if override.Backup {
		result.Backup = true
	}
	if override.Write {
		result.Write = true
	}
	if override.DryRun {
		result.DryRun = true
	}

	if override.Extensions.Markdown != nil {
		result.Extensions.Markdown = override.Extensions.Markdown
	}
	if override.Extensions.HTML != nil {
		result.Extensions.HTML = override.Extensions.HTML
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
