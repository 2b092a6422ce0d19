package cmd

import (
	"github.com/msto63/alcc/foundation/core/config"
	"github.com/msto63/alcc/foundation/rlang"
	"github.com/msto63/alcc/internal/playground"
	"github.com/msto63/alcc/internal/tui/repl"
)

// configDefaults are applied under the configuration file
var configDefaults = map[string]interface{}{
	"log": map[string]interface{}{
		"level":  "warn",
		"format": "console",
	},
	"engine": map[string]interface{}{
		"max_source_length": rlang.DefaultMaxSourceLength,
		"max_depth":         rlang.DefaultMaxDepth,
	},
	"repl": map[string]interface{}{
		"prompt":       repl.DefaultConfig().Prompt,
		"history_size": repl.DefaultConfig().HistorySize,
	},
	"serve": map[string]interface{}{
		"addr": playground.DefaultConfig().Addr,
	},
	"output": map[string]interface{}{
		"color": true,
	},
}

var validationRules = config.ValidationRules{
	"log.level":                {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "fatal"}},
	"log.format":               {Type: "string", OneOf: []string{"json", "text", "console"}},
	"engine.max_source_length": {Type: "int", Min: config.IntPtr(1)},
	"engine.max_depth":         {Type: "int", Min: config.IntPtr(1), Max: config.IntPtr(10000)},
	"repl.prompt":              {Type: "string"},
	"repl.history_size":        {Type: "int", Min: config.IntPtr(1)},
	"serve.addr":               {Type: "string"},
	"output.color":             {Type: "bool"},
}

// loadConfig loads path, or discovers the configuration file when path is
// empty. Environment variables with prefix ALCC override file values.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "ALCC",
			Defaults:  configDefaults,
		})
	}

	options := config.DefaultDiscoveryOptions()
	options.Defaults = configDefaults
	return config.Discover(options)
}
