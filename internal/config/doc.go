// Package config loads attachcfg settings.
//
// Settings are resolved from layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← ATTACHCFG_*
//	├─────────────────────────────┤
//	│  2. Settings File           │  ← settings.toml or settings.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A settings file holds up to four sections:
//
//	[logging]   level, format, source
//	[platform]  os
//	[output]    format, indent, color
//	[adapter]   pythonPath, logToFile
//
// Any other top-level key is rejected with ErrUnknownSection. Sections merge
// key by key across layers.
//
// # Usage
//
//	cfg := config.New(
//		config.WithSettingsFile(path),
//		config.WithOverride("logging.level", "debug"),
//	)
//	if err := cfg.Load(ctx); err != nil {
//		return err
//	}
//	out := cfg.Output()
package config
