// Package configpaths resolves where configuration files may live.
package configpaths

import (
	"os"
	"path/filepath"
)

const appName = "hatchbot"

// ConfigCandidatePaths returns the JSON, YAML and TOML config file
// candidates in priority order. An explicit user path (flag or
// HATCHBOT_CONFIG) is tried first under the loader matching its
// extension, then the user config dir, then the working directory.
// Missing files are skipped by the loaders.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(p string) {
		switch filepath.Ext(p) {
		case ".json":
			jsonPaths = append(jsonPaths, p)
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, p)
		case ".toml":
			tomlPaths = append(tomlPaths, p)
		}
	}

	if userPath != "" {
		add(userPath)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		base := filepath.Join(dir, appName)
		for _, ext := range []string{".json", ".yaml", ".yml", ".toml"} {
			add(filepath.Join(base, "config"+ext))
		}
	}
	for _, ext := range []string{".json", ".yaml", ".yml", ".toml"} {
		add(appName + ext)
	}
	return jsonPaths, yamlPaths, tomlPaths
}
