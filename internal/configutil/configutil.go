// Package configutil reads json5 configuration files with optional
// local overrides.
package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// load unmarshals path into out, reporting whether the file existed.
func load(path string, out any) (bool, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(contents) == 0 {
		return false, nil
	}
	return true, json5.Unmarshal(contents, out)
}

func localName(name string) string {
	ext := filepath.Ext(name)
	prefix := name[:len(name)-len(ext)]
	return fmt.Sprintf("%s.local%s", prefix, ext)
}

// Read loads the configuration at name and, when a sibling
// <name>.local.<ext> file exists, merges it on top so checked-in
// defaults can be overridden per machine. Read returns os.ErrNotExist
// when neither file exists.
func Read[T any](name string) (T, error) {
	var out T

	found, err := load(name, &out)
	if err != nil {
		return out, err
	}

	localPath := localName(name)
	var override T
	foundLocal, err := load(localPath, &override)
	if err != nil {
		return out, err
	}
	if foundLocal {
		if err := mergo.Merge(&out, override, mergo.WithOverride); err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
	}

	if !found && !foundLocal {
		return out, os.ErrNotExist
	}
	return out, nil
}
