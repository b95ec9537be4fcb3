package config

import (
	"os"
	"path/filepath"
)

var discoverCache = map[string]string{}

// Discover walks from dir toward the filesystem root looking for the
// nearest .sheetc.yaml. It returns the empty string when no file is
// found anywhere up the tree.
func Discover(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	start := dir
	for {
		if path, ok := discoverCache[dir]; ok {
			discoverCache[start] = path
			return path, nil
		}

		name := filepath.Join(dir, DefaultName)
		if _, err := os.Stat(name); err == nil {
			discoverCache[start] = name
			return name, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Root.
			discoverCache[start] = ""
			return "", nil
		}
		dir = parent
	}
}
