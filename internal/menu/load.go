package menu

import (
	"errors"
	"os"
)

// Load reads and parses the document at path. Open, read and syntax failures
// are returned as *LoadError; a document without usable options is a
// *ContentError.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		var contentErr *ContentError
		if errors.As(err, &contentErr) {
			return Config{}, err
		}
		return Config{}, &LoadError{Path: path, Err: err}
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but substitutes Default on failure. The
// failure is still returned so the caller can record it.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}
