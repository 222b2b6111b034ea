package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/suikit/internal/config"
	suierrors "github.com/alexisbeaulieu97/suikit/pkg/errors"
)

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

// loadConfig reads a dropdown definition and reports failures as command errors.
func loadConfig(operation, path string) (*config.Config, error) {
	if err := validateConfigPath(path); err != nil {
		return nil, newCommandError(operation, "locating the dropdown definition", err,
			"Pass an existing YAML file with --config.")
	}

	cfg, err := config.ParseConfig(path)
	if err != nil {
		var parseErr *suierrors.ParseError
		if errors.As(err, &parseErr) {
			return nil, newCommandError(operation, "parsing the dropdown definition", err,
				"Check the YAML syntax near the reported line.")
		}
		return nil, newCommandError(operation, "validating the dropdown definition", err,
			"Fix the reported field and try again.")
	}
	return cfg, nil
}
