// Package validation checks command inputs before any work starts.
package validation

import (
	"fmt"
	"os"
	"strings"
)

// SupportedOutputFormats lists the report formats, in the order shown to users.
var SupportedOutputFormats = []string{"json", "yaml"}

// IsValidInputFile checks that path names an existing regular file.
func IsValidInputFile(path string) error {
	if path == "" {
		return fmt.Errorf("an input file is required")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking input file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path is not a regular file: %s", path)
	}
	return nil
}

// IsValidOutputFormat checks if the given format is supported. Case is ignored.
func IsValidOutputFormat(format string) error {
	for _, supported := range SupportedOutputFormats {
		if strings.EqualFold(format, supported) {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s (supported: %s)",
		format, strings.Join(SupportedOutputFormats, ", "))
}
