package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// envCandidates are the .env locations tried in order.
var envCandidates = []string{".env", filepath.Join("..", ".env")}

// LoadEnv loads the first .env file found in the working directory or its parent.
// It returns the file used, or "" when there is none. Variables already set in the
// process environment win over the file.
func LoadEnv() (string, error) {
	for _, candidate := range envCandidates {
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("error checking %s: %w", candidate, err)
		}
		if err := godotenv.Load(candidate); err != nil {
			return "", fmt.Errorf("error loading %s: %w", candidate, err)
		}
		return candidate, nil
	}
	return "", nil
}
