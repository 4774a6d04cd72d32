package repos

import (
	"fmt"
	"os"
)

// pushd changes the process working directory to dir and returns a function
// restoring the previous one.
func pushd(dir string) (func() error, error) {
	previous, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	if chErr := os.Chdir(dir); chErr != nil {
		return nil, fmt.Errorf("failed to enter %s: %w", dir, chErr)
	}

	return func() error {
		if chErr := os.Chdir(previous); chErr != nil {
			return fmt.Errorf("failed to restore working directory %s: %w", previous, chErr)
		}
		return nil
	}, nil
}
