package gate

import (
	"fmt"
	"os"

	"github.com/mhazell/inspircd-auth-gate/internal/errors"
	"github.com/mhazell/inspircd-auth-gate/internal/log"
)

// Emit writes content to the file at path, overwriting any existing content.
// An empty path writes to standard output instead.
func Emit(path string, content string) error {
	if path == "" {
		if _, err := os.Stdout.WriteString(content); err != nil {
			return errors.NewOutputError("failed to write to stdout", err)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write output file %s", path), err)
	}

	log.Infof("Configuration written to %s", path)
	return nil
}
