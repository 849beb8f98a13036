package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/charmbracelet/log"
)

// ValidateFile checks that path is a readable regular file before a load
// starts, so a bad LOAD argument fails with one clear error.
func ValidateFile(path string) error {
	if err := utils.CheckRegularFile(path); err != nil {
		return fmt.Errorf("invalid word list %s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	// an empty file is a valid, empty word list; only read errors count
	buffer := make([]byte, 512)
	if _, err := file.Read(buffer); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	log.Debugf("Word list %s validated", path)
	return nil
}
