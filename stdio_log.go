package main

import (
	"os"

	"github.com/pkg/errors"
)

// openStdioLog opens path for appending. An empty path yields (nil, nil).
func openStdioLog(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open stdio log")
	}
	return f, nil
}
