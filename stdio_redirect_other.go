//go:build !unix

package main

import "os"

// Runtime-level stderr output (panics) is not captured here, only writes
// that go through os.Stdout and os.Stderr.
func redirectStdIO(path string) error {
	f, err := openStdioLog(path)
	if err != nil || f == nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
