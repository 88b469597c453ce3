package utils

import "os"

// EnsureDirExists creates the directory if it doesn't exist.
func EnsureDirExists(path string) error {
	err := os.MkdirAll(path, 0700)
	if err != nil && !os.IsExist(err) {
		return err
	}
	return nil
}
