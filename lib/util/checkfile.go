package util

import (
	"os"
)

// CheckFileExists reports whether a file exists at fpath.
func CheckFileExists(fpath string) bool {
	_, e := os.Stat(fpath)
	return e == nil
}
