package util

import (
	"os"
	"path/filepath"

	"github.com/confstore/confstore/lib/util/logger"
)

var log = logger.GetLogger()

// UserHome returns the current user's home directory.
// Falls back to $HOME (or USERPROFILE on Windows) if os.UserHomeDir
// fails, and finally to the working directory rather than panicking,
// which keeps the library usable in containers where $HOME is unset.
func UserHome() string {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		return homeDir
	}
	if home := os.Getenv("HOME"); home != "" {
		log.WithError(err).Warn("os.UserHomeDir failed, falling back to $HOME")
		return home
	}
	if home := os.Getenv("USERPROFILE"); home != "" {
		log.WithError(err).Warn("os.UserHomeDir failed, falling back to USERPROFILE")
		return home
	}
	if wd, wdErr := os.Getwd(); wdErr == nil {
		log.WithError(err).Warn("no home directory available, falling back to working directory")
		return wd
	}
	panic("confstore: unable to determine home directory; set $HOME")
}

// UserConfigRoot returns the platform per-user configuration directory
// ($XDG_CONFIG_HOME or ~/.config on Linux, ~/Library/Application Support
// on macOS, %AppData% on Windows).
func UserConfigRoot() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return filepath.Join(UserHome(), ".config")
}
