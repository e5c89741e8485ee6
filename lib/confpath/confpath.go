// Package confpath maps a namespace and resolution options to the
// absolute path of that namespace's config file. It performs no
// filesystem access: the path is computed from platform conventions
// alone and may point at a file that does not exist yet.
package confpath

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/confstore/confstore/lib/util"
)

// ConfigFileName is the file created under each namespace directory.
const ConfigFileName = "config.json"

// Options control where a namespace's config file lives.
type Options struct {
	// GlobalConfigPath resolves against the system-wide config root
	// instead of the per-user one.
	GlobalConfigPath bool
	// ConfigPath overrides namespace-based resolution entirely. A
	// relative value is joined under the global root when
	// GlobalConfigPath is set, otherwise resolved against the working
	// directory.
	ConfigPath string
}

// Resolve computes the config file path for namespace. The namespace is
// used verbatim as a directory component; it is not validated here, the
// OS surfaces any problem at first file access. Same inputs always
// produce the same path.
func Resolve(namespace string, opts Options) string {
	if opts.ConfigPath != "" {
		if opts.GlobalConfigPath && !filepath.IsAbs(opts.ConfigPath) {
			return filepath.Join(GlobalConfigRoot(), opts.ConfigPath)
		}
		return absolute(opts.ConfigPath)
	}
	root := util.UserConfigRoot()
	if opts.GlobalConfigPath {
		root = GlobalConfigRoot()
	}
	return filepath.Join(root, namespace, ConfigFileName)
}

// GlobalConfigRoot returns the system-wide configuration root for the
// current platform.
func GlobalConfigRoot() string {
	switch runtime.GOOS {
	case "darwin":
		return "/Library/Application Support"
	case "windows":
		if dir := os.Getenv("PROGRAMDATA"); dir != "" {
			return dir
		}
		return `C:\ProgramData`
	default:
		return "/etc/xdg"
	}
}

func absolute(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
