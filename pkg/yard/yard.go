// Package yard locates and initializes devyard environments.
//
// An environment ("yard") is any directory tree whose root carries the
// zero-byte marker file.  Detection is a pure function over an fs.FS so
// that it can be tested without touching the real filesystem.
package yard

import (
	"path/filepath"
)

// MagicFilename is the marker denoting a directory as an environment root.
// It is created once by init and never written to again.
const MagicFilename = ".devyard"

// Yard is a handle to a detected environment.
type Yard struct {
	// rootPath is the de-rooted path (no leading slash) of the environment
	// root, relative to the fs.FS the yard was found in.
	rootPath string
}

// Root returns the environment root as a de-rooted path,
// relative to the filesystem the yard was detected in.
func (y *Yard) Root() string {
	return y.rootPath
}

// HostRoot returns the absolute host path of the environment root.
// Only meaningful when the yard was detected in os.DirFS("/").
func (y *Yard) HostRoot() string {
	return string(filepath.Separator) + y.rootPath
}
