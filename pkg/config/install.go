package config

import (
	"os"
	"path/filepath"

	"github.com/serum-errors/go-serum"

	"github.com/devyard/devyard/dyapi"
)

// TemplateDirname is the directory, relative to the install dir,
// holding the files that `devyard init` copies into a new environment.
const TemplateDirname = "templates"

// InstallDir returns the directory the devyard executable really lives in.
// The DEVYARD_PATH environment variable overrides detection entirely.
//
// Detection starts from the invocation path and follows symlinks hop by hop,
// so that a `devyard` symlinked into ~/bin still finds the templates shipped
// next to the real binary.
//
// Errors:
//
//    - devyard-error-searching-filesystem -- when the executable path cannot be resolved
func InstallDir() (string, error) {
	if path, override := os.LookupEnv(EnvDevyardPath); override {
		return path, nil
	}
	path, err := os.Executable()
	if err != nil {
		return "", dyapi.ErrorSearchingFilesystem("own executable", err)
	}
	path, err = ResolveSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

// TemplateDir returns the directory holding the bundled template files.
//
// Errors:
//
//    - devyard-error-searching-filesystem -- when the executable path cannot be resolved
func TemplateDir() (string, error) {
	dir, err := InstallDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, TemplateDirname), nil
}

// maxSymlinkHops caps the readlink chase; matches the kernel's ELOOP limit.
const maxSymlinkHops = 40

// ResolveSymlinks follows symlinks one hop at a time until it lands on a
// non-link path.  Relative link targets are interpreted relative to the
// directory containing the link, as the kernel does.
//
// Errors:
//
//    - devyard-error-searching-filesystem -- when a link cannot be read or the chain is too long
func ResolveSymlinks(path string) (string, error) {
	for i := 0; i < maxSymlinkHops; i++ {
		fi, err := os.Lstat(path)
		if err != nil {
			return "", dyapi.ErrorSearchingFilesystem("own executable", err)
		}
		if fi.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}
		target, err := os.Readlink(path)
		if err != nil {
			return "", dyapi.ErrorSearchingFilesystem("own executable", err)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
	return "", serum.Error(dyapi.ECodeSearch,
		serum.WithMessageTemplate("too many levels of symbolic links resolving {{path|q}}"),
		serum.WithDetail("path", path),
	)
}
