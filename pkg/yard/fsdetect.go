package yard

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/devyard/devyard/dyapi"
)

// Find looks for an environment marker on the filesystem and returns a
// handle to the first environment found, searching directories upward.
//
// It searches from `join(basisPath,searchPath)` up to `basisPath`
// (in other words, it won't search above basisPath).
// Invoking it with an empty string for `basisPath` and the de-rooted cwd
// for `searchPath` is typical.
//
// If no environment is found, it returns nil for both the yard pointer
// and the error value; absence is for the caller to judge.
//
// An fsys handle is required, but is typically `os.DirFS("/")` outside of tests.
//
// Errors:
//
//    - devyard-error-searching-filesystem -- when an unexpected error occurs traversing the search path
func Find(fsys fs.FS, basisPath, searchPath string) (*Yard, error) {
	searchAt := searchPath
	for {
		// Assume the search path exists and is a dir (we'll get a reasonable
		// error anyway if it's not); probe it for the marker file.
		f, err := fsys.Open(filepath.Join(basisPath, searchAt, MagicFilename))
		if f != nil {
			f.Close()
		}
		if err == nil {
			return &Yard{rootPath: filepath.Join(basisPath, searchAt)}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			// Whatever this error is, our search has blind spots: error out.
			return nil, dyapi.ErrorSearchingFilesystem("environment marker", err)
		}
		// No marker here.  Pop a segment and keep looking,
		// until popping makes no more progress (filesystem root).
		next := filepath.Dir(searchAt)
		if next == searchAt {
			return nil, nil
		}
		searchAt = next
	}
}
