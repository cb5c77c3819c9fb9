package yard

import (
	"testing"
	"testing/fstest"

	qt "github.com/frankban/quicktest"
)

func TestEnvironmentDetection(t *testing.T) {
	fsys := fstest.MapFS{
		"home/user/yards/appstack/.devyard":            &fstest.MapFile{Mode: 0644},
		"home/user/yards/appstack/accounts-svc/README": &fstest.MapFile{Mode: 0644},
		"home/user/scratch/notes.txt":                  &fstest.MapFile{Mode: 0644},
	}
	t.Run("find-returns-yard-at-root", func(t *testing.T) {
		y, err := Find(fsys, "", "home/user/yards/appstack")
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, y, qt.IsNotNil)
		qt.Check(t, y.rootPath, qt.Equals, "home/user/yards/appstack")
	})
	t.Run("find-walks-up-from-subdir", func(t *testing.T) {
		y, err := Find(fsys, "", "home/user/yards/appstack/accounts-svc")
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, y, qt.IsNotNil)
		qt.Check(t, y.rootPath, qt.Equals, "home/user/yards/appstack")
	})
	t.Run("find-visits-every-ancestor-then-gives-up", func(t *testing.T) {
		y, err := Find(fsys, "", "home/user/scratch")
		qt.Assert(t, err, qt.IsNil)
		qt.Check(t, y, qt.IsNil)
	})
	t.Run("find-checks-the-filesystem-root-itself", func(t *testing.T) {
		rootfs := fstest.MapFS{
			".devyard":       &fstest.MapFile{Mode: 0644},
			"deep/down/here": &fstest.MapFile{Mode: 0644},
		}
		y, err := Find(rootfs, "", "deep/down")
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, y, qt.IsNotNil)
		qt.Check(t, y.rootPath, qt.Equals, ".")
	})
	t.Run("basis-path-bounds-the-search", func(t *testing.T) {
		bounded := fstest.MapFS{
			"top/.devyard":         &fstest.MapFile{Mode: 0644},
			"top/inner/workspace2": &fstest.MapFile{Mode: 0644},
		}
		y, err := Find(bounded, "top", "inner")
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, y, qt.IsNotNil)
		qt.Check(t, y.rootPath, qt.Equals, "top")
	})
}

func TestHostRoot(t *testing.T) {
	y := &Yard{rootPath: "home/user/yards/appstack"}
	qt.Check(t, y.HostRoot(), qt.Equals, "/home/user/yards/appstack")
}
