package healthcheck

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"

	"github.com/devyard/devyard/dyapi"
)

// stubPath fills a temp dir with fake executables and points PATH at it.
func stubPath(t *testing.T, names ...string) {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\nexit 0\n"), 0755)
		qt.Assert(t, err, qt.IsNil)
	}
	t.Setenv("PATH", dir)
}

func TestBinCheckStatuses(t *testing.T) {
	stubPath(t, "sometool")
	ctx := context.Background()

	ok := &BinCheck{Name: "sometool"}
	qt.Check(t, StatusOf(ok.Run(ctx)), qt.Equals, StatusOkay)

	missing := &BinCheck{Name: "no-such-tool", Guidance: "install no-such-tool somehow"}
	err := missing.Run(ctx)
	qt.Check(t, StatusOf(err), qt.Equals, StatusFail)
	qt.Check(t, strings.Contains(err.Error(), "install no-such-tool somehow"), qt.IsTrue)
}

func TestCheckRequired(t *testing.T) {
	t.Run("all-present", func(t *testing.T) {
		stubPath(t, "git", "vagrant", "VBoxManage")
		qt.Check(t, CheckRequired(context.Background()), qt.IsNil)
	})
	t.Run("one-missing-fails-with-guidance", func(t *testing.T) {
		stubPath(t, "git", "VBoxManage")
		err := CheckRequired(context.Background())
		qt.Assert(t, err, qt.IsNotNil)
		qt.Check(t, serum.Code(err), qt.Equals, dyapi.ECodeDependency)
		qt.Check(t, strings.Contains(err.Error(), "vagrant"), qt.IsTrue)
	})
}

func TestHealthCheckReport(t *testing.T) {
	stubPath(t, "sometool")
	hc := &HealthCheck{
		Runners: []Runner{
			&BinCheck{Name: "sometool"},
			&BinCheck{Name: "no-such-tool"},
		},
	}
	err := hc.Run(context.Background())
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, hc.AnyFailed(), qt.IsTrue)

	var buf bytes.Buffer
	qt.Assert(t, hc.Fprint(&buf), qt.IsNil)
	qt.Check(t, strings.Contains(buf.String(), `"sometool"`), qt.IsTrue)
	qt.Check(t, strings.Contains(buf.String(), `"no-such-tool"`), qt.IsTrue)
}

func TestFprintBeforeRun(t *testing.T) {
	hc := &HealthCheck{Runners: []Runner{&BinCheck{Name: "x"}}}
	var buf bytes.Buffer
	qt.Check(t, hc.Fprint(&buf), qt.IsNotNil)
}
