package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"
	"github.com/warpfork/go-testmark"
	"github.com/warpfork/go-testmark/testexec"

	"github.com/devyard/devyard/dyapi"
	"github.com/devyard/devyard/pkg/yard"
)

const passScript = "#!/bin/sh\nexit 0\n"

// logScript appends its arguments to the file named by STUB_LOG,
// so tests can assert exactly what devyard asked the tool to do.
const logScript = `#!/bin/sh
echo "$@" >> "$STUB_LOG"
exit 0
`

// stubTools points PATH at a directory of stub executables covering
// every preflight requirement.  An override with an empty body omits
// that tool, simulating a machine where it is not installed.
func stubTools(t *testing.T, overrides map[string]string) {
	t.Helper()
	scripts := map[string]string{
		"git":        passScript,
		"vagrant":    passScript,
		"VBoxManage": passScript,
		"sed":        passScript,
		"gsed":       passScript,
	}
	for name, body := range overrides {
		if body == "" {
			delete(scripts, name)
			continue
		}
		scripts[name] = body
	}
	dir := t.TempDir()
	for name, body := range scripts {
		err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0755)
		qt.Assert(t, err, qt.IsNil)
	}
	t.Setenv("PATH", dir)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, os.Chdir(dir), qt.IsNil)
	t.Cleanup(func() { os.Chdir(prev) })
}

// markEnvironment drops the marker file, making dir an environment root.
func markEnvironment(t *testing.T, dir string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, yard.MagicFilename), nil, 0644)
	qt.Assert(t, err, qt.IsNil)
}

func stubLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calls.log")
	t.Setenv("STUB_LOG", path)
	return path
}

func runCLI(args ...string) (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer
	err = makeApp(strings.NewReader(""), &outBuf, &errBuf).Run(append([]string{"devyard"}, args...))
	return outBuf.String(), errBuf.String(), err
}

func TestUnknownCommand(t *testing.T) {
	stdout, _, err := runCLI("frobnicate")
	qt.Assert(t, err, qt.IsNotNil)
	qt.Check(t, serum.Code(err), qt.Equals, dyapi.ECodeArgument)
	qt.Check(t, stdout, qt.Contains, "USAGE")
}

func TestNoCommand(t *testing.T) {
	stdout, _, err := runCLI()
	qt.Assert(t, err, qt.IsNotNil)
	qt.Check(t, serum.Code(err), qt.Equals, dyapi.ECodeArgument)
	qt.Check(t, stdout, qt.Contains, "USAGE")
}

// Missing positional arguments must be reported before environment
// detection: the working directory here is empty, yet the error is
// about the argument, not about the missing environment.
func TestMissingArgumentBeforeEnvironmentDetection(t *testing.T) {
	stubTools(t, nil)
	chdir(t, t.TempDir())

	_, stderr, err := runCLI("rebuild")
	qt.Assert(t, err, qt.IsNotNil)
	qt.Check(t, serum.Code(err), qt.Equals, dyapi.ECodeArgument)
	qt.Check(t, stderr, qt.Contains, "rebuild requires a service name")

	_, stderr, err = runCLI("run")
	qt.Assert(t, err, qt.IsNotNil)
	qt.Check(t, serum.Code(err), qt.Equals, dyapi.ECodeArgument)
	qt.Check(t, stderr, qt.Contains, "run requires a command to execute")
}

func TestNoEnvironment(t *testing.T) {
	stubTools(t, nil)
	chdir(t, t.TempDir())
	_, stderr, err := runCLI("halt")
	qt.Assert(t, err, qt.IsNotNil)
	qt.Check(t, serum.Code(err), qt.Equals, dyapi.ECodeEnvironment)
	qt.Check(t, stderr, qt.Equals,
		"error: no devyard environment found; run 'devyard init' in an empty directory first\n")
}

func TestNoEnvironmentJson(t *testing.T) {
	stubTools(t, nil)
	chdir(t, t.TempDir())
	_, stderr, err := runCLI("--json", "halt")
	qt.Assert(t, err, qt.IsNotNil)
	qt.Check(t, stderr, qt.Contains, `"devyard-error-no-environment"`)
}

func TestPreflightReportsMissingTool(t *testing.T) {
	stubTools(t, map[string]string{"vagrant": ""})
	chdir(t, t.TempDir())
	_, stderr, err := runCLI("halt")
	qt.Assert(t, err, qt.IsNotNil)
	qt.Check(t, serum.Code(err), qt.Equals, dyapi.ECodeDependency)
	qt.Check(t, stderr, qt.Contains, "vagrant")
}

func TestPreflightReportsMissingEditor(t *testing.T) {
	stubTools(t, map[string]string{"sed": "", "gsed": ""})
	chdir(t, t.TempDir())
	_, _, err := runCLI("halt")
	qt.Assert(t, err, qt.IsNotNil)
	qt.Check(t, serum.Code(err), qt.Equals, dyapi.ECodeDependency)
}

// A failed `vagrant up` must be followed by a forced destroy, so the
// next boot starts from a clean slate instead of a half-provisioned VM.
func TestBootDestroysPartialVM(t *testing.T) {
	logFile := stubLog(t)
	stubTools(t, map[string]string{"vagrant": `#!/bin/sh
echo "$@" >> "$STUB_LOG"
case "$1" in up) exit 1 ;; esac
exit 0
`})
	dir := t.TempDir()
	markEnvironment(t, dir)
	chdir(t, dir)

	_, _, err := runCLI("boot")
	qt.Assert(t, err, qt.IsNotNil)
	qt.Check(t, serum.Code(err), qt.Equals, dyapi.ECodeExternal)

	calls, err := os.ReadFile(logFile)
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, string(calls), qt.Equals, "up\ndestroy -f\n")
}

// The marker is found by walking up from a subdirectory, and the
// listing is delegated to the orchestrator inside the VM.
func TestContainersFromSubdirectory(t *testing.T) {
	logFile := stubLog(t)
	stubTools(t, map[string]string{"vagrant": logScript})
	dir := t.TempDir()
	markEnvironment(t, dir)
	sub := filepath.Join(dir, "accounts-svc", "cmd")
	qt.Assert(t, os.MkdirAll(sub, 0755), qt.IsNil)
	chdir(t, sub)

	_, _, err := runCLI("containers")
	qt.Assert(t, err, qt.IsNil)

	calls, err := os.ReadFile(logFile)
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, string(calls), qt.Equals,
		"ssh -c cd /vagrant && docker-compose config --services\n")
}

func TestRunPassesScriptVerbatim(t *testing.T) {
	logFile := stubLog(t)
	stubTools(t, map[string]string{"vagrant": logScript})
	dir := t.TempDir()
	markEnvironment(t, dir)
	chdir(t, dir)

	_, _, err := runCLI("run", "make", "test")
	qt.Assert(t, err, qt.IsNil)

	calls, err := os.ReadFile(logFile)
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, string(calls), qt.Equals, "ssh -c cd /vagrant && make test\n")
}

func TestRebuildCycle(t *testing.T) {
	logFile := stubLog(t)
	stubTools(t, map[string]string{"vagrant": logScript})
	dir := t.TempDir()
	markEnvironment(t, dir)
	chdir(t, dir)

	_, _, err := runCLI("rebuild", "accounts")
	qt.Assert(t, err, qt.IsNil)

	calls, err := os.ReadFile(logFile)
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, string(calls), qt.Equals,
		"ssh -c cd /vagrant && docker-compose build accounts"+
			" && docker-compose stop accounts"+
			" && docker-compose rm -f accounts"+
			" && docker-compose up -d accounts\n")
}

func TestExecFixtures(t *testing.T) {
	stubTools(t, nil)
	fixture, err := filepath.Abs("cli.md")
	qt.Assert(t, err, qt.IsNil)
	// Fixtures that probe for an environment must not find one.
	chdir(t, t.TempDir())

	doc, err := testmark.ReadFile(fixture)
	if err != nil {
		t.Fatalf("fixture file parse failed?!: %s", err)
	}
	doc.BuildDirIndex()
	patches := testmark.PatchAccumulator{}
	for _, dir := range doc.DirEnt.ChildrenList {
		test := testexec.Tester{
			ExecFn:   execFn,
			Patches:  &patches,
			AssertFn: assertFn,
		}
		test.TestSequence(t, dir)
	}
}

func execFn(args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	// The error has already been rendered to stderr by the app's
	// exit handler; all the fixture needs back is the exit code.
	if err := makeApp(stdin, stdout, stderr).Run(args); err != nil {
		return 1, nil
	}
	return 0, nil
}

func assertFn(t *testing.T, actual, expect string) {
	qt.Assert(t, strings.TrimSpace(actual), qt.Equals, strings.TrimSpace(expect))
}
