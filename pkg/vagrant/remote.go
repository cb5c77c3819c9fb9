package vagrant

import (
	"regexp"
	"strings"
)

// InVMWorkdir is where Vagrant mounts the environment root inside the VM.
// Every remote command runs with this as its working directory.
const InVMWorkdir = "/vagrant"

// RemoteCommand is a command to run inside the VM: a working directory
// plus a shell script body.  Building these through Remote/RemoteArgv
// keeps quoting in one place instead of scattered string concatenation.
type RemoteCommand struct {
	Workdir string
	Script  string
}

// Remote wraps a raw script body for execution in the standard in-VM workdir.
// The script is passed to the remote shell verbatim.
func Remote(script string) RemoteCommand {
	return RemoteCommand{Workdir: InVMWorkdir, Script: script}
}

// RemoteArgv builds a remote command from an argument vector,
// quoting each argument for the remote shell.
func RemoteArgv(argv ...string) RemoteCommand {
	quoted := make([]string, 0, len(argv))
	for _, arg := range argv {
		quoted = append(quoted, shellQuote(arg))
	}
	return Remote(strings.Join(quoted, " "))
}

// And appends another remote command's script with a short-circuiting `&&`.
// Both commands must share a workdir.
func (rc RemoteCommand) And(next RemoteCommand) RemoteCommand {
	rc.Script = rc.Script + " && " + next.Script
	return rc
}

// String renders the full shell line handed to the remote side.
func (rc RemoteCommand) String() string {
	return "cd " + shellQuote(rc.Workdir) + " && " + rc.Script
}

var safeArgPattern = regexp.MustCompile(`^[A-Za-z0-9@%_+=:,./-]+$`)

// shellQuote single-quotes a string for POSIX sh, unless it's plainly safe.
func shellQuote(s string) string {
	if safeArgPattern.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
