//go:build linux || darwin

package healthcheck

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/serum-errors/go-serum"
	"golang.org/x/sys/unix"
)

// HostInfo reports the host kernel, for bug reports and for spotting
// machines where VirtualBox will not run.
type HostInfo struct{}

func (k *HostInfo) String() string {
	return "Host info"
}

// Run executes the checker.
// Errors:
//
//    - devyard-error-healthcheck-run-fail -- uname syscall failure
//    - devyard-error-healthcheck-run-ambiguous -- returns host info
func (k *HostInfo) Run(ctx context.Context) error {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return serum.Errorf(CodeRunFailure, "uname syscall failed: %w", err)
	}
	return serum.Errorf(CodeRunAmbiguous, "%s", hostInfoString(utsname))
}

func hostInfoString(u unix.Utsname) string {
	f := strings.Repeat("\t%10s: %s\n", 5)
	f = strings.TrimRightFunc(f, unicode.IsSpace)
	return fmt.Sprintf("\n"+f,
		"Sysname", utsField(u.Sysname[:]),
		"Nodename", utsField(u.Nodename[:]),
		"Release", utsField(u.Release[:]),
		"Version", utsField(u.Version[:]),
		"Machine", utsField(u.Machine[:]),
	)
}

func utsField(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}
