//go:build !linux && !darwin

package healthcheck

import (
	"context"
	"runtime"

	"github.com/serum-errors/go-serum"
)

type HostInfo struct{}

func (k *HostInfo) String() string {
	return "Host info"
}

// Run executes the checker.
// Errors:
//
//    - devyard-error-healthcheck-run-ambiguous -- returns the platform name
func (k *HostInfo) Run(ctx context.Context) error {
	return serum.Errorf(CodeRunAmbiguous, "no host details available on %s", runtime.GOOS)
}
