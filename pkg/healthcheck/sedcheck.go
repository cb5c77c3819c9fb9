package healthcheck

import (
	"context"
	"fmt"

	"github.com/serum-errors/go-serum"

	"github.com/devyard/devyard/pkg/compose"
)

// GnuSedCheck verifies the GNU stream editor used for config patching.
// On darwin it must be present under the alternate name `gsed`; this is
// checked separately from the general tool requirements because the
// remedy is different.
type GnuSedCheck struct{}

func (c *GnuSedCheck) String() string {
	return fmt.Sprintf("GNU Stream Editor Check: %q", compose.EditorName())
}

// Run resolves the platform's GNU sed.
// Errors:
//
//    - devyard-error-healthcheck-run-okay -- when the editor is found
//    - devyard-error-healthcheck-run-fail -- when the editor cannot be found
func (c *GnuSedCheck) Run(ctx context.Context) error {
	path, err := compose.LookupEditor()
	if err != nil {
		return serum.Error(CodeRunFailure, serum.WithCause(err),
			serum.WithMessageTemplate("{{editor|q}} not found on PATH"),
			serum.WithDetail("editor", compose.EditorName()),
		)
	}
	return serum.Error(CodeRunOkay,
		serum.WithMessageTemplate("found at {{path|q}}"),
		serum.WithDetail("path", path),
	)
}
