package yard

import (
	"context"

	git "github.com/go-git/go-git/v5"

	"github.com/devyard/devyard/dyapi"
	"github.com/devyard/devyard/pkg/logging"
)

// CloneFunc clones a remote repository into dst.
// It exists as a seam so init can be tested without the network.
type CloneFunc func(ctx context.Context, dst, remote string) error

// GitClone is the default CloneFunc; it clones with go-git,
// streaming progress through the context logger.
//
// Errors:
//
//    - devyard-error-git -- when the clone fails
func GitClone(ctx context.Context, dst, remote string) error {
	log := logging.Ctx(ctx)
	_, err := git.PlainCloneContext(ctx, dst, false, &git.CloneOptions{
		URL:      remote,
		Progress: log.InfoWriter("clone"),
	})
	if err != nil {
		return dyapi.ErrorGit(remote, err)
	}
	return nil
}
