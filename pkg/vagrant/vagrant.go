// Package vagrant shells out to the Vagrant CLI.  It owns every process
// boundary between devyard and the VM: lifecycle verbs, plugin installs,
// and remote execution over `vagrant ssh -c`.
package vagrant

import (
	"context"
	"io"
	"os/exec"

	"github.com/devyard/devyard/dyapi"
	"github.com/devyard/devyard/pkg/logging"
)

// Bin is the executable name resolved on PATH.
const Bin = "vagrant"

const logTag = "vagrant"

// Client runs vagrant with a fixed host-side working directory
// (the environment root, where the Vagrantfile lives).
type Client struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Up boots the VM, provisioning on first boot.
//
// Errors:
//
//    - devyard-error-external-tool -- when vagrant exits nonzero
func (c *Client) Up(ctx context.Context) error {
	return c.run(ctx, "up")
}

// Halt stops the VM.
//
// Errors:
//
//    - devyard-error-external-tool -- when vagrant exits nonzero
func (c *Client) Halt(ctx context.Context) error {
	return c.run(ctx, "halt")
}

// Destroy removes the VM without prompting.
//
// Errors:
//
//    - devyard-error-external-tool -- when vagrant exits nonzero
func (c *Client) Destroy(ctx context.Context) error {
	return c.run(ctx, "destroy", "-f")
}

// SSH opens an interactive shell in the VM, with stdin attached.
//
// Errors:
//
//    - devyard-error-external-tool -- when vagrant exits nonzero
func (c *Client) SSH(ctx context.Context) error {
	return c.run(ctx, "ssh")
}

// InstallPlugin installs a vagrant plugin on the host.
//
// Errors:
//
//    - devyard-error-external-tool -- when vagrant exits nonzero
func (c *Client) InstallPlugin(ctx context.Context, name string) error {
	logging.Ctx(ctx).Info(logTag, "installing plugin %s", name)
	return c.run(ctx, "plugin", "install", name)
}

// Remote executes a command inside the VM via `vagrant ssh -c`,
// blocking until it exits.  The remote command's working directory
// is part of the shell line; see RemoteCommand.
//
// Errors:
//
//    - devyard-error-external-tool -- when vagrant or the remote command exits nonzero
func (c *Client) Remote(ctx context.Context, rc RemoteCommand) error {
	return c.run(ctx, "ssh", "-c", rc.String())
}

func (c *Client) run(ctx context.Context, args ...string) error {
	logging.Ctx(ctx).Debug(logTag, "exec: %s %v (dir=%s)", Bin, args, c.Dir)
	cmd := exec.CommandContext(ctx, Bin, args...)
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if err := cmd.Run(); err != nil {
		return dyapi.ErrorExternalTool(Bin, err)
	}
	return nil
}
