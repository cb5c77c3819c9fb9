package healthcheck

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/MakeNowJust/heredoc"
	"github.com/serum-errors/go-serum"

	"github.com/devyard/devyard/dyapi"
)

// BinCheck verifies that an executable of the given name resolves on PATH.
type BinCheck struct {
	Name     string
	Guidance string
}

func (c *BinCheck) String() string {
	return fmt.Sprintf("Binary Path Check: %q", c.Name)
}

// Run checks that an executable can be found for the given executable name.
// Errors:
//
//    - devyard-error-healthcheck-run-okay -- when the binary is found
//    - devyard-error-healthcheck-run-fail -- when the binary cannot be found
func (c *BinCheck) Run(ctx context.Context) error {
	path, err := exec.LookPath(c.Name)
	if err != nil {
		return serum.Error(CodeRunFailure, serum.WithCause(err),
			serum.WithMessageTemplate("{{bin|q}} not found on PATH\n{{guidance}}"),
			serum.WithDetail("bin", c.Name),
			serum.WithDetail("guidance", c.Guidance),
		)
	}
	return serum.Error(CodeRunOkay,
		serum.WithMessageTemplate("found at {{path|q}}"),
		serum.WithDetail("path", path),
	)
}

// Requirement names an external tool every devyard command depends on.
type Requirement struct {
	Name     string
	Guidance string
}

// Requirements returns the tools that must resolve on PATH before any
// command dispatches: version control, VM management, and the hypervisor.
func Requirements() []Requirement {
	return []Requirement{
		{Name: "git", Guidance: heredoc.Doc(`
			Install git from your package manager, e.g.:

			    apt-get install git     # debian/ubuntu
			    brew install git        # macOS
		`)},
		{Name: "vagrant", Guidance: heredoc.Doc(`
			Install Vagrant from https://developer.hashicorp.com/vagrant/install
			or from your package manager.
		`)},
		{Name: "VBoxManage", Guidance: heredoc.Doc(`
			Install VirtualBox from https://www.virtualbox.org/wiki/Downloads
			and make sure VBoxManage is on your PATH.
		`)},
	}
}

// CheckRequired resolves every required tool, failing fast on the first
// one missing.  Install guidance rides along in the error.
//
// Errors:
//
//    - devyard-error-missing-dependency -- when a required tool is not on PATH
func CheckRequired(ctx context.Context) error {
	for _, req := range Requirements() {
		if _, err := exec.LookPath(req.Name); err != nil {
			return dyapi.ErrorMissingDependency(req.Name, req.Guidance)
		}
	}
	return nil
}
