package main

import (
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/urfave/cli/v2"

	"github.com/devyard/devyard/cmd/devyard/internal/util"
	"github.com/devyard/devyard/dyapi"
	"github.com/devyard/devyard/pkg/vagrant"
)

var runCmdDef = cli.Command{
	Name:      "run",
	Usage:     "Run an arbitrary command inside the VM",
	ArgsUsage: "<command> [args...]",
	Description: heredoc.Doc(`
		Executes the given command string inside the VM, with the
		working directory fixed to the environment mount.  The string
		is handed to the remote shell verbatim, so pipes and && work:

		    devyard run 'make test && make lint'
	`),
	Action: util.ChainCmdMiddleware(cmdRun,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewarePreflight,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdRun(c *cli.Context) error {
	if !c.Args().Present() {
		return dyapi.ErrorMissingArgument("run", "a command to execute")
	}
	y, err := openYard()
	if err != nil {
		return err
	}
	script := strings.Join(c.Args().Slice(), " ")
	return newVagrant(c, y).Remote(c.Context, vagrant.Remote(script))
}
