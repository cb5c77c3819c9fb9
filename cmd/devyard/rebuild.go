package main

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/urfave/cli/v2"

	"github.com/devyard/devyard/cmd/devyard/internal/util"
	"github.com/devyard/devyard/dyapi"
	"github.com/devyard/devyard/pkg/compose"
)

var rebuildCmdDef = cli.Command{
	Name:      "rebuild",
	Usage:     "Rebuild one service from source and restart it",
	ArgsUsage: "<service>",
	Description: heredoc.Doc(`
		Runs the full cycle inside the VM for the named compose service:
		build, stop, remove the old container, then bring it back up
		detached.  The service name is the compose service name, which
		'devyard containers' lists.
	`),
	Action: util.ChainCmdMiddleware(cmdRebuild,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewarePreflight,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdRebuild(c *cli.Context) error {
	service := c.Args().First()
	if service == "" {
		return dyapi.ErrorMissingArgument("rebuild", "a service name")
	}
	y, err := openYard()
	if err != nil {
		return err
	}
	return newVagrant(c, y).Remote(c.Context, compose.Rebuild(service))
}
