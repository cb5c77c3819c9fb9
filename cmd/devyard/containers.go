package main

import (
	"github.com/urfave/cli/v2"

	"github.com/devyard/devyard/cmd/devyard/internal/util"
	"github.com/devyard/devyard/pkg/compose"
)

var containersCmdDef = cli.Command{
	Name:  "containers",
	Usage: "List the service names configured in the environment",
	Action: util.ChainCmdMiddleware(cmdContainers,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewarePreflight,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdContainers(c *cli.Context) error {
	y, err := openYard()
	if err != nil {
		return err
	}
	return newVagrant(c, y).Remote(c.Context, compose.ListServices())
}
