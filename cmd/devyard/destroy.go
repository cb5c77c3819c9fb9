package main

import (
	"github.com/urfave/cli/v2"

	"github.com/devyard/devyard/cmd/devyard/internal/util"
)

var destroyCmdDef = cli.Command{
	Name:  "destroy",
	Usage: "Destroy the environment VM (cloned sources stay untouched)",
	Action: util.ChainCmdMiddleware(cmdDestroy,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewarePreflight,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdDestroy(c *cli.Context) error {
	y, err := openYard()
	if err != nil {
		return err
	}
	return newVagrant(c, y).Destroy(c.Context)
}
