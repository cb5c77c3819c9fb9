package main

import (
	"github.com/urfave/cli/v2"

	"github.com/devyard/devyard/cmd/devyard/internal/util"
)

var haltCmdDef = cli.Command{
	Name:  "halt",
	Usage: "Stop the environment VM",
	Action: util.ChainCmdMiddleware(cmdHalt,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewarePreflight,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdHalt(c *cli.Context) error {
	y, err := openYard()
	if err != nil {
		return err
	}
	return newVagrant(c, y).Halt(c.Context)
}
