package main

import (
	"github.com/urfave/cli/v2"

	"github.com/devyard/devyard/cmd/devyard/internal/util"
	"github.com/devyard/devyard/pkg/compose"
)

var logsCmdDef = cli.Command{
	Name:  "logs",
	Usage: "Stream the orchestration logs from inside the VM",
	Action: util.ChainCmdMiddleware(cmdLogs,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewarePreflight,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdLogs(c *cli.Context) error {
	y, err := openYard()
	if err != nil {
		return err
	}
	return newVagrant(c, y).Remote(c.Context, compose.Logs())
}
