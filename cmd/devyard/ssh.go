package main

import (
	"github.com/urfave/cli/v2"

	"github.com/devyard/devyard/cmd/devyard/internal/util"
)

var sshCmdDef = cli.Command{
	Name:  "ssh",
	Usage: "Open an interactive shell inside the VM",
	Action: util.ChainCmdMiddleware(cmdSSH,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewarePreflight,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdSSH(c *cli.Context) error {
	y, err := openYard()
	if err != nil {
		return err
	}
	return newVagrant(c, y).SSH(c.Context)
}
