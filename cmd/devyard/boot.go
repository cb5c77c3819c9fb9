package main

import (
	"github.com/urfave/cli/v2"

	"github.com/devyard/devyard/cmd/devyard/internal/util"
	"github.com/devyard/devyard/pkg/logging"
)

var bootCmdDef = cli.Command{
	Name:  "boot",
	Usage: "Create and start the environment VM",
	Action: util.ChainCmdMiddleware(cmdBoot,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewarePreflight,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdBoot(c *cli.Context) error {
	ctx := c.Context
	log := logging.Ctx(ctx)
	y, err := openYard()
	if err != nil {
		return err
	}
	client := newVagrant(c, y)
	if err := client.Up(ctx); err != nil {
		// A half-provisioned VM is worse than none; tear it down
		// before surfacing the original failure.
		log.Info("boot", "vagrant up failed; destroying the partial VM")
		if derr := client.Destroy(ctx); derr != nil {
			log.Info("boot", "cleanup destroy also failed: %s", derr)
		}
		return err
	}
	log.Info("boot", "VM is up; 'devyard ssh' opens a shell inside it")
	return nil
}
