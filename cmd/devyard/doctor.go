package main

import (
	"github.com/urfave/cli/v2"

	"github.com/devyard/devyard/cmd/devyard/internal/util"
	"github.com/devyard/devyard/pkg/healthcheck"
	"github.com/devyard/devyard/pkg/logging"
)

var doctorCmdDef = cli.Command{
	Name:  "doctor",
	Usage: "Check for potential errors in system configuration",
	// No preflight middleware here: doctor is what you run when the
	// preflight is the thing failing.
	Action: util.ChainCmdMiddleware(cmdDoctor,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdDoctor(c *cli.Context) error {
	ctx := c.Context
	log := logging.Ctx(ctx)

	runners := []healthcheck.Runner{
		&healthcheck.HostInfo{},
	}
	for _, req := range healthcheck.Requirements() {
		runners = append(runners, &healthcheck.BinCheck{Name: req.Name, Guidance: req.Guidance})
	}
	runners = append(runners, &healthcheck.GnuSedCheck{})

	hc := &healthcheck.HealthCheck{Runners: runners}
	if err := hc.Run(ctx); err != nil {
		log.Info("", "health check critical error: %s", err)
		return err
	}

	log.Debug("", "runners=%d, results=%d", len(hc.Runners), len(hc.Results))

	return hc.Fprint(c.App.Writer)
}
