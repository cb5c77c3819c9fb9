package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/serum-errors/go-serum"
	"github.com/urfave/cli/v2"

	"github.com/devyard/devyard/dyapi"
)

const VERSION = "v0.1.0"

func makeApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "devyard"
	app.Version = VERSION
	app.Usage = "Local VM development environments for the acmelabs stack."
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Reader = stdin
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version",
	}
	app.HideVersion = true
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
		},
		&cli.BoolFlag{
			Name: "quiet",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Enable JSON API output",
		},
		&cli.StringFlag{
			Name:      "trace.file",
			Usage:     "Enable tracing and emit output to file",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:  "trace.http.enable",
			Usage: "Enable remote tracing over http",
		},
		&cli.BoolFlag{
			Name:  "trace.http.insecure",
			Usage: "Allows insecure http",
		},
		&cli.StringFlag{
			Name:  "trace.http.endpoint",
			Usage: "Sets an endpoint for remote open-telemetry tracing collection",
		},
	}
	app.ExitErrHandler = exitErrHandler
	app.Action = cmdDefault
	app.Commands = []*cli.Command{
		&initCmdDef,
		&bootCmdDef,
		&haltCmdDef,
		&destroyCmdDef,
		&containersCmdDef,
		&rebuildCmdDef,
		&logsCmdDef,
		&runCmdDef,
		&sshCmdDef,
		&doctorCmdDef,
	}
	return app
}

// cmdDefault handles a bare or unrecognized invocation:
// usage text, then a nonzero exit.
func cmdDefault(c *cli.Context) error {
	cli.ShowAppHelp(c)
	if c.Args().Present() {
		return serum.Error(dyapi.ECodeArgument,
			serum.WithMessageTemplate("unknown command {{command|q}}"),
			serum.WithDetail("command", c.Args().First()),
		)
	}
	return serum.Error(dyapi.ECodeArgument,
		serum.WithMessageLiteral("no command given"),
	)
}

// Called after a command returns a non-nil error value.
// Prints the formatted error to stderr.
func exitErrHandler(c *cli.Context, err error) {
	if err == nil {
		return
	}
	if c.Bool("json") {
		bytes, err := json.Marshal(err)
		if err != nil {
			panic("error marshaling json")
		}
		fmt.Fprintf(c.App.ErrWriter, "%s\n", string(bytes))
	} else {
		fmt.Fprintf(c.App.ErrWriter, "error: %s\n", err)
	}
}

func main() {
	err := makeApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args)
	if err != nil {
		os.Exit(1)
	}
}
