package main

import (
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/urfave/cli/v2"

	"github.com/devyard/devyard/cmd/devyard/internal/util"
	"github.com/devyard/devyard/dyapi"
	"github.com/devyard/devyard/pkg/config"
	"github.com/devyard/devyard/pkg/stack"
	"github.com/devyard/devyard/pkg/vagrant"
	"github.com/devyard/devyard/pkg/yard"
)

var initCmdDef = cli.Command{
	Name:  "init",
	Usage: "Initialize a new environment in the current (empty) directory",
	Description: heredoc.Doc(`
		Sets up everything a fresh environment needs: copies the bundled
		Vagrantfile and docker-compose.yml here, installs the vagrant
		plugins used for in-VM orchestration, clones every repository of
		the stack, and patches the compose config so that all services
		except the primary one build from the cloned sources.

		Finishes by dropping the environment marker file; all other
		devyard commands require it.
	`),
	Action: util.ChainCmdMiddleware(cmdInit,
		util.CmdMiddlewareLogging,
		util.CmdMiddlewarePreflight,
		util.CmdMiddlewareTracingConfig,
		util.CmdMiddlewareTracingSpan,
	),
}

func cmdInit(c *cli.Context) error {
	pwd, err := os.Getwd()
	if err != nil {
		return dyapi.ErrorIo("getting working directory", ".", err)
	}
	templateDir, err := config.TemplateDir()
	if err != nil {
		return err
	}
	client := &vagrant.Client{
		Dir:    pwd,
		Stdin:  c.App.Reader,
		Stdout: c.App.Writer,
		Stderr: c.App.ErrWriter,
	}
	return yard.Init(c.Context, yard.InitConfig{
		Dir:           pwd,
		TemplateDir:   templateDir,
		Manifest:      stack.Manifest,
		Plugins:       yard.DefaultPlugins,
		InstallPlugin: client.InstallPlugin,
	})
}
