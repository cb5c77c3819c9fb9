package main

import (
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/devyard/devyard/dyapi"
	"github.com/devyard/devyard/pkg/vagrant"
	"github.com/devyard/devyard/pkg/yard"
)

// openYard finds the environment containing the working directory,
// walking every ancestor up to the filesystem root.
func openYard() (*yard.Yard, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return nil, dyapi.ErrorIo("getting working directory", ".", err)
	}
	// Drop the leading slash, for use with the fs package.
	y, err := yard.Find(os.DirFS("/"), "", strings.TrimPrefix(pwd, "/"))
	if err != nil {
		return nil, err
	}
	if y == nil {
		return nil, dyapi.ErrorNoEnvironment(pwd)
	}
	return y, nil
}

// newVagrant builds a vagrant client rooted at the yard,
// wired to the app's streams so external output flows through.
func newVagrant(c *cli.Context, y *yard.Yard) *vagrant.Client {
	return &vagrant.Client{
		Dir:    y.HostRoot(),
		Stdin:  c.App.Reader,
		Stdout: c.App.Writer,
		Stderr: c.App.ErrWriter,
	}
}
