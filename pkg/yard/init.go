package yard

import (
	"context"
	"os"
	"path/filepath"

	"github.com/devyard/devyard/dyapi"
	"github.com/devyard/devyard/pkg/compose"
	"github.com/devyard/devyard/pkg/logging"
	"github.com/devyard/devyard/pkg/stack"
	"github.com/devyard/devyard/pkg/vagrant"
)

const logTag = "init"

// InitConfig parameterizes environment initialization.
// The function fields default to the real implementations;
// tests swap them for recorders.
type InitConfig struct {
	// Dir is the directory to initialize.  Must exist and be empty.
	Dir string
	// TemplateDir holds the files copied into Dir (Vagrantfile, compose config).
	TemplateDir string
	// Manifest lists the repositories to clone.  First entry is primary.
	Manifest []stack.Entry
	// Plugins are installed into the host's vagrant before first boot.
	Plugins []string

	// Clone defaults to GitClone.
	Clone CloneFunc
	// InstallPlugin defaults to a vagrant client rooted at Dir.
	InstallPlugin func(ctx context.Context, name string) error
	// Patch defaults to compose.PatchBuildFromSource.
	Patch func(ctx context.Context, dir string, es []stack.Entry) error
}

// DefaultPlugins are the two vagrant plugins the template Vagrantfile
// relies on for in-VM orchestration.
var DefaultPlugins = []string{
	"vagrant-docker-compose",
	"vagrant-vbguest",
}

// Init provisions a new environment in cfg.Dir: copies the template files,
// installs the orchestration plugins, clones every manifest repository,
// patches the compose config so non-primary services build from source,
// and finally drops the marker file.
//
// There is no rollback; a failure partway through leaves whatever was
// already done in place, and the delegated tool's error is surfaced as-is.
//
// Errors:
//
//    - devyard-error-init-dirty -- when Dir is not empty
//    - devyard-error-io -- when template files cannot be copied or the marker cannot be created
//    - devyard-error-git -- when a clone fails
//    - devyard-error-external-tool -- when plugin install or config patching fails
//    - devyard-error-missing-dependency -- when the GNU stream editor is not on PATH
func Init(ctx context.Context, cfg InitConfig) error {
	log := logging.Ctx(ctx)
	cfg = cfg.withDefaults()

	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		return dyapi.ErrorIo("reading target directory", cfg.Dir, err)
	}
	if len(entries) > 0 {
		return dyapi.ErrorInitDirty(cfg.Dir)
	}

	log.Info(logTag, "copying templates from %s", cfg.TemplateDir)
	if err := copyTemplates(cfg.TemplateDir, cfg.Dir); err != nil {
		return err
	}

	for _, plugin := range cfg.Plugins {
		if err := cfg.InstallPlugin(ctx, plugin); err != nil {
			return err
		}
	}

	for _, e := range cfg.Manifest {
		dst := filepath.Join(cfg.Dir, e.Dir())
		log.Info(logTag, "cloning %s into ./%s", e.Remote, e.Dir())
		if err := cfg.Clone(ctx, dst, e.Remote); err != nil {
			return err
		}
	}

	buildable := cfg.Manifest
	if len(buildable) > 0 {
		buildable = buildable[1:]
	}
	log.Info(logTag, "patching %s to build %d services from source", compose.File, len(buildable))
	if err := cfg.Patch(ctx, cfg.Dir, buildable); err != nil {
		return err
	}

	marker := filepath.Join(cfg.Dir, MagicFilename)
	if err := os.WriteFile(marker, nil, 0644); err != nil {
		return dyapi.ErrorIo("creating environment marker", marker, err)
	}
	log.Info(logTag, "environment ready; run 'devyard boot' to start the VM")
	return nil
}

func (cfg InitConfig) withDefaults() InitConfig {
	if cfg.Clone == nil {
		cfg.Clone = GitClone
	}
	if cfg.InstallPlugin == nil {
		client := &vagrant.Client{Dir: cfg.Dir, Stdout: os.Stdout, Stderr: os.Stderr}
		cfg.InstallPlugin = client.InstallPlugin
	}
	if cfg.Patch == nil {
		cfg.Patch = compose.PatchBuildFromSource
	}
	return cfg
}

// copyTemplates copies every regular file at the top of templateDir into dst.
func copyTemplates(templateDir, dst string) error {
	entries, err := os.ReadDir(templateDir)
	if err != nil {
		return dyapi.ErrorIo("reading template directory", templateDir, err)
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		src := filepath.Join(templateDir, entry.Name())
		data, err := os.ReadFile(src)
		if err != nil {
			return dyapi.ErrorIo("reading template", src, err)
		}
		out := filepath.Join(dst, entry.Name())
		if err := os.WriteFile(out, data, 0644); err != nil {
			return dyapi.ErrorIo("writing template copy", out, err)
		}
	}
	return nil
}
