package compose

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/serum-errors/go-serum"

	"github.com/devyard/devyard/dyapi"
	"github.com/devyard/devyard/pkg/logging"
	"github.com/devyard/devyard/pkg/stack"
)

const logTag = "compose"

// EditorName returns the GNU stream editor's name on this platform.
// Darwin ships a BSD sed whose -i flag is incompatible, so there the
// GNU build must be present under its customary alternate name.
func EditorName() string {
	if runtime.GOOS == "darwin" {
		return "gsed"
	}
	return "sed"
}

// GnuSedGuidance explains how to obtain the GNU stream editor.
var GnuSedGuidance = heredoc.Doc(`
	devyard patches docker-compose.yml with the GNU stream editor.
	On macOS, install it with:

	    brew install gnu-sed

	which provides it as 'gsed'.
`)

// LookupEditor resolves the GNU stream editor on PATH.
// Its absence is reported distinctly from the general dependency check,
// since it is a platform quirk rather than a missing orchestration tool.
//
// Errors:
//
//    - devyard-error-missing-dependency -- when the editor is not on PATH
func LookupEditor() (string, error) {
	path, err := exec.LookPath(EditorName())
	if err != nil {
		return "", serum.Error(dyapi.ECodeDependency, serum.WithCause(err),
			serum.WithMessageTemplate("GNU stream editor {{editor|q}} not found on PATH\n{{guidance}}"),
			serum.WithDetail("editor", EditorName()),
			serum.WithDetail("guidance", GnuSedGuidance),
		)
	}
	return path, nil
}

// SubstExpr builds the substitution expression rewriting the entry's
// image reference to a build directive pointing at its cloned source.
// The match is deliberately textual and exact, keyed on the image name --
// the same (fragile) behavior as patching the file by hand with sed.
func SubstExpr(e stack.Entry) string {
	return "s|image: " + regexpEscape(e.Image) + ":.*|build: ./" + e.Dir() + "|"
}

// PatchBuildFromSource rewrites the compose config in dir so that each
// given entry's service builds from its cloned repository instead of
// pulling the published image.  One in-place sed invocation per entry.
//
// Errors:
//
//    - devyard-error-missing-dependency -- when the GNU stream editor is not on PATH
//    - devyard-error-external-tool -- when the editor exits nonzero
func PatchBuildFromSource(ctx context.Context, dir string, entries []stack.Entry) error {
	editor, err := LookupEditor()
	if err != nil {
		return err
	}
	log := logging.Ctx(ctx)
	for _, e := range entries {
		expr := SubstExpr(e)
		log.Debug(logTag, "patching %s: %s", File, expr)
		cmd := exec.CommandContext(ctx, editor, "-i", "-e", expr, File)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			log.Info(logTag, "%s", strings.TrimSpace(string(out)))
			return dyapi.ErrorExternalTool(EditorName(), err)
		}
	}
	return nil
}

// regexpEscape escapes the BRE metacharacters that could occur in an
// image name, so the expression matches the name literally.
func regexpEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '.', '*', '[', ']', '^', '$', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
