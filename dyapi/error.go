// Package dyapi holds the error codes and error constructors shared
// across the devyard tool.  Everything here is serum-flavored; the code
// strings are part of the tool's public API (they appear verbatim in
// `--json` output) and should not be changed casually.
package dyapi

import (
	"github.com/serum-errors/go-serum"
)

const (
	ECodeArgument    = "devyard-error-invalid-argument"
	ECodeDependency  = "devyard-error-missing-dependency"
	ECodeEnvironment = "devyard-error-no-environment"
	ECodeExternal    = "devyard-error-external-tool"
	ECodeGit         = "devyard-error-git"
	ECodeInitDirty   = "devyard-error-init-dirty"
	ECodeInternal    = "devyard-error-internal"
	ECodeIo          = "devyard-error-io"
	ECodeSearch      = "devyard-error-searching-filesystem"
)

// ErrorMissingArgument is returned when a command is invoked without a
// required positional argument.
//
// Errors:
//
//    - devyard-error-invalid-argument --
func ErrorMissingArgument(command string, what string) error {
	return serum.Error(ECodeArgument,
		serum.WithMessageTemplate("missing argument: {{command}} requires {{what}}"),
		serum.WithDetail("command", command),
		serum.WithDetail("what", what),
	)
}

// ErrorMissingDependency is returned when an external tool devyard
// delegates to cannot be resolved on the search path.
// The guidance string tells the user how to install the tool.
//
// Errors:
//
//    - devyard-error-missing-dependency --
func ErrorMissingDependency(name string, guidance string) error {
	return serum.Error(ECodeDependency,
		serum.WithMessageTemplate("required tool {{tool|q}} not found on PATH\n{{guidance}}"),
		serum.WithDetail("tool", name),
		serum.WithDetail("guidance", guidance),
	)
}

// ErrorNoEnvironment is returned when no marker file was found anywhere
// between the working directory and the filesystem root.
//
// Errors:
//
//    - devyard-error-no-environment --
func ErrorNoEnvironment(searchedFrom string) error {
	return serum.Error(ECodeEnvironment,
		serum.WithMessageLiteral("no devyard environment found; run 'devyard init' in an empty directory first"),
		serum.WithDetail("searchedFrom", searchedFrom),
	)
}

// ErrorExternalTool wraps a failure reported by a delegated external tool.
// The tool's own output is the primary signal; this just carries the exit
// status upward.
//
// Errors:
//
//    - devyard-error-external-tool --
func ErrorExternalTool(tool string, cause error) error {
	return serum.Error(ECodeExternal, serum.WithCause(cause),
		serum.WithMessageTemplate("external tool {{tool|q}} failed"),
		serum.WithDetail("tool", tool),
	)
}

// ErrorGit is returned when cloning a manifest repository fails.
//
// Errors:
//
//    - devyard-error-git --
func ErrorGit(remote string, cause error) error {
	return serum.Error(ECodeGit, serum.WithCause(cause),
		serum.WithMessageTemplate("git clone of {{remote|q}} failed"),
		serum.WithDetail("remote", remote),
	)
}

// ErrorInitDirty is returned when init is invoked in a non-empty directory.
//
// Errors:
//
//    - devyard-error-init-dirty --
func ErrorInitDirty(dir string) error {
	return serum.Error(ECodeInitDirty,
		serum.WithMessageLiteral("init requires an empty directory"),
		serum.WithDetail("dir", dir),
	)
}

// ErrorInternal is for miscellaneous errors that should be handled
// internally.  Prefer more specific constructors.
//
// Errors:
//
//    - devyard-error-internal --
func ErrorInternal(msg string, cause error) error {
	return serum.Errorf(ECodeInternal, "%s: %w", msg, cause)
}

// ErrorIo wraps generic I/O errors from the Go stdlib.
//
// Errors:
//
//    - devyard-error-io --
func ErrorIo(context string, path string, cause error) error {
	return serum.Error(ECodeIo, serum.WithCause(cause),
		serum.WithMessageTemplate("io error: {{context}} at {{path|q}}"),
		serum.WithDetail("context", context),
		serum.WithDetail("path", path),
	)
}

// ErrorSearchingFilesystem is returned when an unexpected error occurs
// while traversing the marker search path.
//
// Errors:
//
//    - devyard-error-searching-filesystem --
func ErrorSearchingFilesystem(searchingFor string, cause error) error {
	return serum.Error(ECodeSearch, serum.WithCause(cause),
		serum.WithMessageTemplate("error while searching filesystem for {{searchingFor}}"),
		serum.WithDetail("searchingFor", searchingFor),
	)
}
