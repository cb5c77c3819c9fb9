// Package stack declares the fixed repository manifest for the application
// stack devyard manages.  The manifest is ordered: the first entry is the
// primary service, whose image is pulled from the registry as published;
// every other entry is cloned and built from its local source tree.
package stack

import (
	"path"
	"strings"
)

// Entry pairs a git remote with the container image name its repository
// publishes.
type Entry struct {
	Remote string
	Image  string
}

// Dir returns the directory name the repository is cloned into,
// which is the last path segment of the remote with any ".git"
// suffix trimmed.
func (e Entry) Dir() string {
	return strings.TrimSuffix(path.Base(e.Remote), ".git")
}

// Manifest is the ordered list of repositories making up the stack.
var Manifest = []Entry{
	{Remote: "https://github.com/acmelabs/platform-base.git", Image: "acmelabs/platform-base"},
	{Remote: "https://github.com/acmelabs/accounts-svc.git", Image: "acmelabs/accounts-svc"},
	{Remote: "https://github.com/acmelabs/billing-svc.git", Image: "acmelabs/billing-svc"},
	{Remote: "https://github.com/acmelabs/web-frontend.git", Image: "acmelabs/web-frontend"},
}

// Primary returns the manifest entry whose image is never rewritten.
func Primary() Entry {
	return Manifest[0]
}

// Buildable returns the manifest entries whose compose services are
// patched to build from the cloned source instead of pulling the image.
func Buildable() []Entry {
	return Manifest[1:]
}
