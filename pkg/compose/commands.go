// Package compose builds the docker-compose invocations devyard issues
// inside the VM, and patches the compose config during init.
package compose

import (
	"github.com/devyard/devyard/pkg/vagrant"
)

// File is the orchestration config at the environment root.
const File = "docker-compose.yml"

const bin = "docker-compose"

// ListServices lists the service names configured in the compose file.
func ListServices() vagrant.RemoteCommand {
	return vagrant.RemoteArgv(bin, "config", "--services")
}

// Rebuild rebuilds the named service from source and restarts it:
// build, stop, remove, then bring back up detached.
func Rebuild(service string) vagrant.RemoteCommand {
	return vagrant.RemoteArgv(bin, "build", service).
		And(vagrant.RemoteArgv(bin, "stop", service)).
		And(vagrant.RemoteArgv(bin, "rm", "-f", service)).
		And(vagrant.RemoteArgv(bin, "up", "-d", service))
}

// Logs follows the aggregate service logs.
func Logs() vagrant.RemoteCommand {
	return vagrant.RemoteArgv(bin, "logs", "-f", "--tail=100")
}
