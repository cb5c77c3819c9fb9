package config

const (
	// EnvDevyardPath overrides the detected install directory.
	// Mostly useful for tests and for running out of a build tree.
	EnvDevyardPath = "DEVYARD_PATH"
)
