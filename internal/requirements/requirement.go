package requirements

import "github.com/Masterminds/semver/v3"

// Minimum supported versions of the docker toolchain.
const (
	MinimumDockerVersion  = "23.0.0"
	MinimumComposeVersion = "2.21.0"
	MinimumBuildxVersion  = "0.13.0"
)

// RiscvPlatform is the build platform every Cartesi machine image targets.
const RiscvPlatform = "linux/riscv64"

// SubcommandUnavailableExitCode is what the docker CLI exits with when a
// plugin subcommand (compose, buildx) is not installed.
const SubcommandUnavailableExitCode = 125

// Requirement is a named minimum-version constraint on an external tool.
type Requirement struct {
	// Name is the display name used in diagnostics, e.g. "Docker Compose".
	Name string
	// Tool is the executable reported when it cannot be found.
	Tool    string
	Minimum *semver.Version
	// Command and Args produce output containing the installed version.
	Command string
	Args    []string
	// ReportAbsent classifies a missing executable as ToolAbsent. When false,
	// a missing executable is an unclassified failure.
	ReportAbsent bool
	// UnusableExitCode, when non-zero, classifies that exit code of any
	// invocation in this check as SubsystemUnusable with UnusableMessage.
	UnusableExitCode int
	UnusableMessage  string
	// Capability is an optional platform check run after the version check.
	Capability *Capability
}

// Capability is a platform feature reported by a listing command.
type Capability struct {
	// Name is the token that must appear in the listing, e.g. "linux/riscv64".
	Name string
	// Command and Args print a comma-separated list of supported tokens.
	Command string
	Args    []string
	// Remediation is the diagnostic shown when the token is absent.
	Remediation string
}

// Default returns the docker, compose and buildx requirements in the order
// they must be checked. Later checks call docker plugins and assume the
// docker CLI itself is present.
func Default() []Requirement {
	return []Requirement{
		{
			Name:         "Docker",
			Tool:         "docker",
			Minimum:      semver.MustParse(MinimumDockerVersion),
			Command:      "docker",
			Args:         []string{"version", "--format", "{{json .Client.Version}}"},
			ReportAbsent: true,
		},
		{
			Name:             "Docker Compose",
			Tool:             "docker",
			Minimum:          semver.MustParse(MinimumComposeVersion),
			Command:          "docker",
			Args:             []string{"compose", "version", "--short"},
			UnusableExitCode: SubcommandUnavailableExitCode,
			UnusableMessage: "Docker Compose is required but not installed or the command execution failed. " +
				"Please refer to the Docker Compose documentation for installation instructions: https://docs.docker.com/compose/install/",
		},
		{
			Name:             "Docker Buildx",
			Tool:             "docker",
			Minimum:          semver.MustParse(MinimumBuildxVersion),
			Command:          "docker",
			Args:             []string{"buildx", "version"},
			UnusableExitCode: SubcommandUnavailableExitCode,
			UnusableMessage: "Docker Buildx is required but not installed. " +
				"Please refer to the Docker Desktop documentation for installation instructions: https://docs.docker.com/desktop/",
			Capability: &Capability{
				Name:    RiscvPlatform,
				Command: "docker",
				Args:    []string{"buildx", "ls", "--format", "{{.Platforms}}"},
				Remediation: "Your system does not support riscv64 architecture. " +
					"Run `docker run --privileged --rm tonistiigi/binfmt:riscv` to enable riscv64 support.",
			},
		},
	}
}
