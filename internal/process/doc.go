// Package process runs external commands on behalf of the CLI. It defines the
// Runner interface consumed by the requirement verifier, an os/exec backed
// implementation, and typed errors that separate a missing executable from a
// command that ran and exited non-zero.
package process
