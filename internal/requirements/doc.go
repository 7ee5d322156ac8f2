// Package requirements verifies that the local machine can run the Cartesi
// tooling. A Verifier walks an ordered list of Requirements (docker, then the
// compose and buildx subsystems), invoking each tool through a process.Runner,
// coercing a semantic version out of its output and comparing it against a
// minimum. The first unmet requirement stops the run and is reported as a
// classified CheckResult; any unexpected invocation failure is returned as is.
package requirements
