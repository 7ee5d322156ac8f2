// Package logging builds the zap logger shared by the CLI's internal
// packages. Diagnostics go to stderr so they never mix with command output.
package logging
