// Package templates scaffolds a new application from the Cartesi
// application-templates repository. It resolves a template name and branch to
// a repository tarball, downloads it, and unpacks the template's subdirectory
// into the destination. It powers the "cartesi create" command.
package templates
