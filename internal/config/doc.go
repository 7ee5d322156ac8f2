// Package config manages user-level settings stored at ~/.cartesi/config.yaml.
// Every key can be overridden with a CARTESI_ environment variable (dots become
// underscores), e.g. CARTESI_TEMPLATES_BRANCH. The file can be checked against
// an embedded JSON schema with ValidateFile.
package config
