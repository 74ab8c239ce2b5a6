package policyfile

import "errors"

// Package-specific errors.
var (
	// ErrReadFile is returned when the policy file cannot be read.
	ErrReadFile = errors.New("policyfile: failed to read policy file")

	// ErrParseFile is returned when the policy file is not valid YAML.
	ErrParseFile = errors.New("policyfile: failed to parse policy file")

	// ErrInvalidPolicy is returned when the document parses but violates
	// the policy schema (unknown enum values, duplicates, grants that
	// reference undeclared tenants).
	ErrInvalidPolicy = errors.New("policyfile: invalid policy document")

	// ErrParseEnv is returned when environment variables cannot be parsed
	// into the config struct.
	ErrParseEnv = errors.New("policyfile: failed to parse environment variables")
)
