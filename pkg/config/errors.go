package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("config.parsing_failed")

	// ErrLoadingEnvFile is returned when a .env file cannot be read
	ErrLoadingEnvFile = errors.New("config.env_file")

	// ErrReadingFile is returned when a YAML config file cannot be read
	ErrReadingFile = errors.New("config.read_file")

	// ErrParsingFile is returned when a YAML config file is not valid for the target struct
	ErrParsingFile = errors.New("config.parse_file")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("config.nil_pointer")
)
