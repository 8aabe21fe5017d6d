// Package config loads application configuration into plain structs.
//
// It wraps `github.com/joho/godotenv`, `github.com/caarlos0/env/v11` and
// `gopkg.in/yaml.v3`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//   - Load parses the environment into any struct using `env` and
//     `envDefault` field tags. The default `.env` file is read once.
//   - LoadFile does the same and then overlays a YAML file, so a deployment
//     can keep most settings in a file and secrets in the environment.
//   - MustLoad and MustLoadEnv panic on failure for startup code.
//
// # Usage
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080" yaml:"addr"`
//	}
//
//	var cfg ServerConfig
//	if err := config.LoadFile("config.yaml", &cfg); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap one of the sentinels below and can be matched with errors.Is:
//
//   - ErrParsingConfig: environment variables could not be parsed.
//   - ErrLoadingEnvFile: a .env file could not be read.
//   - ErrReadingFile, ErrParsingFile: the YAML file is missing or invalid.
//   - ErrNilPointer: a nil pointer was passed.
package config
