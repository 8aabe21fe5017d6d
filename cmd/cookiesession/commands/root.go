package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cookiesession/pkg/config"
	"github.com/dmitrymomot/cookiesession/pkg/httpserver"
	"github.com/dmitrymomot/cookiesession/pkg/logger"
	"github.com/dmitrymomot/cookiesession/pkg/requestid"
	"github.com/dmitrymomot/cookiesession/pkg/session"
)

const serviceName = "cookiesession"

// appConfig is everything the binary reads from the environment or the
// --config YAML file.
type appConfig struct {
	Env      string            `env:"APP_ENV" envDefault:"development" yaml:"env"`
	LogLevel string            `env:"LOG_LEVEL" yaml:"log_level"`
	Session  session.Config    `yaml:"session"`
	HTTP     httpserver.Config `yaml:"http"`
}

type rootFlags struct {
	configFile string
	envFiles   []string
	secret     string
}

// NewRootCmd builds the command tree. Output goes to cmd.OutOrStdout so
// tests can capture it.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Signed cookie sessions: demo server and token tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(flags.envFiles) > 0 {
				return config.LoadEnv(flags.envFiles...)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "YAML config file (overrides environment)")
	root.PersistentFlags().StringSliceVar(&flags.envFiles, "env-file", nil, ".env files to load before reading the environment")
	root.PersistentFlags().StringVar(&flags.secret, "secret", "", "secret key (default $SESSION_SECRET_KEY)")

	root.AddCommand(serveCmd(flags), signCmd(flags), unsignCmd(flags), keygenCmd())
	return root
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// loadConfig reads the environment, the optional YAML file and finally the
// --secret flag, in increasing order of precedence.
func (f *rootFlags) loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.LoadFile(f.configFile, &cfg); err != nil {
		return cfg, err
	}
	if f.secret != "" {
		cfg.Session.SecretKey = f.secret
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg appConfig) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		lvl, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	return logger.New(opts...), nil
}
