package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hammamikhairi/recipebox/internal/config"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

// commandContext carries flags and the loaded configuration to subcommands.
type commandContext struct {
	configFlag string
	verbose    bool
	quiet      bool
	cfg        config.Config
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}
	var opts replOptions

	rootCmd := &cobra.Command{
		Use:           "recipebox",
		Short:         "Keep recipes, scale them and print shopping lists",
		Long:          "Recipe Box keeps a list of recipes in an interactive terminal session, imports and exports them as .rcpe files and scales them into shopping lists.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["skipConfigLoad"] == "true" {
				return nil
			}
			return ctx.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), ctx, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "config file (default .recipebox.toml)")
	flags.BoolVarP(&ctx.verbose, "verbose", "v", false, "enable verbose/debug logging")
	flags.BoolVarP(&ctx.quiet, "quiet", "q", false, "disable all logging")
	flags.String("dir", "", "recipe library directory")
	flags.String("log-file", "", "file to write logs to in the interactive session (use \"stderr\" to log to console)")

	rootCmd.Flags().BoolVar(&opts.seed, "seed", false, "start with the built-in sample recipes")
	rootCmd.Flags().StringArrayVar(&opts.imports, "import", nil, "import a recipe file at startup (repeatable)")

	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newShopCommand(ctx))
	rootCmd.AddCommand(newConvertCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// load reads the config file, RECIPEBOX_* env vars and bound flags.
func (c *commandContext) load(cmd *cobra.Command) error {
	viper.Reset()

	if c.configFlag != "" {
		viper.SetConfigFile(c.configFlag)
	} else {
		viper.SetConfigName(config.FileName)
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// It's fine if no config file is found; we use defaults.
		var notFound viper.ConfigFileNotFoundError
		if c.configFlag != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if f := cmd.Flags().Lookup("dir"); f != nil {
		if err := viper.BindPFlag("library.dir", f); err != nil {
			return err
		}
	}
	if f := cmd.Flags().Lookup("log-file"); f != nil {
		if err := viper.BindPFlag("logging.file", f); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

// logLevel applies --verbose and --quiet over the configured level.
func (c *commandContext) logLevel() logger.Level {
	switch {
	case c.quiet:
		return logger.LevelOff
	case c.verbose:
		return logger.LevelVerbose
	}
	return c.cfg.LogLevel()
}

// newLogger returns a stderr logger for the one-shot commands.
func (c *commandContext) newLogger(cmd *cobra.Command) *logger.Logger {
	return logger.New(c.logLevel(), cmd.ErrOrStderr())
}

func (c *commandContext) store(log *logger.Logger) *storage.FileStore {
	return storage.NewFileStore(c.cfg.Library.Dir, log, storage.WithExtension(c.cfg.Library.Extension))
}
