package main

import (
	"errors"
	"fmt"
	"os"

	"fourcc/internal/config"
	"fourcc/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newConfigCmd manages the config file.
func (a *app) newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the fourcc config file",
		// Skips the root setup so a broken config file can still be replaced.
		PersistentPreRunE: a.setupDefaults,
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Long: `Writes the default configuration to --config, $FOURCC_CONFIG or
<user config dir>/fourcc/config.yaml. An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigInit(cmd, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(initCmd)
	return configCmd
}

// setupDefaults builds the logger from the default config without reading the file.
func (a *app) setupDefaults(cmd *cobra.Command, args []string) error {
	a.cfg = config.DefaultConfig()
	var err error
	a.log, err = logging.New(logging.Options{
		Level:   a.cfg.Logging.Level,
		Format:  a.cfg.Logging.Format,
		Verbose: a.verbose,
		Output:  cmd.ErrOrStderr(),
	})
	return err
}

func (a *app) runConfigInit(cmd *cobra.Command, force bool) error {
	path := a.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return errors.New("no config path: pass --config or set FOURCC_CONFIG")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := a.cfg.Save(path); err != nil {
		return err
	}
	a.log.Get(logging.CategoryConfig).Debug("wrote default configuration", zap.String("path", path))

	_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}
