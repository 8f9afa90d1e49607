// Root command for the agentmem CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/agentmem/internal/logging"
	"github.com/mesh-intelligence/agentmem/internal/paths"
	"github.com/mesh-intelligence/agentmem/pkg/agentmem"
)

// app carries global flag values and the configuration loaded before any
// subcommand runs.
type app struct {
	configDirFlag string
	dataDirFlag   string
	jsonMode      bool
	verbose       bool

	configDir string
	cfg       *viper.Viper
	log       *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:     "agentmem",
		Short:   "Persistence for an email-processing agent",
		Long:    "agentmem records known senders and the emails they have sent,\ntogether with the classification metadata produced by the agent.",
		Version: agentmem.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configDirFlag, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/agentmem)")
	root.PersistentFlags().StringVar(&a.dataDirFlag, "data-dir", "", "data directory holding the catalog (default: $XDG_DATA_HOME/agentmem)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newUserCmd(a))
	root.AddCommand(newEmailCmd(a))
	root.AddCommand(newClearCmd(a))

	return root
}

// load resolves the config directory, reads config.yaml and builds the logger.
func (a *app) load() error {
	configDir, err := paths.ResolveConfigDir(a.configDirFlag)
	if err != nil {
		return sysError("resolve config dir", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError("load config", err)
	}

	level := cfg.GetString(cfgKeyLogLevel)
	if a.verbose {
		level = "debug"
	}
	l, err := logging.New(level)
	if err != nil {
		return err
	}

	a.configDir = configDir
	a.cfg = cfg
	a.log = l
	return nil
}

// resolveDataDir applies --data-dir > AGENTMEM_DATA_DIR > config.yaml data_dir
// > platform default.
func (a *app) resolveDataDir() (string, error) {
	return paths.ResolveDataDir(a.dataDirFlag, a.cfg.GetString(cfgKeyDataDir))
}
