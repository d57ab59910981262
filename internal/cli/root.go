package cli

import (
	"fmt"
	"strings"

	"github.com/mgpai22/subcue/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose    bool
	configFile string
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subcue",
	Short: "Play a subtitle track into a display file in time with audio",
	Long: `Subcue reads a SubRip subtitle track and rewrites an output file with
each subtitle's text at the moment it should appear, in step with an
audio file played alongside.

A display program watching the output file shows whatever it contains;
a single space means the display should be cleared.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)
		return initConfig()
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")
}

// flags > SUBCUE_* environment > config file > defaults
func initConfig() error {
	viper.SetEnvPrefix("SUBCUE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile == "" {
		return nil
	}

	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", configFile, err)
	}
	logger.Debugw("Loaded config", "file", viper.ConfigFileUsed())
	return nil
}
