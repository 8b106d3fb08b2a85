package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/intervaltree"
	"github.com/inodb/intervaltree/internal/intervalfile"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "itree",
		Short:   "Query named intervals on an ordered line",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Long: `itree indexes named intervals from a YAML file in a self-balancing
interval tree and answers point and range queries against them.`,
		Example: `  itree query point 75 -f intervals.yaml
  itree query range 50 100 -f intervals.yaml
  itree list -f intervals.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
		},
	}

	cmd.PersistentFlags().StringP("intervals", "f", "", "YAML file of intervals to load")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	_ = viper.BindPFlag("intervals", cmd.PersistentFlags().Lookup("intervals"))
	_ = viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	cmd.AddCommand(newQueryCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig reads ~/.itree.yaml if present; flags take precedence.
func initConfig() {
	if viper.ConfigFileUsed() != "" {
		return
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".itree")
	viper.SetConfigType("yaml")
	_ = viper.ReadInConfig()
}

func newLogger() *zap.Logger {
	if !viper.GetBool("verbose") {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadTree builds the tree from the configured interval file.
func loadTree() (*intervaltree.Tree[float64], error) {
	path := viper.GetString("intervals")
	if path == "" {
		return nil, fmt.Errorf("no interval file: pass --intervals or run 'itree config set intervals <path>'")
	}

	loader := intervalfile.NewLoader()
	loader.SetLogger(newLogger())
	return loader.Load(path)
}
