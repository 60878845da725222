package main

import (
	"fmt"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/streampack/bitqueue/config"
)

var cfg = config.DefaultConfig()

func init() {
	setFlags(rootCmd.PersistentFlags(), cfg)
	rootCmd.PersistentFlags().String("config", "", "config file path")
	_ = viper.BindPFlags(rootCmd.PersistentFlags())
}

func setFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.UintVar(&cfg.QueueSize, "queue-size", cfg.QueueSize, "queue backing buffer size, in bytes")
	fs.UintVar(&cfg.WriteChunk, "write-chunk", cfg.WriteChunk, "bits per write call")
	fs.UintVar(&cfg.ReadChunk, "read-chunk", cfg.ReadChunk, "bits per read call")
	fs.UintVar(&cfg.Rounds, "rounds", cfg.Rounds, "bench fill/drain rounds")
}

// loadConfig merges the optional config file under the CLI flags: a flag
// given explicitly on the command line always wins.
func loadConfig(cmd *cobra.Command) error {
	fileLocation := viper.GetString("config")
	if fileLocation != "" {
		vip := viper.New()
		vip.SetConfigFile(smutil.GetCanonicalPath(fileLocation))
		if err := vip.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %v", err)
		}
		if err := vip.Unmarshal(cfg); err != nil {
			return fmt.Errorf("failed to parse config: %v", err)
		}
		ensureCLIFlags(cmd, cfg)
	}

	return cfg.Validate()
}

// ensureCLIFlags re-applies flags set on the command line over values read
// from the config file.
func ensureCLIFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "queue-size":
			cfg.QueueSize = viper.GetUint(f.Name)
		case "write-chunk":
			cfg.WriteChunk = viper.GetUint(f.Name)
		case "read-chunk":
			cfg.ReadChunk = viper.GetUint(f.Name)
		case "rounds":
			cfg.Rounds = viper.GetUint(f.Name)
		}
	})
}
