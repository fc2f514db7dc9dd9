/*
Bridgecli is a command line client of the vault.

It manages validator keys, signs and verifies release proofs offline and
checks genesis files before a chain is started with them.
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iov-one/bridge"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"
)

// Flag names.
const (
	logLevelFlag = "logLevel"
	keyFlag      = "key"
	configFlag   = "config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// config carries the settings shared by all commands. Flags can be set in
// the environment using the BRIDGECLI_ prefix, for example BRIDGECLI_KEY,
// or in the file given by --config.
type config struct {
	v *viper.Viper
}

func (c config) keyPath() string {
	return c.v.GetString(keyFlag)
}

func (c config) logger(cmd *cobra.Command) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(cmd.ErrOrStderr()))
	level, err := log.AllowLevel(strings.ToLower(c.v.GetString(logLevelFlag)))
	if err != nil {
		return nil, err
	}
	return log.NewFilter(logger, level), nil
}

func newRootCmd() *cobra.Command {
	conf := config{v: viper.New()}
	conf.v.SetEnvPrefix("BRIDGECLI")
	conf.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "bridgecli",
		Short:        "Client of the cross-chain vault",
		Version:      bridge.Version(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := conf.v.GetString(configFlag)
			if path == "" {
				return nil
			}
			conf.v.SetConfigFile(path)
			if err := conf.v.ReadInConfig(); err != nil {
				return fmt.Errorf("cannot read config file: %s", err)
			}
			return nil
		},
	}
	root.PersistentFlags().String(logLevelFlag, "info", "Log level: debug, info, error or none")
	root.PersistentFlags().String(configFlag, "", "Optional yaml file with flag values")
	root.PersistentFlags().String(keyFlag, filepath.Join(os.Getenv("HOME"), ".bridge.priv.key"), "Path to the private key file")
	if err := conf.v.BindPFlags(root.PersistentFlags()); err != nil {
		panic(fmt.Sprintf("cannot bind flags: %s", err))
	}

	root.AddCommand(
		newKeysCmd(conf),
		newProofCmd(conf),
		newGenesisCmd(conf),
	)
	return root
}
