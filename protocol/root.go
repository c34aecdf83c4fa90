package protocol

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/datazip-inc/source-shopify/constants"
	"github.com/datazip-inc/source-shopify/types"
	"github.com/datazip-inc/source-shopify/utils"
	"github.com/datazip-inc/source-shopify/utils/logger"
)

var (
	configPath  string
	catalogPath string
	statePath   string

	catalog *types.Catalog
	state   *types.State

	commands  = []*cobra.Command{}
	connector Driver
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "source-shopify",
	Short: "root command",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// set global variables

		viper.SetDefault(constants.ConfigFolder, os.TempDir())
		viper.SetDefault(constants.StatePath, filepath.Join(os.TempDir(), "state.json"))
		viper.SetDefault(constants.StreamsPath, filepath.Join(os.TempDir(), "streams.json"))
		if configPath != "" {
			configFolder := filepath.Dir(configPath)
			statePathEnv := utils.Ternary(statePath == "", filepath.Join(configFolder, "state.json"), statePath).(string)
			viper.Set(constants.ConfigFolder, configFolder)
			viper.Set(constants.StatePath, statePathEnv)
			viper.Set(constants.StreamsPath, filepath.Join(configFolder, "streams.json"))
		}

		// logger uses CONFIG_FOLDER
		logger.Init()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		if ok := utils.IsValidSubcommand(commands, args[0]); !ok {
			return fmt.Errorf("'%s' is an invalid command. Use 'source-shopify --help' to display usage guide", args[0])
		}

		return nil
	},
}

func CreateRootCommand(driver Driver) *cobra.Command {
	RootCmd.AddCommand(commands...)
	connector = driver

	return RootCmd
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "", "", "(Required) Config for the connector")
	RootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "", "", "Configured catalog of streams to sync")
	RootCmd.PersistentFlags().StringVarP(&statePath, "state", "", "", "State of the last sync")

	commands = append(commands, specCmd, checkCmd, discoverCmd, readCmd)
}
