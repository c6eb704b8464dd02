package kv

import (
	"github.com/pablin202/kvstore/cmd/util"
	"github.com/pablin202/kvstore/lib/kv"
	"github.com/spf13/cobra"
)

var (
	store kv.IStore

	// KeyValueCommands represents the KV command group
	KeyValueCommands = &cobra.Command{
		Use:               "kv",
		Short:             "Perform key-value store operations",
		PersistentPreRunE: setupStore,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Finalizers run even when a subcommand's RunE fails, unlike
	// PersistentPostRunE, so failed operations release the store too.
	cobra.OnFinalize(teardownStore)

	// Add common store flags to the KV command
	util.SetupStoreFlags(KeyValueCommands)

	// Add subcommands
	KeyValueCommands.AddCommand(putCmd)
	KeyValueCommands.AddCommand(getCmd)
	KeyValueCommands.AddCommand(removeCmd)
	KeyValueCommands.AddCommand(containsCmd)
	KeyValueCommands.AddCommand(clearCmd)
	KeyValueCommands.AddCommand(perfTestCmd)
}

// setupStore opens the store the subcommands operate on
func setupStore(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	var err error
	store, err = util.GetStore()
	return err
}

// teardownStore closes the store after the subcommand has run
func teardownStore() {
	if store != nil {
		_ = store.Close()
	}
}
