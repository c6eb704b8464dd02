package cmd

import (
	"fmt"
	"os"

	"github.com/pablin202/kvstore/cmd/kv"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "kvstore",
		Short: "file-backed key-value store",
		Long: fmt.Sprintf(`kvstore (v%s)

A single-node, file-backed key-value store written in Go.
Each key maps to exactly one file on disk, named by the
SHA-256 digest of the key.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of kvstore",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kvstore v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(kv.KeyValueCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
