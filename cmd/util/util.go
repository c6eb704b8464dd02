package util

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pablin202/kvstore/lib/kv"
	"github.com/pablin202/kvstore/lib/kv/engines/fstore"
	"github.com/pablin202/kvstore/lib/kv/engines/memstore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupStoreFlags adds the common store flags to a command
func SetupStoreFlags(cmd *cobra.Command) {
	key := "dir"
	cmd.PersistentFlags().String(key, "", WrapString("Path to the storage directory (created if absent)"))

	key = "engine"
	cmd.PersistentFlags().String(key, "fstore", WrapString("Storage engine to use (fstore, memstore)"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("kvstore")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetStore creates a store based on the configured engine and directory
func GetStore() (kv.IStore, error) {
	switch viper.GetString("engine") {
	case "fstore":
		dir := viper.GetString("dir")
		if dir == "" {
			return nil, fmt.Errorf("a storage directory is required (--dir or KVSTORE_DIR)")
		}
		return fstore.New(fstore.Config{Dir: dir})
	case "memstore":
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("invalid engine %s", viper.GetString("engine"))
	}
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
