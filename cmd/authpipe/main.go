// Package main is the entry point for authpipe.
package main

import (
	"context"
	"os"

	"charm.land/fang/v2"
	"github.com/spf13/cobra"
)

const (
	defaultConfigFile = "authpipe.yaml"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "authpipe",
	Short: "Configurable client-side authentication provider",
	Long: `authpipe executes declarative authentication actions (login, register,
logout, password request/reset, token refresh) against a backend, interprets
the response through configurable extractors, and prints one normalized
result per action.`,
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file path (default: ./"+defaultConfigFile+" or ~/.config/authpipe/"+defaultConfigFile+")")
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
