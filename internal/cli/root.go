// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pwd-meter [COMMAND] [OPTIONS]",
		Short: "Estimate how strong a password is",
		Long: "Score passwords from 0 to 100, estimate their entropy and brute-force crack time, and list " +
			"what makes them weak. Passwords can be checked once, typed into a live meter, audited in bulk " +
			"from a file or evaluated by an HTTP API.",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
}

func Execute() error {
	return rootCmd.Execute()
}
