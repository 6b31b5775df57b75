// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/alvinbaena/pwd-meter/internal/api"
	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/spf13/cobra"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the password strength API",
		Long: "Serve the password strength API under /v1/strength. Settings are read from the environment " +
			"(PORT, SELF_TLS, TLS_CERT, TLS_KEY, CACHE_SIZE, DEBUG) or a .env file, flags take precedence.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCommand(cmd)
		},
	}
)

func init() {
	serveCmd.Flags().BoolVar(&selfTLS, "self-tls", false,
		"If the server should use a self-signed certificate when starting. The certificate is renewed on each server restart")
	serveCmd.Flags().StringVar(&tlsCert, "tls-cert", "", "Path to the PEM encoded TLS certificate to be used by the server")
	serveCmd.Flags().StringVar(&tlsKey, "tls-key", "", "Path to the PEM encoded TLS private key to be used by the server")
	serveCmd.Flags().StringVarP(&port, "port", "p", "3100", "Port to be used by the server")
	serveCmd.Flags().Int64Var(&cacheSize, "cache-size", 10000, "Maximum number of cached reports. 0 disables the cache")

	rootCmd.AddCommand(serveCmd)
}

func serveCommand(cmd *cobra.Command) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	cfg, err := api.LoadConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	return api.Serve(cfg)
}
