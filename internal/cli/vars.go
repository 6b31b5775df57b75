// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// audit
	inputFile string
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// check
	output string
	// remote
	remoteOutput string
	// check
	interactive bool
	// check
	fromStdin bool
	// audit
	threads int
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string
	// serve
	port string
	// serve
	cacheSize int64
	// remote
	serverURL string
	// remote
	insecure bool
	// remote
	evaluateOnly bool
	// remote
	remoteBits int
)
