// Command sessionify registers a session for a command with the configuration
// service and then execs the command with SCONE_CONFIG_ID set.
//
//	sessionify exec FOO=bar /usr/bin/app --flag
//	sessionify render --attestation hardware-insecure /usr/bin/app
//	sessionify validate --config ~/.cas/config.json
package main

import (
	"fmt"
	"os"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
