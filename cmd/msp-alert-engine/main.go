// Package main is the entry point for the msp-alert-engine server.
package main

import (
	"os"

	"github.com/donaldgifford/msp-alert-engine/cmd/msp-alert-engine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
