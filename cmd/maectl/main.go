// Package main is the entry point for the maectl CLI client.
package main

import (
	"github.com/donaldgifford/msp-alert-engine/cmd/maectl/cmd"
)

func main() {
	cmd.Execute()
}
