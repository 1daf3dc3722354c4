// Package main generates CLI reference documentation for the server and
// maectl command trees.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	maectl "github.com/donaldgifford/msp-alert-engine/cmd/maectl/cmd"
	server "github.com/donaldgifford/msp-alert-engine/cmd/msp-alert-engine/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	trees := map[string]*cobra.Command{
		"msp-alert-engine": server.Root(),
		"maectl":           maectl.Root(),
	}

	for name, root := range trees {
		dir := filepath.Join(*output, name)
		if err := generate(root, dir); err != nil {
			log.Fatalf("generating %s docs: %v", name, err)
		}
		fmt.Printf("CLI docs for %s generated in %s/\n", name, dir)
	}
}

func generate(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	root.DisableAutoGenTag = true
	return doc.GenMarkdownTree(root, dir)
}
