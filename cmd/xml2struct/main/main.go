package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/xml2struct/cmd/xml2struct"
	"github.com/arthur-debert/xml2struct/pkg/ui/styles"
)

func main() {
	rootCmd := xml2struct.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, styles.Render(os.Stderr, "Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
