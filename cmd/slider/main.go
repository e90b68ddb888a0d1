// Command slider renders, watches and previews image sliders described by a
// slider.yaml file.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/slider/cmd/slider/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
