// Command formatkit invokes FormatKit operations and runs conformance scenarios.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/formatkit/internal/cli"
	"github.com/roach88/formatkit/internal/config"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing configuration: %v\n\n%s", err, config.Usage())
		os.Exit(cli.ExitCommandError)
	}

	cmd := cli.NewRootCommandWithConfig(cfg)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}

// loadConfig reads FORMATKIT_CONFIG when set, otherwise the environment alone.
func loadConfig() (config.Config, error) {
	if path := os.Getenv("FORMATKIT_CONFIG"); path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
