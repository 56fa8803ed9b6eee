package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mhazell/inspircd-auth-gate/internal/config"
	"github.com/mhazell/inspircd-auth-gate/internal/gate"
	"github.com/mhazell/inspircd-auth-gate/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	var (
		message     string
		output      string
		parent      string
		url         string
		configPath  string
		verbose     bool
		showVersion bool
	)

	// Define flags (long and short forms)
	flag.StringVar(&message, "message", config.DefaultMessage, "Deny reason shown to unauthenticated connections")
	flag.StringVar(&message, "m", config.DefaultMessage, "Shorthand for -message")
	flag.StringVar(&output, "output", "", "Output file, where the configuration will be written. If not specified, output will be written to stdout.")
	flag.StringVar(&output, "o", "", "Shorthand for -output")
	flag.StringVar(&parent, "parent", config.DefaultParent, "Parent connect class to inherit from, e.g. main.")
	flag.StringVar(&parent, "p", config.DefaultParent, "Shorthand for -parent")
	flag.StringVar(&url, "url", config.DefaultURL, "URL of the IP list. It is expected to be a plaintext list, one IP/CIDR per line.")
	flag.StringVar(&url, "u", config.DefaultURL, "Shorthand for -url")
	flag.StringVar(&configPath, "config", "", "Path to a TOML configuration file defining one or more gates. Overrides the other flags.")
	flag.StringVar(&configPath, "c", "", "Shorthand for -config")
	flag.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "InspIRCd Authentication Gate Generator\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Fetches a plaintext IP/CIDR list and generates an InspIRCd\n")
		fmt.Fprintf(os.Stderr, "authentication gate configuration (allow + deny connect blocks).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("inspircd-auth-gate %s (commit: %s, date: %s)\n", version, commit, date)
		os.Exit(0)
	}

	if verbose {
		log.SetVerbose(true)
	}

	cfg, err := buildConfig(configPath, message, output, parent, url)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation is failed: %v", err)
	}

	if err := gate.NewGenerator(cfg).Run(); err != nil {
		log.Fatalf("Failed to generate authentication gate: %v", err)
	}
}

func buildConfig(configPath, message, output, parent, url string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.FromFlags(message, output, parent, url), nil
}
