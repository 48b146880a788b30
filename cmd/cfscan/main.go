// cfscan - Bulk scanner for Cloudflare-fronted domains
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/loglnx/ProxyIP/internal/colors"
	"github.com/loglnx/ProxyIP/internal/version"
	"github.com/loglnx/ProxyIP/pkg/core"
	"github.com/loglnx/ProxyIP/pkg/input"
	"github.com/loglnx/ProxyIP/pkg/output"
	"github.com/loglnx/ProxyIP/pkg/scan"
)

func main() {
	config := parseFlags()

	colors.Init(colors.ShouldUseColors(config.NoColor))

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %s%s\n", colors.RED, err, colors.NC)
		os.Exit(1)
	}

	// Load the domain batch
	domains, err := input.LoadDomains(config.InputFile, config.BatchSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sError loading domains: %s%s\n", colors.RED, err, colors.NC)
		os.Exit(1)
	}

	// Create scanner
	s, err := scan.New(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sError creating scanner: %s%s\n", colors.RED, err, colors.NC)
		os.Exit(1)
	}

	if !config.Quiet {
		printBanner(config, len(domains))
	}

	// Create output writer
	formatter := output.NewFormatter(config.Format, colors.ShouldUseColors(config.NoColor), config.ShowAll)
	writer, err := output.NewWriter(config.OutputFile, formatter, config.Quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sError creating output writer: %s%s\n", colors.RED, err, colors.NC)
		os.Exit(1)
	}
	defer writer.Close()

	// Wire progress display
	prog := output.NewProgress(!config.NoProgress && !config.Quiet, colors.ShouldUseColors(config.NoColor))
	s.SetMatchCallback(func(result *core.ProbeResult, snapshot core.Progress) {
		prog.Match(snapshot, result.Domain)
	})
	s.SetProgressCallback(func(snapshot core.Progress) {
		prog.Update(snapshot)
	})

	// Run the scan
	result := s.Run(context.Background(), domains)
	prog.Finish(result.Snapshot())

	// Write results
	switch config.Format {
	case core.FormatJSON:
		if err := writer.WriteMatched(result.Matched); err != nil {
			fmt.Fprintf(os.Stderr, "%sError writing results: %s%s\n", colors.RED, err, colors.NC)
			os.Exit(1)
		}
	case core.FormatCSV:
		if err := writer.WriteCSV(result); err != nil {
			fmt.Fprintf(os.Stderr, "%sError writing results: %s%s\n", colors.RED, err, colors.NC)
			os.Exit(1)
		}
	default:
		for _, r := range result.Results {
			writer.WriteResult(*r)
		}
	}

	writer.WriteSummary(result.Summary)

	if result.Summary.MatchedCount > 0 {
		os.Exit(0)
	}
	os.Exit(1)
}

func parseFlags() *core.Config {
	config := core.DefaultConfig()

	var configFile string
	flag.StringVar(&configFile, "config", "", "Config file path (YAML)")

	flag.StringVarP(&config.InputFile, "input", "i", "", "Input file with domains (CSV rank,domain or one per line)")
	flag.IntVarP(&config.BatchSize, "batch", "b", 10000, "Max domains to probe (0 = all)")

	flag.IntVarP(&config.Workers, "workers", "j", 100, "Number of concurrent probes")

	var timeout int
	var connectTimeout int
	flag.IntVarP(&timeout, "timeout", "t", 5, "Probe timeout in seconds")
	flag.IntVar(&connectTimeout, "connect-timeout", 3, "TCP connect timeout in seconds")
	flag.StringVar(&config.UserAgent, "user-agent", "", "Custom User-Agent header")
	flag.StringVar(&config.ProxyURL, "proxy", "", "Proxy URL (http://, https://, socks5://)")

	flag.StringVarP(&config.OutputFile, "output", "o", "cf_domains.json", "Output file")
	var format string
	flag.StringVarP(&format, "format", "f", "json", "Output format (text|json|csv)")
	flag.BoolVarP(&config.Quiet, "quiet", "q", false, "Quiet mode")
	flag.BoolVarP(&config.ShowAll, "show-all", "a", false, "Show unmatched/failed probes too")
	flag.BoolVar(&config.NoColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&config.NoProgress, "no-progress", false, "Disable progress output")

	showVersion := flag.BoolP("version", "V", false, "Show version")

	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%s\n", version.AppName, version.Version)
		fmt.Printf("Go version: %s\n", runtime.Version())
		fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	// Load config file if specified (CLI takes precedence)
	if configFile != "" {
		fileConfig, err := core.LoadFromFile(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config file: %s\n", err)
			os.Exit(1)
		}
		cliConfig := config
		config = fileConfig
		config.MergeWithCLI(cliConfig)
	}

	// Parse durations
	config.Timeout = time.Duration(timeout) * time.Second
	config.ConnectTimeout = time.Duration(connectTimeout) * time.Second

	// Parse format
	switch strings.ToLower(format) {
	case "text":
		config.Format = core.FormatText
	case "json":
		config.Format = core.FormatJSON
	case "csv":
		config.Format = core.FormatCSV
	default:
		fmt.Fprintf(os.Stderr, "Invalid format: %s\n", format)
		os.Exit(1)
	}

	return config
}

func printBanner(config *core.Config, totalDomains int) {
	fmt.Println()
	fmt.Printf("%s════════════════════════════════════════════════════════════════%s\n", colors.CYAN, colors.NC)
	fmt.Printf("%s%s v%s - Cloudflare Domain Scanner%s\n", colors.BOLD, version.AppName, version.Version, colors.NC)
	fmt.Printf("%s════════════════════════════════════════════════════════════════%s\n", colors.CYAN, colors.NC)
	fmt.Printf("%s[*]%s Domains: %d\n", colors.BLUE, colors.NC, totalDomains)
	fmt.Printf("%s[*]%s Workers: %d\n", colors.BLUE, colors.NC, config.Workers)
	fmt.Printf("%s[*]%s Timeout: %s\n", colors.BLUE, colors.NC, config.Timeout)
	fmt.Println()
}
