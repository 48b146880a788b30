// Package output provides result formatting functionality
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/loglnx/ProxyIP/pkg/core"
)

// Formatter provides result formatting in various formats
type Formatter struct {
	format    core.OutputFormat
	useColors bool
	showAll   bool

	// Colors
	red    string
	green  string
	yellow string
	blue   string
	cyan   string
	bold   string
	nc     string
}

// NewFormatter creates a new result formatter
func NewFormatter(format core.OutputFormat, useColors bool, showAll bool) *Formatter {
	f := &Formatter{
		format:    format,
		useColors: useColors,
		showAll:   showAll,
	}

	if useColors {
		f.red = "\033[31m"
		f.green = "\033[32m"
		f.yellow = "\033[33m"
		f.blue = "\033[34m"
		f.cyan = "\033[36m"
		f.bold = "\033[1m"
		f.nc = "\033[0m"
	}

	return f
}

// FormatResult formats a single probe result
func (f *Formatter) FormatResult(result core.ProbeResult) string {
	switch f.format {
	case core.FormatJSON:
		data, _ := json.Marshal(result)
		return string(data)
	case core.FormatCSV:
		return fmt.Sprintf("%s,%t,%s,%d,%s", result.Domain, result.Matched, result.Status, result.HTTPCode, result.Error)
	default:
		return f.formatTextResult(result)
	}
}

// formatTextResult formats a result in text format with colors
func (f *Formatter) formatTextResult(result core.ProbeResult) string {
	switch result.Status {
	case "matched":
		msg := fmt.Sprintf("%s[+]%s %s --> %sCloudflare%s (%s)",
			f.green, f.nc, result.Domain, f.green, f.nc, result.ResponseTime)
		if result.Server != "" {
			msg += fmt.Sprintf(" | %sServer:%s %s", f.cyan, f.nc, result.Server)
		}
		return msg
	case "unmatched":
		if !f.showAll {
			return ""
		}
		msg := fmt.Sprintf("%s[-]%s %s --> not Cloudflare", f.yellow, f.nc, result.Domain)
		if result.Server != "" {
			msg += fmt.Sprintf(" (Server: %s)", result.Server)
		}
		return msg
	case "timeout":
		if !f.showAll {
			return ""
		}
		return fmt.Sprintf("%s[~]%s %s --> Timeout", f.blue, f.nc, result.Domain)
	case "error":
		if !f.showAll {
			return ""
		}
		return fmt.Sprintf("%s[-]%s %s --> Error: %s", f.red, f.nc, result.Domain, result.Error)
	default:
		return ""
	}
}

// FormatSummary formats the final scan summary
func (f *Formatter) FormatSummary(summary core.ScanSummary) string {
	switch f.format {
	case core.FormatJSON:
		data, _ := json.MarshalIndent(summary, "", "  ")
		return string(data)
	default:
		return f.formatTextSummary(summary)
	}
}

// formatTextSummary formats summary in text format
func (f *Formatter) formatTextSummary(summary core.ScanSummary) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(f.cyan + "═══════════════════════════════════════════════════════════════\n")
	sb.WriteString(f.bold + "Scan Results Summary\n" + f.nc)
	sb.WriteString(f.cyan + "═══════════════════════════════════════════════════════════════" + f.nc + "\n")

	sb.WriteString(fmt.Sprintf("%s[+] Cloudflare:%s %s%d%s\n", f.green, f.nc, f.green, summary.MatchedCount, f.nc))
	sb.WriteString(fmt.Sprintf("%s[*]%s Total Probed: %s%d%s\n", f.bold, f.nc, f.bold, summary.CompletedDomains, f.nc))

	if summary.TimeoutCount > 0 {
		sb.WriteString(fmt.Sprintf("%s[~]%s Timeouts: %s%d%s\n", f.blue, f.nc, f.blue, summary.TimeoutCount, f.nc))
	}
	if summary.ErrorCount > 0 {
		sb.WriteString(fmt.Sprintf("%s[-]%s Errors: %s%d%s\n", f.red, f.nc, f.red, summary.ErrorCount, f.nc))
	}

	sb.WriteString(fmt.Sprintf("%s[T]%s Duration: %s%.2fs%s\n", f.blue, f.nc, f.blue, summary.Duration.Seconds(), f.nc))

	if summary.Duration.Seconds() > 0 {
		rate := float64(summary.CompletedDomains) / summary.Duration.Seconds()
		sb.WriteString(fmt.Sprintf("%s[R]%s Scan Rate: %s%.2f domains/s%s\n", f.yellow, f.nc, f.yellow, rate, f.nc))
	}

	sb.WriteString(f.cyan + "═══════════════════════════════════════════════════════════════" + f.nc + "\n\n")

	return sb.String()
}

// FormatCSVHeader returns CSV header row
func (f *Formatter) FormatCSVHeader() string {
	return "Domain,Matched,Status,HTTPCode,Error\n"
}

// WriteCSVResults writes results in CSV format
func (f *Formatter) WriteCSVResults(results []*core.ProbeResult, writer *csv.Writer) error {
	if err := writer.Write([]string{"Domain", "Matched", "Status", "HTTPCode", "Error"}); err != nil {
		return err
	}

	for _, r := range results {
		record := []string{
			r.Domain,
			fmt.Sprintf("%t", r.Matched),
			r.Status,
			fmt.Sprintf("%d", r.HTTPCode),
			r.Error,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
