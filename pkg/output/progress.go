// Package output provides progress display for scan operations
package output

import (
	"fmt"

	"github.com/loglnx/ProxyIP/pkg/core"
)

// MilestoneInterval is how often a "still scanning" line is printed
const MilestoneInterval = 100

// Progress prints scan progress: matches as they arrive and a periodic
// milestone line while nothing matches. All methods are driven by the
// scanner's single collector goroutine, so no locking is needed.
type Progress struct {
	enabled bool

	// Colors
	green  string
	yellow string
	bold   string
	nc     string
}

// NewProgress creates a new progress printer
func NewProgress(enabled bool, useColors bool) *Progress {
	p := &Progress{
		enabled: enabled,
	}

	if useColors {
		p.green = "\033[32m"
		p.yellow = "\033[33m"
		p.bold = "\033[1m"
		p.nc = "\033[0m"
	}

	return p
}

// Match prints a positively classified domain
func (p *Progress) Match(snapshot core.Progress, domain string) {
	if !p.enabled {
		return
	}

	fmt.Printf("%s[+]%s [%d/%d] %s%s%s - Cloudflare\n",
		p.green, p.nc,
		snapshot.Completed, snapshot.Total,
		p.bold, domain, p.nc,
	)
}

// Update prints a milestone line every MilestoneInterval completions
func (p *Progress) Update(snapshot core.Progress) {
	if !p.enabled {
		return
	}

	if snapshot.Completed%MilestoneInterval != 0 {
		return
	}

	fmt.Printf("%s[~]%s [%d/%d] scanning... (%d matched so far)\n",
		p.yellow, p.nc,
		snapshot.Completed, snapshot.Total,
		snapshot.MatchedCount,
	)
}

// Finish prints the closing progress line
func (p *Progress) Finish(snapshot core.Progress) {
	if !p.enabled {
		return
	}

	fmt.Printf("%s[*]%s %d/%d domains probed, %s%d%s matched\n",
		p.bold, p.nc,
		snapshot.Completed, snapshot.Total,
		p.green, snapshot.MatchedCount, p.nc,
	)
}
