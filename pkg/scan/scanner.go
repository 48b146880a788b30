// Package scan provides concurrency-bounded dispatch of domain probes.
package scan

import (
	"context"
	"sync"

	"github.com/loglnx/ProxyIP/pkg/core"
	"github.com/loglnx/ProxyIP/pkg/fingerprint"
	"github.com/loglnx/ProxyIP/pkg/probe"
)

// Prober classifies a single domain. Implementations must be total: a failed
// probe is reported as an unmatched result, never as a missing one.
type Prober interface {
	Probe(ctx context.Context, domain string) *core.ProbeResult
}

// Scanner fans probes out over a bounded worker pool and aggregates results
// as they complete.
type Scanner struct {
	config *core.Config
	prober Prober

	// progressCallback fires on every completion, matchCallback on every
	// positive match. Both run on the collector goroutine.
	progressCallback func(snapshot core.Progress)
	matchCallback    func(result *core.ProbeResult, snapshot core.Progress)
}

// New creates a scanner probing for the Cloudflare signature
func New(config *core.Config) (*Scanner, error) {
	if config == nil {
		return nil, core.ErrInvalidConfig
	}

	prober, err := probe.New(config, fingerprint.Cloudflare())
	if err != nil {
		return nil, err
	}

	return &Scanner{
		config: config,
		prober: prober,
	}, nil
}

// SetProgressCallback sets a callback invoked after each probe completes
func (s *Scanner) SetProgressCallback(callback func(snapshot core.Progress)) {
	s.progressCallback = callback
}

// SetMatchCallback sets a callback invoked for each matched domain
func (s *Scanner) SetMatchCallback(callback func(result *core.ProbeResult, snapshot core.Progress)) {
	s.matchCallback = callback
}

// Run probes every domain and returns once all probes have completed.
// At most config.Workers probes are in flight at any instant. Results are
// aggregated in completion order, which depends on network latency and is
// not the input order. Every input domain yields exactly one result.
//
// An empty domain list or a non-positive worker count yields an empty
// result immediately.
func (s *Scanner) Run(ctx context.Context, domains []string) *core.ScanResult {
	result := core.NewScanResult(len(domains))

	if len(domains) == 0 || s.config.Workers <= 0 {
		result.Finalize()
		return result
	}

	workers := s.config.Workers
	if workers > len(domains) {
		workers = len(domains)
	}

	jobs := make(chan string, workers*2)
	results := make(chan *core.ProbeResult, workers*2)

	// Start workers
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go s.worker(ctx, &wg, jobs, results)
	}

	// Result collector. It is the only goroutine touching the result set and
	// the progress counters, so neither needs locking.
	var collectorWg sync.WaitGroup
	collectorWg.Add(1)
	go func() {
		defer collectorWg.Done()
		for probeResult := range results {
			result.AddResult(probeResult)

			if probeResult.Matched && s.matchCallback != nil {
				s.matchCallback(probeResult, result.Snapshot())
			}
			if s.progressCallback != nil {
				s.progressCallback(result.Snapshot())
			}
		}
	}()

	// Feed jobs
	go func() {
		defer close(jobs)
		for _, domain := range domains {
			select {
			case jobs <- domain:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Wait for workers, then drain the collector
	wg.Wait()
	close(results)
	collectorWg.Wait()

	result.Finalize()
	return result
}

// worker probes domains from the jobs channel until it is closed
func (s *Scanner) worker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan string, results chan<- *core.ProbeResult) {
	defer wg.Done()

	for domain := range jobs {
		// Probe carries its own per-request timeout and never returns an
		// error; a failure releases this worker exactly like a success.
		results <- s.prober.Probe(ctx, domain)
	}
}
