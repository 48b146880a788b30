package scan

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/loglnx/ProxyIP/pkg/core"
)

// fakeProber classifies domains from a fixed table and tracks in-flight probes
type fakeProber struct {
	mu          sync.Mutex
	inflight    int
	maxInflight int

	delay    time.Duration
	statuses map[string]string // domain -> status; missing means "unmatched"
}

func (f *fakeProber) Probe(ctx context.Context, domain string) *core.ProbeResult {
	f.mu.Lock()
	f.inflight++
	if f.inflight > f.maxInflight {
		f.maxInflight = f.inflight
	}
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.inflight--
	f.mu.Unlock()

	status, ok := f.statuses[domain]
	if !ok {
		status = "unmatched"
	}

	return &core.ProbeResult{
		Domain:  domain,
		Matched: status == "matched",
		Status:  status,
	}
}

func newTestScanner(workers int, prober Prober) *Scanner {
	return &Scanner{
		config: &core.Config{Workers: workers},
		prober: prober,
	}
}

func makeDomains(n int) []string {
	domains := make([]string, n)
	for i := range domains {
		domains[i] = fmt.Sprintf("host%d.test", i)
	}
	return domains
}

func TestScanner_Completeness(t *testing.T) {
	domains := makeDomains(250)
	prober := &fakeProber{
		statuses: map[string]string{
			"host3.test":   "matched",
			"host42.test":  "matched",
			"host199.test": "matched",
		},
	}

	s := newTestScanner(16, prober)
	result := s.Run(context.Background(), domains)

	if got := len(result.Results); got != 250 {
		t.Errorf("len(Results) = %d, want 250", got)
	}
	if result.Summary.CompletedDomains != 250 {
		t.Errorf("CompletedDomains = %d, want 250", result.Summary.CompletedDomains)
	}
	if result.Summary.MatchedCount != 3 {
		t.Errorf("MatchedCount = %d, want 3", result.Summary.MatchedCount)
	}
	if len(result.Matched) != 3 {
		t.Errorf("len(Matched) = %d, want 3", len(result.Matched))
	}

	// Exactly one result per input domain, no loss, no duplication
	seen := make(map[string]int)
	for _, r := range result.Results {
		seen[r.Domain]++
	}
	for _, d := range domains {
		if seen[d] != 1 {
			t.Errorf("domain %s observed %d times, want 1", d, seen[d])
		}
	}

	// Matched set is exactly the positively classified domains
	want := map[string]bool{"host3.test": true, "host42.test": true, "host199.test": true}
	for _, d := range result.Matched {
		if !want[d] {
			t.Errorf("unexpected matched domain %s", d)
		}
		delete(want, d)
	}
	if len(want) != 0 {
		t.Errorf("matched set missing domains: %v", want)
	}
}

func TestScanner_ConcurrencyBound(t *testing.T) {
	workers := 8
	prober := &fakeProber{delay: 5 * time.Millisecond}

	s := newTestScanner(workers, prober)
	s.Run(context.Background(), makeDomains(100))

	if prober.maxInflight > workers {
		t.Errorf("maxInflight = %d, exceeds worker limit %d", prober.maxInflight, workers)
	}
	if prober.maxInflight == 0 {
		t.Error("maxInflight = 0, no probes ran")
	}
}

func TestScanner_GateNonLeakage(t *testing.T) {
	// Every probe "times out" (negative classification); the run must still
	// drain completely and release every worker slot.
	domains := makeDomains(1000)
	statuses := make(map[string]string, len(domains))
	for _, d := range domains {
		statuses[d] = "timeout"
	}
	prober := &fakeProber{statuses: statuses, delay: time.Millisecond}

	s := newTestScanner(50, prober)

	done := make(chan *core.ScanResult, 1)
	go func() {
		done <- s.Run(context.Background(), domains)
	}()

	select {
	case result := <-done:
		if result.Summary.CompletedDomains != 1000 {
			t.Errorf("CompletedDomains = %d, want 1000", result.Summary.CompletedDomains)
		}
		if result.Summary.MatchedCount != 0 {
			t.Errorf("MatchedCount = %d, want 0", result.Summary.MatchedCount)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not terminate; gate leaked capacity")
	}
}

func TestScanner_EmptyDomains(t *testing.T) {
	s := newTestScanner(10, &fakeProber{})
	result := s.Run(context.Background(), nil)

	if len(result.Matched) != 0 {
		t.Errorf("len(Matched) = %d, want 0", len(result.Matched))
	}
	if result.Summary.CompletedDomains != 0 {
		t.Errorf("CompletedDomains = %d, want 0", result.Summary.CompletedDomains)
	}
}

func TestScanner_ZeroWorkers(t *testing.T) {
	s := newTestScanner(0, &fakeProber{})

	done := make(chan *core.ScanResult, 1)
	go func() {
		done <- s.Run(context.Background(), makeDomains(10))
	}()

	select {
	case result := <-done:
		if len(result.Matched) != 0 {
			t.Errorf("len(Matched) = %d, want 0", len(result.Matched))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run with zero workers deadlocked")
	}
}

func TestScanner_Callbacks(t *testing.T) {
	prober := &fakeProber{
		statuses: map[string]string{
			"host1.test": "matched",
			"host5.test": "matched",
		},
	}

	s := newTestScanner(4, prober)

	var progressCalls int
	var lastCompleted uint64
	var monotone = true
	s.SetProgressCallback(func(snapshot core.Progress) {
		progressCalls++
		if snapshot.Completed < lastCompleted {
			monotone = false
		}
		lastCompleted = snapshot.Completed
	})

	var matchCalls int
	s.SetMatchCallback(func(result *core.ProbeResult, snapshot core.Progress) {
		matchCalls++
		if !result.Matched {
			t.Errorf("match callback fired for unmatched domain %s", result.Domain)
		}
	})

	result := s.Run(context.Background(), makeDomains(20))

	if progressCalls != 20 {
		t.Errorf("progress callback fired %d times, want 20", progressCalls)
	}
	if !monotone {
		t.Error("completed counter went backwards")
	}
	if lastCompleted != 20 {
		t.Errorf("final completed = %d, want 20", lastCompleted)
	}
	if matchCalls != 2 {
		t.Errorf("match callback fired %d times, want 2", matchCalls)
	}
	if result.Summary.MatchedCount != 2 {
		t.Errorf("MatchedCount = %d, want 2", result.Summary.MatchedCount)
	}
}

func TestScanner_EndToEnd(t *testing.T) {
	prober := &fakeProber{
		statuses: map[string]string{
			"a.test": "matched",   // server: cloudflare
			"b.test": "timeout",   // connection timeout
			"c.test": "unmatched", // server: nginx
		},
	}

	s := newTestScanner(3, prober)
	result := s.Run(context.Background(), []string{"a.test", "b.test", "c.test"})

	if len(result.Matched) != 1 || result.Matched[0] != "a.test" {
		t.Errorf("Matched = %v, want [a.test]", result.Matched)
	}
	if result.Summary.CompletedDomains != 3 {
		t.Errorf("CompletedDomains = %d, want 3", result.Summary.CompletedDomains)
	}
	if result.Summary.MatchedCount != 1 {
		t.Errorf("MatchedCount = %d, want 1", result.Summary.MatchedCount)
	}
	if result.Summary.TimeoutCount != 1 {
		t.Errorf("TimeoutCount = %d, want 1", result.Summary.TimeoutCount)
	}
}

func TestNew(t *testing.T) {
	config := core.DefaultConfig()
	config.InputFile = "domains.csv"

	s, err := New(config)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if s == nil {
		t.Fatal("New() returned nil scanner")
	}
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) expected error")
	}
}
