package briefing

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
)

// sampleReport mirrors the shape of the briefing documents the renderer sees.
const sampleReport = `### Morning Briefing Report

**Date:** February 10, 2026

---

#### Individual Stock Analysis

**1. Apple Inc. (AAPL)**
   - **Current Price:** $198.52
   - **Daily Change:** +$2.34 (+1.19%)
  - **RSI:** 58.3 (neutral)

1. Rates steady
2. **Earnings** season ahead

---

**Data Sources:** Yahoo Finance, Bloomberg`

// TestConcurrentRendering validates that the interpreters can be shared by
// many goroutines and always produce the same output for the same input.
func TestConcurrentRendering(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping concurrency test in short mode")
	}

	const (
		numWorkers = 50
		iterations = 200
	)

	crons := []string{"33 3 * * *", "0 9 * * 1", "* * * * *", "0 9 15 * *", "not a cron"}
	wantCron := make([]string, len(crons))
	for i, expr := range crons {
		wantCron[i] = DescribeCron(expr)
	}
	wantBlocks := RenderMarkdown(sampleReport)

	var (
		wg       sync.WaitGroup
		failures atomic.Int64
	)

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				idx := (worker + i) % len(crons)
				if got := DescribeCron(crons[idx]); got != wantCron[idx] {
					failures.Add(1)
				}
				if got := RenderMarkdown(sampleReport); !reflect.DeepEqual(got, wantBlocks) {
					failures.Add(1)
				}
			}
		}(w)
	}
	wg.Wait()

	if n := failures.Load(); n > 0 {
		t.Errorf("FAILED: %d results differed from the sequential reference", n)
	}
}

// TestConcurrentRecording validates that concurrent records all land in the
// store with unique IDs and that trimming keeps the history bounded.
func TestConcurrentRecording(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping concurrency test in short mode")
	}

	const (
		numWorkers = 20
		perWorker  = 25
		limit      = 50
	)

	ctx := context.Background()
	store := NewMockStore()

	var errorCount atomic.Int64
	history, err := New(Config{
		Store: store,
		Limit: limit,
		OnError: func(ctx context.Context, err error) {
			errorCount.Add(1)
		},
	})
	if err != nil {
		t.Fatalf("Failed to create history: %v", err)
	}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]int)
	)

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				entry, err := history.Record(ctx, []string{"AAPL"}, fmt.Sprintf("report %d-%d", worker, i))
				if err != nil {
					t.Errorf("Worker %d failed to record: %v", worker, err)
					return
				}
				mu.Lock()
				ids[entry.ID]++
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	if len(ids) != numWorkers*perWorker {
		t.Errorf("expected %d unique IDs, got %d", numWorkers*perWorker, len(ids))
	}
	if got := store.CountEntries(); got != limit {
		t.Errorf("expected history trimmed to %d entries, got %d", limit, got)
	}
	if n := errorCount.Load(); n > 0 {
		t.Errorf("expected no background errors, got %d", n)
	}
}
