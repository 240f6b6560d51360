package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/conorfennell/ankigen/internal/domain"
	"github.com/conorfennell/ankigen/internal/provider"
)

// slowProvider delays the solution lookup per handle so tests can force
// completion order to differ from input order.
type slowProvider struct {
	*provider.Static
	delays map[domain.Handle]time.Duration
}

func (s *slowProvider) LastAcceptedCode(ctx context.Context, h domain.Handle) (string, error) {
	time.Sleep(s.delays[h])
	return s.Static.LastAcceptedCode(ctx, h)
}

func TestRunPreservesInputOrder(t *testing.T) {
	entries := []provider.Entry{
		{Slug: "alpha", LastAcceptedCode: "a"},
		{Slug: "beta", LastAcceptedCode: "b"},
		{Slug: "gamma", LastAcceptedCode: "c"},
	}
	p := &slowProvider{
		Static: provider.NewStatic(entries, provider.Options{FetchSolutions: true}),
		delays: map[domain.Handle]time.Duration{
			"alpha": 30 * time.Millisecond,
			"beta":  0, // finishes first
			"gamma": 15 * time.Millisecond,
		},
	}

	handles := []domain.Handle{"alpha", "beta", "gamma"}
	records, err := Run(context.Background(), p, handles, 0, nil)
	if err != nil {
		t.Fatalf("Run() returned an unexpected error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	for i, h := range handles {
		if records[i].Handle != h {
			t.Errorf("Record %d: expected handle %q, got %q", i, h, records[i].Handle)
		}
	}
}

func TestRunDiscardsEmptyResults(t *testing.T) {
	entries := []provider.Entry{
		{Slug: "solved", LastAcceptedCode: "x = 1"},
		{Slug: "unsolved"},
		{Slug: "also-solved", LastAcceptedCode: "y = 2"},
	}
	p := provider.NewStatic(entries, provider.Options{FetchSolutions: true})

	records, err := Run(context.Background(), p, []domain.Handle{"solved", "unsolved", "also-solved"}, 2, nil)
	if err != nil {
		t.Fatalf("Run() returned an unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Handle != "solved" || records[1].Handle != "also-solved" {
		t.Errorf("Unexpected record order: %q, %q", records[0].Handle, records[1].Handle)
	}
}

func TestRunPropagatesHardFailure(t *testing.T) {
	p := provider.NewStatic(
		[]provider.Entry{{Slug: "known", LastAcceptedCode: "ok"}},
		provider.Options{FetchSolutions: true},
	)

	_, err := Run(context.Background(), p, []domain.Handle{"known", "missing"}, 0, nil)
	if err == nil {
		t.Fatal("Expected the unknown handle to abort the run")
	}
	if !errors.Is(err, provider.ErrUnknownHandle) {
		t.Errorf("Expected ErrUnknownHandle in the chain, got %v", err)
	}
}

func TestRunReportsProgress(t *testing.T) {
	entries := []provider.Entry{
		{Slug: "one", LastAcceptedCode: "1"},
		{Slug: "two"},
		{Slug: "three", LastAcceptedCode: "3"},
	}
	p := provider.NewStatic(entries, provider.Options{FetchSolutions: true})

	var calls atomic.Int64
	var lastTotal atomic.Int64
	progress := func(done, total int) {
		calls.Add(1)
		lastTotal.Store(int64(total))
	}

	if _, err := Run(context.Background(), p, []domain.Handle{"one", "two", "three"}, 2, progress); err != nil {
		t.Fatalf("Run() returned an unexpected error: %v", err)
	}

	// Skipped handles still count as processed.
	if calls.Load() != 3 {
		t.Errorf("Expected 3 progress calls, got %d", calls.Load())
	}
	if lastTotal.Load() != 3 {
		t.Errorf("Expected total 3, got %d", lastTotal.Load())
	}
}

func TestRunEmptyHandleList(t *testing.T) {
	p := provider.NewStatic(nil, provider.Options{FetchSolutions: true})
	records, err := Run(context.Background(), p, nil, 4, nil)
	if err != nil {
		t.Fatalf("Run() returned an unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}
