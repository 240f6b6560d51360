package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/conorfennell/ankigen/internal/domain"
)

// Entry is one problem in a solved-problem export file.
type Entry struct {
	Slug                string   `json:"slug"`
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	Category            string   `json:"category"`
	Content             string   `json:"content"`
	Difficulty          string   `json:"difficulty"`
	Paid                bool     `json:"paid"`
	Likes               int      `json:"likes"`
	Dislikes            int      `json:"dislikes"`
	SubmissionsTotal    int      `json:"submissions_total"`
	SubmissionsAccepted int      `json:"submissions_accepted"`
	Frequency           int      `json:"frequency"`
	Tags                []string `json:"tags"`
	Status              string   `json:"status"`
	LastAcceptedCode    string   `json:"last_accepted_code"`
}

// Static serves provider lookups from an in-memory entry set, keeping
// the order entries were given in. It backs the export-file provider
// and doubles as the test provider for the rest of the repo.
type Static struct {
	opts    Options
	order   []domain.Handle
	entries map[domain.Handle]Entry
}

// NewStatic builds a provider over the given entries. Entry order is
// preserved as the handle listing order.
func NewStatic(entries []Entry, opts Options) *Static {
	s := &Static{
		opts:    opts,
		entries: make(map[domain.Handle]Entry, len(entries)),
	}
	for _, e := range entries {
		h := domain.Handle(e.Slug)
		if _, dup := s.entries[h]; dup {
			continue
		}
		s.order = append(s.order, h)
		s.entries[h] = e
	}
	return s
}

// OpenExport reads a JSON export file (an array of entries) and returns
// a provider over it. PageSize is a fetch hint for paging providers; a
// file export is loaded in one go, so it only validates the option.
func OpenExport(path string, opts Options) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse export file %s: %w", path, err)
	}

	return NewStatic(entries, opts), nil
}

// Handles returns the entry slugs in export order, filtered by status
// and list membership, then bounded by the start/stop window.
func (s *Static) Handles(ctx context.Context) ([]domain.Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var handles []domain.Handle
	for _, h := range s.order {
		if s.opts.Status != "" && s.entries[h].Status != s.opts.Status {
			continue
		}
		if s.opts.ListFilter != nil && !s.opts.ListFilter[h] {
			continue
		}
		handles = append(handles, h)
	}

	start, stop := s.opts.Start, s.opts.Stop
	if start > len(handles) {
		start = len(handles)
	}
	if stop <= 0 || stop > len(handles) {
		stop = len(handles)
	}
	if start > stop {
		start = stop
	}
	return handles[start:stop], nil
}

func (s *Static) lookup(ctx context.Context, h domain.Handle) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	e, ok := s.entries[h]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	return e, nil
}

func (s *Static) ProblemID(ctx context.Context, h domain.Handle) (int, error) {
	e, err := s.lookup(ctx, h)
	return e.ID, err
}

func (s *Static) Title(ctx context.Context, h domain.Handle) (string, error) {
	e, err := s.lookup(ctx, h)
	return e.Title, err
}

func (s *Static) Category(ctx context.Context, h domain.Handle) (string, error) {
	e, err := s.lookup(ctx, h)
	return e.Category, err
}

func (s *Static) Description(ctx context.Context, h domain.Handle) (string, error) {
	e, err := s.lookup(ctx, h)
	return e.Content, err
}

func (s *Static) Difficulty(ctx context.Context, h domain.Handle) (string, error) {
	e, err := s.lookup(ctx, h)
	return e.Difficulty, err
}

func (s *Static) Paid(ctx context.Context, h domain.Handle) (bool, error) {
	e, err := s.lookup(ctx, h)
	return e.Paid, err
}

func (s *Static) Likes(ctx context.Context, h domain.Handle) (int, error) {
	e, err := s.lookup(ctx, h)
	return e.Likes, err
}

func (s *Static) Dislikes(ctx context.Context, h domain.Handle) (int, error) {
	e, err := s.lookup(ctx, h)
	return e.Dislikes, err
}

func (s *Static) SubmissionsTotal(ctx context.Context, h domain.Handle) (int, error) {
	e, err := s.lookup(ctx, h)
	return e.SubmissionsTotal, err
}

func (s *Static) SubmissionsAccepted(ctx context.Context, h domain.Handle) (int, error) {
	e, err := s.lookup(ctx, h)
	return e.SubmissionsAccepted, err
}

func (s *Static) Frequency(ctx context.Context, h domain.Handle) (int, error) {
	e, err := s.lookup(ctx, h)
	return e.Frequency, err
}

func (s *Static) Tags(ctx context.Context, h domain.Handle) ([]string, error) {
	e, err := s.lookup(ctx, h)
	return e.Tags, err
}

// LastAcceptedCode returns the stored solution text, ErrNoSolution when
// there is none or when solution fetching is disabled.
func (s *Static) LastAcceptedCode(ctx context.Context, h domain.Handle) (string, error) {
	if !s.opts.FetchSolutions {
		return "", ErrNoSolution
	}
	e, err := s.lookup(ctx, h)
	if err != nil {
		return "", err
	}
	if e.LastAcceptedCode == "" {
		return "", ErrNoSolution
	}
	return e.LastAcceptedCode, nil
}
