// Package provider defines the data-provider contract the pipeline
// consumes: an ordered handle listing plus independent per-handle
// lookups for every flashcard field. Implementations own paging,
// retries and transport concerns; the core never sees them.
package provider

import (
	"context"
	"errors"

	"github.com/conorfennell/ankigen/internal/domain"
)

// ErrNoSolution is returned by LastAcceptedCode when the user has no
// accepted solution for the handle, or when solution fetching is
// disabled. It is the only provider error the builder treats as benign.
var ErrNoSolution = errors.New("no accepted solution")

// ErrUnknownHandle is returned by per-handle lookups for a handle the
// provider has never heard of.
var ErrUnknownHandle = errors.New("unknown problem handle")

// Provider resolves problem handles to flashcard data. Each lookup is
// independent and may block on I/O; every method honors context
// cancellation. Implementations must be safe for concurrent use, since
// the pipeline issues many lookups in flight at once.
type Provider interface {
	// Handles returns the ordered list of problem handles to build
	// flashcards for, bounded by the provider's configured window and
	// filters.
	Handles(ctx context.Context) ([]domain.Handle, error)

	ProblemID(ctx context.Context, h domain.Handle) (int, error)
	Title(ctx context.Context, h domain.Handle) (string, error)
	Category(ctx context.Context, h domain.Handle) (string, error)
	Description(ctx context.Context, h domain.Handle) (string, error)
	Difficulty(ctx context.Context, h domain.Handle) (string, error)
	Paid(ctx context.Context, h domain.Handle) (bool, error)
	Likes(ctx context.Context, h domain.Handle) (int, error)
	Dislikes(ctx context.Context, h domain.Handle) (int, error)
	SubmissionsTotal(ctx context.Context, h domain.Handle) (int, error)
	SubmissionsAccepted(ctx context.Context, h domain.Handle) (int, error)
	Frequency(ctx context.Context, h domain.Handle) (int, error)
	Tags(ctx context.Context, h domain.Handle) ([]string, error)

	// LastAcceptedCode returns the user's last accepted solution text.
	// It is the expensive lookup; with solution fetching disabled the
	// provider short-circuits to ErrNoSolution without any I/O.
	LastAcceptedCode(ctx context.Context, h domain.Handle) (string, error)
}

// Options bounds and filters the handle listing.
type Options struct {
	Start          int    // index of the first handle to include
	Stop           int    // index past the last handle to include
	PageSize       int    // fetch batch size hint for paging providers
	ListFilter     map[domain.Handle]bool // nil means no list filter
	Status         string // keep only problems with this status, "" keeps all
	FetchSolutions bool
}
