// Package builder turns one problem handle into one flashcard record,
// or into nothing when the user has no accepted solution for it.
package builder

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"github.com/conorfennell/ankigen/internal/domain"
	"github.com/conorfennell/ankigen/internal/provider"
)

// Build composes the flashcard record for a handle. It returns
// (nil, nil) when the provider has no accepted solution for the handle;
// that is the only suppressed condition. Every other provider error
// propagates to the caller.
func Build(ctx context.Context, p provider.Provider, h domain.Handle) (*domain.Record, error) {
	// The solution lookup goes first: without it there is no record,
	// and the remaining lookups would be wasted.
	code, err := p.LastAcceptedCode(ctx, h)
	if err != nil {
		if errors.Is(err, provider.ErrNoSolution) {
			slog.Debug("no accepted solution, skipping", "handle", h)
			return nil, nil
		}
		return nil, fmt.Errorf("fetching solution for %s: %w", h, err)
	}
	if code == "" {
		slog.Debug("empty solution text, skipping", "handle", h)
		return nil, nil
	}

	rec := domain.Record{
		Handle:       h,
		SolutionCode: "\n" + html.EscapeString(code),
	}

	if rec.ID, err = p.ProblemID(ctx, h); err != nil {
		return nil, fmt.Errorf("fetching id for %s: %w", h, err)
	}
	if rec.Title, err = p.Title(ctx, h); err != nil {
		return nil, fmt.Errorf("fetching title for %s: %w", h, err)
	}
	if rec.Topic, err = p.Category(ctx, h); err != nil {
		return nil, fmt.Errorf("fetching category for %s: %w", h, err)
	}
	description, err := p.Description(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("fetching description for %s: %w", h, err)
	}
	rec.Content = html.EscapeString(description)
	if rec.Difficulty, err = p.Difficulty(ctx, h); err != nil {
		return nil, fmt.Errorf("fetching difficulty for %s: %w", h, err)
	}
	if rec.Paid, err = p.Paid(ctx, h); err != nil {
		return nil, fmt.Errorf("fetching paid flag for %s: %w", h, err)
	}
	if rec.Likes, err = p.Likes(ctx, h); err != nil {
		return nil, fmt.Errorf("fetching likes for %s: %w", h, err)
	}
	if rec.Dislikes, err = p.Dislikes(ctx, h); err != nil {
		return nil, fmt.Errorf("fetching dislikes for %s: %w", h, err)
	}
	if rec.SubmissionsTotal, err = p.SubmissionsTotal(ctx, h); err != nil {
		return nil, fmt.Errorf("fetching total submissions for %s: %w", h, err)
	}
	if rec.SubmissionsAccepted, err = p.SubmissionsAccepted(ctx, h); err != nil {
		return nil, fmt.Errorf("fetching accepted submissions for %s: %w", h, err)
	}
	if rec.Frequency, err = p.Frequency(ctx, h); err != nil {
		return nil, fmt.Errorf("fetching frequency for %s: %w", h, err)
	}
	if rec.Tags, err = p.Tags(ctx, h); err != nil {
		return nil, fmt.Errorf("fetching tags for %s: %w", h, err)
	}

	rec.AcceptRate = acceptanceRate(rec.SubmissionsAccepted, rec.SubmissionsTotal)
	return &rec, nil
}

// acceptanceRate is the truncated integer percentage of accepted
// submissions. A problem with no submissions at all reports 0% rather
// than failing the run.
func acceptanceRate(accepted, total int) int {
	if total == 0 {
		return 0
	}
	return accepted * 100 / total
}
