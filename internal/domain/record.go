package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Handle is the stable slug identifying one coding problem. It is the
// natural key for both provider lookups and record identity.
type Handle string

// guidNamespace is the fixed namespace for deriving record GUIDs.
// Changing it would re-key every regenerated deck, so it never changes.
var guidNamespace = uuid.MustParse("b1c52458-9c3a-47f4-8d7e-2f60f1a3c9be")

// Record is one fully-populated flashcard: the problem's metadata plus
// the user's last accepted solution. Records are immutable after
// construction; Content and SolutionCode are stored HTML-escaped.
type Record struct {
	Handle              Handle
	ID                  int
	Title               string
	Topic               string
	Content             string
	Difficulty          string
	Paid                bool
	Likes               int
	Dislikes            int
	SubmissionsTotal    int
	SubmissionsAccepted int
	AcceptRate          int
	Frequency           int
	SolutionCode        string
	Tags                []string
}

// GUID returns the record's deterministic identity key, derived from the
// handle alone. Mutable fields (title, counters, solution text) never
// feed into it, so regenerating a deck for the same problem set yields
// the same GUIDs and external tools can merge or diff decks across runs.
func (r Record) GUID() string {
	return uuid.NewSHA1(guidNamespace, []byte(r.Handle)).String()
}

// SortField returns the frequency score zero-padded to three digits so
// that plain lexical ordering matches numeric ordering.
func (r Record) SortField() string {
	return fmt.Sprintf("%03d", r.Frequency)
}

// Fields returns the record's values in schema order. The order and
// count must match schema.FieldNames.
func (r Record) Fields() []string {
	paid := "no"
	if r.Paid {
		paid = "yes"
	}
	return []string{
		string(r.Handle),
		fmt.Sprintf("%d", r.ID),
		r.Title,
		r.Topic,
		r.Content,
		r.Difficulty,
		paid,
		fmt.Sprintf("%d", r.Likes),
		fmt.Sprintf("%d", r.Dislikes),
		fmt.Sprintf("%d", r.SubmissionsTotal),
		fmt.Sprintf("%d", r.SubmissionsAccepted),
		fmt.Sprintf("%d", r.AcceptRate),
		fmt.Sprintf("%d", r.Frequency),
		r.SolutionCode,
	}
}
