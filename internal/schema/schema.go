// Package schema declares the fixed note layout shared by every
// flashcard and the two render templates. The model and deck IDs are
// stable across runs so downstream tooling recognizes a regenerated
// deck as the same deck and updates it in place instead of duplicating.
package schema

// Stable numeric identifiers. Treated as immutable configuration:
// passed explicitly into the assembler and sink, never mutated.
const (
	ModelID int64 = 4567610856
	DeckID  int64 = 8589798175
)

// FieldNames is the ordered 14-field record layout. The order must
// match domain.Record.Fields.
var FieldNames = []string{
	"Slug",
	"Id",
	"Title",
	"Topic",
	"Content",
	"Difficulty",
	"Paid",
	"Likes",
	"Dislikes",
	"SubmissionsTotal",
	"SubmissionsAccepted",
	"SubmissionAcceptRate",
	"Frequency",
	"LastSubmissionCode",
}

// Model bundles the layout and templates under a stable identifier.
type Model struct {
	ID             int64
	Name           string
	Fields         []string
	QuestionFormat string
	AnswerFormat   string
}

// Default returns the flashcard model used for every deck this tool
// produces.
func Default() *Model {
	return &Model{
		ID:             ModelID,
		Name:           "Coding problem",
		Fields:         FieldNames,
		QuestionFormat: questionFormat,
		AnswerFormat:   answerFormat,
	}
}

const questionFormat = `
<h2>{{Id}}. {{Title}}</h2>
<b>Difficulty:</b> {{Difficulty}}<br/>
&#128077; {{Likes}} &#128078; {{Dislikes}}<br/>
<b>Submissions (total/accepted):</b>
{{SubmissionsTotal}}/{{SubmissionsAccepted}}
({{SubmissionAcceptRate}}%)
<br/>
<b>Topic:</b> {{Topic}}<br/>
<b>Frequency:</b>
<progress value="{{Frequency}}" max="100">
{{Frequency}}%
</progress>
<br/>
<b>URL:</b>
<a href='https://leetcode.com/problems/{{Slug}}/'>
    https://leetcode.com/problems/{{Slug}}/
</a>
<br/>
<h3>Description</h3>
{{Content}}
`

// The answer side extends the question side. The solution block is
// conditional: it renders only when LastSubmissionCode is non-empty.
const answerFormat = `
{{FrontSide}}
<hr id="answer">
<b>Discuss URL:</b>
<a href='https://leetcode.com/problems/{{Slug}}/discuss/'>
    https://leetcode.com/problems/{{Slug}}/discuss/
</a>
<br/>
<b>Solution URL:</b>
<a href='https://leetcode.com/problems/{{Slug}}/solution/'>
    https://leetcode.com/problems/{{Slug}}/solution/
</a>
{{#LastSubmissionCode}}
    <br/>
    <b>Accepted Last Submission:</b>
    <pre>
    <code>
    {{LastSubmissionCode}}
    </code>
    </pre>
    <br/>
{{/LastSubmissionCode}}
`
