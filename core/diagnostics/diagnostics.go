// Package diagnostics implements SEL's annotation documents (spec.md §4.C,
// §7): a purely informative side-channel populated from comment/document
// annotation tokens and, at evaluation time, from missing-binding hints.
package diagnostics

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Annotation is one `@ ...` or `@@ ...` annotation token's payload.
type Annotation struct {
	Name string
}

// Document accumulates annotation lines and missing-binding hints gathered
// during compilation and evaluation. It never affects a result value.
type Document struct {
	lines []string
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// AddLine appends a raw annotation line (comment or document annotation
// text, with its leading `@`/`@@` stripped by the caller).
func (d *Document) AddLine(line string) {
	d.lines = append(d.lines, line)
}

// Lines returns every accumulated line, in order.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// SuggestMissingBinding records a "did you mean <candidate>?" hint for a
// missing identifier or function name, found via fuzzy ranking over the
// known names. It is a no-op if no candidate is close enough.
func (d *Document) SuggestMissingBinding(kind, missing string, known []string) {
	ranked := fuzzy.RankFindFold(missing, known)
	if len(ranked) == 0 {
		return
	}
	d.AddLine(fmt.Sprintf("unresolved %s %q: did you mean %q?", kind, missing, ranked[0].Target))
}
