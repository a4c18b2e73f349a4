// Package workflow drives the one-lead-at-a-time completion loop for LG
// operators.
//
// The workflow serves exactly one actionable raw lead at a time:
//
//	Loading -> Presenting(lead) -> {SubmittingComplete | SubmittingSkip} -> Loading(next)
//	Loading -> Empty(message)        when no lead is assigned or the fetch fails
//
// Completing or skipping a lead immediately fetches the next one; the
// operator never confirms the handoff. A failed submission leaves the
// current lead presented unchanged with no automatic retry.
//
// Every fetch is tagged with a generation counter. A response that arrives
// after a newer fetch has started is discarded instead of overwriting
// fresher state, so an abandoned or superseded request can never clobber
// the lead the operator is looking at.
package workflow
