// ABOUTME: State machine serving one raw lead at a time to an operator
// ABOUTME: Complete/skip submit shaped payloads then chain into the next fetch

package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iitgjobs/leadctl/internal/lead"
)

// NoLeadsMessage is shown when the pool has nothing assigned to the caller.
const NoLeadsMessage = "No leads available"

// FetchFailedMessage is shown when the fetch itself failed. Same handling
// as an empty pool, different wording.
const FetchFailedMessage = "Failed to fetch lead"

// Workflow errors.
var (
	// ErrNoLead is returned when complete/skip/edit is attempted outside
	// the Presenting state.
	ErrNoLead = errors.New("no lead presented")

	// ErrSuperseded is returned when a response arrived for a fetch that a
	// newer fetch has replaced; the late result was discarded.
	ErrSuperseded = errors.New("request superseded")
)

// State is the workflow's position in the lead-handling loop.
type State int

const (
	StateLoading State = iota
	StatePresenting
	StateSubmittingComplete
	StateSubmittingSkip
	StateEmpty
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePresenting:
		return "presenting"
	case StateSubmittingComplete:
		return "submitting-complete"
	case StateSubmittingSkip:
		return "submitting-skip"
	case StateEmpty:
		return "empty"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// LeadService is the backend surface the workflow needs.
type LeadService interface {
	FetchRawLead(ctx context.Context) (raw *lead.RawLead, message string, err error)
	CompleteRawLead(ctx context.Context, id string, sub *lead.Submission) error
	SkipRawLead(ctx context.Context, id string, sub *lead.Submission) error
}

// Workflow holds the current lead and its editable form state.
type Workflow struct {
	svc    LeadService
	logger *slog.Logger

	mu      sync.Mutex
	state   State
	lead    *lead.Flat
	message string
	gen     uint64
}

// New creates a workflow in the Loading state. Call FetchNext to pull the
// first assigned lead.
func New(svc LeadService, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{svc: svc, logger: logger, state: StateLoading}
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Lead returns the currently presented form state, or nil outside
// Presenting.
func (w *Workflow) Lead() *lead.Flat {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lead
}

// Message returns the user-visible message for the Empty state.
func (w *Workflow) Message() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.message
}

// FetchNext requests the next assigned raw lead. Outcomes: a lead moves
// the workflow to Presenting with the lead flattened for editing; an empty
// result moves to Empty with the backend's message or a default; a failed
// request moves to Empty with error wording and returns the error.
func (w *Workflow) FetchNext(ctx context.Context) error {
	w.mu.Lock()
	w.gen++
	gen := w.gen
	w.state = StateLoading
	w.lead = nil
	w.message = ""
	w.mu.Unlock()

	raw, message, err := w.svc.FetchRawLead(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen {
		w.logger.Debug("discarding superseded fetch", "gen", gen, "current", w.gen)
		return ErrSuperseded
	}

	switch {
	case err != nil:
		w.state = StateEmpty
		w.message = FetchFailedMessage
		return fmt.Errorf("fetching lead: %w", err)
	case raw == nil:
		w.state = StateEmpty
		if message == "" {
			message = NoLeadsMessage
		}
		w.message = message
		return nil
	default:
		w.state = StatePresenting
		w.lead = lead.Flatten(raw)
		w.logger.Debug("lead assigned", "lead_id", raw.ID)
		return nil
	}
}

// Edit updates one field of the presented lead's form state.
func (w *Workflow) Edit(field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StatePresenting || w.lead == nil {
		return ErrNoLead
	}
	return w.lead.Set(field, value)
}

// Complete validates the form, submits it as completed, and on success
// immediately fetches the next lead. Validation failures never reach the
// network. A failed submission leaves the presented lead unchanged.
func (w *Workflow) Complete(ctx context.Context) error {
	w.mu.Lock()
	if w.state != StatePresenting || w.lead == nil {
		w.mu.Unlock()
		return ErrNoLead
	}
	sub, err := w.lead.CompletePayload()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	id := w.lead.ID
	gen := w.gen
	w.state = StateSubmittingComplete
	w.mu.Unlock()

	if err := w.svc.CompleteRawLead(ctx, id, sub); err != nil {
		w.restorePresenting(gen)
		return fmt.Errorf("completing lead: %w", err)
	}

	w.logger.Info("lead completed", "lead_id", id)
	return w.FetchNext(ctx)
}

// Skip submits the current form to the skip endpoint, which reassigns the
// lead rather than marking it done, then fetches the next one.
func (w *Workflow) Skip(ctx context.Context) error {
	w.mu.Lock()
	if w.state != StatePresenting || w.lead == nil {
		w.mu.Unlock()
		return ErrNoLead
	}
	sub := w.lead.SkipPayload()
	id := w.lead.ID
	gen := w.gen
	w.state = StateSubmittingSkip
	w.mu.Unlock()

	if err := w.svc.SkipRawLead(ctx, id, sub); err != nil {
		w.restorePresenting(gen)
		return fmt.Errorf("skipping lead: %w", err)
	}

	w.logger.Info("lead skipped", "lead_id", id)
	return w.FetchNext(ctx)
}

// restorePresenting puts a failed submission back into Presenting, unless a
// newer fetch has taken over in the meantime.
func (w *Workflow) restorePresenting(gen uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen == w.gen {
		w.state = StatePresenting
	}
}
