// ABOUTME: Tests for the raw-lead workflow state machine
// ABOUTME: Covers fetch outcomes, submit-then-fetch chaining, and stale fetches

package workflow

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iitgjobs/leadctl/internal/lead"
)

// mockService scripts the backend for workflow tests.
type mockService struct {
	leads       []*lead.RawLead // consumed front to back by FetchRawLead
	fetchMsg    string
	fetchErr    error
	completeErr error
	skipErr     error

	fetchCalls    int
	completeCalls int
	skipCalls     int
	lastComplete  *lead.Submission
	lastSkip      *lead.Submission
	lastID        string
}

func (m *mockService) FetchRawLead(ctx context.Context) (*lead.RawLead, string, error) {
	m.fetchCalls++
	if m.fetchErr != nil {
		return nil, "", m.fetchErr
	}
	if len(m.leads) == 0 {
		return nil, m.fetchMsg, nil
	}
	next := m.leads[0]
	m.leads = m.leads[1:]
	return next, "", nil
}

func (m *mockService) CompleteRawLead(ctx context.Context, id string, sub *lead.Submission) error {
	m.completeCalls++
	m.lastID = id
	m.lastComplete = sub
	return m.completeErr
}

func (m *mockService) SkipRawLead(ctx context.Context, id string, sub *lead.Submission) error {
	m.skipCalls++
	m.lastID = id
	m.lastSkip = sub
	return m.skipErr
}

func testLead(id string) *lead.RawLead {
	return &lead.RawLead{
		ID:      id,
		Name:    "Asha",
		Mobile:  lead.StringList{"9000000001", "9000000002"},
		Company: lead.Ref{ID: "c1", Name: "Acme"},
	}
}

func TestFetchNext_Presenting(t *testing.T) {
	svc := &mockService{leads: []*lead.RawLead{testLead("lead-1")}}
	w := New(svc, slog.Default())

	require.NoError(t, w.FetchNext(context.Background()))

	assert.Equal(t, StatePresenting, w.State())
	flat := w.Lead()
	require.NotNil(t, flat)
	assert.Equal(t, "lead-1", flat.ID)
	assert.Equal(t, "Acme", flat.CompanyName)
	assert.Equal(t, "c1", flat.Company)
}

func TestFetchNext_Empty(t *testing.T) {
	svc := &mockService{}
	w := New(svc, slog.Default())

	require.NoError(t, w.FetchNext(context.Background()))

	assert.Equal(t, StateEmpty, w.State())
	assert.Equal(t, NoLeadsMessage, w.Message())
	assert.Nil(t, w.Lead())
}

func TestFetchNext_BackendMessage(t *testing.T) {
	svc := &mockService{fetchMsg: "All leads are locked right now"}
	w := New(svc, slog.Default())

	require.NoError(t, w.FetchNext(context.Background()))
	assert.Equal(t, "All leads are locked right now", w.Message())
}

func TestFetchNext_Error(t *testing.T) {
	svc := &mockService{fetchErr: errors.New("connection refused")}
	w := New(svc, slog.Default())

	err := w.FetchNext(context.Background())
	require.Error(t, err)

	// Same handling as the empty pool, only the wording differs.
	assert.Equal(t, StateEmpty, w.State())
	assert.Equal(t, FetchFailedMessage, w.Message())
}

func TestComplete_SubmitsAndFetchesNext(t *testing.T) {
	svc := &mockService{leads: []*lead.RawLead{testLead("lead-1"), testLead("lead-2")}}
	w := New(svc, slog.Default())
	require.NoError(t, w.FetchNext(context.Background()))

	require.NoError(t, w.Complete(context.Background()))

	assert.Equal(t, 1, svc.completeCalls)
	assert.Equal(t, "lead-1", svc.lastID)
	assert.Equal(t, "9000000001", svc.lastComplete.Mobile)
	assert.True(t, svc.lastComplete.IsComplete)

	// The operator is handed the next lead with no confirmation step.
	assert.Equal(t, StatePresenting, w.State())
	assert.Equal(t, "lead-2", w.Lead().ID)
	assert.Equal(t, 2, svc.fetchCalls)
}

func TestComplete_ValidationSkipsNetwork(t *testing.T) {
	raw := testLead("lead-1")
	raw.Name = ""
	svc := &mockService{leads: []*lead.RawLead{raw}}
	w := New(svc, slog.Default())
	require.NoError(t, w.FetchNext(context.Background()))

	err := w.Complete(context.Background())
	assert.True(t, errors.Is(err, lead.ErrValidation), "error = %v, want ErrValidation", err)

	assert.Equal(t, 0, svc.completeCalls, "validation failures must not reach the network")
	assert.Equal(t, StatePresenting, w.State())
	assert.Equal(t, "lead-1", w.Lead().ID)
}

func TestComplete_FailureKeepsCurrentLead(t *testing.T) {
	svc := &mockService{
		leads:       []*lead.RawLead{testLead("lead-1"), testLead("lead-2")},
		completeErr: errors.New("lead is locked"),
	}
	w := New(svc, slog.Default())
	require.NoError(t, w.FetchNext(context.Background()))

	err := w.Complete(context.Background())
	require.Error(t, err)

	assert.Equal(t, StatePresenting, w.State())
	assert.Equal(t, "lead-1", w.Lead().ID, "no premature advance to the next lead")
	assert.Equal(t, 1, svc.fetchCalls, "no refetch after a failed submission")
}

func TestSkip_FetchesExactlyOnce(t *testing.T) {
	svc := &mockService{leads: []*lead.RawLead{testLead("lead-1"), testLead("lead-2")}}
	w := New(svc, slog.Default())
	require.NoError(t, w.FetchNext(context.Background()))
	fetchesBefore := svc.fetchCalls

	require.NoError(t, w.Skip(context.Background()))

	assert.Equal(t, 1, svc.skipCalls)
	assert.Equal(t, fetchesBefore+1, svc.fetchCalls, "skip success triggers exactly one fetch")
	assert.False(t, svc.lastSkip.IsComplete, "skip must not force the completion flag")
	assert.Equal(t, StatePresenting, w.State())
	assert.Equal(t, "lead-2", w.Lead().ID)
}

func TestSkip_AllowsBlankLead(t *testing.T) {
	raw := testLead("lead-1")
	raw.Name = ""
	raw.Mobile = nil
	svc := &mockService{leads: []*lead.RawLead{raw}}
	w := New(svc, slog.Default())
	require.NoError(t, w.FetchNext(context.Background()))

	require.NoError(t, w.Skip(context.Background()))
	assert.Equal(t, 1, svc.skipCalls)
}

func TestSkip_FailureKeepsCurrentLead(t *testing.T) {
	svc := &mockService{
		leads:   []*lead.RawLead{testLead("lead-1")},
		skipErr: errors.New("reassignment failed"),
	}
	w := New(svc, slog.Default())
	require.NoError(t, w.FetchNext(context.Background()))

	require.Error(t, w.Skip(context.Background()))
	assert.Equal(t, StatePresenting, w.State())
	assert.Equal(t, "lead-1", w.Lead().ID)
}

func TestEdit(t *testing.T) {
	svc := &mockService{leads: []*lead.RawLead{testLead("lead-1")}}
	w := New(svc, slog.Default())
	require.NoError(t, w.FetchNext(context.Background()))

	require.NoError(t, w.Edit("designation", "HR Manager"))
	assert.Equal(t, "HR Manager", w.Lead().Designation)

	err := w.Edit("companyName", "Globex")
	assert.True(t, errors.Is(err, lead.ErrReadOnly))
}

func TestEdit_RequiresPresentedLead(t *testing.T) {
	w := New(&mockService{}, slog.Default())

	err := w.Edit("name", "Asha")
	assert.True(t, errors.Is(err, ErrNoLead))
}

func TestCompleteSkip_RequirePresentedLead(t *testing.T) {
	svc := &mockService{}
	w := New(svc, slog.Default())
	require.NoError(t, w.FetchNext(context.Background())) // lands in Empty

	assert.True(t, errors.Is(w.Complete(context.Background()), ErrNoLead))
	assert.True(t, errors.Is(w.Skip(context.Background()), ErrNoLead))
	assert.Equal(t, 0, svc.completeCalls)
	assert.Equal(t, 0, svc.skipCalls)
}

// blockingService parks the first FetchRawLead until released, to
// interleave a second fetch with one still in flight.
type blockingService struct {
	mockService
	started chan struct{}
	release chan struct{}
	block   bool
}

func (b *blockingService) FetchRawLead(ctx context.Context) (*lead.RawLead, string, error) {
	if b.block {
		b.block = false
		close(b.started)
		<-b.release
		return testLead("stale-lead"), "", nil
	}
	return b.mockService.FetchRawLead(ctx)
}

func TestFetchNext_StaleResponseDiscarded(t *testing.T) {
	svc := &blockingService{
		mockService: mockService{leads: []*lead.RawLead{testLead("fresh-lead")}},
		started:     make(chan struct{}),
		release:     make(chan struct{}),
		block:       true,
	}
	w := New(svc, slog.Default())

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- w.FetchNext(context.Background())
	}()
	<-svc.started

	// Second fetch supersedes the first while it is still in flight.
	require.NoError(t, w.FetchNext(context.Background()))
	require.Equal(t, StatePresenting, w.State())
	require.Equal(t, "fresh-lead", w.Lead().ID)

	close(svc.release)
	err := <-firstDone
	assert.True(t, errors.Is(err, ErrSuperseded), "error = %v, want ErrSuperseded", err)

	// The stale response must not clobber the fresh lead.
	assert.Equal(t, "fresh-lead", w.Lead().ID)
	assert.Equal(t, StatePresenting, w.State())
}
