// README: Chat service tests (single-record invariant + caller errors).
package chat

import (
	"context"
	"errors"
	"testing"

	"wayfarer/internal/service"
)

type fakePlanner struct {
	result service.PlanResult
	calls  int
}

func (f *fakePlanner) Plan(_ context.Context, _ string) service.PlanResult {
	f.calls++
	return f.result
}

type fakeArchive struct {
	appended  []Record
	appendErr error
	records   []Record
}

func (f *fakeArchive) Append(_ context.Context, r *Record) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	r.ID = int64(len(f.appended) + 1)
	f.appended = append(f.appended, *r)
	return nil
}

func (f *fakeArchive) ListByUser(_ context.Context, _ int64) ([]Record, error) {
	return f.records, nil
}

func TestGenerate_PersistsExactlyOneRecord(t *testing.T) {
	planner := &fakePlanner{result: service.PlanResult{Response: "# Itinerary", Resolved: true}}
	archive := &fakeArchive{}
	svc := NewService(archive, planner)

	resp, err := svc.Generate(context.Background(), 7, "Plan a trip from Paris to Rome")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp != "# Itinerary" {
		t.Errorf("response = %q", resp)
	}
	if len(archive.appended) != 1 {
		t.Fatalf("appended %d records, want 1", len(archive.appended))
	}

	rec := archive.appended[0]
	if rec.UserID != 7 {
		t.Errorf("user id = %d", rec.UserID)
	}
	if rec.Message != "Plan a trip from Paris to Rome" {
		t.Errorf("message = %q, raw input must be preserved", rec.Message)
	}
	if rec.Response != "# Itinerary" {
		t.Errorf("persisted response = %q", rec.Response)
	}
	if rec.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestGenerate_PersistsClarification(t *testing.T) {
	// Unresolved outcomes are persisted too: history is a complete audit
	// trail of what the user saw.
	planner := &fakePlanner{result: service.PlanResult{Response: "please clarify", Resolved: false}}
	archive := &fakeArchive{}
	svc := NewService(archive, planner)

	resp, err := svc.Generate(context.Background(), 1, "I want a vacation")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp != "please clarify" {
		t.Errorf("response = %q", resp)
	}
	if len(archive.appended) != 1 {
		t.Errorf("appended %d records, want 1", len(archive.appended))
	}
}

func TestGenerate_EmptyMessage(t *testing.T) {
	planner := &fakePlanner{}
	archive := &fakeArchive{}
	svc := NewService(archive, planner)

	if _, err := svc.Generate(context.Background(), 1, ""); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
	if planner.calls != 0 {
		t.Error("planner must not run for empty messages")
	}
	if len(archive.appended) != 0 {
		t.Error("caller errors must not be persisted")
	}
}

func TestGenerate_StoreFailure(t *testing.T) {
	planner := &fakePlanner{result: service.PlanResult{Response: "ok", Resolved: true}}
	archive := &fakeArchive{appendErr: errors.New("db down")}
	svc := NewService(archive, planner)

	if _, err := svc.Generate(context.Background(), 1, "Plan a trip"); err == nil {
		t.Error("expected store error to propagate")
	}
}

func TestHistory(t *testing.T) {
	archive := &fakeArchive{records: []Record{{ID: 1, Message: "m", Response: "r"}}}
	svc := NewService(archive, &fakePlanner{})

	records, err := svc.History(context.Background(), 1)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 1 || records[0].ID != 1 {
		t.Errorf("records = %+v", records)
	}
}
