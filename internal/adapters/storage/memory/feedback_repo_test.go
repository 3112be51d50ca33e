package memory

import (
	"context"
	"testing"
	"time"

	"dog-knowledge-base/internal/domain/feedback"
)

func TestFeedbackRepo_AppendAndList(t *testing.T) {
	repo := NewFeedbackRepo()
	ctx := context.Background()

	notes := []feedback.Note{
		{ID: "n1", SessionID: "s1", Message: "first", CreatedAt: time.Now()},
		{ID: "n2", SessionID: "s1", Message: "second", CreatedAt: time.Now()},
		{ID: "n3", SessionID: "s2", Message: "other session", CreatedAt: time.Now()},
	}
	for _, n := range notes {
		if err := repo.Append(ctx, n); err != nil {
			t.Fatalf("append %s: %v", n.ID, err)
		}
	}

	got, err := repo.ListBySession(ctx, "s1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "n1" || got[1].ID != "n2" {
		t.Fatalf("expected [n1 n2] in insertion order, got %+v", got)
	}

	empty, err := repo.ListBySession(ctx, "unknown")
	if err != nil {
		t.Fatalf("list unknown: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("unknown session must list zero notes, got %d", len(empty))
	}
}

func TestFeedbackRepo_RejectsIncompleteNotes(t *testing.T) {
	repo := NewFeedbackRepo()
	ctx := context.Background()

	if err := repo.Append(ctx, feedback.Note{ID: "n1"}); err == nil {
		t.Fatalf("expected error for missing session id")
	}
	if err := repo.Append(ctx, feedback.Note{SessionID: "s1"}); err == nil {
		t.Fatalf("expected error for missing note id")
	}
}

func TestFeedbackRepo_ListReturnsCopy(t *testing.T) {
	repo := NewFeedbackRepo()
	ctx := context.Background()

	_ = repo.Append(ctx, feedback.Note{ID: "n1", SessionID: "s1", Message: "original"})

	got, _ := repo.ListBySession(ctx, "s1")
	got[0].Message = "mutated"

	again, _ := repo.ListBySession(ctx, "s1")
	if again[0].Message != "original" {
		t.Fatalf("stored note mutated through a returned slice")
	}
}
