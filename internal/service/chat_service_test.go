package service

import (
	"testing"

	"kernel_school_backend/internal/repository"
)

func TestReverseMessages(t *testing.T) {
	// 仓储按created_at倒序返回，客户端要的是正序
	newestFirst := []repository.MessageWithAuthor{
		{ID: 3, Text: "third"},
		{ID: 2, Text: "second"},
		{ID: 1, Text: "first"},
	}

	got := reverseMessages(newestFirst)

	wantIDs := []uint{1, 2, 3}
	if len(got) != len(wantIDs) {
		t.Fatalf("len = %d, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("got[%d].ID = %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestReverseMessagesEmpty(t *testing.T) {
	if got := reverseMessages(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %d elements", len(got))
	}

	single := []repository.MessageWithAuthor{{ID: 7, Text: "only"}}
	got := reverseMessages(single)
	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("single-element slice mangled: %+v", got)
	}
}
