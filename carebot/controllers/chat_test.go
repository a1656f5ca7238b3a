package controllers

import (
	"context"
	"os"
	"testing"

	"carebot/carebot/config"
	"carebot/carebot/services/ai"
	"carebot/carebot/sources/memstore"
	"carebot/carebot/utils/logging"
)

func TestMain(m *testing.M) {
	logging.InitTestLogger()
	os.Exit(m.Run())
}

func newTestChatController() (*ChatController, *memstore.Store) {
	st := memstore.New()
	assistant := ai.New(context.Background(), config.Config{}, ai.DefaultSettings())
	return NewChatController(st, assistant), st
}

func TestProcessMessageFeverHeadache(t *testing.T) {
	ctrl, st := newTestChatController()
	ctx := context.Background()

	msg := "I have a fever and headache for 3 days"
	response, err := ctrl.processMessage(ctx, 1, msg, "en-US")
	if err != nil {
		t.Fatalf("processMessage: %v", err)
	}
	if want := ai.Respond(msg, "en-US"); response != want {
		t.Errorf("response = %q, want fever guidance", response)
	}

	history, err := st.GetChatHistory(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 persisted exchange, got %d", len(history))
	}
	if history[0].Query != msg || history[0].Response != response {
		t.Errorf("persisted exchange differs from what was sent: %+v", history[0])
	}
}

func TestProcessMessageUnknownLanguage(t *testing.T) {
	ctrl, _ := newTestChatController()

	msg := "I have a bad cough"
	response, err := ctrl.processMessage(context.Background(), 1, msg, "xx-XX")
	if err != nil {
		t.Fatalf("processMessage: %v", err)
	}
	if want := ai.Respond(msg, ai.DefaultLanguage); response != want {
		t.Errorf("unknown locale should answer in the default language")
	}
}

func TestHistoryMapsStoreRows(t *testing.T) {
	ctrl, st := newTestChatController()
	ctx := context.Background()

	if _, err := st.SaveChat(ctx, 3, "first question", "first answer"); err != nil {
		t.Fatal(err)
	}
	if _, err := st.SaveChat(ctx, 3, "second question", "second answer"); err != nil {
		t.Fatal(err)
	}

	entries, err := ctrl.History(ctx, 3)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// newest first
	if entries[0].Query != "second question" || entries[0].Response != "second answer" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Query != "first question" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
	for _, e := range entries {
		if e.UserID != 3 || e.ChatID == 0 || e.Timestamp.IsZero() {
			t.Errorf("incomplete entry mapping: %+v", e)
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	ctrl, _ := newTestChatController()
	entries, err := ctrl.History(context.Background(), 99)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty history, got %v", entries)
	}
}
