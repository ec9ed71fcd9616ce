package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTelegramNotifier_Send(t *testing.T) {
	var got map[string]string
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("tok", "42", "")
	tn.APIBase = srv.URL
	if err := tn.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if path != "/bottok/sendMessage" {
		t.Errorf("unexpected path %q", path)
	}
	if got["chat_id"] != "42" || got["text"] != "hello" || got["parse_mode"] != "HTML" {
		t.Errorf("unexpected payload: %v", got)
	}
}

func TestTelegramNotifier_SendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("tok", "42", "")
	tn.APIBase = srv.URL
	err := tn.SendWithRetry(context.Background(), "hello", 0)
	if err == nil || !strings.Contains(err.Error(), "status 401") {
		t.Fatalf("expected status 401 error, got %v", err)
	}
}

func TestTelegramNotifier_Enabled(t *testing.T) {
	var nilNotifier *TelegramNotifier
	if nilNotifier.Enabled() {
		t.Error("nil notifier should be disabled")
	}
	if NewTelegramNotifier("", "", "").Enabled() {
		t.Error("notifier without token should be disabled")
	}
	if !NewTelegramNotifier("tok", "1", "").Enabled() {
		t.Error("configured notifier should be enabled")
	}
}
