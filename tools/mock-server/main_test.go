package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func do(t *testing.T, h http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSMS_Accepted(t *testing.T) {
	s := &sink{}
	mux := newMux(testLogger(), s)

	w := do(t, mux, http.MethodPost, "/sms", `{"from":"MSP","to":"+15550100","text":"[critical] CPU high"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["id"] != "sms-1" || resp["status"] != "queued" {
		t.Errorf("resp=%v, want id sms-1 status queued", resp)
	}
	if got := len(s.list("sms")); got != 1 {
		t.Errorf("recorded=%d, want 1", got)
	}
}

func TestSMS_RequiresBearerWhenConfigured(t *testing.T) {
	s := &sink{apiKey: "secret"}
	mux := newMux(testLogger(), s)
	body := `{"to":"+15550100","text":"hi"}`

	if w := do(t, mux, http.MethodPost, "/sms", body, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status=%d, want %d", w.Code, http.StatusUnauthorized)
	}
	w := do(t, mux, http.MethodPost, "/sms", body, map[string]string{"Authorization": "Bearer secret"})
	if w.Code != http.StatusOK {
		t.Errorf("with token: status=%d, want %d", w.Code, http.StatusOK)
	}
}

func TestSMS_BadRequests(t *testing.T) {
	mux := newMux(testLogger(), &sink{})

	for _, body := range []string{`not json`, `{"text":"no number"}`, `{"to":"+1555","text":"  "}`} {
		if w := do(t, mux, http.MethodPost, "/sms", body, nil); w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status=%d, want %d", body, w.Code, http.StatusBadRequest)
		}
	}
}

func TestSMS_FailEvery(t *testing.T) {
	s := &sink{failEvery: 2}
	mux := newMux(testLogger(), s)
	body := `{"to":"+15550100","text":"hi"}`

	codes := make([]int, 0, 4)
	for range 4 {
		codes = append(codes, do(t, mux, http.MethodPost, "/sms", body, nil).Code)
	}
	want := []int{200, 503, 200, 503}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("codes=%v, want %v", codes, want)
		}
	}
	if got := len(s.list("")); got != 2 {
		t.Errorf("recorded=%d, want 2", got)
	}
}

func TestDiscordWebhook(t *testing.T) {
	s := &sink{}
	mux := newMux(testLogger(), s)

	w := do(t, mux, http.MethodPost, "/discord/webhook", `{"embeds":[{"title":"Alert","color":15158332}]}`, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusNoContent)
	}
	if w := do(t, mux, http.MethodPost, "/discord/webhook", `{"embeds":[]}`, nil); w.Code != http.StatusBadRequest {
		t.Errorf("empty embeds: status=%d, want %d", w.Code, http.StatusBadRequest)
	}
	if got := len(s.list("discord")); got != 1 {
		t.Errorf("recorded=%d, want 1", got)
	}
}

func TestDeliveries_ListFilterAndReset(t *testing.T) {
	s := &sink{}
	mux := newMux(testLogger(), s)
	do(t, mux, http.MethodPost, "/sms", `{"to":"+1","text":"a"}`, nil)
	do(t, mux, http.MethodPost, "/discord/webhook", `{"embeds":[{"title":"b"}]}`, nil)

	w := do(t, mux, http.MethodGet, "/deliveries?channel=discord", "", nil)
	var got []delivery
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(got) != 1 || got[0].Channel != "discord" {
		t.Fatalf("got=%+v, want one discord delivery", got)
	}

	if w := do(t, mux, http.MethodDelete, "/deliveries", "", nil); w.Code != http.StatusNoContent {
		t.Fatalf("reset status=%d", w.Code)
	}
	if n := len(s.list("")); n != 0 {
		t.Errorf("after reset=%d, want 0", n)
	}
}
