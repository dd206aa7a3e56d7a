package indexstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgallion1/outliner/internal/outline"
)

func TestPutOutline_SendsRecordWithAuth(t *testing.T) {
	var gotAuth string
	var gotRec OutlineRecord
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/outlines/report" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotRec); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	rec := OutlineRecord{
		Source:   "report.pdf",
		Title:    "Annual Report",
		Headings: 2,
		Outline: []outline.Entry{
			{Level: outline.H1, Text: "1. Introduction", Page: 1},
			{Level: outline.H2, Text: "1.1 Scope", Page: 2},
		},
	}
	if err := c.PutOutline(context.Background(), "report", rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotRec.Title != "Annual Report" || len(gotRec.Outline) != 2 {
		t.Errorf("unexpected record: %+v", gotRec)
	}
}

func TestGetOutline_NotFoundReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	rec, err := c.GetOutline(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil record, got %+v", rec)
	}
}

func TestStatusError_RetryableClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{"rate limited", http.StatusTooManyRequests, true},
		{"server error", http.StatusInternalServerError, true},
		{"bad gateway", http.StatusBadGateway, true},
		{"bad request", http.StatusBadRequest, false},
		{"unauthorized", http.StatusUnauthorized, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "secret")
			err := c.PutOutline(context.Background(), "doc", OutlineRecord{})
			if err == nil {
				t.Fatal("expected an error")
			}
			var re *RetryableError
			if got := errors.As(err, &re); got != tc.retryable {
				t.Errorf("retryable = %v, want %v (err: %v)", got, tc.retryable, err)
			}
		})
	}
}

func TestListOutlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/outlines" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "10" {
			t.Errorf("expected limit=10, got %q", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"outlines": []OutlineSummary{{Key: "report", Source: "report.pdf", Title: "Annual Report", Headings: 2}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	got, err := c.ListOutlines(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Key != "report" {
		t.Errorf("unexpected listing: %+v", got)
	}
}
