package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAPICommand_WaitsForServer(t *testing.T) {
	t.Run("healthy server", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				w.Write([]byte(`{"status":"ok"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		old := serverURL
		serverURL = ts.URL
		defer func() { serverURL = old }()

		apiCmd.SetContext(context.Background())
		if err := apiCmd.PersistentPreRunE(apiCmd, nil); err != nil {
			t.Fatalf("PersistentPreRunE: %v", err)
		}
	})

	t.Run("unreachable server fails", func(t *testing.T) {
		old := serverURL
		serverURL = "http://127.0.0.1:1"
		defer func() { serverURL = old }()

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		apiCmd.SetContext(ctx)

		if err := apiCmd.PersistentPreRunE(apiCmd, nil); err == nil {
			t.Fatal("expected error when the server is unreachable")
		}
	})
}
