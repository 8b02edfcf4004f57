package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPreviewText(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", "log")

	out, err := run(t, "preview", "--name", "Ada", "--email", "ada@example.com", "--message", "Hello")
	require.NoError(t, err)

	assert.Contains(t, out, "=== notification ===")
	assert.Contains(t, out, "Subject: New inquiry from Ada")
	assert.Contains(t, out, "Phone: -")
	assert.Contains(t, out, "=== acknowledgement ===")
	assert.Contains(t, out, "Hi Ada,")
	assert.NotContains(t, out, "<!doctype html>")
}

func TestPreviewHTML(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", "log")

	out, err := run(t, "preview", "--name", "<b>Ada</b>", "--email", "ada@example.com", "--message", "Hello", "--part", "html")
	require.NoError(t, err)

	assert.Contains(t, out, "<!doctype html>")
	assert.NotContains(t, out, "<strong><b>Ada</b></strong>")
}

func TestPreviewMissingFields(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", "log")

	_, err := run(t, "preview", "--name", "Ada")
	assert.EqualError(t, err, "Missing required fields.")
}

func TestSend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"adminId":"m1","clientId":"m2","acknowledgement":"sent"}`))
	}))
	defer server.Close()

	out, err := run(t, "send", "--api", server.URL, "--name", "Ada", "--email", "ada@example.com", "--message", "Hello")
	require.NoError(t, err)
	assert.Contains(t, out, "Thanks — we received your message!")
}

func TestSendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Notification send failed."}`))
	}))
	defer server.Close()

	out, err := run(t, "send", "--api", server.URL, "--name", "Ada", "--email", "ada@example.com", "--message", "Hello")
	assert.EqualError(t, err, "inquiry not delivered")
	assert.Contains(t, out, "Notification send failed.")
}
