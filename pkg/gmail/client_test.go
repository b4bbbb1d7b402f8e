package gmail_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workpulse/pkg/gmail"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func TestGmailClient(t *testing.T) {
	t.Run("Initialize from missing files", func(t *testing.T) {
		_, err := gmail.NewClientFromFiles(context.Background(), "non-existent-creds.json", "non-existent-token.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("List Recent Messages E2E", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/gmail/v1/users/me/messages":
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"messages": [{"id": "msg-1"}, {"id": "msg-2"}]}`))
			case "/gmail/v1/users/me/messages/msg-1":
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "msg-1",
					"snippet": "Quarterly numbers attached",
					"internalDate": "1767945600000",
					"payload": {
						"headers": [
							{"name": "From", "value": "boss@example.com"},
							{"name": "Subject", "value": "Q1 report"}
						]
					}
				}`))
			case "/gmail/v1/users/me/messages/msg-2":
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"id": "msg-2", "internalDate": "1767945600000"}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer ts.Close()

		tsClient := ts.Client()
		tsClient.Transport = &rewriteTransport{
			Transport: tsClient.Transport,
			Host:      strings.TrimPrefix(ts.URL, "http://"),
		}

		client, err := gmail.NewClientFromHTTP(context.Background(), tsClient)
		if err != nil {
			t.Fatalf("unexpected error creating client: %v", err)
		}

		messages, err := client.ListRecentMessages(context.Background(), 5)
		if err != nil {
			t.Fatalf("failed to list messages: %v", err)
		}
		if len(messages) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(messages))
		}
		if messages[0].From != "boss@example.com" || messages[0].Subject != "Q1 report" {
			t.Errorf("unexpected headers: %+v", messages[0])
		}
		if messages[1].From != "Unknown" || messages[1].Subject != "(No Subject)" {
			t.Errorf("expected header fallbacks, got %+v", messages[1])
		}
	})

	t.Run("List Recent Messages API error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		tsClient := ts.Client()
		tsClient.Transport = &rewriteTransport{
			Transport: tsClient.Transport,
			Host:      strings.TrimPrefix(ts.URL, "http://"),
		}

		client, _ := gmail.NewClientFromHTTP(context.Background(), tsClient)
		if _, err := client.ListRecentMessages(context.Background(), 5); err == nil {
			t.Fatalf("expected list error")
		}
	})
}
