package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"smart-task-planner/pkg/gcalendar"
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

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

const mockCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestCalendarClientConstructors(t *testing.T) {
	t.Run("Initialize with broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		err := gcalendar.SaveToken(tokenPath, &oauth2.Token{
			AccessToken: "dummy",
			TokenType:   "Bearer",
			Expiry:      time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("failed to save token: %v", err)
		}

		_, err = gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), filepath.Join(t.TempDir(), "missing.json"))
		if err == nil {
			t.Fatalf("expected missing token error")
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		credsPath := filepath.Join(t.TempDir(), "creds.json")
		os.WriteFile(credsPath, []byte(`{"broken":true}`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath, "")
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json", "")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("OAuth config overrides redirect", func(t *testing.T) {
		cfg, err := gcalendar.OAuthConfigFromJSON([]byte(mockCreds), "http://localhost:8080/oauth2callback")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.RedirectURL != "http://localhost:8080/oauth2callback" {
			t.Errorf("unexpected redirect: %s", cfg.RedirectURL)
		}
		if cfg.ClientID != "test-client-id.apps.googleusercontent.com" {
			t.Errorf("unexpected client id: %s", cfg.ClientID)
		}
	})

	t.Run("OAuth config from client id", func(t *testing.T) {
		cfg := gcalendar.OAuthConfig("id", "secret", "http://localhost/cb")
		if len(cfg.Scopes) != 1 || !strings.Contains(cfg.Scopes[0], "calendar") {
			t.Errorf("unexpected scopes: %v", cfg.Scopes)
		}
		if !strings.Contains(cfg.AuthCodeURL("state"), "client_id=id") {
			t.Errorf("auth url missing client id")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Create Event E2E", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"summary": "Title",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		start := time.Now()
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Title",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Timezone:  "Africa/Lagos",
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}
		if !event.StartTime.Equal(start) {
			t.Errorf("unexpected start: %v", event.StartTime)
		}
	})

	t.Run("Create Event Error E2E", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "primary",
		})
		if err == nil {
			t.Fatalf("expected create event error")
		}
	})
}

func TestListEvents(t *testing.T) {
	var gotQuery, gotOrder, gotSingle string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
			gotQuery = r.URL.Query().Get("q")
			gotOrder = r.URL.Query().Get("orderBy")
			gotSingle = r.URL.Query().Get("singleEvents")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"items": [
					{
						"id": "event-1",
						"summary": "Existing Event",
						"start": { "date": "2024-05-01" },
						"end": { "date": "2024-05-02" }
					},
					{
						"id": "event-2",
						"summary": "Standup",
						"start": { "dateTime": "2024-05-01T09:00:00+01:00" },
						"end": { "dateTime": "2024-05-01T09:15:00+01:00" }
					},
					{
						"id": "event-3",
						"status": "cancelled",
						"start": { "dateTime": "2024-05-01T10:00:00+01:00" },
						"end": { "dateTime": "2024-05-01T11:00:00+01:00" }
					}
				]
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin: time.Now(),
		TimeMax: time.Now().Add(time.Hour * 24),
		Query:   "Standup",
	})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if !events[0].IsAllDay || events[0].StartTime.Format(time.DateOnly) != "2024-05-01" {
		t.Errorf("expected all-day event on 2024-05-01, got %+v", events[0])
	}
	if events[1].IsAllDay || events[1].EndTime.Sub(events[1].StartTime) != 15*time.Minute {
		t.Errorf("unexpected timed event: %+v", events[1])
	}
	if gotQuery != "Standup" || gotOrder != "startTime" || gotSingle != "true" {
		t.Errorf("unexpected query params q=%q orderBy=%q singleEvents=%q", gotQuery, gotOrder, gotSingle)
	}

	_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "test-fail",
		TimeMin:    time.Now(),
	})
	if err == nil {
		t.Fatalf("expected api error on test-fail")
	}
}
