package joke

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const mockJokeResponse = `{"type":"general","setup":"Why did the chicken cross the road?","punchline":"To get to the other side.","id":42}`

func newJokeServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewClient(t *testing.T) {
	client := NewClient()

	if client.URL != DefaultURL {
		t.Errorf("URL = %s, want %s", client.URL, DefaultURL)
	}

	if client.HTTPClient == nil {
		t.Fatal("HTTPClient should not be nil")
	}

	if client.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", client.HTTPClient.Timeout)
	}
}

func TestSetTimeout(t *testing.T) {
	client := NewClientWithURL("http://127.0.0.1:1")
	client.SetTimeout(250 * time.Millisecond)

	if client.HTTPClient.Timeout != 250*time.Millisecond {
		t.Errorf("Timeout = %v, want 250ms", client.HTTPClient.Timeout)
	}
}

func TestFetchJoke_Success(t *testing.T) {
	var gotMethod string
	var gotHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeaders = r.Header.Clone()
		_, _ = w.Write([]byte(mockJokeResponse))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	j, err := client.FetchJoke(context.Background())
	if err != nil {
		t.Fatalf("FetchJoke() error = %v", err)
	}

	if gotMethod != http.MethodGet {
		t.Errorf("method = %s, want GET", gotMethod)
	}
	if gotHeaders.Get("Authorization") != "" {
		t.Errorf("unexpected Authorization header %q", gotHeaders.Get("Authorization"))
	}

	if j.Setup != "Why did the chicken cross the road?" {
		t.Errorf("Setup = %q", j.Setup)
	}
	if j.Punchline != "To get to the other side." {
		t.Errorf("Punchline = %q", j.Punchline)
	}
}

func TestFetch_FormatsSetupAndPunchline(t *testing.T) {
	server := newJokeServer(t, http.StatusOK, `{"setup":"S","punchline":"P"}`)

	text, err := NewClientWithURL(server.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if text != "S\nP" {
		t.Errorf("Fetch() = %q, want %q", text, "S\nP")
	}
}

func TestFetch_AcceptsAny2xx(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusAccepted, 299} {
		server := newJokeServer(t, status, `{"setup":"S","punchline":"P"}`)
		if _, err := NewClientWithURL(server.URL).Fetch(context.Background()); err != nil {
			t.Errorf("status %d: Fetch() error = %v", status, err)
		}
	}
}

func TestFetch_HTTPError(t *testing.T) {
	tests := []int{
		http.StatusMovedPermanently,
		http.StatusNotFound,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusServiceUnavailable,
	}

	for _, status := range tests {
		t.Run(http.StatusText(status), func(t *testing.T) {
			// A valid joke body must not mask a failing status
			server := newJokeServer(t, status, mockJokeResponse)

			_, err := NewClientWithURL(server.URL).Fetch(context.Background())
			if !IsHTTPError(err) {
				t.Fatalf("expected HTTP error, got %v", err)
			}

			var jokeErr *Error
			if !errors.As(err, &jokeErr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if jokeErr.StatusCode != status {
				t.Errorf("StatusCode = %d, want %d", jokeErr.StatusCode, status)
			}
		})
	}
}

func TestFetch_HTTPErrorKeepsBody(t *testing.T) {
	server := newJokeServer(t, http.StatusServiceUnavailable, `{"message":"quota exceeded"}`)

	_, err := NewClientWithURL(server.URL).Fetch(context.Background())

	var jokeErr *Error
	if !errors.As(err, &jokeErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if jokeErr.Body != `{"message":"quota exceeded"}` {
		t.Errorf("Body = %q", jokeErr.Body)
	}
	if strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("Error() should not include the body: %q", err.Error())
	}
}

func TestFetch_HTTPErrorBodyCapped(t *testing.T) {
	server := newJokeServer(t, http.StatusBadGateway, strings.Repeat("x", 4*maxErrorBodySize))

	_, err := NewClientWithURL(server.URL).Fetch(context.Background())

	var jokeErr *Error
	if !errors.As(err, &jokeErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if len(jokeErr.Body) != maxErrorBodySize {
		t.Errorf("len(Body) = %d, want %d", len(jokeErr.Body), maxErrorBodySize)
	}
}

func TestFetch_RedirectIsFollowed(t *testing.T) {
	target := newJokeServer(t, http.StatusOK, `{"setup":"S","punchline":"P"}`)
	redirect := httptest.NewServer(http.RedirectHandler(target.URL, http.StatusFound))
	defer redirect.Close()

	text, err := NewClientWithURL(redirect.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if text != "S\nP" {
		t.Errorf("Fetch() = %q", text)
	}
}

func TestFetch_ParseError(t *testing.T) {
	server := newJokeServer(t, http.StatusOK, "<html>not json</html>")

	_, err := NewClientWithURL(server.URL).Fetch(context.Background())
	if !IsParseError(err) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestFetch_MissingField(t *testing.T) {
	server := newJokeServer(t, http.StatusOK, `{"setup": "only setup"}`)

	_, err := NewClientWithURL(server.URL).Fetch(context.Background())
	if !IsMissingFieldError(err) {
		t.Fatalf("expected missing field error, got %v", err)
	}

	var jokeErr *Error
	if errors.As(err, &jokeErr) && jokeErr.Field != "punchline" {
		t.Errorf("Field = %q, want punchline", jokeErr.Field)
	}
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClientWithURL(server.URL)
	client.SetTimeout(50 * time.Millisecond)

	start := time.Now()
	_, err := client.Fetch(context.Background())
	if !IsTimeout(err) {
		t.Fatalf("expected timeout error, got %v", err)
	}
	if !IsNetworkError(err) {
		t.Error("timeout should also be reported as a network error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Fetch() took %v, timeout was not applied", elapsed)
	}
}

func TestFetch_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewClientWithURL(url).Fetch(context.Background())
	if !IsNetworkError(err) {
		t.Fatalf("expected network error, got %v", err)
	}
	if IsHTTPError(err) || IsParseError(err) {
		t.Errorf("connection failure misclassified: %v", err)
	}
}

func TestFetch_InvalidURL(t *testing.T) {
	_, err := NewClientWithURL("://bad url").Fetch(context.Background())
	if !IsNetworkError(err) {
		t.Fatalf("expected network error, got %v", err)
	}
	if !strings.Contains(err.Error(), "failed to create GET request") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestFetch_CanceledContext(t *testing.T) {
	server := newJokeServer(t, http.StatusOK, mockJokeResponse)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClientWithURL(server.URL).Fetch(ctx)
	if !IsNetworkError(err) {
		t.Fatalf("expected network error, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected error chain to contain context.Canceled, got %v", err)
	}
}
