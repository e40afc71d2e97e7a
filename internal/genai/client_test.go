package genai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newTestClient(url string) *Client {
	c := NewClient(&Config{APIKey: "test-key", ModelID: "test-model"}, zap.NewNop().Sugar())
	c.apiURL = url
	return c
}

func stubServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

const okBody = `{"candidates":[{"content":{"parts":[{"text":"  \"Pay within 15 days.\"  "}]}}]}`

func TestGenerateTermsSuccess(t *testing.T) {
	srv := stubServer(t, http.StatusOK, okBody)
	defer srv.Close()

	c := newTestClient(srv.URL)
	got := c.GenerateTerms(context.Background(), "friendly")

	if got != `"Pay within 15 days."` {
		t.Errorf("unexpected terms: %q", got)
	}
}

func TestGenerateTermsServerErrorFallsBack(t *testing.T) {
	srv := stubServer(t, http.StatusInternalServerError, `boom`)
	defer srv.Close()

	c := newTestClient(srv.URL)
	got := c.GenerateTerms(context.Background(), "friendly")

	if got != DefaultTerms {
		t.Errorf("expected fallback terms, got %q", got)
	}
}

func TestGenerateTermsUnreachableFallsBack(t *testing.T) {
	c := newTestClient("http://127.0.0.1:0")
	got := c.GenerateTerms(context.Background(), "friendly")

	if got != DefaultTerms {
		t.Errorf("expected fallback terms, got %q", got)
	}
}

func TestGenerateTermsEmptyCandidatesFallsBack(t *testing.T) {
	srv := stubServer(t, http.StatusOK, `{"candidates":[]}`)
	defer srv.Close()

	c := newTestClient(srv.URL)
	if got := c.GenerateTerms(context.Background(), "friendly"); got != DefaultTerms {
		t.Errorf("expected fallback terms, got %q", got)
	}
}

func TestGenerateItemDescriptionStripsQuotes(t *testing.T) {
	srv := stubServer(t, http.StatusOK, okBody)
	defer srv.Close()

	c := newTestClient(srv.URL)
	got := c.GenerateItemDescription(context.Background(), "pay days")

	if got != "Pay within 15 days." {
		t.Errorf("expected unquoted description, got %q", got)
	}
}

func TestGenerateItemDescriptionFailureReturnsKeywords(t *testing.T) {
	srv := stubServer(t, http.StatusBadGateway, ``)
	defer srv.Close()

	c := newTestClient(srv.URL)
	got := c.GenerateItemDescription(context.Background(), "logo design sprint")

	if got != "logo design sprint" {
		t.Errorf("expected keywords unchanged, got %q", got)
	}
}

func TestUnconfiguredNeverTouchesNetwork(t *testing.T) {
	g := Unconfigured{}
	ctx := context.Background()

	if got := g.GenerateTerms(ctx, "stern"); got != DefaultTerms {
		t.Errorf("expected default terms, got %q", got)
	}
	if got := g.GenerateItemDescription(ctx, "three words here"); got != "three words here" {
		t.Errorf("expected keywords unchanged, got %q", got)
	}
}
