package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

const adzunaResponse = `{
	"results": [
		{
			"id": 42,
			"title": "Software Engineer",
			"company": {"display_name": "TechCorp Inc"},
			"description": "Build services in Python with Docker. Remote friendly.",
			"location": {"display_name": "San Francisco, CA"},
			"salary_min": 120000,
			"salary_max": 160000,
			"redirect_url": "https://example.com/jobs/42",
			"created": "2025-01-15T00:00:00Z"
		},
		{
			"id": "abc-7",
			"title": "Data Analyst",
			"company": {},
			"description": "SQL reporting role.",
			"location": {}
		}
	]
}`

func TestAdzunaFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("app_id") != "id" || q.Get("app_key") != "key" {
			t.Errorf("missing credentials in query: %v", q)
		}
		if q.Get("what") != "engineer" {
			t.Errorf("query = %q, want engineer", q.Get("what"))
		}
		if q.Get("results_per_page") != "10" {
			t.Errorf("results_per_page = %q, want 10", q.Get("results_per_page"))
		}

		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write([]byte(adzunaResponse))
	}))
	defer server.Close()

	src := newAdzuna(&AdzunaConfig{AppID: "id", APIKey: "key"}, server.Client(), zap.NewNop())
	src.apiURL = server.URL

	listings, err := src.Fetch(context.Background(), "engineer", "California", 10)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if listings.Len() != 2 {
		t.Fatalf("Len = %d, want 2", listings.Len())
	}

	first := listings.Items[0]
	if first.ID != "adzuna_42" {
		t.Fatalf("ID = %q, want adzuna_42", first.ID)
	}
	if first.Company != "TechCorp Inc" {
		t.Fatalf("Company = %q", first.Company)
	}
	if !first.Remote {
		t.Fatal("expected remote from description hint")
	}
	if first.SalaryMin == nil || *first.SalaryMin != 120000 {
		t.Fatalf("SalaryMin = %v", first.SalaryMin)
	}
	if len(first.Skills) == 0 {
		t.Fatal("expected skills extracted from description")
	}

	second := listings.Items[1]
	if second.ID != "adzuna_abc-7" {
		t.Fatalf("ID = %q, want adzuna_abc-7", second.ID)
	}
	if second.Company != "Unknown" {
		t.Fatalf("Company = %q, want Unknown fallback", second.Company)
	}
	if second.Location != "California" {
		t.Fatalf("Location = %q, want search location fallback", second.Location)
	}
}

func TestAdzunaFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	src := newAdzuna(&AdzunaConfig{AppID: "id", APIKey: "key"}, server.Client(), zap.NewNop())
	src.apiURL = server.URL

	if _, err := src.Fetch(context.Background(), "engineer", "", 10); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
