package job

import (
	"encoding/json"
	"os"
	"testing"
)

func sample() *Listings {
	return &Listings{Items: []*Listing{
		{ID: "mock_1", Title: "Software Engineer", Company: "TechCorp Inc", Source: "mock"},
		{ID: "mock_2", Title: "Data Scientist", Company: "DataWorks", Source: "mock"},
		{ID: "adzuna_7", Title: "Backend Developer", Company: "CloudCo", Source: "adzuna"},
	}}
}

func TestFindByID(t *testing.T) {
	l := sample()

	if got := l.FindByID("mock_2"); got == nil || got.Title != "Data Scientist" {
		t.Fatalf("FindByID(mock_2) = %+v", got)
	}
	if got := l.FindByID("missing"); got != nil {
		t.Fatalf("FindByID(missing) = %+v, want nil", got)
	}
}

func TestAppend(t *testing.T) {
	l := sample()
	l.Append(&Listings{Items: []*Listing{{ID: "jooble_1"}}})

	if l.Len() != 4 {
		t.Fatalf("Len = %d, want 4", l.Len())
	}
	if l.Items[3].ID != "jooble_1" {
		t.Fatalf("appended item not at the end: %s", l.Items[3].ID)
	}

	l.Append(nil)
	if l.Len() != 4 {
		t.Fatalf("appending nil changed length to %d", l.Len())
	}
}

func TestLimit(t *testing.T) {
	l := sample()

	l.Limit(10)
	if l.Len() != 3 {
		t.Fatalf("limit above length changed count to %d", l.Len())
	}

	l.Limit(2)
	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}
	if l.Items[0].ID != "mock_1" || l.Items[1].ID != "mock_2" {
		t.Fatalf("limit did not preserve order: %v", l.Items)
	}
}

func TestDumpToTmpFile(t *testing.T) {
	l := sample()

	filename, err := l.DumpToTmpFile()
	if err != nil {
		t.Fatalf("DumpToTmpFile returned error: %v", err)
	}
	defer os.Remove(filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}

	var decoded Listings
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("dump is not valid JSON: %v", err)
	}
	if decoded.Len() != 3 {
		t.Fatalf("decoded %d listings, want 3", decoded.Len())
	}
}
