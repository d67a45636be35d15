package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubGenerator struct {
	response string
	err      error
	prompt   string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubGenerator) Model() string { return "stub" }

const extractedJSON = `{
	"name": "Ada Lovelace",
	"email": "ada@example.com",
	"skills": ["Python", "Mathematics"],
	"experience": [{"title": "Analyst", "company": "Babbage & Co"}],
	"desired_job_titles": ["Software Engineer"]
}`

func TestExtract(t *testing.T) {
	gen := &stubGenerator{response: extractedJSON}
	extractor := NewExtractor(gen, nil, 0)

	prof, err := extractor.Extract(context.Background(), "Ada Lovelace. Analyst at Babbage & Co.")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if prof.Name != "Ada Lovelace" {
		t.Fatalf("Name = %q, want Ada Lovelace", prof.Name)
	}
	if len(prof.Skills) != 2 || prof.Skills[0] != "Python" {
		t.Fatalf("unexpected skills: %v", prof.Skills)
	}
	if len(prof.Experience) != 1 || prof.Experience[0].Title != "Analyst" {
		t.Fatalf("unexpected experience: %+v", prof.Experience)
	}
	if len(prof.DesiredJobTitles) != 1 || prof.DesiredJobTitles[0] != "Software Engineer" {
		t.Fatalf("unexpected desired titles: %v", prof.DesiredJobTitles)
	}

	if !strings.Contains(gen.prompt, "Ada Lovelace. Analyst at Babbage & Co.") {
		t.Fatal("resume text missing from the prompt")
	}
	if strings.Contains(gen.prompt, "{{RESUME_TEXT}}") {
		t.Fatal("prompt placeholder was not substituted")
	}
}

func TestExtractStripsMarkdownFences(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + extractedJSON + "\n```"}
	extractor := NewExtractor(gen, nil, 0)

	prof, err := extractor.Extract(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if prof.Name != "Ada Lovelace" {
		t.Fatalf("Name = %q, want Ada Lovelace", prof.Name)
	}
}

func TestExtractToleratesSurroundingProse(t *testing.T) {
	gen := &stubGenerator{response: "Here is the extracted profile:\n" + extractedJSON + "\nLet me know if you need anything else."}
	extractor := NewExtractor(gen, nil, 0)

	prof, err := extractor.Extract(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if prof.Email != "ada@example.com" {
		t.Fatalf("Email = %q, want ada@example.com", prof.Email)
	}
}

func TestExtractEmptyResume(t *testing.T) {
	extractor := NewExtractor(&stubGenerator{}, nil, 0)

	if _, err := extractor.Extract(context.Background(), "   \n  "); err == nil {
		t.Fatal("expected error for empty resume text")
	}
}

func TestExtractGeneratorError(t *testing.T) {
	wantErr := errors.New("quota exceeded")
	extractor := NewExtractor(&stubGenerator{err: wantErr}, nil, 0)

	_, err := extractor.Extract(context.Background(), "resume text")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped generator error, got %v", err)
	}
}

func TestExtractInvalidJSON(t *testing.T) {
	extractor := NewExtractor(&stubGenerator{response: "not json at all"}, nil, 0)

	if _, err := extractor.Extract(context.Background(), "resume text"); err == nil {
		t.Fatal("expected error for unparseable response")
	}
}
