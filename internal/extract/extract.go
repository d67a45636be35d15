// Package extract turns raw resume text into a structured candidate profile
// using a generative model. File-format handling (PDF, DOCX) is deliberately
// out of scope; callers supply plain text.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/jobscout/internal/logger"
	"github.com/spigell/jobscout/internal/profile"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Extractor asks a generative model to parse resume text into the profile
// schema.
type Extractor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewExtractor(generator contentGenerator, log *zap.Logger, maxLogLength int) *Extractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Extractor{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Extract parses the resume text into a profile draft. Unlike embedding
// unavailability, a failure here is an error: the caller asked for an
// extraction and must know it did not happen.
func (e *Extractor) Extract(ctx context.Context, resumeText string) (profile.Profile, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return profile.Profile{}, errors.New("resume text must not be empty")
	}

	prompt := buildPrompt(resumeText)

	e.logger.Debug("resume extraction request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("generate extraction: %w", err)
	}

	e.logger.Debug("resume extraction response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, e.maxLogLen)),
	)

	extracted, err := parseResponse(raw)
	if err != nil {
		return profile.Profile{}, err
	}

	e.logger.Info("extracted resume",
		zap.String("name", extracted.Name),
		zap.Int("skills", len(extracted.Skills)),
		zap.Int("experience_entries", len(extracted.Experience)),
	)

	return extracted, nil
}

func buildPrompt(resumeText string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Resume text:\n{{RESUME_TEXT}}\n\nJSON:"
	}
	return strings.ReplaceAll(template, "{{RESUME_TEXT}}", resumeText)
}

func parseResponse(raw string) (profile.Profile, error) {
	cleaned := extractJSON(raw)

	var extracted profile.Profile
	if err := json.Unmarshal([]byte(cleaned), &extracted); err != nil {
		return profile.Profile{}, fmt.Errorf("parse extraction response: %w", err)
	}

	return extracted, nil
}

// extractJSON strips markdown code fences and surrounding prose so only the
// JSON object remains.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	raw = strings.TrimSpace(raw)

	// Fall back to the outermost braces when the model added prose around
	// the object.
	if !strings.HasPrefix(raw, "{") {
		start := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if start != -1 && end > start {
			raw = raw[start : end+1]
		}
	}

	return strings.TrimSpace(raw)
}
