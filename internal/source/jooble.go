package source

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/jobscout/internal/job"
)

const joobleAPIURL = "https://jooble.org/api/"

type jooble struct {
	cfg    *JoobleConfig
	client *http.Client
	logger *zap.Logger
	apiURL string
}

type joobleJob struct {
	ID       any `json:"id"`
	Title    string
	Company  string
	Snippet  string
	Location string
	Link     string
	Updated  string
}

func newJooble(cfg *JoobleConfig, client *http.Client, logger *zap.Logger) *jooble {
	return &jooble{cfg: cfg, client: client, logger: logger, apiURL: joobleAPIURL}
}

func (j *jooble) Name() string { return "jooble" }

func (j *jooble) Fetch(ctx context.Context, query, location string, maxResults int) (*job.Listings, error) {
	payload := map[string]any{
		"keywords": query,
		"location": location,
		"page":     1,
	}

	document, err := postJSON(ctx, j.client, j.apiURL+j.cfg.APIKey, payload)
	if err != nil {
		return nil, fmt.Errorf("jooble search: %w", err)
	}

	var decoded struct {
		Jobs []joobleJob
	}
	cfg := &mapstructure.DecoderConfig{
		Result:  &decoded,
		TagName: "json",
	}
	decoder, _ := mapstructure.NewDecoder(cfg)
	if err := decoder.Decode(document); err != nil {
		return nil, fmt.Errorf("decode jooble results: %w", err)
	}

	listings := &job.Listings{}
	for _, item := range decoded.Jobs {
		if listings.Len() >= maxResults {
			break
		}
		listings.Items = append(listings.Items, &job.Listing{
			ID:          fmt.Sprintf("jooble_%v", item.ID),
			Title:       item.Title,
			Company:     orUnknown(item.Company),
			Description: item.Snippet,
			Location:    orDefault(item.Location, location),
			Skills:      extractSkills(item.Snippet),
			Remote:      mentionsRemote(item.Snippet),
			URL:         item.Link,
			Source:      j.Name(),
			PostedDate:  item.Updated,
		})
	}

	j.logger.Info("fetched jobs from jooble", zap.Int("count", listings.Len()))

	return listings, nil
}
