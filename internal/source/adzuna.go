package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/jobscout/internal/job"
)

const adzunaAPIURL = "https://api.adzuna.com/v1/api/jobs"

type adzuna struct {
	cfg    *AdzunaConfig
	client *http.Client
	logger *zap.Logger
	apiURL string
}

type adzunaJob struct {
	ID      any `json:"id"`
	Title   string
	Company struct {
		DisplayName string `json:"display_name"`
	}
	Description string
	Location    struct {
		DisplayName string `json:"display_name"`
	}
	SalaryMin   *float64 `json:"salary_min"`
	SalaryMax   *float64 `json:"salary_max"`
	RedirectURL string   `json:"redirect_url"`
	Created     string
}

func newAdzuna(cfg *AdzunaConfig, client *http.Client, logger *zap.Logger) *adzuna {
	country := cfg.Country
	if country == "" {
		country = "us"
	}
	return &adzuna{
		cfg:    &AdzunaConfig{AppID: cfg.AppID, APIKey: cfg.APIKey, Country: country},
		client: client,
		logger: logger,
		apiURL: adzunaAPIURL,
	}
}

func (a *adzuna) Name() string { return "adzuna" }

func (a *adzuna) Fetch(ctx context.Context, query, location string, maxResults int) (*job.Listings, error) {
	q := url.Values{}
	q.Set("app_id", a.cfg.AppID)
	q.Set("app_key", a.cfg.APIKey)
	q.Set("what", query)
	q.Set("where", location)
	q.Set("results_per_page", strconv.Itoa(min(maxResults, 50)))

	searchURL := fmt.Sprintf("%s/%s/search/1", a.apiURL, a.cfg.Country)

	document, err := getJSON(ctx, a.client, searchURL, q)
	if err != nil {
		return nil, fmt.Errorf("adzuna search: %w", err)
	}

	var decoded struct {
		Results []adzunaJob
	}
	cfg := &mapstructure.DecoderConfig{
		Result:  &decoded,
		TagName: "json",
	}
	decoder, _ := mapstructure.NewDecoder(cfg)
	if err := decoder.Decode(document); err != nil {
		return nil, fmt.Errorf("decode adzuna results: %w", err)
	}

	listings := &job.Listings{}
	for _, item := range decoded.Results {
		listings.Items = append(listings.Items, &job.Listing{
			ID:          fmt.Sprintf("adzuna_%v", item.ID),
			Title:       item.Title,
			Company:     orUnknown(item.Company.DisplayName),
			Description: item.Description,
			Location:    orDefault(item.Location.DisplayName, location),
			Skills:      extractSkills(item.Description),
			Remote:      mentionsRemote(item.Description),
			SalaryMin:   item.SalaryMin,
			SalaryMax:   item.SalaryMax,
			URL:         item.RedirectURL,
			Source:      a.Name(),
			PostedDate:  item.Created,
		})
	}

	a.logger.Info("fetched jobs from adzuna", zap.Int("count", listings.Len()))

	return listings, nil
}

func orUnknown(s string) string {
	return orDefault(s, "Unknown")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
