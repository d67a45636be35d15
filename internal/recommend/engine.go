// Package recommend ranks job listings against a candidate profile using
// weighted sub-scores for title alignment, skills overlap, experience
// relevance and semantic similarity.
package recommend

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/jobscout/internal/embedding"
	"github.com/spigell/jobscout/internal/job"
	"github.com/spigell/jobscout/internal/profile"
)

// Weights control the relative importance of each sub-score. They are
// expected to sum to 1.
type Weights struct {
	Title      float64
	Skills     float64
	Experience float64
	Embedding  float64
}

// DefaultWeights is the standard blend used when no overrides are configured.
var DefaultWeights = Weights{
	Title:      0.25,
	Skills:     0.40,
	Experience: 0.15,
	Embedding:  0.20,
}

const defaultEmbedConcurrency = 8

// Engine produces ranked, explained job matches. It performs no I/O of its
// own beyond asking the embedding provider for vectors.
type Engine struct {
	provider    embedding.Provider
	weights     Weights
	logger      *zap.Logger
	concurrency int
}

// New creates an engine with the default weights. A nil provider disables
// semantic matching entirely.
func New(provider embedding.Provider, logger *zap.Logger) *Engine {
	if provider == nil {
		provider = embedding.Disabled{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		provider:    provider,
		weights:     DefaultWeights,
		logger:      logger,
		concurrency: defaultEmbedConcurrency,
	}
}

// Rank filters the listing pool, scores every surviving job against the
// profile and returns matches sorted by overall score descending. Ties keep
// the filtered input order. An empty pool, before or after filtering, yields
// an empty result and is not an error.
func (e *Engine) Rank(ctx context.Context, p profile.Profile, jobs *job.Listings, filters *job.SearchFilters) *Matches {
	matches := &Matches{}
	if jobs == nil || jobs.Len() == 0 {
		return matches
	}

	filtered := applyFilters(jobs.Items, filters)
	if len(filtered) == 0 {
		e.logger.Warn("no jobs left after applying filters", zap.Int("initial", jobs.Len()))
		return matches
	}

	e.logger.Info("ranking jobs",
		zap.String("profile", p.Name),
		zap.Int("initial", jobs.Len()),
		zap.Int("after_filters", len(filtered)),
	)

	userVector, jobVectors := e.embedAll(ctx, p, filtered)

	for i, listing := range filtered {
		matches.Items = append(matches.Items, e.scoreJob(p, listing, userVector, jobVectors[i]))
	}

	sort.SliceStable(matches.Items, func(i, j int) bool {
		return matches.Items[i].Score > matches.Items[j].Score
	})

	e.logger.Info("ranked jobs",
		zap.Int("count", matches.Len()),
		zap.Float64("top_score", matches.Items[0].Score),
	)

	return matches
}

// embedAll fetches the profile vector and one vector per job. The calls are
// independent, so they are fanned out concurrently with a bounded group and
// joined before scoring starts.
func (e *Engine) embedAll(ctx context.Context, p profile.Profile, jobs []*job.Listing) ([]float32, [][]float32) {
	var userVector []float32
	jobVectors := make([][]float32, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	g.Go(func() error {
		userVector = e.provider.Embed(gctx, embedding.ProfileText(p))
		return nil
	})

	for i, listing := range jobs {
		g.Go(func() error {
			jobVectors[i] = e.provider.Embed(gctx, embedding.JobText(listing))
			return nil
		})
	}

	// Workers report unavailability through nil vectors, never errors.
	_ = g.Wait()

	return userVector, jobVectors
}

func (e *Engine) scoreJob(p profile.Profile, listing *job.Listing, userVector, jobVector []float32) *Match {
	title := titleScore(p, listing)
	skills, matched, missing := skillsScore(p, listing)
	experience := experienceScore(p, listing)

	var overall, semantic float64
	available := userVector != nil && jobVector != nil

	if available {
		semantic = embeddingScore(userVector, jobVector)
		overall = e.weights.Title*title +
			e.weights.Skills*skills +
			e.weights.Experience*experience +
			e.weights.Embedding*semantic
	} else {
		// The embedding weight is dropped and the remaining weighted sum is
		// renormalized over the three available weights.
		remaining := e.weights.Title + e.weights.Skills + e.weights.Experience
		overall = (e.weights.Title*title +
			e.weights.Skills*skills +
			e.weights.Experience*experience) / remaining
	}

	return &Match{
		Job:   listing,
		Score: round2(overall),
		Explanation: Explanation{
			OverallScore:    round2(overall),
			TitleScore:      round2(title),
			SkillsScore:     round2(skills),
			ExperienceScore: round2(experience),
			EmbeddingScore:  round2(semantic),
			MatchedSkills:   matched,
			MissingSkills:   missing,
			Explanation:     explanationText(overall, title, semantic, matched, missing, available),
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
