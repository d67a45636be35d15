package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobscout/internal/embedding"
	"github.com/spigell/jobscout/internal/logger"
	"github.com/spigell/jobscout/internal/profile"
	"github.com/spigell/jobscout/internal/recommend"
	"github.com/spigell/jobscout/internal/secrets"
	"github.com/spigell/jobscout/internal/source"
	"github.com/spigell/jobscout/internal/store"
)

const (
	PromptSaveMatches     = "Save matches for this profile"
	PromptNo              = "No"
	PromptReportByCompany = "Report by companies"
	PromptMatchesToFile   = "Dump matches to file"
	defaultQuery          = "software"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptSaveMatches, PromptNo, PromptReportByCompany, PromptMatchesToFile},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch jobs from all sources and rank them against your profile",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-approve", "y", false, "save matches without asking for confirmation")
	runCmd.Flags().IntP("limit", "l", 0, "maximum number of matches to keep")
	runCmd.Flags().StringP("profile", "p", "", "name of the stored profile to rank against")
	runCmd.Flags().StringP("query", "q", "", "search query (default is derived from the profile)")

	viper.BindPFlag("limit", runCmd.Flags().Lookup("limit"))
	viper.BindPFlag("profile", runCmd.Flags().Lookup("profile"))
	viper.BindPFlag("query", runCmd.Flags().Lookup("query"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the jobscout", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	db, err := store.Open(config.Store.Path, logger)
	if err != nil {
		logger.Fatal("opening the store", zap.Error(err))
	}
	defer db.Close()

	prof, err := db.GetProfile(ctx, config.Profile)
	if err != nil {
		logger.Fatal("loading profile",
			zap.Error(err),
			zap.String("profile", config.Profile),
			zap.String("hint", "import one first with 'jobscout profile import --file resume.txt'"),
		)
	}

	query := strings.TrimSpace(config.Query)
	if query == "" {
		query = deriveQuery(prof)
	}

	location := ""
	if config.Filters != nil {
		location = config.Filters.Location
	}

	logger.Info("starting the search", zap.String("query", query))

	aggregator := source.New(sourcesConfig(config), logger)

	jobs, err := aggregator.Fetch(ctx, query, location)
	if err != nil {
		logger.Fatal("fetching jobs", zap.Error(err))
	}

	if jobs.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no jobs found"))
		return
	}

	provider := newEmbeddingProvider(ctx, config.AI, logger)

	engine := recommend.New(provider, logger)

	matches := engine.Rank(ctx, prof, jobs, config.Filters)
	if matches.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no jobs left after filters"))
		return
	}

	matches.Limit(config.Limit)

	printMatches(matches, logger)

	action := PromptSaveMatches
	for {
		var err error
		if cmd.Flag("auto-approve").Value.String() == "false" {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		if err := handleAction(ctx, action, db, logger, config, matches); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, db *store.Store, logger *zap.Logger, config *Config, matches *recommend.Matches) error {
	switch action {
	case PromptSaveMatches:
		for _, match := range matches.Items {
			if err := db.SaveMatch(ctx, config.Profile, match); err != nil {
				return fmt.Errorf("save match: %w", err)
			}
		}
		logger.Info("saved matches",
			zap.String("profile", config.Profile),
			zap.Int("count", matches.Len()),
		)
		return errExit
	case PromptNo:
		logger.Info("exiting", zap.String("reason", "got no from prompt"))
		return errExit
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(matches.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("matches count", matches.Len()))
		return nil
	case PromptMatchesToFile:
		filename, err := matches.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printMatches(matches *recommend.Matches, logger *zap.Logger) {
	for _, match := range matches.Items {
		logger.Info("match",
			zap.String("job_id", match.Job.ID),
			zap.String("title", match.Job.Title),
			zap.String("company", match.Job.Company),
			zap.String("source", match.Job.Source),
			zap.Float64("match_score", match.Score),
			zap.String("explanation", match.Explanation.Explanation),
		)
	}

	logger.Info("ranked matches", zap.Int("count", matches.Len()))
}

// deriveQuery builds a search query from the profile when none is configured.
// Desired titles win, then the leading skills.
func deriveQuery(p profile.Profile) string {
	if len(p.DesiredJobTitles) > 0 {
		return strings.Join(p.DesiredJobTitles, " ")
	}

	if len(p.Skills) > 0 {
		skills := p.Skills
		if len(skills) > 3 {
			skills = skills[:3]
		}
		return strings.Join(skills, " ")
	}

	return defaultQuery
}

func sourcesConfig(config *Config) *source.Config {
	cfg := &source.Config{}
	if config.Sources == nil {
		return cfg
	}

	cfg.MaxPerSource = config.Sources.MaxPerSource
	cfg.DefaultLocation = config.Sources.DefaultLocation

	if config.Sources.Adzuna != nil {
		cfg.Adzuna = &source.AdzunaConfig{
			AppID:   config.Sources.Adzuna.AppID,
			APIKey:  config.Sources.Adzuna.APIKey,
			Country: config.Sources.Adzuna.Country,
		}
	}
	if config.Sources.Jooble != nil {
		cfg.Jooble = &source.JoobleConfig{
			APIKey: config.Sources.Jooble.APIKey,
		}
	}

	return cfg
}

// newEmbeddingProvider builds the semantic scoring provider. Any failure to
// configure it degrades to keyword-only matching instead of aborting the run.
func newEmbeddingProvider(ctx context.Context, cfg *AIConfig, logger *zap.Logger) embedding.Provider {
	if cfg == nil || !cfg.Enabled {
		logger.Info("semantic matching disabled", zap.String("reason", "ai is not enabled in config"))
		return embedding.Disabled{}
	}

	src := secrets.Source{
		Name: "gemini api key",
		Env:  "GEMINI_API_KEY",
	}
	if cfg.Gemini != nil {
		src.File = cfg.Gemini.APIKeyFile
	}

	apiKey, err := secrets.LoadOptional(src)
	if err != nil {
		logger.Warn("semantic matching disabled", zap.Error(err))
		return embedding.Disabled{}
	}
	if apiKey == "" {
		logger.Info("semantic matching disabled",
			zap.String("reason", "no gemini api key configured"),
			zap.String("hint", "set ai.gemini.api-key-file or GEMINI_API_KEY"),
		)
		return embedding.Disabled{}
	}

	model := ""
	if cfg.Gemini != nil {
		model = cfg.Gemini.EmbeddingModel
	}

	provider, err := embedding.NewGemini(ctx, apiKey, model, embedding.NewCache(0), logger)
	if err != nil {
		logger.Warn("semantic matching disabled", zap.Error(err))
		return embedding.Disabled{}
	}

	return provider
}

func geminiAPIKey(cfg *GeminiConfig) (string, error) {
	src := secrets.Source{
		Name: "gemini api key",
		Env:  "GEMINI_API_KEY",
	}
	if cfg != nil {
		src.File = cfg.APIKeyFile
	}

	apiKey, err := secrets.Load(src)
	if err != nil {
		return "", fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	return apiKey, nil
}
