package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobscout/internal/extract"
	loggerpkg "github.com/spigell/jobscout/internal/logger"
	"github.com/spigell/jobscout/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage stored candidate profiles",
}

var profileImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Extract a profile from a plain-text resume and store it",
	Run: func(cmd *cobra.Command, _ []string) {
		profileImport(cmd)
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a stored profile",
	Run: func(cmd *cobra.Command, _ []string) {
		profileShow(cmd)
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profile names",
	Run: func(cmd *cobra.Command, _ []string) {
		profileList(cmd)
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored profile and its saved jobs",
	Run: func(cmd *cobra.Command, _ []string) {
		profileDelete(cmd)
	},
}

var profileJobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the jobs saved for a profile, best match first",
	Run: func(cmd *cobra.Command, _ []string) {
		profileJobs(cmd)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileImportCmd, profileShowCmd, profileListCmd, profileDeleteCmd, profileJobsCmd)

	profileCmd.PersistentFlags().StringP("name", "n", "", "profile name (default is the configured profile)")

	profileImportCmd.Flags().StringP("file", "f", "", "plain-text resume file to extract the profile from")
	_ = profileImportCmd.MarkFlagRequired("file")
}

func profileImport(cmd *cobra.Command) {
	ctx := context.Background()

	logger, config, db := profileSetup(cmd)
	defer db.Close()

	name := profileName(cmd, config)

	file, _ := cmd.Flags().GetString("file")
	resumeText, err := os.ReadFile(file)
	if err != nil {
		logger.Fatal("reading resume file", zap.Error(err))
	}

	apiKey, err := geminiAPIKey(geminiConfig(config))
	if err != nil {
		logger.Fatal("loading gemini api key", zap.Error(err))
	}

	model := ""
	maxLogLength := 0
	if cfg := geminiConfig(config); cfg != nil {
		model = cfg.Model
		maxLogLength = cfg.MaxLogLength
	}

	generator, err := extract.NewGeminiGenerator(ctx, apiKey, model)
	if err != nil {
		logger.Fatal("building gemini generator", zap.Error(err))
	}

	extractor := extract.NewExtractor(generator, loggerpkg.WithAIFields(logger, "gemini", generator.Model()), maxLogLength)

	extracted, err := extractor.Extract(ctx, string(resumeText))
	if err != nil {
		logger.Fatal("extracting profile from resume", zap.Error(err))
	}

	saved, err := db.SaveProfile(ctx, name, extracted)
	if err != nil {
		logger.Fatal("saving profile", zap.Error(err))
	}

	logger.Info("imported profile", zap.String("name", name))
	printJSON(saved)
}

func profileShow(cmd *cobra.Command) {
	logger, config, db := profileSetup(cmd)
	defer db.Close()

	name := profileName(cmd, config)

	prof, err := db.GetProfile(context.Background(), name)
	if err != nil {
		logger.Fatal("loading profile", zap.Error(err), zap.String("profile", name))
	}

	printJSON(prof)
}

func profileList(cmd *cobra.Command) {
	logger, _, db := profileSetup(cmd)
	defer db.Close()

	names, err := db.ListProfiles(context.Background())
	if err != nil {
		logger.Fatal("listing profiles", zap.Error(err))
	}

	if len(names) == 0 {
		logger.Info("no profiles stored yet")
		return
	}

	for _, name := range names {
		fmt.Println(name)
	}
}

func profileDelete(cmd *cobra.Command) {
	logger, config, db := profileSetup(cmd)
	defer db.Close()

	name := profileName(cmd, config)

	if err := db.DeleteProfile(context.Background(), name); err != nil {
		logger.Fatal("deleting profile", zap.Error(err), zap.String("profile", name))
	}

	logger.Info("deleted profile", zap.String("name", name))
}

func profileJobs(cmd *cobra.Command) {
	logger, config, db := profileSetup(cmd)
	defer db.Close()

	name := profileName(cmd, config)

	saved, err := db.SavedJobs(context.Background(), name)
	if err != nil {
		logger.Fatal("listing saved jobs", zap.Error(err), zap.String("profile", name))
	}

	if len(saved) == 0 {
		logger.Info("no saved jobs for profile", zap.String("profile", name))
		return
	}

	for _, entry := range saved {
		logger.Info("saved job",
			zap.String("job_id", entry.Job.ID),
			zap.String("title", entry.Job.Title),
			zap.String("company", entry.Job.Company),
			zap.Float64("match_score", entry.MatchScore),
			zap.Time("saved_at", entry.SavedAt),
		)
	}
}

func profileSetup(_ *cobra.Command) (*zap.Logger, *Config, *store.Store) {
	logger, err := loggerpkg.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	db, err := store.Open(config.Store.Path, logger)
	if err != nil {
		logger.Fatal("opening the store", zap.Error(err))
	}

	return logger, config, db
}

func profileName(cmd *cobra.Command, config *Config) string {
	if name, _ := cmd.Flags().GetString("name"); name != "" {
		return name
	}
	return config.Profile
}

func geminiConfig(config *Config) *GeminiConfig {
	if config.AI == nil {
		return nil
	}
	return config.AI.Gemini
}

func printJSON(v any) {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return
	}
	fmt.Println(string(pretty))
}
