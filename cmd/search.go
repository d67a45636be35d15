package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobscout/internal/logger"
	"github.com/spigell/jobscout/internal/source"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Fetch jobs from all sources without ranking them",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		search(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("location", "L", "", "location to search in")
	searchCmd.Flags().BoolP("dump", "o", false, "dump the results to a temporary file")
}

func search(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	query := defaultQuery
	if len(args) > 0 {
		query = args[0]
	}

	location, _ := cmd.Flags().GetString("location")

	aggregator := source.New(sourcesConfig(config), logger)

	jobs, err := aggregator.Fetch(ctx, query, location)
	if err != nil {
		logger.Fatal("fetching jobs", zap.Error(err))
	}

	for _, listing := range jobs.Items {
		logger.Info("job",
			zap.String("job_id", listing.ID),
			zap.String("title", listing.Title),
			zap.String("company", listing.Company),
			zap.String("location", listing.Location),
			zap.String("source", listing.Source),
			zap.Bool("remote", listing.Remote),
		)
	}

	logger.Info("fetched jobs", zap.Int("count", jobs.Len()))

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		filename, err := jobs.DumpToTmpFile()
		if err != nil {
			logger.Fatal("dumping results to file", zap.Error(err))
		}
		logger.Info("dumped results to file", zap.String("filename", filename))
	}
}
