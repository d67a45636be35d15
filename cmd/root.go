package cmd

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/jobscout/internal/job"
)

const (
	app = "jobscout"
)

type Config struct {
	Profile string             `mapstructure:"profile"`
	Limit   int                `mapstructure:"limit"`
	Query   string             `mapstructure:"query"`
	Filters *job.SearchFilters `mapstructure:"filters"`
	Store   *StoreConfig       `mapstructure:"store"`
	Sources *SourcesConfig     `mapstructure:"sources"`
	AI      *AIConfig          `mapstructure:"ai"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type SourcesConfig struct {
	MaxPerSource    int                 `mapstructure:"max-per-source"`
	DefaultLocation string              `mapstructure:"default-location"`
	Adzuna          *AdzunaSourceConfig `mapstructure:"adzuna"`
	Jooble          *JoobleSourceConfig `mapstructure:"jooble"`
}

type AdzunaSourceConfig struct {
	AppID   string `mapstructure:"app-id"`
	APIKey  string `mapstructure:"api-key"`
	Country string `mapstructure:"country"`
}

type JoobleSourceConfig struct {
	APIKey string `mapstructure:"api-key"`
}

type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile     string `mapstructure:"api-key-file"`
	EmbeddingModel string `mapstructure:"embedding-model"`
	Model          string `mapstructure:"model"`
	MaxLogLength   int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobscout is a cli for aggregating job listings and ranking them against your profile",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobscout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Local .env files carry API credentials during development. A missing
	// file is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional. Every option has a flag or environment
	// fallback, but a file that exists and fails to parse is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	if config.Limit <= 0 {
		config.Limit = 20
	}
	if config.Profile == "" {
		config.Profile = "default"
	}
	if config.Store == nil {
		config.Store = &StoreConfig{}
	}
	if config.Store.Path == "" {
		config.Store.Path = app + ".db"
	}

	return config, nil
}
