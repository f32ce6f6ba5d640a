package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/antoinepurnelle/resume-companion/internal/resume"
	"github.com/antoinepurnelle/resume-companion/internal/secrets"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "resume-companion"
)

type Config struct {
	Backend *BackendConfig `mapstructure:"backend"`
	AI      *AIConfig      `mapstructure:"ai"`
}

type BackendConfig struct {
	// URL is the full resume document endpoint, e.g. a jsonbin.io bin
	// "latest" URL.
	URL        string `mapstructure:"url"`
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	UserAgent  string `mapstructure:"user-agent"`
}

type AIConfig struct {
	Gemini *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-companion fetches a hosted resume and answers questions about it",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("backend.api-key-file", "RESUME_API_KEY_FILE"); err != nil {
		log.Fatalf("binding RESUME_API_KEY_FILE environment variable: %v", err)
	}

	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-companion.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// A config file is needed only for the commands hitting the backends.
	if showCmd.CalledAs() == "" && experienceCmd.CalledAs() == "" && askCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if config == nil {
		return nil, errors.New("config is required")
	}

	return config, nil
}

// newResumeClient assembles the resume data gateway from the configuration.
func newResumeClient(logger *zap.Logger, config *Config) (*resume.Client, error) {
	if config.Backend == nil || strings.TrimSpace(config.Backend.URL) == "" {
		return nil, errors.New("backend url is required under backend.url")
	}

	key, err := secrets.Load(secrets.Source{
		Name:  "resume backend api key",
		Value: config.Backend.APIKey,
		File:  config.Backend.APIKeyFile,
	})
	if err != nil {
		return nil, err
	}

	client := resume.New(logger, config.Backend.URL, key)

	if ua := strings.TrimSpace(config.Backend.UserAgent); ua != "" {
		client.UserAgent = ua
	}

	return client, nil
}
