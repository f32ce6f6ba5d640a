package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/antoinepurnelle/resume-companion/internal/ai"
	"github.com/antoinepurnelle/resume-companion/internal/ai/gemini"
	"github.com/antoinepurnelle/resume-companion/internal/logger"
	"github.com/antoinepurnelle/resume-companion/internal/resume"
	"github.com/antoinepurnelle/resume-companion/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the AI assistant about the resume",
	Long: "Ask the AI assistant about the resume. Without a question argument " +
		"an interactive session is started; an empty question ends it.",
	Run: func(_ *cobra.Command, args []string) {
		ask(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func ask(question string) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	client, err := newResumeClient(zlog, config)
	if err != nil {
		zlog.Fatal("creating the resume client", zap.Error(err))
	}

	assistant, err := newAssistant(ctx, zlog, config, client)
	if err != nil {
		zlog.Fatal("creating the ai assistant", zap.Error(err))
	}

	if strings.TrimSpace(question) != "" {
		answer, err := assistant.Prompt(ctx, question)
		if err != nil {
			zlog.Fatal("prompting about the resume", zap.Error(err))
		}

		fmt.Println(answer)
		return
	}

	interactiveAsk(ctx, zlog, assistant)
}

func interactiveAsk(ctx context.Context, zlog *zap.Logger, assistant ai.Assistant) {
	prompt := promptui.Prompt{Label: "Question"}

	for {
		question, err := prompt.Run()
		if err != nil {
			// Interrupt or EOF ends the session.
			return
		}

		if strings.TrimSpace(question) == "" {
			return
		}

		answer, err := assistant.Prompt(ctx, question)
		if err != nil {
			zlog.Error("prompting about the resume", zap.Error(err))
			continue
		}

		fmt.Println(answer)
	}
}

func newAssistant(ctx context.Context, zlog *zap.Logger, config *Config, resumes *resume.Client) (ai.Assistant, error) {
	if config.AI == nil || config.AI.Gemini == nil {
		return nil, errors.New("gemini settings are required under ai.gemini")
	}

	geminiCfg := config.AI.Gemini

	key, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: geminiCfg.APIKey,
		File:  geminiCfg.APIKeyFile,
	})
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGenerator(ctx, zlog, key, geminiCfg.Model)
	if err != nil {
		return nil, err
	}

	aiLogger := logger.WithCommonFields(zlog, "gemini", generator.Model())

	return gemini.NewAssistant(generator, resumes, aiLogger, geminiCfg.MaxLogLength), nil
}
