package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/antoinepurnelle/resume-companion/internal/logger"
	"github.com/antoinepurnelle/resume-companion/internal/view"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetch the resume and print the main page",
	Run: func(_ *cobra.Command, _ []string) {
		show()
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func show() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	client, err := newResumeClient(logger, config)
	if err != nil {
		logger.Fatal("creating the resume client", zap.Error(err))
	}

	current, err := client.GetResume(ctx)
	if err != nil {
		logger.Fatal("fetching the resume", zap.Error(err))
	}

	pretty, _ := json.MarshalIndent(view.NewMainPage(current), "", "  ")
	fmt.Println(string(pretty))
}
