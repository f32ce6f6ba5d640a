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

var experienceCmd = &cobra.Command{
	Use:   "experience <id>",
	Short: "Print the detail page of a single experience",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		experience(args[0])
	},
}

func init() {
	rootCmd.AddCommand(experienceCmd)
}

func experience(id string) {
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

	found, err := client.ExperienceByID(ctx, id)
	if err != nil {
		logger.Fatal("looking up the experience", zap.Error(err), zap.String("id", id))
	}

	pretty, _ := json.MarshalIndent(view.NewExperiencePage(found), "", "  ")
	fmt.Println(string(pretty))
}
