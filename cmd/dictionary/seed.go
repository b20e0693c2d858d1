package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/deppfellow/dictionary-api/internal/lib/utils"
	"github.com/deppfellow/dictionary-api/internal/model"
	"github.com/deppfellow/dictionary-api/internal/repository"
	"github.com/deppfellow/dictionary-api/internal/server"
	"github.com/deppfellow/dictionary-api/internal/service"
)

var seedDryRun bool

var seedCmd = &cobra.Command{
	Use:   "seed <words.json>",
	Short: "Import words and their examples from a JSON array",
	Long: `Reads a JSON array of word payloads, shaped like the body of
POST /api/v1/words, and creates every word with its nested examples.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return seed(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "validate and print the payloads without writing them")
}

func readSeedFile(path string) ([]model.CreateWordRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var words []model.CreateWordRequest
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	for i := range words {
		if err := words[i].Validate(); err != nil {
			return nil, fmt.Errorf("word %d (%q): %w", i, words[i].Word, err)
		}
	}
	return words, nil
}

func seed(ctx context.Context, out io.Writer, path string) error {
	words, err := readSeedFile(path)
	if err != nil {
		return err
	}

	if seedDryRun {
		return utils.PrintJSON(out, words)
	}

	cfg, log, loggerService, err := bootstrap()
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return err
	}
	defer srv.Shutdown(context.Background())

	services, err := service.NewServices(srv, repository.NewRepositories(srv))
	if err != nil {
		return err
	}

	for i := range words {
		word, err := services.Words.Create(ctx, &words[i])
		if err != nil {
			return fmt.Errorf("creating word %q: %w", words[i].Word, err)
		}
		log.Info().
			Str("word_id", word.ID).
			Str("word", word.Word).
			Int("examples", len(word.Examples)).
			Msg("seeded word")
	}

	log.Info().Int("words", len(words)).Msg("seed complete")
	return nil
}
