package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tguidoux/htmlextract/pkg/htmlextract"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		noText       bool
		noMeta       bool
		noEmbeddings bool
	)

	cmd := &cobra.Command{
		Use:   "htmlextract [file]",
		Short: "Extract the primary editorial content of an HTML page",
		Long: `htmlextract reads an HTML document (from a file argument or stdin) and
prints its extracted Article — title, language, canonical link, favicon,
top image, meta keywords, cleaned text, outbound links, and social
embeddings — as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args)
			if err != nil {
				return err
			}

			config := htmlextract.NewConfiguration()
			config.EnableTextExtraction = !noText
			config.EnableMetaExtraction = !noMeta
			config.EnableEmbeddingsExtraction = !noEmbeddings

			extractor := htmlextract.NewHtmlExtractorWithConfiguration(config)
			article := extractor.FromBytes(raw)
			if article == nil {
				return fmt.Errorf("htmlextract: could not extract an article from the given input")
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(article)
		},
	}

	cmd.Flags().BoolVar(&noText, "no-text", false, "skip title, body text and link extraction")
	cmd.Flags().BoolVar(&noMeta, "no-meta", false, "skip favicon/canonical/keywords/top-image extraction")
	cmd.Flags().BoolVar(&noEmbeddings, "no-embeddings", false, "skip tweet and Instagram embedding extraction")

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
