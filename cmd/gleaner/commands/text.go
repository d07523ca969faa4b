package commands

import (
	"context"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/gleanhq/gleaner/internal/extractor"
	"github.com/gleanhq/gleaner/internal/logger"
)

var textCmd = &cobra.Command{
	Use:   "text [url]",
	Short: "Collect visible text from a page",
	Long: `Fetch a page and collect its trimmed visible text in document order.

With --tag the collection is restricted to matching elements, optionally
narrowed by --class and/or --id. Without --tag every text node is kept.

Examples:
  gleaner text "https://example.com/about"
  gleaner text "https://example.com/blog/" --tag h2
  gleaner text "https://example.com/blog/" --tag div --class story --min-length 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)

	addFetchFlags(textCmd)
	addOutputFlags(textCmd)

	flags := textCmd.Flags()
	flags.String("tag", "", "restrict to a tag name (e.g. h2, article)")
	flags.String("class", "", "class filter, used with --tag")
	flags.String("id", "", "id filter, used with --tag")
	flags.Int("min-length", 0, "skip texts at or below this many characters")
}

func runText(cmd *cobra.Command, args []string) error {
	initLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	url, err := targetURL(cmd, args)
	if err != nil {
		return err
	}

	fetcher, err := fetcherFromFlags(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = fetcher.Close() }()

	logger.Info("fetching", "url", url, "mode", fetcher.Type())
	content, err := fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Error("fetch failed", "url", url, "error", err)
		return err
	}

	tag, _ := cmd.Flags().GetString("tag")
	class, _ := cmd.Flags().GetString("class")
	id, _ := cmd.Flags().GetString("id")
	minLen, _ := cmd.Flags().GetInt("min-length")

	var texts []string
	if tag != "" {
		texts = extractor.TagText(content.Doc, tag, class, id, minLen)
	} else {
		texts = extractor.Text(content.Doc)
		if minLen > 0 {
			kept := texts[:0]
			for _, t := range texts {
				if utf8.RuneCountInString(t) > minLen {
					kept = append(kept, t)
				}
			}
			texts = kept
		}
	}

	if len(texts) == 0 {
		logger.Info("no text found", "url", url)
	}

	items := make([]any, len(texts))
	for i, t := range texts {
		items[i] = t
	}
	if err := writeResults(cmd, items); err != nil {
		logger.Error("failed to write results", "error", err)
		return err
	}

	logger.Info("scrape complete", "url", url, "texts", len(texts))
	return nil
}
