package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gleanhq/gleaner/internal/feed"
	"github.com/gleanhq/gleaner/internal/logger"
)

var feedCmd = &cobra.Command{
	Use:   "feed [url]",
	Short: "Extract articles from a page's advertised RSS/Atom feed",
	Long: `Fetch a page, find the feed it advertises via <link rel="alternate">,
and extract title/link pairs from the feed entries instead of the markup.

Use --feed-url to parse a known feed directly and skip discovery.

Examples:
  gleaner feed "https://example.com/blog/"
  gleaner feed --feed-url "https://example.com/rss.xml"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFeed,
}

func init() {
	rootCmd.AddCommand(feedCmd)

	addFetchFlags(feedCmd)
	addOutputFlags(feedCmd)

	feedCmd.Flags().String("feed-url", "", "feed URL (skips page fetch and discovery)")
}

func runFeed(cmd *cobra.Command, args []string) error {
	initLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	feedURL, _ := cmd.Flags().GetString("feed-url")
	if feedURL == "" {
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

		feeds := feed.Discover(content.Doc, url)
		if len(feeds) == 0 {
			return fmt.Errorf("no feed advertised by %s", url)
		}
		feedURL = feeds[0]
		logger.Debug("feed discovered", "url", feedURL, "candidates", len(feeds))
	}

	logger.Info("parsing feed", "url", feedURL)
	articles, err := feed.Fetch(ctx, feedURL)
	if err != nil {
		logger.Error("feed parse failed", "url", feedURL, "error", err)
		return err
	}

	if len(articles) == 0 {
		logger.Info("feed contained no usable entries", "url", feedURL)
	}

	items := make([]any, len(articles))
	for i, a := range articles {
		items[i] = a
	}
	if err := writeResults(cmd, items); err != nil {
		logger.Error("failed to write results", "error", err)
		return err
	}

	logger.Info("feed complete", "url", feedURL, "articles", len(articles))
	return nil
}
