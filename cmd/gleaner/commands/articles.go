package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gleanhq/gleaner/internal/extractor"
	"github.com/gleanhq/gleaner/internal/logger"
)

var articlesCmd = &cobra.Command{
	Use:   "articles [url]",
	Short: "Extract article titles and links from a page",
	Long: `Fetch a page and extract title/link pairs.

Selector rules are tried in order and the first rule that matches anything
supplies all candidates; when nothing matches, every anchor with substantial
text is considered. Links are resolved against the page URL, filtered for
plausibility and de-duplicated.

Examples:
  gleaner articles "https://example.com/blog/"
  gleaner articles "https://example.com/blog/" -o articles.txt
  gleaner articles "https://example.com/blog/" --format csv -o articles.csv
  gleaner articles "https://example.com/blog/" --rules rules.yaml --fetch-mode auto`,
	Args: cobra.MaximumNArgs(1),
	RunE: runArticles,
}

func init() {
	rootCmd.AddCommand(articlesCmd)

	addFetchFlags(articlesCmd)
	addOutputFlags(articlesCmd)

	flags := articlesCmd.Flags()
	flags.String("rules", "", "YAML file with an ordered selector rule chain")
	flags.Int("min-title-len", extractor.DefaultMinTitleLen, "minimum anchor text length in fallback mode")
}

func runArticles(cmd *cobra.Command, args []string) error {
	initLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	url, err := targetURL(cmd, args)
	if err != nil {
		return err
	}

	rules := extractor.DefaultRules()
	if rulesPath, _ := cmd.Flags().GetString("rules"); rulesPath != "" {
		rules, err = extractor.LoadRules(rulesPath)
		if err != nil {
			logger.Error("failed to load rules", "path", rulesPath, "error", err)
			return err
		}
		logger.Debug("loaded selector rules", "path", rulesPath, "count", len(rules))
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

	minTitleLen, _ := cmd.Flags().GetInt("min-title-len")
	ext := extractor.New(extractor.Config{
		Rules:       rules,
		MinTitleLen: minTitleLen,
	})

	articles := ext.Articles(content.Doc, url)
	if len(articles) == 0 {
		logger.Info("no articles found; the page structure may not match any rule", "url", url)
	}

	items := make([]any, len(articles))
	for i, a := range articles {
		items[i] = a
	}
	if err := writeResults(cmd, items); err != nil {
		logger.Error("failed to write results", "error", err)
		return err
	}

	logger.Info("scrape complete", "url", url, "articles", len(articles))
	return nil
}
