package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gleanhq/gleaner/internal/logger"
	"github.com/gleanhq/gleaner/internal/output"
	"github.com/gleanhq/gleaner/internal/scraper"
)

// initLogger configures logging from the global flags.
func initLogger() {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})
}

// addFetchFlags registers the flags shared by every fetching command.
func addFetchFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("fetch-mode", "static", "fetch mode: static, dynamic, auto")
	flags.Duration("timeout", 15*time.Second, "request timeout")
	flags.Duration("delay", time.Second, "pause after a successful fetch")
	flags.String("user-agent", "", "User-Agent header (default: desktop browser UA)")
	flags.String("max-body-size", "", "response size cap for static fetches (e.g. 2MB, 0=unlimited)")
}

// addOutputFlags registers the flags shared by every writing command.
func addOutputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("output", "o", "", "output file (default: stdout, overwritten each run)")
	flags.String("format", "text", "output format: text, csv, json, jsonl, yaml")
}

// fetcherFromFlags builds a fetcher from the command's fetch flags.
func fetcherFromFlags(cmd *cobra.Command) (scraper.Fetcher, error) {
	mode, _ := cmd.Flags().GetString("fetch-mode")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	delay, _ := cmd.Flags().GetDuration("delay")
	userAgent, _ := cmd.Flags().GetString("user-agent")

	var maxBody int
	sizeStr, _ := cmd.Flags().GetString("max-body-size")
	if s := strings.TrimSpace(sizeStr); s != "" && s != "0" {
		bytes, err := humanize.ParseBytes(s)
		if err != nil {
			return nil, fmt.Errorf("invalid max-body-size %q: %w", sizeStr, err)
		}
		maxBody = int(bytes)
	}

	cfg := scraper.FetcherConfig{
		UserAgent:   userAgent,
		Timeout:     timeout,
		Delay:       delay,
		MaxBodySize: maxBody,
	}
	return scraper.NewFetcher(scraper.FetchMode(mode), cfg)
}

// targetURL returns the positional URL argument, or prompts for one on
// stdin when the command is run without arguments.
func targetURL(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0]), nil
	}

	fmt.Fprint(cmd.OutOrStdout(), "Input the URL to scrape: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read URL: %w", err)
	}

	u := strings.TrimSpace(line)
	if u == "" {
		return "", fmt.Errorf("no URL provided")
	}
	return u, nil
}

// writeResults serializes items to the configured destination and format.
func writeResults(cmd *cobra.Command, items []any) error {
	var out io.Writer = cmd.OutOrStdout()

	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		f, err := os.Create(outPath) //#nosec G304 -- CLI tool writes to a user-specified output file
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	formatStr, _ := cmd.Flags().GetString("format")
	writer, err := output.NewWriter(out, output.Format(formatStr))
	if err != nil {
		return err
	}

	if err := writer.WriteAll(items); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
