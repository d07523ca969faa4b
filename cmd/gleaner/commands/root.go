// Package commands implements the CLI commands for gleaner.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "gleaner",
	Short: "Extract article titles and links from web pages",
	Long: `Gleaner fetches a single web page and extracts content from it.

The articles command walks an ordered chain of selector patterns (heading
links, common blog classes, URL substrings) and returns de-duplicated
title/link pairs. The text command collects visible text, optionally
restricted to a tag with a class or id filter. The feed command parses an
RSS/Atom feed advertised by the page.

Examples:
  # Extract article titles and links, print a text report
  gleaner articles "https://example.com/blog/"

  # Save as CSV using a custom selector chain
  gleaner articles "https://example.com/blog/" --rules rules.yaml \
      -o articles.csv --format csv

  # Collect all h2 headings with the class "post-title"
  gleaner text "https://example.com/blog/" --tag h2 --class post-title

  # Parse the page's advertised RSS feed instead of its markup
  gleaner feed "https://example.com/blog/"`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.gleaner.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".gleaner")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("GLEANER")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
