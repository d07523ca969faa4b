package extractor

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Rule is one selector pattern in the fallback chain.
type Rule struct {
	Name     string `yaml:"name,omitempty"`
	Selector string `yaml:"selector" validate:"required"`
}

// DefaultRules returns the built-in fallback chain, ordered from most to
// least specific. Rules are tried in sequence and the first one that
// matches anything on the page wins; later rules are never consulted.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "article-h2", Selector: "article h2 a"},
		{Name: "h1-link", Selector: "h1 a"},
		{Name: "h2-link", Selector: "h2 a"},
		{Name: "h3-link", Selector: "h3 a"},
		{Name: "post-title", Selector: ".post-title a"},
		{Name: "entry-title", Selector: ".entry-title a"},
		{Name: "blog-path", Selector: `a[href*="/blog/"]`},
		{Name: "post-path", Selector: `a[href*="/post/"]`},
		{Name: "article-path", Selector: `a[href*="/article/"]`},
	}
}

// ruleFile is the on-disk shape of a rules file.
type ruleFile struct {
	Rules []Rule `yaml:"rules" validate:"min=1,dive"`
}

// LoadRules reads an ordered rule chain from a YAML file. The file must
// contain a top-level "rules" list where every entry has a selector.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- CLI tool reads a user-specified rules file
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	if err := validator.New().Struct(&rf); err != nil {
		return nil, fmt.Errorf("invalid rules file %s: %w", path, err)
	}

	return rf.Rules, nil
}
