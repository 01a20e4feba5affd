// Package classifier maps issuer names to expense categories using an
// ordered keyword rule table, with an optional AI fallback for names the
// table does not cover.
package classifier

import (
	"context"
	"strings"

	"dguaman/sri-facturas/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Rule binds a group of keywords to one category. Rules are evaluated in
// slice order and the first match wins, so earlier rules take priority
// when keywords overlap.
type Rule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Fallback classifies issuer names the keyword table could not.
type Fallback interface {
	Classify(ctx context.Context, issuer string) (string, error)
}

// Classifier holds an ordered rule table and an optional fallback.
type Classifier struct {
	rules    []Rule
	fallback Fallback
}

// New creates a Classifier over the given ordered rule table.
func New(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// SetFallback installs a fallback strategy consulted after the keyword
// table misses. Passing nil removes it.
func (c *Classifier) SetFallback(f Fallback) {
	c.fallback = f
}

// Classify returns the expense category for an issuer name. Matching is
// case-insensitive substring search over the uppercased name; no match
// yields the default category.
func (c *Classifier) Classify(issuer string) string {
	name := strings.ToUpper(strings.TrimSpace(issuer))
	if name == "" {
		return models.CategoryOther
	}

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(name, strings.ToUpper(keyword)) {
				log.WithFields(logrus.Fields{
					"issuer":   issuer,
					"keyword":  keyword,
					"category": rule.Category,
				}).Debug("Issuer classified by keyword rule")
				return rule.Category
			}
		}
	}

	if c.fallback != nil {
		category, err := c.fallback.Classify(context.Background(), issuer)
		if err != nil {
			log.WithError(err).WithField("issuer", issuer).Warn("Fallback classification failed")
		} else if category != "" && category != models.CategoryOther {
			log.WithFields(logrus.Fields{
				"issuer":   issuer,
				"category": category,
			}).Debug("Issuer classified by fallback strategy")
			return category
		}
	}

	return models.CategoryOther
}

// defaultClassifier backs the package-level API used by the parsers.
var defaultClassifier = New(DefaultRules())

// Configure replaces the package-level classifier, e.g. after loading a
// rule file override.
func Configure(c *Classifier) {
	if c != nil {
		defaultClassifier = c
	}
}

// Classify classifies an issuer name using the package-level classifier.
func Classify(issuer string) string {
	return defaultClassifier.Classify(issuer)
}
