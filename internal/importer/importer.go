// Package importer turns bank statements into candidate ledger entries.
//
// Parsing is delegated to a generative model; user-defined glob rules are
// applied afterwards and win over the model's category suggestion, so
// deterministic matches never depend on AI output.
package importer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// ParsedTransaction is one statement row as returned by the parser.
type ParsedTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        models.TransactionType

	// Category name suggested by the model, matched against the user's
	// categories by the caller. Empty when the model had no suggestion.
	CategoryName string
}

// Parser parses a statement document into transactions.
type Parser interface {
	Parse(ctx context.Context, document []byte, mimeType string, categories []string) ([]ParsedTransaction, error)
}

// ApplyRules returns the category of the first matching rule, ordered by
// priority. The bool reports whether any rule matched.
func ApplyRules(rules []models.ImportRule, description string) (models.ImportRule, bool) {
	best := models.ImportRule{}
	found := false

	for _, rule := range rules {
		if !rule.Matches(description) {
			continue
		}

		if !found || rule.Priority > best.Priority {
			best = rule
			found = true
		}
	}

	return best, found
}
