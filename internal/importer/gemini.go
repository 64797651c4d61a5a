package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"google.golang.org/genai"
)

// GeminiParser parses statements with a Gemini model.
type GeminiParser struct {
	Model string
}

// rawTransaction is the JSON shape the model is instructed to return.
type rawTransaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

// Parse sends the statement to the model and decodes the strict-JSON
// answer. Positive amounts become receitas, negative ones despesas.
func (p GeminiParser) Parse(ctx context.Context, document []byte, mimeType string, categories []string) ([]ParsedTransaction, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("importer: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildPrompt(categories)},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     document,
					},
				},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, p.Model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("importer: generate content: %w", err)
	}

	return decodeModelOutput(resp.Text())
}

func buildPrompt(categories []string) string {
	var b strings.Builder

	b.WriteString("You are a financial statement parser for Brazilian bank statements.\n\n")
	b.WriteString("Task:\n")
	b.WriteString("- Parse ALL transactions in the attached statement.\n")
	b.WriteString("- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n")
	b.WriteString("- Output a JSON array of objects.\n\n")
	b.WriteString("Each object must have these fields:\n")
	b.WriteString("- \"date\": string, ISO format \"YYYY-MM-DD\"\n")
	b.WriteString("- \"description\": string\n")
	b.WriteString("- \"amount\": number (positive for money IN, negative for money OUT)\n")
	b.WriteString("- \"category\": string (one of the predefined categories below, or \"\")\n\n")

	if len(categories) > 0 {
		b.WriteString("Predefined categories:\n")
		for _, category := range categories {
			fmt.Fprintf(&b, "- %s\n", category)
		}
		b.WriteString("\n")
	}

	b.WriteString("Rules:\n")
	b.WriteString("- Classify each transaction into the most appropriate category.\n")
	b.WriteString("- If separate \"paid out\" / \"paid in\" columns exist, convert to a single signed \"amount\".\n")
	b.WriteString("Return ONLY valid raw JSON.\n")
	b.WriteString("Do NOT wrap the response in code fences.\n")
	b.WriteString("Output must begin with \"[\" and end with \"]\".\n")

	return b.String()
}

// decodeModelOutput parses the model answer, tolerating code fences the
// model adds despite being told not to.
func decodeModelOutput(text string) ([]ParsedTransaction, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw []rawTransaction
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("importer: model did not return valid JSON: %w", err)
	}

	parsed := make([]ParsedTransaction, 0, len(raw))
	for _, r := range raw {
		date, err := time.Parse(time.DateOnly, r.Date)
		if err != nil {
			return nil, fmt.Errorf("importer: invalid date %q in model output: %w", r.Date, err)
		}

		amount := decimal.NewFromFloat(r.Amount)
		transactionType := models.TransactionReceita
		if amount.IsNegative() {
			transactionType = models.TransactionDespesa
			amount = amount.Abs()
		}

		parsed = append(parsed, ParsedTransaction{
			Date:         date,
			Description:  r.Description,
			Amount:       amount,
			Type:         transactionType,
			CategoryName: r.Category,
		})
	}

	return parsed, nil
}
