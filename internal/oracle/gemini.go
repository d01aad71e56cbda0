package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"google.golang.org/genai"

	"moneta/internal/models"
)

// Gemini implements Oracle against the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates the client. model defaults to gemini-2.5-flash when empty.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("oracle: create genai client: %w", err)
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Gemini{client: client, model: model}, nil
}

const strictJSONRules = "Return ONLY valid raw JSON.\n" +
	"Do NOT wrap the response in code fences.\n" +
	"Do NOT use ```json or any Markdown.\n"

// Categorize asks the model to place a transaction description into one of
// the given categories. An unusable answer degrades to "Other" with zero
// confidence rather than failing the request.
func (g *Gemini) Categorize(ctx context.Context, description string, categories []string) (CategorySuggestion, error) {
	prompt := fmt.Sprintf(
		"Analyze the transaction description %q and categorize it into one of the following valid categories: %s. "+
			"Also, provide a confidence score between 0.0 and 1.0 for your categorization.\n\n"+
			"Output STRICT JSON with exactly these fields:\n"+
			"- \"category\": string (one of the listed categories)\n"+
			"- \"confidence\": number between 0 and 1\n\n"+strictJSONRules,
		description, strings.Join(categories, ", "))

	raw, err := g.generateText(ctx, prompt, nil)
	if err != nil {
		return CategorySuggestion{}, err
	}
	return parseCategorySuggestion(raw, categories), nil
}

// ScanReceipt extracts merchant, total, and date from a receipt image.
func (g *Gemini) ScanReceipt(ctx context.Context, image []byte, mimeType string) (ReceiptScan, error) {
	prompt := "Extract the merchant name, total amount, and date from this receipt.\n\n" +
		"Output STRICT JSON with exactly these fields:\n" +
		"- \"merchant\": string\n" +
		"- \"total\": number (the total amount, in the receipt's currency)\n" +
		"- \"date\": string, ISO format \"YYYY-MM-DD\"\n\n" + strictJSONRules

	raw, err := g.generateText(ctx, prompt, &genai.Blob{MIMEType: mimeType, Data: image})
	if err != nil {
		return ReceiptScan{}, err
	}
	return parseReceiptScan(raw)
}

// SuggestGoals proposes savings goals sized to the user's finances.
func (g *Gemini) SuggestGoals(ctx context.Context, summary FinancialSummary) ([]GoalSuggestion, error) {
	prompt := fmt.Sprintf(
		"A user has a monthly income of $%.2f, expenses of $%.2f, and a balance of $%.2f. "+
			"Suggest three realistic, personalized savings goals with target amounts. "+
			"Examples: \"Emergency Fund\", \"Vacation\", \"New Gadget\".\n\n"+
			"Output STRICT JSON: an object with a \"goals\" array, each element having:\n"+
			"- \"name\": string\n"+
			"- \"targetAmount\": number (in dollars)\n\n"+strictJSONRules,
		dollars(summary.Income), dollars(summary.Expenses), dollars(summary.Balance))

	raw, err := g.generateText(ctx, prompt, nil)
	if err != nil {
		return nil, err
	}
	return parseGoalSuggestions(raw)
}

// GenerateBudgetPlan drafts a markdown budget plan for a goal based on recent
// spending. The plan is free-form text, not JSON.
func (g *Gemini) GenerateBudgetPlan(ctx context.Context, req BudgetPlanRequest) (string, error) {
	var lines []string
	for _, e := range req.RecentExpenses {
		lines = append(lines, fmt.Sprintf("%s: $%.2f in %s", e.Description, dollars(e.Amount), e.Category))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		"A user wants to save for %q with a target of $%.2f. They have already saved $%.2f.\n"+
			"Their current balance is $%.2f.\n\n"+
			"Here are their most recent expense transactions:\n%s\n\n"+
			"Generate a custom budget plan in markdown format. The plan MUST be concise and consist of "+
			"a summary and bullet points under bold headers. Do not write long paragraphs.\n\n"+
			"Follow this structure exactly:\n\n"+
			"**Summary**\n* A brief, encouraging overview and a projected timeline to reach the goal.\n\n"+
			"**Spending Limits**\n* A bulleted list of suggested monthly spending limits for their top 3-4 expense categories.\n\n"+
			"**Savings Tips**\n* A bulleted list of 3 actionable savings tips based on their actual spending habits.\n\n"+
			"Use ONLY bullet points (*).\n",
		req.GoalName, dollars(req.TargetAmount), dollars(req.SavedAmount), dollars(req.Balance),
		strings.Join(lines, "\n"))

	if req.PreviousPlan != "" {
		fmt.Fprintf(&sb,
			"\nThis is an updated plan. Their previous plan was:\n%s\n"+
				"Comment on their progress and adjust the new plan, keeping the same format.\n",
			req.PreviousPlan)
	}

	raw, err := g.generateText(ctx, sb.String(), nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (g *Gemini) generateText(ctx context.Context, prompt string, blob *genai.Blob) (string, error) {
	parts := []*genai.Part{{Text: prompt}}
	if blob != nil {
		parts = append(parts, &genai.Part{InlineData: blob})
	}
	contents := []*genai.Content{{Role: "user", Parts: parts}}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("oracle: generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("oracle: empty response from model")
	}
	return text, nil
}

func parseCategorySuggestion(raw string, categories []string) CategorySuggestion {
	fallback := CategorySuggestion{Category: models.CategoryOther, Confidence: 0}

	var out struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &out); err != nil {
		return fallback
	}
	for _, c := range categories {
		if c == out.Category && out.Confidence >= 0 && out.Confidence <= 1 {
			return CategorySuggestion{Category: out.Category, Confidence: out.Confidence}
		}
	}
	return fallback
}

func parseReceiptScan(raw string) (ReceiptScan, error) {
	var out struct {
		Merchant string  `json:"merchant"`
		Total    float64 `json:"total"`
		Date     string  `json:"date"`
	}
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &out); err != nil {
		return ReceiptScan{}, fmt.Errorf("oracle: unmarshal receipt scan: %w\nraw response: %s", err, raw)
	}

	date, err := time.ParseInLocation("2006-01-02", out.Date, time.UTC)
	if err != nil {
		date = time.Now().UTC().Truncate(24 * time.Hour)
	}
	return ReceiptScan{
		Merchant: out.Merchant,
		Total:    cents(out.Total),
		Date:     date,
	}, nil
}

func parseGoalSuggestions(raw string) ([]GoalSuggestion, error) {
	var out struct {
		Goals []struct {
			Name         string  `json:"name"`
			TargetAmount float64 `json:"targetAmount"`
		} `json:"goals"`
	}
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &out); err != nil {
		return nil, fmt.Errorf("oracle: unmarshal goal suggestions: %w\nraw response: %s", err, raw)
	}

	suggestions := make([]GoalSuggestion, 0, len(out.Goals))
	for _, g := range out.Goals {
		if g.Name == "" || g.TargetAmount <= 0 {
			continue
		}
		suggestions = append(suggestions, GoalSuggestion{
			Name:         g.Name,
			TargetAmount: cents(g.TargetAmount),
		})
	}
	return suggestions, nil
}

// cleanModelJSON strips Markdown fences and surrounding junk when the model
// ignores the raw-JSON instruction, keeping only the outermost JSON value.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	for _, pair := range [][2]string{{"{", "}"}, {"[", "]"}} {
		start := strings.Index(s, pair[0])
		end := strings.LastIndex(s, pair[1])
		if start != -1 && end > start {
			return strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}

func dollars(c int64) float64 { return float64(c) / 100 }

func cents(d float64) int64 { return int64(math.Round(d * 100)) }
