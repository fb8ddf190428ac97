// Package advisor turns the tracker's state into Gemini prompts and parses
// the model's answers back into typed values. Every operation degrades to a
// canned offline answer when no client is configured or the call fails, so
// the rest of the application never depends on the model being reachable.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/wealthwise/wealthwise"
)

const model = "gemini-2.5-flash"

// ErrOffline is returned by operations that cannot degrade to a canned
// answer when no model client is configured.
var ErrOffline = errors.New("advisor is offline, set GEMINI_API_KEY")

// Offline answers, returned when no API key is configured.
const (
	offlineInsight  = "Organize suas finanças para crescer (Modo Offline)."
	offlineAnalysis = "Configuração de IA necessária para análise detalhada."
	errorInsight    = "Mantenha o foco nos objetivos."
	errorAnalysis   = "Não foi possível gerar análise no momento."
	errorChat       = "Erro ao conectar com o estrategista financeiro."
)

// Headline is one generated news item.
type Headline struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

var offlineNews = []Headline{
	{Title: "Comece a investir", Summary: "Adicione ativos para receber notícias personalizadas."},
	{Title: "Mercado Financeiro", Summary: "Acompanhe os indicadores econômicos."},
}

var errorNews = []Headline{
	{Title: "Mercado Financeiro", Summary: "Acompanhe a volatilidade do Ibovespa."},
}

// StatementEntry is one transaction extracted from a pasted bank statement.
// Amount keeps the statement's sign: positive for money in, negative for
// money out.
type StatementEntry struct {
	Date     wealthwise.Date     `json:"date"`
	Merchant string              `json:"merchant"`
	Amount   float64             `json:"amount"`
	Category wealthwise.Category `json:"category"`
}

// Advisor holds the model client. A nil client is valid and means offline
// mode: every operation returns its canned fallback.
type Advisor struct {
	client *genai.Client
	log    zerolog.Logger
}

// New creates an advisor backed by the given client, which may be nil for
// offline mode.
func New(client *genai.Client, log zerolog.Logger) *Advisor {
	return &Advisor{client: client, log: log}
}

// NewClient creates the Gemini client from the ambient configuration
// (GEMINI_API_KEY). A missing key is not an error: it returns a nil client
// and the advisor runs offline.
func NewClient(ctx context.Context) (*genai.Client, error) {
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		return nil, nil
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
}

// Offline reports whether the advisor has no model behind it.
func (a *Advisor) Offline() bool { return a == nil || a.client == nil }

// generate runs a single-prompt completion and returns the raw text.
func (a *Advisor) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}
	resp, err := a.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// MonthlyInsight returns one short tip grounded in the current balance.
func (a *Advisor) MonthlyInsight(ctx context.Context, tr *wealthwise.Tracker) string {
	if a.Offline() {
		return offlineInsight
	}
	text, err := a.generate(ctx, buildInsightPrompt(tr), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.5),
	})
	if err != nil || text == "" {
		a.log.Warn().Err(err).Msg("insight generation failed")
		return errorInsight
	}
	return strings.TrimSpace(text)
}

// AnalyzeGoal returns a markdown strategy for the goal and stores it on the
// goal so it survives restarts.
func (a *Advisor) AnalyzeGoal(ctx context.Context, goal *wealthwise.Goal, profile *wealthwise.UserProfile) string {
	if a.Offline() {
		return offlineAnalysis
	}
	text, err := a.generate(ctx, buildGoalPrompt(goal, profile), nil)
	if err != nil || text == "" {
		a.log.Warn().Err(err).Str("goal", goal.Title).Msg("goal analysis failed")
		return errorAnalysis
	}
	goal.AIAnalysis = strings.TrimSpace(text)
	return goal.AIAnalysis
}

// News generates headlines relevant to the held positions. An empty
// portfolio gets the generic starter headlines without a model call.
func (a *Advisor) News(ctx context.Context, investments []*wealthwise.Investment) []Headline {
	if len(investments) == 0 || a.Offline() {
		return offlineNews
	}
	text, err := a.generate(ctx, buildNewsPrompt(investments), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		a.log.Warn().Err(err).Msg("news generation failed")
		return errorNews
	}
	var headlines []Headline
	if err := json.Unmarshal([]byte(cleanModelJSON(text)), &headlines); err != nil || len(headlines) == 0 {
		a.log.Warn().Err(err).Msg("news response was not valid JSON")
		return errorNews
	}
	return headlines
}

// ExtractStatement parses a pasted bank statement into transactions. Unlike
// the other operations it has no useful fallback: without a model it returns
// the error so the caller can tell the user to type the entries by hand.
func (a *Advisor) ExtractStatement(ctx context.Context, statement string) ([]StatementEntry, error) {
	if a.Offline() {
		return nil, ErrOffline
	}
	text, err := a.generate(ctx, buildStatementPrompt(statement), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, err
	}
	var entries []StatementEntry
	if err := json.Unmarshal([]byte(cleanModelJSON(text)), &entries); err != nil {
		return nil, err
	}
	for i, e := range entries {
		if _, err := wealthwise.ParseCategory(string(e.Category)); err != nil {
			entries[i].Category = wealthwise.CategoryOther
		}
	}
	return entries, nil
}

// Chat answers a free-form question with the user's full financial context
// as system instruction.
func (a *Advisor) Chat(ctx context.Context, tr *wealthwise.Tracker, question string) string {
	if a.Offline() {
		return offlineAnalysis
	}
	text, err := a.generate(ctx, question, &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](0.5),
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: BuildSystemInstruction(tr)}}},
	})
	if err != nil || text == "" {
		a.log.Warn().Err(err).Msg("chat failed")
		return errorChat
	}
	return strings.TrimSpace(text)
}

// cleanModelJSON strips markdown fences and surrounding prose when the model
// ignores the raw-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
