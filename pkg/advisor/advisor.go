// Package advisor asks a text-generation service for a written layout study.
//
// The prompt summarizes the plant's departments, their areas before and
// after optimization, the material flow and the placement order from
// Total Closeness Rating, and asks for a professional analysis: gap
// analysis of congested departments, an engineering explanation of which
// departments shrink or grow, material-flow recommendations, and a comment
// on aisle safety.
//
// # Usage
//
//	gen, err := advisor.NewGemini(ctx, advisor.GeminiOptions{APIKey: key})
//	if err != nil { ... }
//	a := advisor.New(gen, advisor.Options{Language: "Arabic"})
//	rec, err := a.Recommend(ctx, study.Seed())
//	if err != nil {
//	    fmt.Println(advisor.FallbackMessage(a.Language()))
//	}
//
// Calls are made once; there is no retry. Failures are returned as
// ADVISOR_UNAVAILABLE or ADVISOR_FAILED errors from package errors.
package advisor

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lacima/plantlayout/pkg/errors"
	"github.com/lacima/plantlayout/pkg/observability"
	"github.com/lacima/plantlayout/pkg/study"
)

// DefaultLanguage is the language recommendations are written in unless
// configured otherwise.
const DefaultLanguage = "Arabic"

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Model names the model behind the generator, for logs and cache keys.
	Model() string
}

// Recommendation is one generated layout study.
type Recommendation struct {
	ID        uuid.UUID `json:"id"`
	Model     string    `json:"model"`
	Language  string    `json:"language"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Options configures an Advisor.
type Options struct {
	Language string // default DefaultLanguage
}

// Advisor builds prompts from studies and sends them to a Generator.
type Advisor struct {
	gen      Generator
	language string
	now      func() time.Time
}

// New returns an Advisor using gen.
func New(gen Generator, opts Options) *Advisor {
	lang := strings.TrimSpace(opts.Language)
	if lang == "" {
		lang = DefaultLanguage
	}
	return &Advisor{gen: gen, language: lang, now: time.Now}
}

// Language returns the language recommendations are requested in.
func (a *Advisor) Language() string { return a.language }

// Model returns the generator's model name.
func (a *Advisor) Model() string {
	if a.gen == nil {
		return ""
	}
	return a.gen.Model()
}

// Recommend ranks the study, builds the prompt and asks the generator for a
// recommendation. An invalid study is rejected before any call is made.
func (a *Advisor) Recommend(ctx context.Context, s *study.Study) (*Recommendation, error) {
	if a.gen == nil {
		return nil, errors.New(errors.ErrCodeAdvisorUnavailable, "no text-generation service configured")
	}
	ranking, err := s.Rank()
	if err != nil {
		return nil, err
	}
	prompt := BuildPrompt(s, ranking, a.language)

	model := a.gen.Model()
	hooks := observability.Advisor()
	hooks.OnGenerateStart(ctx, model, len(prompt))
	start := time.Now()

	text, err := a.gen.Generate(ctx, prompt)
	if err == nil {
		text = cleanMarkdownOutput(text)
		if text == "" {
			err = errors.New(errors.ErrCodeAdvisorFailed, "empty response from %s", model)
		}
	}
	hooks.OnGenerateComplete(ctx, model, len(text), time.Since(start), err)
	if err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeAdvisorFailed, err, "generate recommendation")
		}
		return nil, err
	}

	return &Recommendation{
		ID:        uuid.New(),
		Model:     model,
		Language:  a.language,
		Text:      text,
		CreatedAt: a.now().UTC(),
	}, nil
}

// FallbackMessage is the text shown in place of a recommendation when the
// service fails. Arabic gets the dashboard's own wording; any other
// language gets English.
func FallbackMessage(language string) string {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "", "arabic", "ar":
		return "حدث خطأ في جلب توصيات الذكاء الاصطناعي."
	}
	return "Could not fetch AI recommendations."
}

func cleanMarkdownOutput(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```markdown") {
		text = strings.TrimPrefix(text, "```markdown")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
