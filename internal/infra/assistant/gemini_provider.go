package assistant

import (
	"context"
	"iter"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const (
	defaultModel           = "gemini-2.5-pro-exp-03-25"
	defaultTemperature     = 0.7
	defaultTopP            = 0.95
	defaultTopK            = 40
	defaultMaxOutputTokens = 2048
	defaultTimeout         = 60 * time.Second
)

// blockedHarmCategories are relaxed to BLOCK_NONE; emergency advice routinely
// mentions injuries, overdoses and violence.
var blockedHarmCategories = []genai.HarmCategory{
	genai.HarmCategoryHarassment,
	genai.HarmCategoryHateSpeech,
	genai.HarmCategorySexuallyExplicit,
	genai.HarmCategoryDangerousContent,
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
}

// geminiProvider implements AssistantProvider with the Gemini API
type geminiProvider struct {
	models  contentGenerator
	model   string
	config  *genai.GenerateContentConfig
	timeout time.Duration
}

// NewGeminiProvider creates an AssistantProvider backed by the Gemini API
func NewGeminiProvider(ctx context.Context, cfg *config.AssistantConfig) (service.AssistantProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	return newGeminiProvider(client.Models, cfg), nil
}

func newGeminiProvider(models contentGenerator, cfg *config.AssistantConfig) *geminiProvider {
	return &geminiProvider{
		models:  models,
		model:   valueOr(cfg.Model, defaultModel),
		config:  generationConfig(cfg),
		timeout: valueOr(cfg.Timeout, defaultTimeout),
	}
}

func generationConfig(cfg *config.AssistantConfig) *genai.GenerateContentConfig {
	safety := make([]*genai.SafetySetting, 0, len(blockedHarmCategories))
	for _, category := range blockedHarmCategories {
		safety = append(safety, &genai.SafetySetting{
			Category:  category,
			Threshold: genai.HarmBlockThresholdBlockNone,
		})
	}

	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(derefOr(cfg.Temperature, defaultTemperature)),
		TopP:            genai.Ptr(derefOr(cfg.TopP, defaultTopP)),
		TopK:            genai.Ptr(derefOr(cfg.TopK, defaultTopK)),
		MaxOutputTokens: derefOr(cfg.MaxOutputTokens, defaultMaxOutputTokens),
		SafetySettings:  safety,
	}
}

func (p *geminiProvider) Name() string {
	return constants.AssistantProviderGemini
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.models.GenerateContent(ctx, p.model, genai.Text(prompt), p.config)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return resp.Text(), nil
}

func (p *geminiProvider) GenerateStream(ctx context.Context, prompt string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		ctx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		for resp, err := range p.models.GenerateContentStream(ctx, p.model, genai.Text(prompt), p.config) {
			if err != nil {
				yield("", errors.WithStack(err))

				return
			}
			if !yield(resp.Text(), nil) {
				return
			}
		}
	}
}

func valueOr[T comparable](value, fallback T) T {
	var zero T
	if value == zero {
		return fallback
	}

	return value
}

func derefOr[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}

	return *value
}
