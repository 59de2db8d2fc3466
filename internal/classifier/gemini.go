package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"google.golang.org/genai"

	"github.com/Veraticus/tonematch/internal/common"
	"github.com/Veraticus/tonematch/internal/imaging"
	"github.com/Veraticus/tonematch/internal/model"
)

const (
	defaultGeminiModel = "gemini-2.5-flash"

	// Photos are scaled down before upload.
	geminiMaxImageSize = 800
)

const geminiPrompt = `You are a color analyst. Look at the face in the photo and classify the skin.
Respond with JSON only, in the form:
{"tone": "<short tone name such as Light, Medium, Olive, Deep>", "undertone": "warm|cool|neutral", "confidence": <integer 0-100>}
If no face is visible, respond with {"error": "<reason>"}.`

// GeminiConfig configures the Gemini vision classifier.
type GeminiConfig struct {
	APIKey       string
	Model        string
	MaxImageSize int
}

// contentGenerator is the subset of the genai models service used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClassifier classifies photos with a Gemini vision model. Confidence
// is whatever the model reports, clamped to 0-100.
type GeminiClassifier struct {
	models       contentGenerator
	model        string
	maxImageSize int
}

// NewGeminiClassifier creates a classifier backed by the Gemini API.
func NewGeminiClassifier(ctx context.Context, cfg GeminiConfig) (*GeminiClassifier, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key is required", common.ErrMissingConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newGeminiClassifier(client.Models, cfg), nil
}

func newGeminiClassifier(models contentGenerator, cfg GeminiConfig) *GeminiClassifier {
	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	maxSize := cfg.MaxImageSize
	if maxSize <= 0 {
		maxSize = geminiMaxImageSize
	}

	return &GeminiClassifier{
		models:       models,
		model:        modelName,
		maxImageSize: maxSize,
	}
}

// Classify uploads the photo and parses the model's JSON verdict.
func (c *GeminiClassifier) Classify(ctx context.Context, img model.Image) (model.ToneRecord, error) {
	if img.IsEmpty() {
		return model.ToneRecord{}, fmt.Errorf("%w: no image data", common.ErrInvalidInput)
	}

	jpegData, err := imaging.ToJPEG(img, c.maxImageSize)
	if err != nil {
		return model.ToneRecord{}, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: geminiPrompt},
				{InlineData: &genai.Blob{Data: jpegData, MIMEType: "image/jpeg"}},
			},
		},
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	result, err := c.models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return model.ToneRecord{}, fmt.Errorf("%w: gemini API error: %w", common.ErrClassificationFailed, err)
	}

	content := result.Text()
	if content == "" {
		return model.ToneRecord{}, fmt.Errorf("%w: no response from Gemini", common.ErrClassificationFailed)
	}

	record, err := parseToneResponse(content)
	if err != nil {
		return model.ToneRecord{}, fmt.Errorf("%w: %w", common.ErrClassificationFailed, err)
	}
	return record, nil
}

type toneResponse struct {
	Tone       string  `json:"tone"`
	Undertone  string  `json:"undertone"`
	Error      string  `json:"error"`
	Confidence float64 `json:"confidence"`
}

// parseToneResponse decodes the model's JSON answer, tolerating markdown
// code fences around it.
func parseToneResponse(content string) (model.ToneRecord, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var resp toneResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &resp); err != nil {
		return model.ToneRecord{}, fmt.Errorf("failed to parse response JSON: %w", err)
	}
	if resp.Error != "" {
		return model.ToneRecord{}, errors.New(resp.Error)
	}

	undertone, err := model.ParseUndertone(resp.Undertone)
	if err != nil {
		return model.ToneRecord{}, err
	}

	record := model.ToneRecord{
		Tone:       strings.TrimSpace(resp.Tone),
		Undertone:  undertone,
		Confidence: int(math.Round(math.Max(0, math.Min(100, resp.Confidence)))),
	}
	if err := record.Validate(); err != nil {
		return model.ToneRecord{}, err
	}
	return record, nil
}
