// internal/services/ai_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shahalmix/shahalmix-backend/internal/config"
)

// AIService wraps the generative-text API. Failures are absorbed here:
// every operation returns a usable bilingual value even when the remote
// call errors, and nothing upstream ever blocks on it beyond the client
// timeout.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

type ProductDescription struct {
	EN string `json:"en"`
	UR string `json:"ur"`
}

var fallbackDescription = ProductDescription{
	EN: "High quality product from Shahalmi.",
	UR: "شاہ عالمی کی اعلیٰ معیار کی پروڈکٹ",
}

const fallbackAdvice = "Focus on inventory management and customer relationship building. اپنے انوینٹری مینجمنٹ اور کسٹمر ریلیشن شپ بلڈنگ پر توجہ دیں۔"

type generateContentRequest struct {
	Contents         []aiContent       `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type aiContent struct {
	Parts []aiPart `json:"parts"`
}

type aiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content aiContent `json:"content"`
	} `json:"candidates"`
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// GenerateProductDescription asks the model for a structured bilingual
// description of a product name. Any failure, including unparseable
// model output, yields the canned description.
func (s *AIService) GenerateProductDescription(ctx context.Context, productName string) ProductDescription {
	prompt := fmt.Sprintf(`You are a professional marketing copywriter for the Shahalmi Market in Lahore, Pakistan.
Generate a compelling product description in both English and Urdu for a product named: %q.
Make it sound wholesale-ready and attractive to Pakistani retailers.
Respond with a JSON object with string fields "en" and "ur" and nothing else.`, productName)

	text, err := s.generateContent(ctx, prompt, &generationConfig{ResponseMIMEType: "application/json"})
	if err != nil {
		logrus.WithError(err).Error("AI generation failed")
		return fallbackDescription
	}

	var description ProductDescription
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &description); err != nil {
		logrus.WithError(err).Error("AI generation returned malformed JSON")
		return fallbackDescription
	}
	if description.EN == "" || description.UR == "" {
		return fallbackDescription
	}
	return description
}

// GetBusinessAdvice turns dashboard figures into short bilingual tips.
func (s *AIService) GetBusinessAdvice(ctx context.Context, stats *DashboardStats) string {
	rawStats, err := json.Marshal(stats)
	if err != nil {
		logrus.WithError(err).Error("AI advice failed")
		return fallbackAdvice
	}

	prompt := fmt.Sprintf(`Analyze these market stats for a Pakistani wholesaler: %s.
Give 2-3 brief, actionable business tips in English and Urdu.`, rawStats)

	text, err := s.generateContent(ctx, prompt, nil)
	if err != nil {
		logrus.WithError(err).Error("AI advice failed")
		return fallbackAdvice
	}
	return text
}

func (s *AIService) generateContent(ctx context.Context, prompt string, genCfg *generationConfig) (string, error) {
	payload := generateContentRequest{
		Contents: []aiContent{
			{Parts: []aiPart{{Text: prompt}}},
		},
		GenerationConfig: genCfg,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.config.BaseURL, s.config.Model, s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
