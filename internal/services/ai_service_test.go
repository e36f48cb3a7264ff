// internal/services/ai_service_test.go
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahalmix/shahalmix-backend/internal/config"
)

func newTestAIService(baseURL string) *AIService {
	return NewAIService(config.AIConfig{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: baseURL,
		Timeout: 5,
	})
}

func modelReply(t *testing.T, text string) []byte {
	t.Helper()
	reply := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
	raw, err := json.Marshal(reply)
	require.NoError(t, err)
	return raw
}

func TestAIService_GenerateProductDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "test-model:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.GenerationConfig)
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMIMEType)

		w.Write(modelReply(t, `{"en": "Fine cotton yarn.", "ur": "عمدہ سوتی دھاگہ"}`))
	}))
	defer server.Close()

	svc := newTestAIService(server.URL)
	description := svc.GenerateProductDescription(context.Background(), "Cotton Yarn")

	assert.Equal(t, "Fine cotton yarn.", description.EN)
	assert.Equal(t, "عمدہ سوتی دھاگہ", description.UR)
}

func TestAIService_DescriptionFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newTestAIService(server.URL)
	description := svc.GenerateProductDescription(context.Background(), "Cotton Yarn")

	assert.Equal(t, fallbackDescription, description)
}

func TestAIService_DescriptionFallsBackOnMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(modelReply(t, "sorry, plain prose instead of JSON"))
	}))
	defer server.Close()

	svc := newTestAIService(server.URL)
	description := svc.GenerateProductDescription(context.Background(), "Cotton Yarn")

	assert.Equal(t, fallbackDescription, description)
}

func TestAIService_BusinessAdvice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(modelReply(t, "Stock up before Eid."))
	}))
	defer server.Close()

	svc := newTestAIService(server.URL)
	advice := svc.GetBusinessAdvice(context.Background(), &DashboardStats{TotalSales: 45000, OrderCount: 3, ProductCount: 4})

	assert.Equal(t, "Stock up before Eid.", advice)
}

func TestAIService_AdviceFallsBackWhenUnreachable(t *testing.T) {
	svc := newTestAIService("http://127.0.0.1:1")
	advice := svc.GetBusinessAdvice(context.Background(), &DashboardStats{})

	assert.Equal(t, fallbackAdvice, advice)
}
