package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"belajarku_backend/internals/configs"
)

// Client Gemini memakai REST API v1 langsung, gaya yang sama dengan helper
// Supabase Storage. Model gratis yang dipakai: gemini-2.5-flash.
const (
	geminiModel      = "gemini-2.5-flash"
	geminiAPIVersion = "v1"
)

var geminiHTTPClient = &http.Client{Timeout: 30 * time.Second}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata map[string]interface{} `json:"usageMetadata"`
}

type ChatTurn struct {
	Role    string // "user" atau "assistant"
	Content string
}

type GeminiReply struct {
	Content      string
	Model        string
	FinishReason string
	Usage        map[string]interface{}
}

// GenerateTutorReply mengirim riwayat percakapan ke Gemini. System prompt
// digabung ke user message pertama karena Gemini v1 tidak punya role system.
func GenerateTutorReply(turns []ChatTurn, systemPrompt string) (*GeminiReply, error) {
	if configs.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY belum dikonfigurasi")
	}
	if len(turns) == 0 {
		return nil, fmt.Errorf("riwayat percakapan kosong")
	}

	contents := make([]geminiContent, 0, len(turns))
	systemAdded := false
	for _, turn := range turns {
		role := "user"
		text := turn.Content
		if turn.Role == "assistant" || turn.Role == "bot" {
			role = "model"
		} else if !systemAdded {
			text = systemPrompt + "\n\n" + text
			systemAdded = true
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: text}},
		})
	}

	body, err := json.Marshal(geminiRequest{
		Contents: contents,
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2048,
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/%s/models/%s:generateContent?key=%s",
		geminiAPIVersion, geminiModel, configs.GeminiAPIKey)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := geminiHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tidak dapat terhubung ke Gemini API: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("API key Gemini tidak valid")
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("rate limit Gemini tercapai, coba lagi nanti")
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("Gemini API error (%d): %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("response Gemini tidak valid: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("response Gemini tidak berisi kandidat")
	}

	content := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if content == "" {
		return nil, fmt.Errorf("Gemini mengembalikan konten kosong")
	}

	return &GeminiReply{
		Content:      content,
		Model:        geminiModel,
		FinishReason: parsed.Candidates[0].FinishReason,
		Usage:        parsed.UsageMetadata,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
