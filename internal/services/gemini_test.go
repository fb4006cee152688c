package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
)

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello, "), genai.Text("world")}}},
			{Content: nil},
		},
	}
	if got := extractText(resp); got != "Hello, world" {
		t.Fatalf("expected joined text, got %q", got)
	}
	if got := extractText(nil); got != "" {
		t.Fatalf("expected empty text for nil response, got %q", got)
	}
}

func TestAPIKeyFromEnv(t *testing.T) {
	os.Unsetenv("GEMINI_API_KEY")
	os.Setenv("API_KEY", "fallback-key")
	defer os.Unsetenv("API_KEY")

	if got := apiKeyFromEnv(); got != "fallback-key" {
		t.Fatalf("expected API_KEY fallback, got %q", got)
	}

	os.Setenv("GEMINI_API_KEY", "primary-key")
	defer os.Unsetenv("GEMINI_API_KEY")

	if got := apiKeyFromEnv(); got != "primary-key" {
		t.Fatalf("expected GEMINI_API_KEY, got %q", got)
	}
}

func TestAcquireRate_HonoursContext(t *testing.T) {
	s := NewGeminiService(1)
	if err := s.acquireRate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := s.acquireRate(ctx); err == nil {
		t.Fatalf("expected context error while bucket is empty")
	}

	s.releaseRate()
	if err := s.acquireRate(context.Background()); err != nil {
		t.Fatalf("expected slot after release: %v", err)
	}
}
