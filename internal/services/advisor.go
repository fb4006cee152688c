package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"lumina-storefront/internal/models"
)

const (
	// EmptyReply is shown when the model answers with no text.
	EmptyReply = "I'm sorry, I couldn't process that request right now."
	// FailureReply is shown when the model call fails.
	FailureReply = "I'm having a little trouble connecting to my brain. Please try again in a moment!"
)

type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

type ProductLister interface {
	List() []models.Product
}

// ShoppingAdvisor builds the Lumina prompt from the full catalog and maps
// every failure to a fixed reply.
type ShoppingAdvisor struct {
	generator   TextGenerator
	catalog     ProductLister
	model       string
	temperature float32
	logger      *zap.Logger
}

func NewShoppingAdvisor(generator TextGenerator, catalog ProductLister, model string, temperature float32, logger *zap.Logger) *ShoppingAdvisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShoppingAdvisor{
		generator:   generator,
		catalog:     catalog,
		model:       model,
		temperature: temperature,
		logger:      logger,
	}
}

// Advise never returns an error; the transcript only ever sees fixed text or the model's reply.
func (a *ShoppingAdvisor) Advise(ctx context.Context, userText string) string {
	req := GenerationRequest{
		Model:             a.model,
		SystemInstruction: BuildSystemInstruction(a.catalog.List()),
		UserContent:       userText,
		Temperature:       a.temperature,
	}

	reply, err := a.generator.Generate(ctx, req)
	if err != nil {
		a.logger.Error("Gemini API error", zap.String("model", a.model), zap.Error(err))
		return FailureReply
	}
	if reply == "" {
		a.logger.Warn("Gemini returned empty text, using fallback", zap.String("model", a.model))
		return EmptyReply
	}
	return reply
}

// BuildSystemInstruction renders the assistant guidance with one
// "- name: description ($price)" line per product.
func BuildSystemInstruction(products []models.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("- %s: %s ($%s)", p.Name, p.Description, p.Price.String()))
	}

	return fmt.Sprintf(`
You are Lumina, an elite shopping assistant for Lumina Luxe.
You are helpful, sophisticated, and expert at recommending gadgets and lifestyle products.

Here is our current inventory:
%s

Rules:
1. Help users find the right product based on their needs.
2. Be concise but elegant.
3. If they ask about something not in our inventory, politely suggest the closest match or explain we don't carry it yet.
4. Provide clear reasoning for your recommendations.
`, strings.Join(lines, "\n"))
}
