package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/eduquery/eduquery-be/types"
)

// GeminiGenerator completes prompts with the Gemini API. It rotates
// through the configured API keys when a call fails, which rides out
// per-key quota exhaustion.
type GeminiGenerator struct {
	apiKeys    []string
	currentKey int
	client     *genai.Client
	model      *genai.GenerativeModel
	modelName  string
	mu         sync.Mutex
}

func NewGeminiGenerator(apiKeys []string, modelName string) (*GeminiGenerator, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("no API keys provided")
	}

	g := &GeminiGenerator{
		apiKeys:   apiKeys,
		modelName: modelName,
	}
	if err := g.initClient(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *GeminiGenerator) initClient() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(g.apiKeys[g.currentKey]))
	if err != nil {
		return err
	}
	g.client = client
	g.model = client.GenerativeModel(g.modelName)
	g.model.SetTemperature(0)
	return nil
}

func (g *GeminiGenerator) rotateAPIKey() error {
	g.mu.Lock()
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	if err := g.client.Close(); err != nil {
		g.mu.Unlock()
		return err
	}
	g.mu.Unlock()
	return g.initClient()
}

// generativeModel snapshots the current model so an in-flight
// completion never races a key rotation swapping it out.
func (g *GeminiGenerator) generativeModel() *genai.GenerativeModel {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.model
}

func (g *GeminiGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.generativeModel().GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if rotateErr := g.rotateAPIKey(); rotateErr != nil {
			return "", fmt.Errorf("%w: %v", types.ErrDependencyUnavailable, rotateErr)
		}
		resp, err = g.generativeModel().GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", fmt.Errorf("%w: generation failed: %v", types.ErrDependencyUnavailable, err)
		}
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("no response generated")
	}

	content := ""
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}
