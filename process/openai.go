package process

import (
	"context"
	"fmt"
	"math"

	"github.com/sashabaranov/go-openai"
)

const (
	DefaultModel       = "gpt-4.1-nano"
	DefaultTemperature = 0.6
	DefaultMaxTokens   = 3000
)

// Completer sends a prompt to a text completion service. The reply comes
// back in whatever shape the service uses; NormalizeReply makes text of it.
type Completer interface {
	Complete(ctx context.Context, prompt string) (any, error)
}

type OpenAIInfo struct {
	ApiKey      string
	BaseURL     string
	Model       string
	// Temperature falls back to DefaultTemperature when nil.
	Temperature *float32
	MaxTokens   int
}

type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewOpenAI(info OpenAIInfo) *OpenAI {
	config := openai.DefaultConfig(info.ApiKey)
	if info.BaseURL != "" {
		config.BaseURL = info.BaseURL
	}
	if info.Model == "" {
		info.Model = DefaultModel
	}
	temperature := float32(DefaultTemperature)
	if info.Temperature != nil {
		temperature = *info.Temperature
	}
	// the request drops a zero temperature from its JSON, so zero is sent
	// as the smallest value the endpoint still reads as zero
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}
	if info.MaxTokens == 0 {
		info.MaxTokens = DefaultMaxTokens
	}

	return &OpenAI{
		client:      openai.NewClientWithConfig(config),
		model:       info.Model,
		temperature: temperature,
		maxTokens:   info.MaxTokens,
	}
}

func (o *OpenAI) Complete(ctx context.Context, prompt string) (any, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       o.model,
			Temperature: o.temperature,
			MaxTokens:   o.maxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completion: %w", err)
	}

	return resp, nil
}
