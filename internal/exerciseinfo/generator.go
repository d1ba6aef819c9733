// Package exerciseinfo produces coaching write-ups for exercises. The text
// comes from an OpenAI model when an API key is configured and falls back
// to a static template otherwise, so the rest of the app never needs to
// care which one it got.
package exerciseinfo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/myrjola/liftlog/internal/errors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const systemPrompt = `You are a strength coach writing reference material for a workout tracking app. Write a concise markdown guide for the given gym exercise with these sections: a one-paragraph summary, "Setup", "Execution", and "Common Mistakes". Keep the whole guide under 300 words. Use plain language and do not invent safety claims.`

// Generator produces markdown descriptions of exercises.
type Generator struct {
	client  openai.Client
	enabled bool
	logger  *slog.Logger
}

// NewGenerator creates a generator. An empty API key disables the model
// and every description comes from the fallback template.
func NewGenerator(apiKey string, logger *slog.Logger) *Generator {
	gen := &Generator{
		client:  openai.Client{},
		enabled: apiKey != "",
		logger:  logger,
	}
	if gen.enabled {
		gen.client = openai.NewClient(option.WithAPIKey(apiKey))
	}
	return gen
}

// Describe returns a markdown guide for the exercise. Model failures
// degrade to the fallback text instead of erroring; a missing write-up
// must never block logging a workout.
func (g *Generator) Describe(ctx context.Context, exerciseName string) string {
	if !g.enabled {
		return fallbackDescription(exerciseName)
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf("Exercise: %s", exerciseName)),
		},
	}

	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		g.logger.LogAttrs(ctx, slog.LevelWarn, "exercise info generation failed",
			slog.String("exercise", exerciseName), errors.SlogError(err))
		return fallbackDescription(exerciseName)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		g.logger.LogAttrs(ctx, slog.LevelWarn, "exercise info generation returned no content",
			slog.String("exercise", exerciseName))
		return fallbackDescription(exerciseName)
	}

	g.logger.LogAttrs(ctx, slog.LevelDebug, "generated exercise info",
		slog.String("exercise", exerciseName),
		slog.Int64("total_tokens", completion.Usage.TotalTokens))

	return completion.Choices[0].Message.Content
}

func fallbackDescription(exerciseName string) string {
	return fmt.Sprintf(`# %[1]s

No coaching notes are available for %[1]s yet.

Log your sets as usual; general guidance applies: warm up with lighter sets, keep the movement controlled through the full range of motion, and stop the set when form breaks down.`, exerciseName)
}
