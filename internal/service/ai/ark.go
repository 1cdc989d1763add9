package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/littlemoneyschool/tutor/backend/internal/model/chat"
)

// ArkProvider runs an eino chain of chat template and chat model.
type ArkProvider struct {
	model string
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewArkProvider compiles the chain around chatModel.
func NewArkProvider(ctx context.Context, chatModel model.BaseChatModel, modelName string) (*ArkProvider, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &ArkProvider{model: modelName, chain: runnable}, nil
}

func (p *ArkProvider) Name() string { return "ark:" + p.model }

// GenerateReply implements Provider.
func (p *ArkProvider) GenerateReply(ctx context.Context, systemPrompt string, turns []chat.Turn, maxOutput int) (string, error) {
	if len(turns) == 0 {
		return "", fmt.Errorf("ark: no user turn to answer")
	}

	last := turns[len(turns)-1]
	input := map[string]any{
		"system":  systemPrompt,
		"history": historyMessages(turns[:len(turns)-1]),
		"query":   last.Content,
	}

	response, err := p.chain.Invoke(ctx, input, compose.WithChatModelOption(model.WithMaxTokens(maxOutput)))
	if err != nil {
		return "", fmt.Errorf("failed to run AI chain: %w", err)
	}
	if response == nil {
		return "", ErrEmptyReply
	}

	log.Printf("[ai] ark generated response, length=%d", len(response.Content))
	return cleanReply(response.Content)
}

func historyMessages(turns []chat.Turn) []*schema.Message {
	if len(turns) == 0 {
		return nil
	}

	history := make([]*schema.Message, 0, len(turns))
	for _, t := range turns {
		switch t.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(t.Content))
		case chat.RoleAssistant:
			history = append(history, schema.AssistantMessage(t.Content, nil))
		}
	}
	return history
}
