package agent

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// Model is the default Gemini model.
const Model = "gemini-2.5-flash"

// Expert is a chat with a model, able to call the functions of its Library.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	Library   Library
	chat      *genai.Chat
}

// NewAnalyst creates a market-share analyst that can read the reports.
func NewAnalyst(model string, reports ...*Report) *Expert {
	if model == "" {
		model = Model
	}
	return &Expert{
		Name:      "Analyst",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(reports)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a market analyst. You comment the market share of product categories
				on e-commerce marketplaces, their revenue and their sales volume over the years.

				Use the available tools to read the reports before answering. Only state figures
				found in the reports. A value shown as N/A is not available: it is not zero,
				never describe it as a drop or a rise.

				Gap is an absolute difference, in percentage points for the share.
				Growth is a relative change in percent.

				Answer in short markdown paragraphs, highlighting the largest changes first.
			`}}},
		},
		Library: NewLibrary(reports),
	}
}

func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask sends the parts to the model, answering its function calls until it
// responds with content.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from %s", e.Name)
	}
	var calls []*genai.Part
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.FunctionCall == nil {
			continue
		}
		if e.Library == nil {
			return nil, fmt.Errorf("%s doesn't know how to make function calls", e.Name)
		}
		log.Printf("%s calls %s %v", e.Name, p.FunctionCall.Name, p.FunctionCall.Args)
		calls = append(calls, &genai.Part{FunctionResponse: e.Library(ctx, p.FunctionCall)})
	}
	if len(calls) > 0 {
		return e.Ask(ctx, calls...)
	}
	return resp.Candidates[0].Content, nil
}
