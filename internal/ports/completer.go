package ports

import "context"

type Completion struct {
	Text    string
	Refused bool
	Refusal string
}

type Completer interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string) (Completion, error)
}
