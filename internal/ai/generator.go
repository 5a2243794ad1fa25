package ai

import "context"

// GenerationResult packages everything one successful generation produced.
type GenerationResult struct {
	PromptVersion string
	PromptText    string
	ResponseText  string
	Seed          string
	Questions     []Question
}

// Generator runs the full prompt -> provider -> validate pipeline. It does no
// persistence and no audit logging; those belong to the service layer.
type Generator interface {
	Generate(ctx context.Context, age, yearGroup, nQuestions int) (*GenerationResult, error)
}

type generator struct {
	provider ProviderClient
}

func NewGenerator(provider ProviderClient) Generator {
	return &generator{provider: provider}
}

// Generate propagates provider and validation errors untouched so the caller
// can tell the two failure classes apart.
func (g *generator) Generate(ctx context.Context, age, yearGroup, nQuestions int) (*GenerationResult, error) {
	prompt := BuildMathsPrompt(age, yearGroup, nQuestions)
	seed := ComputeSeed(age, yearGroup, nQuestions)

	responseText, err := g.provider.Call(ctx, prompt, seed)
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuestions(responseText)
	if err != nil {
		return nil, err
	}

	return &GenerationResult{
		PromptVersion: PromptVersion,
		PromptText:    prompt,
		ResponseText:  responseText,
		Seed:          seed,
		Questions:     questions,
	}, nil
}
