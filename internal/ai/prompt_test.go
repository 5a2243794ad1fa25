package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMathsPrompt_EmbedsInputs(t *testing.T) {
	prompt := BuildMathsPrompt(8, 3, 10)

	assert.Contains(t, prompt, "Generate 10 multiple-choice diagnostic questions")
	assert.Contains(t, prompt, "aged 8 in Year 3")
	assert.Contains(t, prompt, "UK National Curriculum")
	assert.Contains(t, prompt, "correct_answer_index (0-3)")
	assert.Contains(t, prompt, `"questions"`)
}

func TestBuildMathsPrompt_Deterministic(t *testing.T) {
	assert.Equal(t, BuildMathsPrompt(7, 2, 5), BuildMathsPrompt(7, 2, 5))
}

func TestPromptVersion(t *testing.T) {
	assert.Equal(t, "lj-ai-maths-v1", PromptVersion)
}
