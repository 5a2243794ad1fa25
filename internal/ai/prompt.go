package ai

import "fmt"

// PromptVersion is pinned to the prompt template below and stored alongside
// every generated question for auditability. Bump it whenever the template
// changes.
const PromptVersion = "lj-ai-maths-v1"

// BuildMathsPrompt produces the deterministic instruction string for
// generating maths MCQs. Child-identifying data is excluded; only age/year
// context is provided.
func BuildMathsPrompt(age, yearGroup, nQuestions int) string {
	return fmt.Sprintf(`You are an educational content engine for UK National Curriculum maths.
Generate %d multiple-choice diagnostic questions for a child
aged %d in Year %d. Each question must include:
- question_text
- four answer options labelled A-D
- correct_answer_index (0-3)
- difficulty tag (easy, medium, hard)

Guardrails:
- Stay strictly within Year %d UK National Curriculum expectations.
- Focus on age-appropriate number sense, arithmetic (addition, subtraction, multiplication, division), place value, simple fractions/decimals, measurement, shapes/geometry, and word problems within the Year %d syllabus.
- Avoid trick questions, cultural references, or adult themes.
- Keep wording concise and age-appropriate.
- Responses must be valid JSON with a top-level "questions" list.`,
		nQuestions, age, yearGroup, yearGroup, yearGroup)
}
