package ai

// ProviderError marks failures that are the upstream provider's fault:
// missing configuration, transport errors, HTTP error statuses, or a Gemini
// envelope missing its text field.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ValidationError marks a provider response that arrived but does not satisfy
// the question schema (malformed JSON included). Kept distinct from
// ProviderError so callers can handle the two failure classes separately.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
