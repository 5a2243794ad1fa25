package ai

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const seedLength = 16

// ComputeSeed derives a short deterministic fingerprint from the prompt
// version and generation inputs. It correlates audit logs with generated
// questions and is forwarded to the provider as a reproducibility hint; it is
// not a secret.
func ComputeSeed(age, yearGroup, nQuestions int) string {
	fingerprint := fmt.Sprintf("%s:%d:%d:%d", PromptVersion, age, yearGroup, nQuestions)
	digest := sha256.Sum256([]byte(fingerprint))
	return hex.EncodeToString(digest[:])[:seedLength]
}
