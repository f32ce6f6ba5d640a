package gemini

import (
	"github.com/antoinepurnelle/resume-companion/internal/failure"
	"google.golang.org/genai"
)

// answerText extracts the text of the first part of the first candidate.
// There is no fallback to later candidates or parts: a response whose first
// slot carries no text is a transformation failure.
func answerText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", failure.New(failure.Transformation)
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", failure.New(failure.Transformation)
	}

	part := candidate.Content.Parts[0]
	if part == nil || part.Text == "" {
		return "", failure.New(failure.Transformation)
	}

	return part.Text, nil
}
