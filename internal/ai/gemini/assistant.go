package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/antoinepurnelle/resume-companion/internal/failure"
	"github.com/antoinepurnelle/resume-companion/internal/logger"
	"github.com/antoinepurnelle/resume-companion/internal/resume"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Every request instructs the model to answer in structured markdown so the
// presentation layer can render it directly.
const formatInstruction = "Answer in a Markdown format"

const defaultMaxLogLength = 200

type contentGenerator interface {
	Generate(ctx context.Context, parts []*genai.Part) (*genai.GenerateContentResponse, error)
}

type resumeSource interface {
	GetResume(ctx context.Context) (*resume.Resume, error)
}

// Assistant is the AI gateway: it composes the user's question with the
// session resume, sends it to Gemini and maps the answer.
type Assistant struct {
	generator contentGenerator
	resumes   resumeSource
	logger    *zap.Logger
	maxLogLen int
}

// NewAssistant wires a generator with the resume data gateway the prompt
// payload is built from.
func NewAssistant(generator contentGenerator, resumes resumeSource, log *zap.Logger, maxLogLength int) *Assistant {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Assistant{
		generator: generator,
		resumes:   resumes,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Prompt answers a question about the resume. A resume fetch failure is
// propagated unchanged; everything raised past that point is classified into
// the shared failure taxonomy. A single attempt is made, without retries.
func (a *Assistant) Prompt(ctx context.Context, question string) (string, error) {
	current, err := a.resumes.GetResume(ctx)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(current)
	if err != nil {
		return "", failure.FromTransport(err)
	}

	parts := []*genai.Part{
		{Text: question},
		{Text: "Resume:\n" + string(payload)},
		{Text: formatInstruction},
	}

	a.logger.Debug("prompting about resume",
		zap.Int("question_length", utf8.RuneCountInString(question)),
		zap.String("question_preview", logger.TruncateForLog(question, a.maxLogLen)),
	)

	resp, err := a.generator.Generate(ctx, parts)
	if err != nil {
		return "", classifyGenerate(err)
	}

	answer, err := answerText(resp)
	if err != nil {
		return "", err
	}

	a.logger.Debug("got answer",
		zap.Int("answer_length", utf8.RuneCountInString(answer)),
		zap.String("answer_preview", logger.TruncateForLog(answer, a.maxLogLen)),
	)

	return answer, nil
}

// classifyGenerate routes Gemini API errors through the shared status
// classifier; anything without a status code goes through the transport
// classifier instead.
func classifyGenerate(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if ferr := failure.FromStatus(apiErr.Code); ferr != nil {
			return ferr
		}
		return failure.Wrap(failure.Unknown, err)
	}

	return failure.FromTransport(err)
}
