package service

import (
	"context"
	"fmt"
	"strings"
)

// AnswerNotFound is the fixed sentinel returned when a question cannot
// be answered from the document's content.
const AnswerNotFound = "Answer not found in the document."

const answerPromptTemplate = `You are a document-based assistant.

Rules:
- Answer ONLY using the provided context.
- If the answer is not present in the context, respond exactly with:
  "%s"

Context:
%s

Question: %s
Answer:`

// Generator is a single-turn, stateless language model call. The
// temperature is fixed by the implementation; answering relies on
// deterministic decoding.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Synthesizer turns retrieved chunks into an answer under the
// context-only contract.
type Synthesizer struct {
	generator Generator
}

func NewSynthesizer(generator Generator) *Synthesizer {
	return &Synthesizer{
		generator: generator,
	}
}

// Synthesize answers the question from the retrieved chunks. With no
// chunks it returns the sentinel without invoking the model at all;
// otherwise the model is instructed to answer only from the context and
// to fall back to the exact sentinel. The model's output is trusted and
// passed through trimmed.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, chunks []string) (string, error) {
	if len(chunks) == 0 {
		return AnswerNotFound, nil
	}

	contextBlock := strings.Join(chunks, "\n\n")
	prompt := fmt.Sprintf(answerPromptTemplate, AnswerNotFound, contextBlock, question)

	answer, err := s.generator.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}
