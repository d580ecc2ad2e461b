package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/folioforge/folioforge/internal/application/service"
	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/logger"
)

// AssistUseCase wraps the generative-text collaborator behind the two editor
// actions. Each call is a single exchange; on failure the caller keeps the
// original text and may simply retry.
type AssistUseCase struct {
	llm    service.TextAssistant
	logger logger.Logger
}

func NewAssistUseCase(llm service.TextAssistant, log logger.Logger) *AssistUseCase {
	return &AssistUseCase{llm: llm, logger: log}
}

const improvePrompt = `Rewrite the following text to be more professional, clear, and impactful for a resume or portfolio. Keep the core meaning intact but enhance the language and tone. Do not add any introductory phrases like "Here is the rewritten text:". Just provide the improved text directly.

Original Text:
"%s"`

const bulletsPrompt = `Convert the following description into a series of professional, accomplishment-oriented bullet points suitable for a resume. Use Markdown for the bullet points (e.g., "* Managed a team..."). Do not add any introductory phrases. Just provide the bullet points directly.

Original Text:
"%s"`

func (uc *AssistUseCase) ImproveWriting(ctx context.Context, text string) (string, error) {
	return uc.complete(ctx, fmt.Sprintf(improvePrompt, text))
}

func (uc *AssistUseCase) GenerateBulletPoints(ctx context.Context, text string) (string, error) {
	return uc.complete(ctx, fmt.Sprintf(bulletsPrompt, text))
}

func (uc *AssistUseCase) complete(ctx context.Context, prompt string) (string, error) {
	out, err := uc.llm.Complete(ctx, prompt)
	if err != nil {
		return "", apperror.NewUnavailable("AI assistant", err)
	}
	return strings.TrimSpace(out), nil
}
