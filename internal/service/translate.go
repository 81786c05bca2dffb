package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"golang.org/x/text/language"

	"github.com/pep299/video-summarizer/internal/chunk"
	"github.com/pep299/video-summarizer/internal/repository"
)

// Translator is the best-effort pre-translation step composed before
// summarization. It never surfaces an error: the caller falls back to the
// original text when ok is false.
type Translator struct {
	inference     repository.InferenceRepository
	modelTemplate string // e.g. "Helsinki-NLP/opus-mt-%s-en"
}

func NewTranslator(inference repository.InferenceRepository, modelTemplate string) *Translator {
	return &Translator{inference: inference, modelTemplate: modelTemplate}
}

// ToEnglish translates text from srcLang chunk by chunk, strictly in order.
// The first chunk that fails aborts the whole translation — a partially
// translated text is worse than an untranslated one for summarization.
func (t *Translator) ToEnglish(ctx context.Context, text, srcLang string) (string, bool) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)

	src := primarySubtag(srcLang)
	if src == "" {
		return "", false
	}
	model := fmt.Sprintf(t.modelTemplate, src)
	logger.Printf("Attempting translation model=%s", model)

	chunks := chunk.Split(text, chunk.TranslateMaxChars, chunk.TranslateOverlap)
	translated := make([]string, 0, len(chunks))
	for i, c := range chunks {
		out, err := t.inference.Translate(ctx, model, c)
		if err != nil {
			logger.Printf("Translation failed chunk=%d/%d: %v", i+1, len(chunks), err)
			return "", false
		}
		translated = append(translated, out)
	}
	if len(translated) == 0 {
		return "", false
	}
	return strings.Join(translated, "\n"), true
}

// primarySubtag reduces a language signal to the primary subtag the
// translation model names are keyed by ("pt-BR" -> "pt"). Signals that are
// not valid BCP 47 tags fall back to a plain split so heuristic markers
// still produce a deterministic model name.
func primarySubtag(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	if tag, err := language.Parse(src); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			return base.String()
		}
	}
	return strings.ToLower(strings.SplitN(src, "-", 2)[0])
}
