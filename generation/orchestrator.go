package generation

import (
	"context"
	"encoding/json"
	"strings"

	"formforge/models"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"
)

// Service runs the whole generation pipeline: embed the prompt, retrieve
// similar prior forms, render the prompt, call the model with fallback,
// sanitize the reply and persist the result. Persistence is the single
// commit point; any earlier failure leaves nothing behind.
type Service struct {
	db        *gorm.DB
	embedder  Embedder
	generator *Generator
	log       *zap.SugaredLogger
}

func NewService(db *gorm.DB, embedder Embedder, generator *Generator, log *zap.SugaredLogger) *Service {
	return &Service{db: db, embedder: embedder, generator: generator, log: log}
}

// GenerateParams is the wire contract of the generate operation.
type GenerateParams struct {
	Owner       models.User
	Prompt      string
	Attachments []string
}

// GenerateResult pairs the persisted form with the memories that conditioned
// it, so the caller can show what context was used.
type GenerateResult struct {
	Form     models.Form     `json:"form"`
	Memories []MemorySnippet `json:"relatedMemories"`
}

func (s *Service) GenerateForm(ctx context.Context, params GenerateParams) (*GenerateResult, error) {
	promptVector, err := s.embedder.EmbedText(ctx, params.Prompt)
	if err != nil {
		return nil, err
	}

	memories, err := RetrieveRelevantMemories(s.db, params.Owner.ID, promptVector, DefaultTopK)
	if err != nil {
		return nil, err
	}

	promptText := BuildPrompt(params.Prompt, memories, params.Attachments)

	text, err := s.generator.Generate(ctx, promptText)
	if err != nil {
		return nil, err
	}

	draft, err := s.parseDraft(text, params.Prompt)
	if err != nil {
		return nil, err
	}

	form := models.Form{
		OwnerID:         params.Owner.ID,
		Title:           draft.Title,
		Description:     draft.Description,
		Purpose:         draft.Purpose,
		SharingSlug:     uuid.NewString(),
		Fields:          draft.Fields,
		EmbeddingVector: models.Vector(promptVector),
		MemorySummary:   MemorySummary(draft.Title, draft.Fields),
	}
	if err := s.db.Create(&form).Error; err != nil {
		return nil, err
	}

	s.log.Infow("form generated", "userId", params.Owner.ID, "formId", form.ID)

	return &GenerateResult{Form: form, Memories: memories}, nil
}

// parseDraft extracts, repairs, parses and sanitizes the model reply. The raw
// text is kept on the error for internal logs only.
func (s *Service) parseDraft(text, prompt string) (Draft, error) {
	payload := ExtractJSONPayload(text)
	repaired, ok := RepairJSON(payload)
	if !ok {
		s.log.Warnw("failed to repair generated JSON, using raw payload")
		repaired = payload
	}

	var raw interface{}
	if err := json.Unmarshal([]byte(repaired), &raw); err != nil {
		s.log.Errorw("failed to parse form schema", "error", err, "raw", text)
		return Draft{}, &ParseError{Raw: text, Err: err}
	}

	fallbackLabel := "Field"
	if strings.TrimSpace(prompt) != "" {
		fallbackLabel = "Response"
	}

	draft, err := SanitizeGeneratedForm(raw, fallbackLabel)
	if err != nil {
		s.log.Errorw("generated schema rejected", "error", err, "raw", text)
		return Draft{}, &ParseError{Raw: text, Err: err}
	}
	return draft, nil
}

// MemorySummary derives the retrieval preview stored with a form:
// "{title}: {first five fields as 'label (type)'}".
func MemorySummary(title string, fields []models.FormField) string {
	return title + ": " + strings.Join(FieldHighlights(fields), ", ")
}
