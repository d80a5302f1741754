package generation

import (
	"fmt"
	"sort"

	"formforge/models"

	"github.com/jinzhu/gorm"
)

// DefaultTopK bounds retrieval when the caller does not ask for a count.
const DefaultTopK = 5

// MemorySnippet is a transient summary of a prior form, computed fresh on
// every retrieval and never stored.
type MemorySnippet struct {
	FormID     int64    `json:"formId"`
	Purpose    string   `json:"purpose,omitempty"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	Score      float64  `json:"score"`
}

// RetrieveRelevantMemories scores the owner's forms against the query vector
// and returns the topK best, highest first. Forms without an embedding vector
// never participate. Ties break on newest form id so results stay stable.
func RetrieveRelevantMemories(db *gorm.DB, ownerID int64, queryVector []float64, topK int) ([]MemorySnippet, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	var forms []models.Form
	err := db.
		Select("id, title, purpose, memory_summary, fields, embedding_vector").
		Where("owner_id = ?", ownerID).
		Find(&forms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load forms for retrieval: %w", err)
	}

	scored := make([]MemorySnippet, 0, len(forms))
	for _, form := range forms {
		if len(form.EmbeddingVector) == 0 {
			continue
		}
		scored = append(scored, MemorySnippet{
			FormID:     form.ID,
			Purpose:    form.Purpose,
			Title:      form.Title,
			Summary:    form.MemorySummary,
			Highlights: FieldHighlights(form.Fields),
			Score:      CosineSimilarity(queryVector, form.EmbeddingVector),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].FormID > scored[j].FormID
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored, nil
}

// FieldHighlights renders up to the first five fields as "label (type)".
func FieldHighlights(fields []models.FormField) []string {
	limit := len(fields)
	if limit > 5 {
		limit = 5
	}
	highlights := make([]string, 0, limit)
	for _, field := range fields[:limit] {
		highlights = append(highlights, fmt.Sprintf("%s (%s)", field.Label, field.Type))
	}
	return highlights
}
