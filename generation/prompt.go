package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// promptMemory is the projection of a snippet embedded in the prompt. Raw
// embedding vectors never travel to the model.
type promptMemory struct {
	Purpose    string   `json:"purpose"`
	Title      string   `json:"title"`
	Highlights []string `json:"highlights"`
	Summary    string   `json:"summary"`
}

// BuildPrompt renders the single generation prompt: retrieved history, the
// literal user request, optional reference media, and the exact JSON shape
// the model must answer with.
func BuildPrompt(prompt string, memories []MemorySnippet, attachments []string) string {
	payload := make([]promptMemory, 0, len(memories))
	for _, memory := range memories {
		payload = append(payload, promptMemory{
			Purpose:    memory.Purpose,
			Title:      memory.Title,
			Highlights: memory.Highlights,
			Summary:    memory.Summary,
		})
	}

	memoryText, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		memoryText = []byte("[]")
	}

	attachmentText := ""
	if len(attachments) > 0 {
		attachmentText = "\nReference media URLs: " + strings.Join(attachments, ", ")
	}

	return fmt.Sprintf(`You are an intelligent form schema generator.

Here is relevant user form history for reference:
%s

Now generate a new form schema for this request:
%q%s

Return ONLY valid JSON matching this shape:
{
  "title": string,
  "description": string (optional),
  "purpose": string (optional),
  "fields": [{
    "id": string,
    "label": string,
    "type": "text" | "textarea" | "email" | "number" | "date" | "datetime" | "select" | "checkbox" | "radio" | "file" | "url" | "phone",
    "required": boolean (optional),
    "placeholder": string (optional),
    "description": string (optional),
    "options": [{ "label": string, "value": string }] (select/radio only),
    "accept": [string] (file only),
    "multiline": boolean (textarea only)
  }]
}

Do not include markdown fences.`, memoryText, prompt, attachmentText)
}
