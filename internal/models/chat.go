package models

import (
	"time"

	"github.com/google/uuid"
)

// QACategory groups question/answer entries in the knowledge corpus.
type QACategory string

const (
	QACategoryGeneral     QACategory = "general"
	QACategorySeasonal    QACategory = "seasonal"
	QACategoryGovernorate QACategory = "governorate"
	QACategorySpecies     QACategory = "species"
)

// QAEntry is one keyword-tagged answer in the knowledge corpus. The corpus
// is built once at startup and read-only afterwards.
type QAEntry struct {
	Keywords []string
	Answer   string
	Category QACategory
}

// ChatContext narrows a chat query to a governorate and/or a season.
type ChatContext struct {
	Governorate string `json:"governorate,omitempty"`
	Season      string `json:"season,omitempty"`
}

// RelatedSpecies is a trimmed species reference attached to chat answers.
type RelatedSpecies struct {
	Name        string `json:"name"`
	NameEn      string `json:"name_en"`
	Description string `json:"description"`
}

// ChatAnswer is the retrieval result for one chat query.
type ChatAnswer struct {
	Answer         string           `json:"answer"`
	Suggestions    []string         `json:"suggestions"`
	RelatedSpecies []RelatedSpecies `json:"related_species"`
	Confidence     float64          `json:"confidence"`
}

// ConversationTurn records one chat exchange for audit purposes. Turns
// live only for the process lifetime in a bounded log.
type ConversationTurn struct {
	ID      uuid.UUID    `json:"id"`
	Query   string       `json:"query"`
	Context *ChatContext `json:"context,omitempty"`
	Answer  string       `json:"answer"`
	AskedAt time.Time    `json:"asked_at"`
}
