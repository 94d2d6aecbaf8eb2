package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"ghars/internal/catalog"
	"ghars/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// confidenceFloor is the minimum keyword-overlap score a corpus entry
// needs before its answer is preferred over the generic fallback.
const confidenceFloor = 0.3

const contextBoost = 0.2

const maxSuggestions = 4

const relatedDescriptionLimit = 100

// fallbackAnswer is returned when no corpus entry clears the floor.
const fallbackAnswer = "عذراً، لم أفهم سؤالك بشكل كامل. يمكنك سؤالي عن:\n" +
	"• أفضل الأشجار للزراعة\n" +
	"• متى أزرع شجرة معينة\n" +
	"• كيفية العناية بالأشجار\n" +
	"• المعلومات المناخية للمحافظات\n" +
	"• نصائح الري والتسميد"

var fallbackSuggestions = []string{
	"ما هي أفضل الأشجار لمحافظتي؟",
	"متى أزرع النخيل؟",
	"كم مرة أسقي الأشجار في الصيف؟",
	"أريد معلومات عن شجرة اللبان",
}

var genericSuggestions = []string{
	"ما هي أفضل الأشجار للزراعة في عمان؟",
	"متى أزرع الأشجار؟",
	"كيف أعتني بالأشجار في الصيف؟",
	"ما هي احتياجات الري؟",
}

// ChatService answers free-text agricultural questions from a static
// keyword-tagged corpus. The corpus is assembled once at construction
// (hand-authored entries plus two synthesized entries per species) and is
// read-only afterwards; each query is an independent scoring pass.
type ChatService struct {
	catalogs *catalog.Catalogs
	corpus   []models.QAEntry
	log      *ConversationLog
	logger   *zap.Logger
}

func NewChatService(catalogs *catalog.Catalogs, log *ConversationLog, logger *zap.Logger) *ChatService {
	return &ChatService{
		catalogs: catalogs,
		corpus:   buildCorpus(catalogs),
		log:      log,
		logger:   logger,
	}
}

// Answer scores the query against every corpus entry and returns the best
// match above the confidence floor, or the fallback response. The turn is
// recorded in the bounded conversation log.
func (s *ChatService) Answer(query string, chatCtx *models.ChatContext) models.ChatAnswer {
	normalized := strings.ToLower(strings.TrimSpace(query))

	best, bestScore := s.bestMatch(normalized, chatCtx)

	var answer models.ChatAnswer
	if bestScore > confidenceFloor {
		answer = models.ChatAnswer{
			Answer:         best.Answer,
			Suggestions:    s.suggestions(chatCtx),
			RelatedSpecies: s.relatedSpecies(normalized),
			Confidence:     bestScore,
		}
	} else {
		answer = models.ChatAnswer{
			Answer:         fallbackAnswer,
			Suggestions:    fallbackSuggestions,
			RelatedSpecies: []models.RelatedSpecies{},
			Confidence:     0,
		}
	}

	s.log.Append(models.ConversationTurn{
		ID:      uuid.New(),
		Query:   query,
		Context: chatCtx,
		Answer:  answer.Answer,
		AskedAt: time.Now().UTC(),
	})

	s.logger.Debug("chat query answered",
		zap.Float64("confidence", answer.Confidence),
		zap.Int("related_species", len(answer.RelatedSpecies)),
	)
	return answer
}

// History exposes the retained conversation turns, newest last.
func (s *ChatService) History(limit int) []models.ConversationTurn {
	return s.log.Recent(limit)
}

func (s *ChatService) bestMatch(normalized string, chatCtx *models.ChatContext) (models.QAEntry, float64) {
	queryTokens := tokenSet(normalized)

	var best models.QAEntry
	bestScore := 0.0
	for _, entry := range s.corpus {
		score := overlapScore(queryTokens, entry.Keywords)
		score += contextBoosts(entry.Keywords, chatCtx)
		if score > 1.0 {
			score = 1.0
		}
		if score > bestScore {
			bestScore = score
			best = entry
		}
	}
	return best, bestScore
}

// overlapScore is the share of the entry's keyword tokens present in the
// query. An entry with no keyword tokens scores 0.
func overlapScore(queryTokens map[string]struct{}, keywords []string) float64 {
	keywordTokens := tokenSet(strings.ToLower(strings.Join(keywords, " ")))
	if len(keywordTokens) == 0 {
		return 0
	}

	common := 0
	for token := range keywordTokens {
		if _, ok := queryTokens[token]; ok {
			common++
		}
	}
	return float64(common) / float64(len(keywordTokens))
}

func contextBoosts(keywords []string, chatCtx *models.ChatContext) float64 {
	if chatCtx == nil {
		return 0
	}

	boost := 0.0
	if gov := strings.ToLower(chatCtx.Governorate); gov != "" && anyKeywordContains(keywords, gov) {
		boost += contextBoost
	}
	if season := strings.ToLower(chatCtx.Season); season != "" && anyKeywordContains(keywords, season) {
		boost += contextBoost
	}
	return boost
}

func anyKeywordContains(keywords []string, needle string) bool {
	for _, kw := range keywords {
		if strings.Contains(strings.ToLower(kw), needle) {
			return true
		}
	}
	return false
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func (s *ChatService) suggestions(chatCtx *models.ChatContext) []string {
	suggestions := append([]string(nil), genericSuggestions...)

	if chatCtx != nil {
		if chatCtx.Season != "" {
			if season, ok := models.ParseSeason(chatCtx.Season); ok {
				suggestions = append([]string{fmt.Sprintf("ماذا أزرع في فصل %s؟", season.ArabicLabel())}, suggestions...)
			}
		}
		if chatCtx.Governorate != "" {
			suggestions = append([]string{fmt.Sprintf("ما هي أفضل الأشجار لمحافظة %s؟", chatCtx.Governorate)}, suggestions...)
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// relatedSpecies scans the first five catalog entries for a literal name
// mention in the query.
func (s *ChatService) relatedSpecies(normalized string) []models.RelatedSpecies {
	related := []models.RelatedSpecies{}

	species := s.catalogs.Species()
	if len(species) > 5 {
		species = species[:5]
	}
	for _, sp := range species {
		if strings.Contains(normalized, strings.ToLower(sp.Name)) ||
			strings.Contains(normalized, strings.ToLower(sp.NameEn)) {
			related = append(related, models.RelatedSpecies{
				Name:        sp.Name,
				NameEn:      sp.NameEn,
				Description: truncate(sp.Description, relatedDescriptionLimit),
			})
		}
	}
	return related
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// SeasonalAdvice renders the climate summary and threshold-driven tips
// for a governorate and season. ok is false when the pair has no data.
func (s *ChatService) SeasonalAdvice(governorate string, season models.Season) (string, bool) {
	climate, ok := s.catalogs.ClimateFor(governorate, season)
	if !ok {
		return "", false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "نصائح %s في %s:\n\n", season.ArabicLabel(), governorate)
	fmt.Fprintf(&b, "درجة الحرارة: %.0f°م\n", climate.TemperatureAvg)
	fmt.Fprintf(&b, "الأمطار: %.0f مم\n", climate.Rainfall)
	fmt.Fprintf(&b, "الرطوبة: %.0f%%\n", climate.Humidity)
	fmt.Fprintf(&b, "نوع التربة: %s\n\n", climate.SoilType)

	b.WriteString("توصيات الموسم:\n")
	if climate.Rainfall < 50 {
		b.WriteString("• زد كمية الري - الأمطار قليلة\n")
	}
	if climate.TemperatureAvg > 35 {
		b.WriteString("• استخدم شبكات التظليل\n")
	}
	if climate.Humidity > 70 {
		b.WriteString("• راقب الأمراض الفطرية\n")
	}

	return b.String(), true
}
