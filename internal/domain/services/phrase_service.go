package services

import (
	"encoding/json"
	"errors"
	"io/fs"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"amdaops-http-service/internal/domain/models"
	"amdaops-http-service/internal/infrastructure/config"
	"amdaops-http-service/internal/infrastructure/storage"
	"amdaops-http-service/pkg/logger"
)

// 搜索与分页参数
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
	PhrasesPerPage     = 20
)

// PhraseFacets are the filter options offered for a site's phrases.
type PhraseFacets struct {
	Categories []string `json:"categories"`
	Hotwords   []string `json:"hotwords"`
}

// SearchQuery describes a phrase search. Custom takes precedence over
// Hotword when it is not blank.
type SearchQuery struct {
	Category string
	Hotword  string
	Custom   string
	Limit    int
}

// PhraseInput is the data needed to add a phrase to a site.
type PhraseInput struct {
	Cat      string
	Hotwords string
	En       string
	Es       string
}

// InterfacePhraseService defines the phrase bank service interface
type InterfacePhraseService interface {
	LoadPhrases() ([]models.Phrase, error)
	PhrasesForSite(prefix string) ([]models.Phrase, error)
	Facets(prefix string) (*PhraseFacets, error)
	Search(prefix string, q SearchQuery) ([]models.Phrase, error)
	ListPage(prefix, category string, page int) ([]models.Phrase, models.PaginationResult, error)
	AddPhrase(prefix string, input PhraseInput) (*models.Phrase, error)
}

// PhraseService 双语短语库服务
type PhraseService struct {
	Config   *config.Config
	file     *storage.JSONFile
	registry InterfaceRegistryService
	redis    InterfaceRedisService
	cacheTTL time.Duration
}

// NewPhraseService 创建短语库服务，redis 可以为 nil
func NewPhraseService(cfg *config.Config, registry InterfaceRegistryService, redis InterfaceRedisService) InterfacePhraseService {
	return &PhraseService{
		Config:   cfg,
		file:     storage.NewJSONFile(cfg.PhrasesPath()),
		registry: registry,
		redis:    redis,
		cacheTTL: cfg.FacetCacheTTL,
	}
}

// 1 LoadPhrases reads the whole phrase bank. A missing file or a top level
// that is not a list is an error.
func (s *PhraseService) LoadPhrases() ([]models.Phrase, error) {
	phrases, err := storage.LoadList[models.Phrase](s.file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrPhraseBankMissing
		}
		return nil, phraseBankError(err)
	}
	return phrases, nil
}

// phraseBankError 仅将解码错误归为格式错误，其余读写错误原样返回
func phraseBankError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return errors.Join(ErrPhraseBankInvalid, err)
	}
	return err
}

// 2 PhrasesForSite returns the phrases of the site with prefix, or the
// whole bank when prefix is empty.
func (s *PhraseService) PhrasesForSite(prefix string) ([]models.Phrase, error) {
	phrases, err := s.LoadPhrases()
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		return phrases, nil
	}
	site, err := s.registry.GetSite(prefix)
	if err != nil {
		return nil, err
	}
	return FilterBySite(phrases, *site), nil
}

// 3 Facets returns the categories and hotwords of a site's phrases,
// served from Redis when available.
func (s *PhraseService) Facets(prefix string) (*PhraseFacets, error) {
	if s.redis != nil {
		if cached, err := s.redis.GetFacets(prefix); err == nil {
			return cached, nil
		}
	}

	phrases, err := s.PhrasesForSite(prefix)
	if err != nil {
		return nil, err
	}
	facets := &PhraseFacets{
		Categories: Categories(phrases),
		Hotwords:   Hotwords(phrases),
	}

	if s.redis != nil {
		if err := s.redis.CacheFacets(prefix, facets, s.cacheTTL); err != nil {
			logger.L().Debug("facet cache write skipped", zap.Error(err))
		}
	}
	return facets, nil
}

// 4 Search runs a search over a site's phrases
func (s *PhraseService) Search(prefix string, q SearchQuery) ([]models.Phrase, error) {
	phrases, err := s.PhrasesForSite(prefix)
	if err != nil {
		return nil, err
	}
	hotword := q.Hotword
	if strings.TrimSpace(q.Custom) != "" {
		hotword = q.Custom
	}
	return SearchPhrases(phrases, q.Category, hotword, q.Limit), nil
}

// 5 ListPage returns one page of a site's phrases, optionally filtered by category
func (s *PhraseService) ListPage(prefix, category string, page int) ([]models.Phrase, models.PaginationResult, error) {
	phrases, err := s.PhrasesForSite(prefix)
	if err != nil {
		return nil, models.PaginationResult{}, err
	}

	display := phrases
	if category != "" {
		display = make([]models.Phrase, 0, len(phrases))
		for _, p := range phrases {
			if p.Cat == category {
				display = append(display, p)
			}
		}
	}

	pager := models.NewPaginationResult(len(display), page, PhrasesPerPage)
	start, end := pager.Bounds()
	return display[start:end], pager, nil
}

// 6 AddPhrase validates a phrase and appends it to the bank, copying the
// site fields from the registry record.
func (s *PhraseService) AddPhrase(prefix string, input PhraseInput) (*models.Phrase, error) {
	cat := strings.TrimSpace(input.Cat)
	en := strings.TrimSpace(input.En)
	es := strings.TrimSpace(input.Es)
	switch {
	case en == "":
		return nil, invalid("en", "is required")
	case es == "":
		return nil, invalid("es", "is required")
	case cat == "":
		return nil, invalid("cat", "is required")
	case !contains(models.PhraseCategories, cat):
		return nil, invalid("cat", "must be one of "+strings.Join(models.PhraseCategories, ", "))
	}

	site, err := s.registry.GetSite(prefix)
	if err != nil {
		return nil, err
	}
	if !s.file.Exists() {
		return nil, ErrPhraseBankMissing
	}

	phrase := models.Phrase{
		Site:     site.Site,
		Name:     site.Name,
		Address:  site.Address,
		Cat:      cat,
		Hotwords: models.SplitHotwords(input.Hotwords),
		En:       en,
		Es:       es,
	}

	err = storage.UpdateList(s.file, func(items []models.Phrase) ([]models.Phrase, error) {
		return append(items, phrase), nil
	})
	if err != nil {
		return nil, phraseBankError(err)
	}

	if s.redis != nil {
		if err := s.redis.InvalidateFacets(); err != nil {
			logger.L().Debug("facet cache invalidation skipped", zap.Error(err))
		}
	}
	return &phrase, nil
}

// FilterBySite keeps the phrases whose site, name and address match site.
func FilterBySite(phrases []models.Phrase, site models.Site) []models.Phrase {
	out := make([]models.Phrase, 0)
	for _, p := range phrases {
		if p.BelongsTo(site) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the sorted, distinct, non-empty categories.
func Categories(phrases []models.Phrase) []string {
	set := make(map[string]struct{})
	for _, p := range phrases {
		if p.Cat != "" {
			set[p.Cat] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// Hotwords returns the sorted, distinct, lower-cased hotwords longer than
// two characters.
func Hotwords(phrases []models.Phrase) []string {
	set := make(map[string]struct{})
	for _, p := range phrases {
		for _, w := range p.Hotwords {
			if len([]rune(w)) > 2 {
				set[strings.ToLower(w)] = struct{}{}
			}
		}
	}
	return sortedKeys(set)
}

// ClampLimit bounds a search limit to 1..50, defaulting to 10.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultSearchLimit
	case limit > MaxSearchLimit:
		return MaxSearchLimit
	default:
		return limit
	}
}

// SearchPhrases scans phrases in order. A non-empty category must match
// exactly. A non-empty hotword must appear in the English or Spanish text, or
// equal one of the phrase's hotwords, ignoring case. Scanning stops once
// limit results are collected.
func SearchPhrases(phrases []models.Phrase, category, hotword string, limit int) []models.Phrase {
	limit = ClampLimit(limit)
	hw := strings.ToLower(strings.TrimSpace(hotword))

	results := make([]models.Phrase, 0, limit)
	for _, p := range phrases {
		if category != "" && p.Cat != category {
			continue
		}
		if hw != "" && !matchesHotword(p, hw) {
			continue
		}
		results = append(results, p)
		if len(results) >= limit {
			break
		}
	}
	return results
}

func matchesHotword(p models.Phrase, hw string) bool {
	if strings.Contains(strings.ToLower(p.En), hw) || strings.Contains(strings.ToLower(p.Es), hw) {
		return true
	}
	for _, h := range p.Hotwords {
		if strings.ToLower(h) == hw {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
