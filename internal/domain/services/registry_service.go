package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"go.uber.org/zap"

	"amdaops-http-service/internal/domain/models"
	"amdaops-http-service/internal/infrastructure/config"
	"amdaops-http-service/internal/infrastructure/storage"
	"amdaops-http-service/pkg/logger"
)

// MapsSearchURL is the prefix of a derived site maps_link.
const MapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// timestampLayout matches the ISO timestamps already stored in the data files.
const timestampLayout = "2006-01-02T15:04:05.000000"

// InterfaceRegistryService defines the site registry service interface
type InterfaceRegistryService interface {
	EnsureRegistry() (bool, error)
	LoadRegistry() ([]models.Site, error)
	ListSites() ([]models.Site, error)
	ListPrefixes() ([]string, error)
	GetSite(prefix string) (*models.Site, error)
	SaveSite(originalPrefix string, site models.Site) (*models.Site, bool, error)
	DeleteSite(prefix string) (int, error)
}

// RegistryService 站点注册表服务，每次读取都会规范化文件内容
type RegistryService struct {
	Config    *config.Config
	file      *storage.JSONFile
	schedules InterfaceScheduleService
	now       func() time.Time
}

// NewRegistryService 创建站点注册表服务
func NewRegistryService(cfg *config.Config, schedules InterfaceScheduleService) InterfaceRegistryService {
	return &RegistryService{
		Config:    cfg,
		file:      storage.NewJSONFile(cfg.RegistryPath()),
		schedules: schedules,
		now:       time.Now,
	}
}

// 1 EnsureRegistry writes the initial registry when the file is missing
func (s *RegistryService) EnsureRegistry() (bool, error) {
	return s.file.EnsureDefault(InitialRegistry())
}

// 2 LoadRegistry reads and normalizes the registry, writing the healed
// version back when it differs from what is on disk.
func (s *RegistryService) LoadRegistry() ([]models.Site, error) {
	s.file.Lock()
	defer s.file.Unlock()
	return s.loadLocked()
}

func (s *RegistryService) loadLocked() ([]models.Site, error) {
	raw, err := s.file.ReadRaw()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	res := NormalizeRegistry(raw)
	encoded, err := storage.Marshal(res.Sites)
	if err != nil {
		return nil, err
	}
	if sameJSON(raw, encoded) {
		return res.Sites, nil
	}

	if res.Unparseable {
		if backup, err := s.file.Backup("corrupt"); err == nil {
			logger.L().Warn("site registry was not valid JSON, backed up before repair",
				zap.String("backup", backup))
		}
	}
	logger.L().Warn("site registry normalized and rewritten",
		zap.String("path", s.file.Path()),
		zap.Int("sites", len(res.Sites)),
		zap.Int("dropped", res.Dropped),
		zap.Bool("defaulted", res.Defaulted))

	if err := s.file.SaveRawLocked(encoded); err != nil {
		return nil, err
	}
	return res.Sites, nil
}

// ListSites returns every site in file order
func (s *RegistryService) ListSites() ([]models.Site, error) {
	return s.LoadRegistry()
}

// 3 ListPrefixes returns the registry prefixes in file order
func (s *RegistryService) ListPrefixes() ([]string, error) {
	sites, err := s.LoadRegistry()
	if err != nil {
		return nil, err
	}
	prefixes := make([]string, 0, len(sites))
	for _, site := range sites {
		prefixes = append(prefixes, site.Prefix)
	}
	return prefixes, nil
}

// 4 GetSite returns the site with the given prefix
func (s *RegistryService) GetSite(prefix string) (*models.Site, error) {
	sites, err := s.LoadRegistry()
	if err != nil {
		return nil, err
	}
	for i := range sites {
		if sites[i].Prefix == prefix {
			return &sites[i], nil
		}
	}
	return nil, ErrSiteNotFound
}

// 5 SaveSite validates and upserts a site by prefix. When originalPrefix
// differs from the new prefix the old entry is removed. It reports whether
// a new record was created.
func (s *RegistryService) SaveSite(originalPrefix string, site models.Site) (*models.Site, bool, error) {
	if err := prepareSite(&site); err != nil {
		return nil, false, err
	}
	originalPrefix = strings.TrimSpace(originalPrefix)

	s.file.Lock()
	defer s.file.Unlock()

	sites, err := s.loadLocked()
	if err != nil {
		return nil, false, err
	}

	// the record being edited, looked up by its prefix before any rename
	lookup := site.Prefix
	if originalPrefix != "" {
		lookup = originalPrefix
	}
	var existing *models.Site
	for i := range sites {
		if sites[i].Prefix == lookup {
			existing = &sites[i]
			break
		}
	}
	if originalPrefix != "" && existing == nil {
		return nil, false, ErrSiteNotFound
	}

	stamp := s.now().Format(timestampLayout)
	site.LastUpdated = stamp
	created := existing == nil
	if created {
		site.CreatedDate = stamp
		site.Extras = mergeExtras(nil, site.Extras)
	} else {
		site.CreatedDate = existing.CreatedDate
		site.Extras = mergeExtras(existing.Extras, site.Extras)
	}

	out := make([]models.Site, 0, len(sites)+1)
	replaced := false
	for _, cur := range sites {
		switch {
		case originalPrefix != "" && originalPrefix != site.Prefix && cur.Prefix == originalPrefix:
			// renamed away
			continue
		case cur.Prefix == site.Prefix:
			if !replaced {
				out = append(out, site)
				replaced = true
			}
		default:
			out = append(out, cur)
		}
	}
	if !replaced {
		out = append(out, site)
	}

	if err := s.file.SaveLocked(out); err != nil {
		return nil, false, err
	}
	return &site, created, nil
}

// mergeExtras 按 merge-patch 规则合并未建模字段：未提交的键保留，
// 提交的键覆盖，值为 null 的键删除
func mergeExtras(current, patch map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(current)+len(patch))
	for k, v := range current {
		out[k] = v
	}
	for k, v := range patch {
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// 6 DeleteSite removes the site and every schedule recorded for it. It
// returns the number of schedules removed.
func (s *RegistryService) DeleteSite(prefix string) (int, error) {
	s.file.Lock()
	sites, err := s.loadLocked()
	if err != nil {
		s.file.Unlock()
		return 0, err
	}

	kept := make([]models.Site, 0, len(sites))
	for _, site := range sites {
		if site.Prefix != prefix {
			kept = append(kept, site)
		}
	}
	if len(kept) == len(sites) {
		s.file.Unlock()
		return 0, ErrSiteNotFound
	}
	err = s.file.SaveLocked(kept)
	s.file.Unlock()
	if err != nil {
		return 0, err
	}

	if s.schedules == nil {
		return 0, nil
	}
	return s.schedules.DeleteSchedulesForSite(prefix)
}

// BuildMapsLink derives a Google Maps search link from the site address.
func BuildMapsLink(site models.Site) string {
	query := strings.Join([]string{site.Address, site.City, site.State, site.Zip, site.Country}, ", ")
	return MapsSearchURL + strings.ReplaceAll(query, " ", "+")
}

// prepareSite trims, validates and fills defaults of a site about to be saved.
func prepareSite(site *models.Site) error {
	for _, f := range []*string{
		&site.Prefix, &site.Site, &site.Name, &site.Status, &site.Address, &site.City,
		&site.State, &site.Zip, &site.Country, &site.ContactName, &site.ContactPhone,
		&site.PatrolFrequency,
	} {
		*f = strings.TrimSpace(*f)
	}

	required := []struct {
		field string
		value string
	}{
		{"prefix", site.Prefix},
		{"name", site.Name},
		{"address", site.Address},
		{"city", site.City},
		{"state", site.State},
		{"zip", site.Zip},
	}
	for _, r := range required {
		if r.value == "" {
			return invalid(r.field, "is required")
		}
	}

	if site.Site == "" {
		site.Site = models.SiteTypeShoppingCenter
	}
	if !contains(models.SiteTypes, site.Site) {
		return invalid("site", "must be one of "+strings.Join(models.SiteTypes, ", "))
	}
	if site.Status == "" {
		site.Status = models.SiteStatusActive
	}
	if !contains(models.SiteStatuses, site.Status) {
		return invalid("status", "must be one of "+strings.Join(models.SiteStatuses, ", "))
	}
	if site.Country == "" {
		site.Country = "USA"
	}
	if site.RequiredOfficers == 0 {
		site.RequiredOfficers = 1
	}
	if site.RequiredOfficers < 1 || site.RequiredOfficers > 10 {
		return invalid("required_officers", "must be between 1 and 10")
	}
	if site.PatrolFrequency == "" {
		site.PatrolFrequency = models.DefaultPatrolFrequency
	}
	if !contains(models.PatrolFrequencies, site.PatrolFrequency) {
		return invalid("patrol_frequency", "must be one of "+strings.Join(models.PatrolFrequencies, ", "))
	}
	if site.HasCCTV == nil {
		site.HasCCTV = models.BoolPtr(false)
	}
	if site.RequiresVehicle == nil {
		site.RequiresVehicle = models.BoolPtr(false)
	}

	site.MapsLink = BuildMapsLink(*site)
	return nil
}

// sameJSON reports whether raw decodes to the same JSON value as encoded.
// Key order and whitespace are ignored.
func sameJSON(raw, encoded []byte) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return false
	}
	a, errA := decodeGeneric(jsonc.ToJSON(raw))
	b, errB := decodeGeneric(encoded)
	if errA != nil || errB != nil {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func decodeGeneric(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
