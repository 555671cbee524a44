package services

import (
	"crypto/sha256"
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"amdaops-http-service/internal/domain/models"
	"amdaops-http-service/internal/infrastructure/config"
	"amdaops-http-service/internal/infrastructure/storage"
	"amdaops-http-service/pkg/logger"
)

// AvatarPalette holds the pastel backgrounds used for officer avatars.
var AvatarPalette = []string{
	"#E3F2FD", "#E8F5E9", "#FFF3E0", "#F3E5F5",
	"#E0F7FA", "#FCE4EC", "#FFFDE7", "#EDE7F6",
}

// OfficerInput holds the editable officer fields.
type OfficerInput struct {
	Name   string
	Email  string
	Phone  string
	Status string
}

// OfficerView is an officer record decorated for display.
type OfficerView struct {
	models.Officer
	Initials    string `json:"initials"`
	AvatarColor string `json:"avatar_color"`
	HasPhoto    bool   `json:"has_photo"`
}

// InterfaceOfficerService defines the officer roster service interface
type InterfaceOfficerService interface {
	ListOfficers() ([]models.Officer, error)
	GetOfficer(id string) (*models.Officer, error)
	CreateOfficer(input OfficerInput, photo *PhotoUpload) (*models.Officer, error)
	UpdateOfficer(id string, input OfficerInput, photo *PhotoUpload, removePhoto bool) (*models.Officer, error)
	DeleteOfficer(id string) error
	CountActive() (int, error)
	View(o models.Officer) OfficerView
}

// OfficerService 安保人员名册服务
type OfficerService struct {
	Config *config.Config
	file   *storage.JSONFile
	photos InterfacePhotoService
	now    func() time.Time
}

// NewOfficerService 创建安保人员服务
func NewOfficerService(cfg *config.Config, photos InterfacePhotoService) InterfaceOfficerService {
	return &OfficerService{
		Config: cfg,
		file:   storage.NewJSONFile(cfg.OfficersPath()),
		photos: photos,
		now:    time.Now,
	}
}

// 1 ListOfficers returns every officer. A missing file is an empty roster.
func (s *OfficerService) ListOfficers() ([]models.Officer, error) {
	officers, err := storage.LoadList[models.Officer](s.file)
	if errors.Is(err, storage.ErrNotExist) {
		return []models.Officer{}, nil
	}
	return officers, err
}

// 2 GetOfficer returns the officer with id
func (s *OfficerService) GetOfficer(id string) (*models.Officer, error) {
	officers, err := s.ListOfficers()
	if err != nil {
		return nil, err
	}
	for i := range officers {
		if officers[i].ID == id {
			return &officers[i], nil
		}
	}
	return nil, ErrOfficerNotFound
}

// 3 CreateOfficer validates input, stores the optional photo and appends the record.
func (s *OfficerService) CreateOfficer(input OfficerInput, photo *PhotoUpload) (*models.Officer, error) {
	input, err := validateOfficer(input)
	if err != nil {
		return nil, err
	}

	officer := models.Officer{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Status:    models.OfficerStatusActive,
		CreatedAt: s.now().Format(timestampLayout),
	}

	if photo != nil {
		path, err := s.photos.Save(officer.ID, photo)
		if err != nil {
			return nil, err
		}
		officer.PhotoPath = path
	}

	err = storage.UpdateList(s.file, func(items []models.Officer) ([]models.Officer, error) {
		return append(items, officer), nil
	})
	if err != nil {
		if officer.PhotoPath != "" {
			_ = s.photos.Delete(officer.PhotoPath)
		}
		return nil, err
	}
	return &officer, nil
}

// 4 UpdateOfficer applies input to an existing officer. removePhoto drops
// the current photo; a new photo replaces it.
func (s *OfficerService) UpdateOfficer(id string, input OfficerInput, photo *PhotoUpload, removePhoto bool) (*models.Officer, error) {
	input, err := validateOfficer(input)
	if err != nil {
		return nil, err
	}
	if input.Status != "" && input.Status != models.OfficerStatusActive && input.Status != models.OfficerStatusInactive {
		return nil, invalid("status", "must be Active or Inactive")
	}

	// 新照片先解码落盘，失败时旧照片保持不变
	var newPath, prevPath string
	if photo != nil {
		prev, err := s.GetOfficer(id)
		if err != nil {
			return nil, err
		}
		prevPath = prev.PhotoPath
		if newPath, err = s.photos.Save(id, photo); err != nil {
			return nil, err
		}
	}

	var updated models.Officer
	var stale []string
	err = storage.UpdateList(s.file, func(items []models.Officer) ([]models.Officer, error) {
		idx := -1
		for i := range items {
			if items[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, ErrOfficerNotFound
		}

		o := items[idx]
		o.Name = input.Name
		o.Email = input.Email
		o.Phone = input.Phone
		if input.Status != "" {
			o.Status = input.Status
		}

		if removePhoto && o.PhotoPath != "" {
			stale = append(stale, o.PhotoPath)
			o.PhotoPath = ""
		}
		if newPath != "" {
			if o.PhotoPath != "" && o.PhotoPath != newPath {
				stale = append(stale, o.PhotoPath)
			}
			o.PhotoPath = newPath
		}

		o.UpdatedAt = s.now().Format(timestampLayout)
		items[idx] = o
		updated = o
		return items, nil
	})
	if err != nil {
		if newPath != "" && newPath != prevPath {
			_ = s.photos.Delete(newPath)
		}
		return nil, err
	}

	// 记录保存成功后再删除旧文件
	for _, path := range stale {
		if path == updated.PhotoPath {
			continue
		}
		s.removePhoto(path)
	}
	return &updated, nil
}

// 5 DeleteOfficer removes the record, then the officer's photo.
func (s *OfficerService) DeleteOfficer(id string) error {
	var photoPath string
	err := storage.UpdateList(s.file, func(items []models.Officer) ([]models.Officer, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			photoPath = items[i].PhotoPath
			return append(items[:i], items[i+1:]...), nil
		}
		return nil, ErrOfficerNotFound
	})
	if err != nil {
		return err
	}
	s.removePhoto(photoPath)
	return nil
}

func (s *OfficerService) removePhoto(path string) {
	if path == "" {
		return
	}
	if err := s.photos.Delete(path); err != nil {
		logger.L().Warn("old photo not removed", zap.String("path", path), zap.Error(err))
	}
}

// 6 CountActive counts officers that are active
func (s *OfficerService) CountActive() (int, error) {
	officers, err := s.ListOfficers()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, o := range officers {
		if o.IsActive() {
			n++
		}
	}
	return n, nil
}

// 7 View decorates an officer with avatar data
func (s *OfficerService) View(o models.Officer) OfficerView {
	hasPhoto := false
	if o.PhotoPath != "" {
		_, err := s.photos.Resolve(o.PhotoPath)
		hasPhoto = err == nil
	}
	return OfficerView{
		Officer:     o,
		Initials:    Initials(o.Name),
		AvatarColor: AvatarColor(o.Name),
		HasPhoto:    hasPhoto,
	}
}

func validateOfficer(in OfficerInput) (OfficerInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Status = strings.TrimSpace(in.Status)
	if in.Name == "" {
		return in, invalid("name", "is required")
	}
	if in.Email == "" && in.Phone == "" {
		return in, invalid("contact", "at least one of email or phone is required")
	}
	return in, nil
}

// Initials returns up to two upper-cased initials of name, or "?" when blank.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "?"
	}
	var b strings.Builder
	for i, w := range words {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// AvatarColor picks a palette entry from the first byte of the name's SHA-256.
func AvatarColor(name string) string {
	sum := sha256.Sum256([]byte(name))
	return AvatarPalette[int(sum[0])%len(AvatarPalette)]
}
