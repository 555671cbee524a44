package services

import (
	"errors"
	"io/fs"

	"amdaops-http-service/internal/domain/models"
	"amdaops-http-service/internal/infrastructure/config"
	"amdaops-http-service/internal/infrastructure/storage"
)

// InterfaceScheduleService defines the schedule and time-log service interface
type InterfaceScheduleService interface {
	ListSchedules(sitePrefix string) ([]models.Record, error)
	AddSchedule(record models.Record) (models.Record, error)
	DeleteSchedulesForSite(sitePrefix string) (int, error)
	CountSchedules() (int, error)
	ListTimeLogs(sitePrefix string) ([]models.Record, error)
	AddTimeLog(record models.Record) (models.Record, error)
}

// ScheduleService 管理 work_schedules.json 与 time_logs.json
type ScheduleService struct {
	Config    *config.Config
	schedules *storage.JSONFile
	timeLogs  *storage.JSONFile
}

// NewScheduleService 创建排班/工时服务
func NewScheduleService(cfg *config.Config) InterfaceScheduleService {
	return &ScheduleService{
		Config:    cfg,
		schedules: storage.NewJSONFile(cfg.SchedulesPath()),
		timeLogs:  storage.NewJSONFile(cfg.TimeLogsPath()),
	}
}

// 1 ListSchedules returns schedules, optionally only those for one site
func (s *ScheduleService) ListSchedules(sitePrefix string) ([]models.Record, error) {
	return listRecords(s.schedules, sitePrefix)
}

// 2 AddSchedule appends a schedule record
func (s *ScheduleService) AddSchedule(record models.Record) (models.Record, error) {
	return appendRecord(s.schedules, record)
}

// 3 DeleteSchedulesForSite removes every schedule whose site_prefix matches
func (s *ScheduleService) DeleteSchedulesForSite(sitePrefix string) (int, error) {
	removed := 0
	err := storage.UpdateList(s.schedules, func(items []models.Record) ([]models.Record, error) {
		kept := make([]models.Record, 0, len(items))
		for _, r := range items {
			if r.SitePrefix() == sitePrefix {
				removed++
				continue
			}
			kept = append(kept, r)
		}
		return kept, nil
	})
	return removed, err
}

// 4 CountSchedules returns the total number of schedules
func (s *ScheduleService) CountSchedules() (int, error) {
	items, err := listRecords(s.schedules, "")
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// 5 ListTimeLogs returns time logs, optionally only those for one site
func (s *ScheduleService) ListTimeLogs(sitePrefix string) ([]models.Record, error) {
	return listRecords(s.timeLogs, sitePrefix)
}

// 6 AddTimeLog appends a time-log record
func (s *ScheduleService) AddTimeLog(record models.Record) (models.Record, error) {
	return appendRecord(s.timeLogs, record)
}

func listRecords(f *storage.JSONFile, sitePrefix string) ([]models.Record, error) {
	items, err := storage.LoadList[models.Record](f)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Record{}, nil
		}
		return nil, err
	}
	if sitePrefix == "" {
		return items, nil
	}
	filtered := make([]models.Record, 0, len(items))
	for _, r := range items {
		if r.SitePrefix() == sitePrefix {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func appendRecord(f *storage.JSONFile, record models.Record) (models.Record, error) {
	if len(record) == 0 {
		return nil, invalid("", "record must be a non-empty object")
	}
	err := storage.UpdateList(f, func(items []models.Record) ([]models.Record, error) {
		return append(items, record), nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
