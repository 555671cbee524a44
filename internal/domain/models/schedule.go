package models

// Record is a free-form JSON object from the schedules or time-log files.
// Only "site_prefix" is interpreted.
type Record map[string]interface{}

// SitePrefix returns the record's site_prefix, or "" when absent.
func (r Record) SitePrefix() string {
	if v, ok := r["site_prefix"].(string); ok {
		return v
	}
	return ""
}
