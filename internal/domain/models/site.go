package models

import "encoding/json"

// 站点类型
const (
	SiteTypeShoppingCenter = "ShoppingCenter"
	SiteTypeWarehouse      = "Warehouse"
	SiteTypeParking        = "Parking"
	SiteTypeOffice         = "Office"
	SiteTypeResidential    = "Residential"
	SiteTypeOther          = "Other"
)

// 站点状态
const (
	SiteStatusActive           = "Active"
	SiteStatusInactive         = "Inactive"
	SiteStatusUnderMaintenance = "Under Maintenance"
	SiteStatusPlanned          = "Planned"
)

// SiteTypes lists the accepted values of Site.Site in display order.
var SiteTypes = []string{
	SiteTypeShoppingCenter, SiteTypeWarehouse, SiteTypeParking,
	SiteTypeOffice, SiteTypeResidential, SiteTypeOther,
}

// SiteStatuses lists the accepted values of Site.Status.
var SiteStatuses = []string{
	SiteStatusActive, SiteStatusInactive, SiteStatusUnderMaintenance, SiteStatusPlanned,
}

// PatrolFrequencies lists the accepted values of Site.PatrolFrequency.
var PatrolFrequencies = []string{"30 minutes", "1 hour", "2 hours", "4 hours", "As needed"}

// DefaultPatrolFrequency is used when a saved site does not set one.
const DefaultPatrolFrequency = "1 hour"

// Site 表示一个客户站点 (商场、仓库、停车场等)，prefix 在注册表中唯一
type Site struct {
	Prefix  string `json:"prefix"`
	Site    string `json:"site"` // 站点类型，见 SiteTypes
	Name    string `json:"name"`
	Status  string `json:"status"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`

	MapsLink string `json:"maps_link,omitempty"`

	ContactName  string `json:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`

	Notes               string `json:"notes,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`

	// 安保要求
	RequiredOfficers int    `json:"required_officers,omitempty"`
	PatrolFrequency  string `json:"patrol_frequency,omitempty"`
	HasCCTV          *bool  `json:"has_cctv,omitempty"`
	RequiresVehicle  *bool  `json:"requires_vehicle,omitempty"`

	CreatedDate string `json:"created_date,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`

	// Extras holds keys found on disk that the service does not model.
	// They are written back after the known fields, sorted by key.
	Extras map[string]json.RawMessage `json:"-"`
}

// SiteKeys are the JSON keys modelled by Site.
var SiteKeys = map[string]bool{
	"prefix": true, "site": true, "name": true, "status": true,
	"address": true, "city": true, "state": true, "zip": true, "country": true,
	"maps_link": true, "contact_name": true, "contact_phone": true,
	"notes": true, "special_instructions": true,
	"required_officers": true, "patrol_frequency": true, "has_cctv": true, "requires_vehicle": true,
	"created_date": true, "last_updated": true,
}

type siteFields Site

// MarshalJSON writes the known fields followed by Extras.
func (s Site) MarshalJSON() ([]byte, error) {
	return marshalWithExtras(siteFields(s), s.Extras, SiteKeys)
}

// UnmarshalJSON reads the known fields and keeps every other key in Extras.
func (s *Site) UnmarshalJSON(data []byte) error {
	var fields siteFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extras, err := splitExtras(data, SiteKeys)
	if err != nil {
		return err
	}
	*s = Site(fields)
	s.Extras = extras
	return nil
}

// Summary is the short description used by the sidebar site selector.
func (s Site) Summary() map[string]string {
	return map[string]string{
		"prefix":    s.Prefix,
		"name":      s.Name,
		"site":      s.Site,
		"status":    s.Status,
		"address":   s.Address,
		"city":      s.City,
		"state":     s.State,
		"zip":       s.Zip,
		"maps_link": s.MapsLink,
	}
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }
