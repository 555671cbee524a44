package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"

	"amdaops-http-service/internal/domain/models"
)

// DefaultSite is the record a registry falls back to when nothing usable
// can be recovered from the file.
func DefaultSite() models.Site {
	return models.Site{
		Prefix:  "DEFAULT",
		Site:    models.SiteTypeShoppingCenter,
		Name:    "Default Site",
		Status:  models.SiteStatusActive,
		Address: "123 Main St",
		City:    "Anytown",
		State:   "CA",
		Zip:     "12345",
		Country: "USA",
	}
}

// InitialRegistry is written when the registry file does not exist yet.
func InitialRegistry() []models.Site {
	return []models.Site{{
		Prefix:   "DEFAULT",
		Site:     models.SiteTypeShoppingCenter,
		Name:     "Default Shopping Center",
		Status:   models.SiteStatusActive,
		Address:  "123 Main Street",
		City:     "Anytown",
		State:    "CA",
		Zip:      "12345",
		Country:  "USA",
		MapsLink: "https://maps.google.com",
	}}
}

// NormalizeResult reports what NormalizeRegistry had to do.
type NormalizeResult struct {
	Sites []models.Site
	// Unparseable is set when raw was not valid JSON.
	Unparseable bool
	// Defaulted is set when nothing usable was found and DefaultSite was used.
	Defaulted bool
	// Dropped counts list items that had no usable prefix.
	Dropped int
}

// NormalizeRegistry turns any JSON document into a non-empty list of sites.
//
// A bare string becomes a minimal record, a single object is wrapped in a
// list, and missing fields get positional defaults. Entries without a usable
// prefix are dropped. Empty, null or unparseable input yields DefaultSite.
func NormalizeRegistry(raw []byte) NormalizeResult {
	var res NormalizeResult

	var data interface{}
	if len(bytes.TrimSpace(raw)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(raw)))
		dec.UseNumber()
		if err := dec.Decode(&data); err != nil {
			res.Unparseable = true
			data = nil
		}
	}

	var items []interface{}
	switch v := data.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		if len(v) > 0 {
			items = []interface{}{v}
		}
	}

	seen := make(map[string]bool)
	for i, item := range items {
		var site models.Site
		var ok bool
		switch v := item.(type) {
		case map[string]interface{}:
			site, ok = siteFromObject(i, v)
		case string:
			site, ok = siteFromPrefix(i, v)
		}
		if !ok || seen[site.Prefix] {
			res.Dropped++
			continue
		}
		seen[site.Prefix] = true
		res.Sites = append(res.Sites, site)
	}

	if len(res.Sites) == 0 {
		res.Sites = []models.Site{DefaultSite()}
		res.Defaulted = true
	}
	return res
}

// positionalDefaults fills the fields a record must carry, using the item's
// position in the raw list.
func positionalDefaults(i int, s *models.Site) {
	if s.Site == "" {
		s.Site = models.SiteTypeShoppingCenter
	}
	if s.Name == "" {
		s.Name = "Site " + s.Prefix
	}
	if s.Status == "" {
		s.Status = models.SiteStatusActive
	}
	if s.Address == "" {
		s.Address = fmt.Sprintf("%d Example Street", i+1)
	}
	if s.City == "" {
		s.City = "City"
	}
	if s.State == "" {
		s.State = "ST"
	}
	if s.Zip == "" {
		s.Zip = "12345"
	}
	if s.Country == "" {
		s.Country = "USA"
	}
}

func siteFromPrefix(i int, v string) (models.Site, bool) {
	prefix := strings.TrimSpace(v)
	if prefix == "" {
		return models.Site{}, false
	}
	s := models.Site{Prefix: prefix}
	positionalDefaults(i, &s)
	return s, true
}

func siteFromObject(i int, obj map[string]interface{}) (models.Site, bool) {
	prefix := strings.TrimSpace(coerceString(obj["prefix"]))
	if prefix == "" {
		return models.Site{}, false
	}

	// present-but-null keys take the default like missing ones
	s := models.Site{
		Prefix:              prefix,
		Site:                coerceString(obj["site"]),
		Name:                coerceString(obj["name"]),
		Status:              coerceString(obj["status"]),
		Address:             coerceString(obj["address"]),
		City:                coerceString(obj["city"]),
		State:               coerceString(obj["state"]),
		Zip:                 coerceString(obj["zip"]),
		Country:             coerceString(obj["country"]),
		MapsLink:            coerceString(obj["maps_link"]),
		ContactName:         coerceString(obj["contact_name"]),
		ContactPhone:        coerceString(obj["contact_phone"]),
		Notes:               coerceString(obj["notes"]),
		SpecialInstructions: coerceString(obj["special_instructions"]),
		RequiredOfficers:    coerceInt(obj["required_officers"]),
		PatrolFrequency:     coerceString(obj["patrol_frequency"]),
		HasCCTV:             coerceBool(obj["has_cctv"]),
		RequiresVehicle:     coerceBool(obj["requires_vehicle"]),
		CreatedDate:         coerceString(obj["created_date"]),
		LastUpdated:         coerceString(obj["last_updated"]),
	}
	positionalDefaults(i, &s)

	for k, v := range obj {
		if models.SiteKeys[k] {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			continue
		}
		if s.Extras == nil {
			s.Extras = make(map[string]json.RawMessage)
		}
		s.Extras[k] = raw
	}
	return s, true
}

func coerceString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

func coerceInt(v interface{}) int {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n)
		}
		if f, err := t.Float64(); err == nil {
			return int(f)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	case bool:
		if t {
			return 1
		}
	}
	return 0
}

func coerceBool(v interface{}) *bool {
	switch t := v.(type) {
	case bool:
		return models.BoolPtr(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil
		}
		return models.BoolPtr(f != 0)
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "y", "1", "on":
			return models.BoolPtr(true)
		case "false", "no", "n", "0", "off", "":
			return models.BoolPtr(false)
		}
	}
	return nil
}
