package domain

import (
	"strings"
	"time"

	"github.com/sngm3741/menu-studio/api/internal/form"
)

// Provider is the business profile owned by one tenant. Its ID is the
// tenant id carried in the caller's token.
type Provider struct {
	ID           string
	BusinessName Name
	Slug         Slug
	Description  string
	Phone        string
	Email        Email
	Website      URL
	Address      string
	Logo         URL
	CoverImage   URL
	Cuisines     TagList
	Features     TagList
	Branches     []Branch
	WorkingHours form.WorkingHours
	Settings     Settings
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Branch is an extra location of a business.
type Branch struct {
	Name        string
	Address     string
	Coordinates form.Coordinates
}

func NewBranches(values []form.BranchPayload) ([]Branch, error) {
	result := make([]Branch, 0, len(values))
	for i, v := range values {
		name := strings.TrimSpace(v.Name)
		address := strings.TrimSpace(v.Address)
		if name == "" || address == "" {
			return nil, invalid("branch %d needs a name and an address", i)
		}
		if v.Coordinates.Lat < -90 || v.Coordinates.Lat > 90 || v.Coordinates.Lng < -180 || v.Coordinates.Lng > 180 {
			return nil, invalid("branch %d coordinates out of range", i)
		}
		result = append(result, Branch{Name: name, Address: address, Coordinates: v.Coordinates})
	}
	return result, nil
}

// NewWorkingHours normalizes stored or submitted records to the full week
// and rejects malformed times on open days.
func NewWorkingHours(records []form.WorkingHourRecord) (form.WorkingHours, error) {
	for _, r := range records {
		if _, ok := form.ParseWeekday(string(r.Day)); !ok {
			return form.WorkingHours{}, invalid("unknown weekday %q", r.Day)
		}
	}
	wh := form.SeedWorkingHours(records)
	if errs := wh.Validate(); len(errs) > 0 {
		return form.WorkingHours{}, invalid("%s", errs.Error())
	}
	return wh, nil
}

// Settings is the storefront appearance block.
type Settings form.ProviderSettings

func NewSettings(s form.ProviderSettings) (Settings, error) {
	if errs := form.ValidateSettings(s); len(errs) > 0 {
		return Settings{}, invalid("%s", errs.Error())
	}
	return Settings(s), nil
}
