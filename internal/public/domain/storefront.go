package domain

import (
	"errors"
	"time"

	"github.com/sngm3741/menu-studio/api/internal/form"
)

// ErrNotFound is returned when no published menu matches a slug.
var ErrNotFound = errors.New("menu not found")

// Storefront represents the publicly visible profile of a business.
type Storefront struct {
	ID           string
	BusinessName string
	Slug         string
	Description  string
	Phone        string
	Email        string
	Website      string
	Address      string
	Logo         string
	CoverImage   string
	Cuisines     []string
	Features     []string
	Branches     []Branch
	WorkingHours []form.WorkingHourRecord
	Settings     form.ProviderSettings
	UpdatedAt    time.Time
}

// Branch is a published location.
type Branch struct {
	Name    string
	Address string
	Lat     float64
	Lng     float64
}
