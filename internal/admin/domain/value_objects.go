package domain

import (
	"errors"
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"strings"

	"github.com/sngm3741/menu-studio/api/internal/form"
)

var (
	// ErrInvalid marks input rejected by a value object.
	ErrInvalid = errors.New("invalid input")
	// ErrNotFound is returned when a record does not exist for the tenant.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when a caller touches another tenant's data.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is returned when a unique field is already taken.
	ErrConflict = errors.New("conflict")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Slug is a canonical URL segment.
type Slug string

// NewSlug canonicalizes value, deriving it from name when value is empty.
func NewSlug(value, name string, rule form.SlugRule) (Slug, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		raw = name
	}
	slug := form.Slugify(raw, rule)
	if slug == "" {
		return "", invalid("slug cannot be derived from %q", raw)
	}
	return Slug(slug), nil
}

func (s Slug) String() string {
	return string(s)
}

// Name is a required display name.
type Name string

func NewName(value, field string) (Name, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", invalid("%s is required", field)
	}
	if len([]rune(trimmed)) > 120 {
		return "", invalid("%s must be at most 120 characters", field)
	}
	return Name(trimmed), nil
}

func (n Name) String() string {
	return string(n)
}

// TagList is an ordered, de-duplicated list of free-form labels.
type TagList []string

func NewTagList(values []string) TagList {
	return TagList(form.NewTagSet(values...).Values())
}

func (l TagList) Strings() []string {
	return append([]string{}, l...)
}

type Email string

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if len(trimmed) > 254 {
		return "", invalid("email too long")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", invalid("invalid email: %v", err)
	}
	return Email(trimmed), nil
}

func (e Email) String() string {
	return string(e)
}

type URL string

func NewURL(value string) (URL, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return "", invalid("invalid URL: %v", err)
	}
	return URL(trimmed), nil
}

func (u URL) String() string {
	return string(u)
}

type PhotoURLList []URL

func NewPhotoURLList(values []string, limit int) (PhotoURLList, error) {
	if limit > 0 && len(values) > limit {
		return nil, invalid("images must be <= %d", limit)
	}
	result := make([]URL, 0, len(values))
	for _, raw := range values {
		if strings.TrimSpace(raw) == "" {
			return nil, invalid("image URL is required")
		}
		u, err := NewURL(raw)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return PhotoURLList(result), nil
}

func (l PhotoURLList) Strings() []string {
	result := make([]string, 0, len(l))
	for _, v := range l {
		result = append(result, string(v))
	}
	return result
}

// Price is a positive amount in the storefront currency.
type Price float64

func NewPrice(value *float64) (Price, error) {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return 0, invalid("price must be a number")
	}
	if *value <= 0 {
		return 0, invalid("price must be greater than zero")
	}
	return Price(*value), nil
}

func (p Price) Float64() float64 {
	return float64(p)
}

// NonNegative guards optional counters such as calories.
func NonNegative(value *int, field string) (*int, error) {
	if value == nil {
		return nil, nil
	}
	if *value < 0 {
		return nil, invalid("%s cannot be negative", field)
	}
	v := *value
	return &v, nil
}
