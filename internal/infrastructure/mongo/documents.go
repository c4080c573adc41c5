package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sngm3741/menu-studio/api/internal/form"
)

// ProviderDocument is the stored business profile. _id is the tenant id.
type ProviderDocument struct {
	ID           string                `bson:"_id"`
	BusinessName string                `bson:"businessName"`
	Slug         string                `bson:"slug"`
	Description  string                `bson:"description,omitempty"`
	Phone        string                `bson:"phone,omitempty"`
	Email        string                `bson:"email,omitempty"`
	Website      string                `bson:"website,omitempty"`
	Address      string                `bson:"address,omitempty"`
	Logo         string                `bson:"logo,omitempty"`
	CoverImage   string                `bson:"coverImage,omitempty"`
	Cuisines     []string              `bson:"cuisines,omitempty"`
	Features     []string              `bson:"features,omitempty"`
	Branches     []BranchDocument      `bson:"branches,omitempty"`
	WorkingHours []WorkingHourDocument `bson:"workingHours"`
	Settings     SettingsDocument      `bson:"settings"`
	CreatedAt    time.Time             `bson:"createdAt"`
	UpdatedAt    time.Time             `bson:"updatedAt"`
}

type BranchDocument struct {
	Name    string  `bson:"name"`
	Address string  `bson:"address"`
	Lat     float64 `bson:"lat"`
	Lng     float64 `bson:"lng"`
}

type WorkingHourDocument struct {
	Day       string `bson:"day"`
	IsOpen    bool   `bson:"isOpen"`
	OpenTime  string `bson:"openTime,omitempty"`
	CloseTime string `bson:"closeTime,omitempty"`
}

// SettingsDocument is embedded in the provider document.
type SettingsDocument struct {
	ThemeColor string `bson:"themeColor"`
	Currency   string `bson:"currency"`
	Language   string `bson:"language"`
	MenuLayout string `bson:"menuLayout"`
	ShowPrices bool   `bson:"showPrices"`
	ShowImages bool   `bson:"showImages"`
}

// CategoryDocument is a stored category. Subcategories are embedded.
type CategoryDocument struct {
	ID            primitive.ObjectID    `bson:"_id"`
	ProviderID    string                `bson:"providerId"`
	Name          string                `bson:"name"`
	NameEn        string                `bson:"nameEn,omitempty"`
	Slug          string                `bson:"slug"`
	Description   string                `bson:"description,omitempty"`
	Order         int                   `bson:"order"`
	IsActive      bool                  `bson:"isActive"`
	IsVisible     bool                  `bson:"isVisible"`
	Subcategories []SubcategoryDocument `bson:"subcategories"`
	CreatedAt     time.Time             `bson:"createdAt"`
	UpdatedAt     time.Time             `bson:"updatedAt"`
}

type SubcategoryDocument struct {
	ID     string `bson:"id"`
	NameFa string `bson:"nameFa"`
	NameEn string `bson:"nameEn,omitempty"`
}

// MenuItemDocument is a stored menu item. categoryId holds the category
// ObjectID in hex.
type MenuItemDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	ProviderID      string             `bson:"providerId"`
	CategoryID      string             `bson:"categoryId"`
	SubcategoryID   string             `bson:"subcategoryId,omitempty"`
	Name            string             `bson:"name"`
	Slug            string             `bson:"slug"`
	Description     string             `bson:"description,omitempty"`
	Price           float64            `bson:"price"`
	Images          []string           `bson:"images,omitempty"`
	Tags            []string           `bson:"tags,omitempty"`
	Allergens       []string           `bson:"allergens,omitempty"`
	Ingredients     []string           `bson:"ingredients,omitempty"`
	PreparationTime *int               `bson:"preparationTime,omitempty"`
	Calories        *int               `bson:"calories,omitempty"`
	Order           int                `bson:"order"`
	IsAvailable     bool               `bson:"isAvailable"`
	IsFeatured      bool               `bson:"isFeatured"`
	IsVegetarian    bool               `bson:"isVegetarian"`
	IsSpicy         bool               `bson:"isSpicy"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

func workingHourDocuments(records []form.WorkingHourRecord) []WorkingHourDocument {
	docs := make([]WorkingHourDocument, 0, len(records))
	for _, r := range records {
		docs = append(docs, WorkingHourDocument{Day: string(r.Day), IsOpen: r.IsOpen, OpenTime: r.OpenTime, CloseTime: r.CloseTime})
	}
	return docs
}

func workingHourRecords(docs []WorkingHourDocument) []form.WorkingHourRecord {
	records := make([]form.WorkingHourRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, form.WorkingHourRecord{Day: form.Weekday(d.Day), IsOpen: d.IsOpen, OpenTime: d.OpenTime, CloseTime: d.CloseTime})
	}
	return records
}

func settingsDocument(s form.ProviderSettings) SettingsDocument {
	return SettingsDocument(s)
}

func (d SettingsDocument) settings() form.ProviderSettings {
	if d.Currency == "" && d.Language == "" {
		return form.DefaultProviderSettings()
	}
	return form.ProviderSettings(d)
}
