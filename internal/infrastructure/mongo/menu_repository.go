package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/menu-studio/api/internal/public/domain"
)

// MenuRepository implements the storefront read port over the admin
// collections.
type MenuRepository struct {
	providers  *mongo.Collection
	categories *mongo.Collection
	items      *mongo.Collection
}

func NewMenuRepository(db *mongo.Database, providerCollection, categoryCollection, itemCollection string) *MenuRepository {
	return &MenuRepository{
		providers:  db.Collection(providerCollection),
		categories: db.Collection(categoryCollection),
		items:      db.Collection(itemCollection),
	}
}

func (r *MenuRepository) FindStorefront(ctx context.Context, slug string) (*domain.Storefront, error) {
	var doc ProviderDocument
	if err := r.providers.FindOne(ctx, bson.M{"slug": slug}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	storefront := mapStorefrontDocument(doc)
	return &storefront, nil
}

// FindCategories returns only what the storefront may show.
func (r *MenuRepository) FindCategories(ctx context.Context, providerID string) ([]domain.Category, error) {
	filter := bson.M{"providerId": providerID, "isActive": true, "isVisible": true}
	cursor, err := r.categories.Find(ctx, filter, options.Find().SetSort(byOrderThenName))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := make([]domain.Category, 0)
	for cursor.Next(ctx) {
		var doc CategoryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		categories = append(categories, mapPublicCategory(doc))
	}
	return categories, cursor.Err()
}

func (r *MenuRepository) FindMenuItems(ctx context.Context, providerID string) ([]domain.MenuItem, error) {
	filter := bson.M{"providerId": providerID, "isAvailable": true}
	cursor, err := r.items.Find(ctx, filter, options.Find().SetSort(byOrderThenName))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]domain.MenuItem, 0)
	for cursor.Next(ctx) {
		var doc MenuItemDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, mapPublicMenuItem(doc))
	}
	return items, cursor.Err()
}

func mapStorefrontDocument(doc ProviderDocument) domain.Storefront {
	branches := make([]domain.Branch, 0, len(doc.Branches))
	for _, b := range doc.Branches {
		branches = append(branches, domain.Branch{Name: b.Name, Address: b.Address, Lat: b.Lat, Lng: b.Lng})
	}
	return domain.Storefront{
		ID:           doc.ID,
		BusinessName: doc.BusinessName,
		Slug:         doc.Slug,
		Description:  doc.Description,
		Phone:        doc.Phone,
		Email:        doc.Email,
		Website:      doc.Website,
		Address:      doc.Address,
		Logo:         doc.Logo,
		CoverImage:   doc.CoverImage,
		Cuisines:     append([]string{}, doc.Cuisines...),
		Features:     append([]string{}, doc.Features...),
		Branches:     branches,
		WorkingHours: workingHourRecords(doc.WorkingHours),
		Settings:     doc.Settings.settings(),
		UpdatedAt:    doc.UpdatedAt,
	}
}

func mapPublicCategory(doc CategoryDocument) domain.Category {
	subs := make([]domain.Subcategory, 0, len(doc.Subcategories))
	for _, s := range doc.Subcategories {
		subs = append(subs, domain.Subcategory{ID: s.ID, NameFa: s.NameFa, NameEn: s.NameEn})
	}
	return domain.Category{
		ID:            doc.ID.Hex(),
		Name:          doc.Name,
		NameEn:        doc.NameEn,
		Slug:          doc.Slug,
		Description:   doc.Description,
		Order:         doc.Order,
		IsActive:      doc.IsActive,
		IsVisible:     doc.IsVisible,
		Subcategories: subs,
	}
}

func mapPublicMenuItem(doc MenuItemDocument) domain.MenuItem {
	price := doc.Price
	return domain.MenuItem{
		ID:              doc.ID.Hex(),
		CategoryID:      doc.CategoryID,
		SubcategoryID:   doc.SubcategoryID,
		Name:            doc.Name,
		Slug:            doc.Slug,
		Description:     doc.Description,
		Price:           &price,
		Images:          append([]string{}, doc.Images...),
		Tags:            append([]string{}, doc.Tags...),
		Allergens:       append([]string{}, doc.Allergens...),
		Ingredients:     append([]string{}, doc.Ingredients...),
		PreparationTime: doc.PreparationTime,
		Calories:        doc.Calories,
		Order:           doc.Order,
		IsAvailable:     doc.IsAvailable,
		IsFeatured:      doc.IsFeatured,
		IsVegetarian:    doc.IsVegetarian,
		IsSpicy:         doc.IsSpicy,
	}
}
