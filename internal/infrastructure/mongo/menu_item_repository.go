package mongo

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	adminapp "github.com/sngm3741/menu-studio/api/internal/admin/application"
	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
)

// MenuItemRepository stores menu items of every tenant in one collection.
type MenuItemRepository struct {
	collection *mongo.Collection
}

func NewMenuItemRepository(db *mongo.Database, collection string) *MenuItemRepository {
	return &MenuItemRepository{collection: db.Collection(collection)}
}

// Find applies the dashboard filter. Keyword matches name or description.
func (r *MenuItemRepository) Find(ctx context.Context, providerID string, filter adminapp.MenuItemFilter) ([]admindomain.MenuItem, error) {
	mongoFilter := menuItemFilter(providerID, filter)
	cursor, err := r.collection.Find(ctx, mongoFilter, options.Find().SetSort(byOrderThenName))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]admindomain.MenuItem, 0)
	for cursor.Next(ctx) {
		var doc MenuItemDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, mapMenuItemDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func menuItemFilter(providerID string, filter adminapp.MenuItemFilter) bson.M {
	mongoFilter := bson.M{"providerId": providerID}
	if categoryID := strings.TrimSpace(filter.CategoryID); categoryID != "" {
		mongoFilter["categoryId"] = categoryID
	}
	if subcategoryID := strings.TrimSpace(filter.SubcategoryID); subcategoryID != "" {
		mongoFilter["subcategoryId"] = subcategoryID
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}
	return mongoFilter
}

func (r *MenuItemRepository) FindByID(ctx context.Context, providerID, id string) (*admindomain.MenuItem, error) {
	objectID, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc MenuItemDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID, "providerId": providerID}).Decode(&doc); err != nil {
		return nil, notFound(err)
	}
	item := mapMenuItemDocument(doc)
	return &item, nil
}

func (r *MenuItemRepository) Create(ctx context.Context, item *admindomain.MenuItem) error {
	doc := buildMenuItemDocument(item)
	doc.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return conflict(err)
	}
	item.ID = doc.ID.Hex()
	return nil
}

func (r *MenuItemRepository) Update(ctx context.Context, item *admindomain.MenuItem) error {
	objectID, err := objectID(item.ID)
	if err != nil {
		return err
	}
	doc := buildMenuItemDocument(item)
	doc.ID = objectID
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objectID, "providerId": item.ProviderID}, doc)
	if err != nil {
		return conflict(err)
	}
	if res.MatchedCount == 0 {
		return admindomain.ErrNotFound
	}
	return nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, providerID, id string) error {
	objectID, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID, "providerId": providerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return admindomain.ErrNotFound
	}
	return nil
}

func (r *MenuItemRepository) CountByCategory(ctx context.Context, providerID, categoryID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"providerId": providerID, "categoryId": categoryID})
}

func buildMenuItemDocument(item *admindomain.MenuItem) MenuItemDocument {
	return MenuItemDocument{
		ProviderID:      item.ProviderID,
		CategoryID:      item.CategoryID,
		SubcategoryID:   item.SubcategoryID,
		Name:            item.Name.String(),
		Slug:            item.Slug.String(),
		Description:     item.Description,
		Price:           item.Price.Float64(),
		Images:          item.Images.Strings(),
		Tags:            item.Tags.Strings(),
		Allergens:       item.Allergens.Strings(),
		Ingredients:     item.Ingredients.Strings(),
		PreparationTime: item.PreparationTime,
		Calories:        item.Calories,
		Order:           item.Order,
		IsAvailable:     item.IsAvailable,
		IsFeatured:      item.IsFeatured,
		IsVegetarian:    item.IsVegetarian,
		IsSpicy:         item.IsSpicy,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func mapMenuItemDocument(doc MenuItemDocument) admindomain.MenuItem {
	images := make(admindomain.PhotoURLList, 0, len(doc.Images))
	for _, u := range doc.Images {
		images = append(images, admindomain.URL(u))
	}
	return admindomain.MenuItem{
		ID:              doc.ID.Hex(),
		ProviderID:      doc.ProviderID,
		Name:            admindomain.Name(doc.Name),
		Slug:            admindomain.Slug(doc.Slug),
		Description:     doc.Description,
		Price:           admindomain.Price(doc.Price),
		CategoryID:      doc.CategoryID,
		SubcategoryID:   doc.SubcategoryID,
		Images:          images,
		Tags:            admindomain.TagList(append([]string{}, doc.Tags...)),
		Allergens:       admindomain.TagList(append([]string{}, doc.Allergens...)),
		Ingredients:     admindomain.TagList(append([]string{}, doc.Ingredients...)),
		PreparationTime: doc.PreparationTime,
		Calories:        doc.Calories,
		Order:           doc.Order,
		IsAvailable:     doc.IsAvailable,
		IsFeatured:      doc.IsFeatured,
		IsVegetarian:    doc.IsVegetarian,
		IsSpicy:         doc.IsSpicy,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}
