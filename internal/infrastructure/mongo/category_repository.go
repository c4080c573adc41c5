package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
)

var byOrderThenName = bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}}

// CategoryRepository stores categories of every tenant in one collection.
// Every query is scoped by providerId.
type CategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database, collection string) *CategoryRepository {
	return &CategoryRepository{collection: db.Collection(collection)}
}

func (r *CategoryRepository) Find(ctx context.Context, providerID string) ([]admindomain.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"providerId": providerID}, options.Find().SetSort(byOrderThenName))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := make([]admindomain.Category, 0)
	for cursor.Next(ctx) {
		var doc CategoryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		categories = append(categories, mapCategoryDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, providerID, id string) (*admindomain.Category, error) {
	objectID, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc CategoryDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID, "providerId": providerID}).Decode(&doc); err != nil {
		return nil, notFound(err)
	}
	category := mapCategoryDocument(doc)
	return &category, nil
}

// Create inserts the category and stores the generated id on it.
func (r *CategoryRepository) Create(ctx context.Context, category *admindomain.Category) error {
	doc := buildCategoryDocument(category)
	doc.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return conflict(err)
	}
	category.ID = doc.ID.Hex()
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *admindomain.Category) error {
	objectID, err := objectID(category.ID)
	if err != nil {
		return err
	}
	doc := buildCategoryDocument(category)
	doc.ID = objectID
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objectID, "providerId": category.ProviderID}, doc)
	if err != nil {
		return conflict(err)
	}
	if res.MatchedCount == 0 {
		return admindomain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, providerID, id string) error {
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

func buildCategoryDocument(c *admindomain.Category) CategoryDocument {
	subs := make([]SubcategoryDocument, 0, len(c.Subcategories))
	for _, s := range c.Subcategories {
		subs = append(subs, SubcategoryDocument{ID: s.ID, NameFa: s.NameFa, NameEn: s.NameEn})
	}
	return CategoryDocument{
		ProviderID:    c.ProviderID,
		Name:          c.Name.String(),
		NameEn:        c.NameEn,
		Slug:          c.Slug.String(),
		Description:   c.Description,
		Order:         c.Order,
		IsActive:      c.IsActive,
		IsVisible:     c.IsVisible,
		Subcategories: subs,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func mapCategoryDocument(doc CategoryDocument) admindomain.Category {
	subs := make([]admindomain.Subcategory, 0, len(doc.Subcategories))
	for _, s := range doc.Subcategories {
		subs = append(subs, admindomain.Subcategory{ID: s.ID, NameFa: s.NameFa, NameEn: s.NameEn})
	}
	return admindomain.Category{
		ID:            doc.ID.Hex(),
		ProviderID:    doc.ProviderID,
		Name:          admindomain.Name(doc.Name),
		NameEn:        doc.NameEn,
		Slug:          admindomain.Slug(doc.Slug),
		Description:   doc.Description,
		Order:         doc.Order,
		IsActive:      doc.IsActive,
		IsVisible:     doc.IsVisible,
		Subcategories: subs,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}

// objectID maps a malformed id to ErrNotFound; such a record cannot exist.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, admindomain.ErrNotFound
	}
	return oid, nil
}
