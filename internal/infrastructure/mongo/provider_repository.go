package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

// ProviderRepository stores business profiles keyed by tenant id.
type ProviderRepository struct {
	collection *mongo.Collection
}

func NewProviderRepository(db *mongo.Database, collection string) *ProviderRepository {
	return &ProviderRepository{collection: db.Collection(collection)}
}

func (r *ProviderRepository) FindByID(ctx context.Context, id string) (*admindomain.Provider, error) {
	var doc ProviderDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": strings.TrimSpace(id)}).Decode(&doc); err != nil {
		return nil, notFound(err)
	}
	provider := mapProviderDocument(doc)
	return &provider, nil
}

// Save upserts the whole profile.
func (r *ProviderRepository) Save(ctx context.Context, provider *admindomain.Provider) error {
	doc, err := buildProviderDocument(provider)
	if err != nil {
		return err
	}
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	return conflict(err)
}

func (r *ProviderRepository) SlugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"slug": slug,
		"_id":  bson.M{"$ne": exceptID},
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func buildProviderDocument(p *admindomain.Provider) (ProviderDocument, error) {
	if p == nil {
		return ProviderDocument{}, fmt.Errorf("provider payload is nil")
	}
	branches := make([]BranchDocument, 0, len(p.Branches))
	for _, b := range p.Branches {
		branches = append(branches, BranchDocument{Name: b.Name, Address: b.Address, Lat: b.Coordinates.Lat, Lng: b.Coordinates.Lng})
	}
	return ProviderDocument{
		ID:           p.ID,
		BusinessName: p.BusinessName.String(),
		Slug:         p.Slug.String(),
		Description:  p.Description,
		Phone:        p.Phone,
		Email:        p.Email.String(),
		Website:      p.Website.String(),
		Address:      p.Address,
		Logo:         p.Logo.String(),
		CoverImage:   p.CoverImage.String(),
		Cuisines:     p.Cuisines.Strings(),
		Features:     p.Features.Strings(),
		Branches:     branches,
		WorkingHours: workingHourDocuments(p.WorkingHours.Records()),
		Settings:     settingsDocument(form.ProviderSettings(p.Settings)),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}

// mapProviderDocument trusts stored data; hours are re-seeded to the full
// week.
func mapProviderDocument(doc ProviderDocument) admindomain.Provider {
	branches := make([]admindomain.Branch, 0, len(doc.Branches))
	for _, b := range doc.Branches {
		branches = append(branches, admindomain.Branch{Name: b.Name, Address: b.Address, Coordinates: form.Coordinates{Lat: b.Lat, Lng: b.Lng}})
	}
	return admindomain.Provider{
		ID:           doc.ID,
		BusinessName: admindomain.Name(doc.BusinessName),
		Slug:         admindomain.Slug(doc.Slug),
		Description:  doc.Description,
		Phone:        doc.Phone,
		Email:        admindomain.Email(doc.Email),
		Website:      admindomain.URL(doc.Website),
		Address:      doc.Address,
		Logo:         admindomain.URL(doc.Logo),
		CoverImage:   admindomain.URL(doc.CoverImage),
		Cuisines:     admindomain.TagList(append([]string{}, doc.Cuisines...)),
		Features:     admindomain.TagList(append([]string{}, doc.Features...)),
		Branches:     branches,
		WorkingHours: form.SeedWorkingHours(workingHourRecords(doc.WorkingHours)),
		Settings:     admindomain.Settings(doc.Settings.settings()),
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return admindomain.ErrNotFound
	}
	return err
}

func conflict(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", admindomain.ErrConflict, err)
	}
	return err
}
