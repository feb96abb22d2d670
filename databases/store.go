package databases

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned by mutations against an absent document
	ErrNotFound = errors.New("document not found")
	// ErrAlreadyExists is returned when adding a document whose id is taken
	ErrAlreadyExists = errors.New("document already exists")
)

// Document is anything that can be written to a collection
type Document interface {
	ToDocument() bson.M
}

// DocumentStore is a keyed collection of documents. Every operation touches a
// single document; there is no cross-collection transaction.
type DocumentStore interface {
	// Add persists doc under id
	Add(ctx context.Context, id string, doc Document) error
	// Get decodes the document into out. A missing document is reported as
	// false with a nil error.
	Get(ctx context.Context, id string, out interface{}) (bool, error)
	// Update merges fields into the existing document
	Update(ctx context.Context, id string, fields bson.M) error
	// Delete removes the document permanently
	Delete(ctx context.Context, id string) error
	// Append atomically pushes value onto the array field and decodes the
	// updated document into out
	Append(ctx context.Context, id, field string, value interface{}, out interface{}) error
	// Remove atomically pulls every occurrence of value from the array field
	// and decodes the updated document into out
	Remove(ctx context.Context, id, field string, value interface{}, out interface{}) error
	// IDs lists the id of every document in the collection
	IDs(ctx context.Context) ([]string, error)
}

type documentStore struct {
	db   DatabaseHelper
	name string
}

// NewDocumentStore returns a DocumentStore over the named collection
func NewDocumentStore(db DatabaseHelper, collection string) DocumentStore {
	return &documentStore{
		db:   db,
		name: collection,
	}
}

func (d *documentStore) Add(ctx context.Context, id string, doc Document) error {
	record := doc.ToDocument()
	record["_id"] = id
	_, err := d.db.Collection(d.name).InsertOne(ctx, record)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s/%s", ErrAlreadyExists, d.name, id)
	}
	if err != nil {
		return fmt.Errorf("failed to add %s/%s: %w", d.name, id, err)
	}
	return nil
}

func (d *documentStore) Get(ctx context.Context, id string, out interface{}) (bool, error) {
	err := d.db.Collection(d.name).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %s/%s: %w", d.name, id, err)
	}
	return true, nil
}

func (d *documentStore) Update(ctx context.Context, id string, fields bson.M) error {
	res, err := d.db.Collection(d.name).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", d.name, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, d.name, id)
	}
	return nil
}

func (d *documentStore) Delete(ctx context.Context, id string) error {
	res, err := d.db.Collection(d.name).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", d.name, id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, d.name, id)
	}
	return nil
}

func (d *documentStore) Append(ctx context.Context, id, field string, value interface{}, out interface{}) error {
	return d.modify(ctx, id, bson.M{"$push": bson.M{field: value}}, out)
}

func (d *documentStore) Remove(ctx context.Context, id, field string, value interface{}, out interface{}) error {
	return d.modify(ctx, id, bson.M{"$pull": bson.M{field: value}}, out)
}

func (d *documentStore) modify(ctx context.Context, id string, update bson.M, out interface{}) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := d.db.Collection(d.name).FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, d.name, id)
	}
	if err != nil {
		return fmt.Errorf("failed to modify %s/%s: %w", d.name, id, err)
	}
	return nil
}

func (d *documentStore) IDs(ctx context.Context) ([]string, error) {
	cursor, err := d.db.Collection(d.name).Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", d.name, err)
	}
	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.Decode(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s ids: %w", d.name, err)
	}
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids, nil
}
