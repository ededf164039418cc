package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"insurhub/internal/core"
	"insurhub/internal/platform/ids"
)

// caseInsensitive is the collation used for name lookups: strength 2 ignores
// case but not accents, which gives whole-field equality matching without
// resorting to anchored regexes.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// Repo is the Mongo implementation of core.Repo for one record kind. D is
// the persisted document shape; the converter pair maps between domain record
// and document.
type Repo[R core.Entity[R], D any] struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
	toDoc     func(R) D
	fromDoc   func(D) R
}

func NewRepo[R core.Entity[R], D any](db *mongodrv.Database, collection string, opTimeout time.Duration, toDoc func(R) D, fromDoc func(D) R) *Repo[R, D] {
	return &Repo[R, D]{
		coll:      db.Collection(collection),
		opTimeout: opTimeout,
		toDoc:     toDoc,
		fromDoc:   fromDoc,
	}
}

func NewLifeRepo(db *mongodrv.Database, opTimeout time.Duration) *Repo[core.LifeInsurance, LifeDoc] {
	return NewRepo(db, ColLife, opTimeout, toLifeDoc, fromLifeDoc)
}

func NewPropertyRepo(db *mongodrv.Database, opTimeout time.Duration) *Repo[core.PropertyInsurance, PropertyDoc] {
	return NewRepo(db, ColProperty, opTimeout, toPropertyDoc, fromPropertyDoc)
}

func NewVehicleRepo(db *mongodrv.Database, opTimeout time.Duration) *Repo[core.VehicleInsurance, VehicleDoc] {
	return NewRepo(db, ColVehicle, opTimeout, toVehicleDoc, fromVehicleDoc)
}

func (repo *Repo[R, D]) Insert(ctx context.Context, rec R) (R, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	if rec.GetID() == "" {
		rec = rec.WithID(ids.New())
	}
	if _, err := repo.coll.InsertOne(ctx, repo.toDoc(rec)); err != nil {
		var zero R
		return zero, fmt.Errorf("%s.insert: %w", repo.coll.Name(), err)
	}
	return rec, nil
}

func (repo *Repo[R, D]) FindByID(ctx context.Context, id string) (R, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	var doc D
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		var zero R
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return zero, core.ErrNoSuchInsurance
		}
		return zero, fmt.Errorf("%s.findOne: %w", repo.coll.Name(), err)
	}
	return repo.fromDoc(doc), nil
}

func (repo *Repo[R, D]) FindAll(ctx context.Context) ([]R, error) {
	return repo.find(ctx, bson.M{}, nil)
}

func (repo *Repo[R, D]) Replace(ctx context.Context, rec R) (R, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	// Full overwrite by id; last write wins on concurrent updates.
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": rec.GetID()}, repo.toDoc(rec), opts); err != nil {
		var zero R
		return zero, fmt.Errorf("%s.replace: %w", repo.coll.Name(), err)
	}
	return rec, nil
}

func (repo *Repo[R, D]) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	// DeleteOne with no match deletes nothing and reports no error.
	if _, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("%s.delete: %w", repo.coll.Name(), err)
	}
	return nil
}

func (repo *Repo[R, D]) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	n, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%s.count: %w", repo.coll.Name(), err)
	}
	return n, nil
}

func (repo *Repo[R, D]) FindByName(ctx context.Context, firstName, familyName string) ([]R, error) {
	filter := bson.M{}
	if firstName != "" {
		filter["first_name"] = firstName
	}
	if familyName != "" {
		filter["family_name"] = familyName
	}
	return repo.find(ctx, filter, options.Find().SetCollation(caseInsensitive))
}

func (repo *Repo[R, D]) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]R, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	var cursor *mongodrv.Cursor
	var err error
	if opts != nil {
		cursor, err = repo.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = repo.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("%s.find: %w", repo.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var recs []R
	for cursor.Next(ctx) {
		var doc D
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s.decode: %w", repo.coll.Name(), err)
		}
		recs = append(recs, repo.fromDoc(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%s.cursor: %w", repo.coll.Name(), err)
	}
	return recs, nil
}
