package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/domain"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type studentDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	EnrollNo  int64              `bson:"enroll_no"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d studentDoc) toDomain() domain.Student {
	return domain.Student{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		EnrollNo:  d.EnrollNo,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

type studentsRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

func (r *studentsRepo) CreateStudent(ctx context.Context, s *domain.Student) error {
	now := r.now()
	doc := studentDoc{
		ID:        primitive.NewObjectID(),
		Name:      s.Name,
		Email:     s.Email,
		EnrollNo:  s.EnrollNo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert student: %w", err)
	}

	s.ID = doc.ID.Hex()
	s.CreatedAt, s.UpdatedAt = now, now
	return nil
}

func (r *studentsRepo) ListStudents(ctx context.Context) ([]domain.Student, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.Student{}
	for cur.Next(ctx) {
		var doc studentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *studentsRepo) GetStudentByID(ctx context.Context, id string) (domain.Student, error) {
	oid, ok := parseID(id)
	if !ok {
		return domain.Student{}, store.ErrNotFound
	}

	var doc studentDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return domain.Student{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *studentsRepo) UpdateStudent(ctx context.Context, id string, patch domain.StudentPatch) (domain.Student, error) {
	oid, ok := parseID(id)
	if !ok {
		return domain.Student{}, store.ErrNotFound
	}

	set := bson.D{{Key: "updatedAt", Value: r.now()}}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Email != nil {
		set = append(set, bson.E{Key: "email", Value: *patch.Email})
	}
	if patch.EnrollNo != nil {
		set = append(set, bson.E{Key: "enroll_no", Value: *patch.EnrollNo})
	}

	var doc studentDoc
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return domain.Student{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *studentsRepo) DeleteStudent(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return nil
	}
	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}
