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
)

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Password     string             `bson:"password"`
	IsVerified   bool               `bson:"isVerified"`
	OTP          string             `bson:"otp,omitempty"`
	OTPExpiresAt *time.Time         `bson:"otpExpiresAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d userDoc) toDomain() domain.User {
	u := domain.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		IsVerified:   d.IsVerified,
		OTP:          d.OTP,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
	if d.OTPExpiresAt != nil {
		t := d.OTPExpiresAt.UTC()
		u.OTPExpiresAt = &t
	}
	return u
}

type usersRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

func (r *usersRepo) findOne(ctx context.Context, filter bson.D) (domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	oid, ok := parseID(id)
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *usersRepo) CreateUser(ctx context.Context, u *domain.User) error {
	now := r.now()
	doc := userDoc{
		ID:           primitive.NewObjectIDFromTimestamp(now),
		Name:         u.Name,
		Email:        u.Email,
		Password:     u.PasswordHash,
		IsVerified:   u.IsVerified,
		OTP:          u.OTP,
		OTPExpiresAt: u.OTPExpiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	u.ID = doc.ID.Hex()
	u.CreatedAt, u.UpdatedAt = now, now
	return nil
}

func (r *usersRepo) MarkVerified(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return store.ErrNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "isVerified", Value: true},
			{Key: "updatedAt", Value: r.now()},
		}},
		{Key: "$unset", Value: bson.D{
			{Key: "otp", Value: ""},
			{Key: "otpExpiresAt", Value: ""},
		}},
	})
	if err != nil {
		return fmt.Errorf("verify user: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) DeleteStaleUnverified(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{
		{Key: "isVerified", Value: false},
		{Key: "otpExpiresAt", Value: bson.D{{Key: "$lt", Value: cutoff.UTC()}}},
	})
	if err != nil {
		return 0, fmt.Errorf("purge unverified users: %w", err)
	}
	return res.DeletedCount, nil
}
