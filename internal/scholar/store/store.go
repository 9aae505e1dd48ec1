package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, mongo)
// implement this. Every operation touches a single record or collection, so
// there is no transaction API.
type Store interface {
	Users() Users
	Students() Students

	// ApplyMigrations brings the schema (tables or indexes) up to date.
	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by exact email match.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user and fills in ID and timestamps. Returns
	// ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u *domain.User) error

	// MarkVerified sets is_verified, clears the OTP fields and bumps updated_at.
	MarkVerified(ctx context.Context, id string) error

	// DeleteStaleUnverified removes unverified users whose OTP expired before
	// cutoff and returns how many were removed.
	DeleteStaleUnverified(ctx context.Context, cutoff time.Time) (int64, error)
}

type Students interface {
	// CreateStudent inserts a record and fills in ID and timestamps.
	CreateStudent(ctx context.Context, s *domain.Student) error

	// ListStudents returns every record in insertion order.
	ListStudents(ctx context.Context) ([]domain.Student, error)

	// GetStudentByID returns ErrNotFound for unknown or malformed ids.
	GetStudentByID(ctx context.Context, id string) (domain.Student, error)

	// UpdateStudent applies patch and returns the stored record afterwards.
	// Returns ErrNotFound when nothing matched.
	UpdateStudent(ctx context.Context, id string, patch domain.StudentPatch) (domain.Student, error)

	// DeleteStudent removes the record. Missing ids are not an error.
	DeleteStudent(ctx context.Context, id string) error
}
