package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/domain"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/store"
	"github.com/aussiebroadwan/scholarsync/pkg/slogx"
)

// ErrBadRequest marks input that fails validation.
var ErrBadRequest = errors.New("bad request")

type StudentService struct {
	Store store.Store
}

// Create stores a new student record. Every field is required and an
// enrollment number of zero counts as missing.
func (s *StudentService) Create(ctx context.Context, name, email string, enrollNo int64) (domain.Student, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || enrollNo == 0 {
		return domain.Student{}, ErrBadRequest
	}

	st := &domain.Student{Name: name, Email: email, EnrollNo: enrollNo}
	if err := s.Store.Students().CreateStudent(ctx, st); err != nil {
		slogx.FromContext(ctx).Error("failed to create student", slog.Any("error", err))
		return domain.Student{}, err
	}
	return *st, nil
}

// List returns every student record.
func (s *StudentService) List(ctx context.Context) ([]domain.Student, error) {
	return s.Store.Students().ListStudents(ctx)
}

// Delete removes a student. Unknown ids succeed silently.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	return s.Store.Students().DeleteStudent(ctx, id)
}

// Update applies patch to the student and returns the updated record, or
// nil when no student has that id.
func (s *StudentService) Update(ctx context.Context, id string, patch domain.StudentPatch) (*domain.Student, error) {
	st, err := s.Store.Students().UpdateStudent(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		slogx.FromContext(ctx).Error("failed to update student", slog.String("student_id", id), slog.Any("error", err))
		return nil, err
	}
	return &st, nil
}
