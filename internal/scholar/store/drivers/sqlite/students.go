package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/domain"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/store"
	"github.com/aussiebroadwan/scholarsync/pkg/idx"
)

type studentsRepo struct {
	db  *sql.DB
	now func() time.Time
}

const studentColumns = `id, name, email, enroll_no, created_at, updated_at`

func scanStudent(row interface{ Scan(...any) error }) (domain.Student, error) {
	var (
		s                domain.Student
		created, updated int64
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.EnrollNo, &created, &updated); err != nil {
		return domain.Student{}, mapNotFound(err)
	}
	s.CreatedAt = fromMillis(created)
	s.UpdatedAt = fromMillis(updated)
	return s, nil
}

func (r *studentsRepo) CreateStudent(ctx context.Context, s *domain.Student) error {
	now := r.now()
	s.ID = idx.NewAt(now).String()
	s.CreatedAt, s.UpdatedAt = now, now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO students (`+studentColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Email, s.EnrollNo, toMillis(now), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

func (r *studentsRepo) ListStudents(ctx context.Context) ([]domain.Student, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+studentColumns+` FROM students ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	out := []domain.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *studentsRepo) GetStudentByID(ctx context.Context, id string) (domain.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE id = ?`, id)
	return scanStudent(row)
}

func (r *studentsRepo) UpdateStudent(ctx context.Context, id string, patch domain.StudentPatch) (domain.Student, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE students SET
			name = COALESCE(?, name),
			email = COALESCE(?, email),
			enroll_no = COALESCE(?, enroll_no),
			updated_at = ?
		WHERE id = ?`,
		mapOptionalString(patch.Name), mapOptionalString(patch.Email), mapOptionalInt(patch.EnrollNo),
		toMillis(r.now()), id,
	)
	if err != nil {
		return domain.Student{}, fmt.Errorf("update student: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Student{}, store.ErrNotFound
	}
	return r.GetStudentByID(ctx, id)
}

func (r *studentsRepo) DeleteStudent(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}
