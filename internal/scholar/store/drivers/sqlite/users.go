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

type usersRepo struct {
	db  *sql.DB
	now func() time.Time
}

const userColumns = `id, name, email, password_hash, is_verified, otp, otp_expires_at, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u         domain.User
		otp       sql.NullString
		otpExpiry sql.NullInt64
		created   int64
		updated   int64
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsVerified, &otp, &otpExpiry, &created, &updated); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.OTP = otp.String
	u.OTPExpiresAt = mapNullTimePtr(otpExpiry)
	u.CreatedAt = fromMillis(created)
	u.UpdatedAt = fromMillis(updated)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u *domain.User) error {
	now := r.now()
	if u.ID == "" {
		u.ID = idx.NewAt(now).String()
	}
	u.CreatedAt, u.UpdatedAt = now, now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.IsVerified,
		mapStringNull(u.OTP), mapOptionalTime(u.OTPExpiresAt),
		toMillis(now), toMillis(now),
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *usersRepo) MarkVerified(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_verified = 1, otp = NULL, otp_expires_at = NULL, updated_at = ? WHERE id = ?`,
		toMillis(r.now()), id,
	)
	if err != nil {
		return fmt.Errorf("verify user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) DeleteStaleUnverified(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE is_verified = 0 AND otp_expires_at IS NOT NULL AND otp_expires_at < ?`,
		toMillis(cutoff),
	)
	if err != nil {
		return 0, fmt.Errorf("purge unverified users: %w", err)
	}
	return res.RowsAffected()
}
