package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/domain"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/store"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func ptr[T any](v T) *T { return &v }

func TestMigrationsAreIdempotent(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	users := st.Users()

	exp := time.Now().Add(10 * time.Minute).UTC().Truncate(time.Millisecond)
	u := &domain.User{
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hash",
		OTP:          "123456",
		OTPExpiresAt: &exp,
	}
	require.NoError(t, users.CreateUser(ctx, u))
	require.NotEmpty(t, u.ID)
	require.False(t, u.CreatedAt.IsZero())

	t.Run("get by email and id", func(t *testing.T) {
		got, err := users.GetUserByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, "123456", got.OTP)
		require.NotNil(t, got.OTPExpiresAt)
		require.True(t, exp.Equal(*got.OTPExpiresAt))
		require.False(t, got.IsVerified)

		byID, err := users.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, got, byID)
	})

	t.Run("email lookup is case sensitive", func(t *testing.T) {
		_, err := users.GetUserByEmail(ctx, "ADA@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := users.CreateUser(ctx, &domain.User{Name: "Other", Email: "ada@example.com", PasswordHash: "x"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("mark verified clears otp", func(t *testing.T) {
		require.NoError(t, users.MarkVerified(ctx, u.ID))

		got, err := users.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.True(t, got.IsVerified)
		require.Empty(t, got.OTP)
		require.Nil(t, got.OTPExpiresAt)
	})

	t.Run("mark verified unknown", func(t *testing.T) {
		require.ErrorIs(t, users.MarkVerified(ctx, "missing"), store.ErrNotFound)
	})
}

func TestDeleteStaleUnverified(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	users := st.Users()
	now := time.Now().UTC()

	old := now.Add(-48 * time.Hour)
	fresh := now.Add(5 * time.Minute)

	require.NoError(t, users.CreateUser(ctx, &domain.User{Name: "stale", Email: "stale@example.com", PasswordHash: "x", OTP: "111111", OTPExpiresAt: &old}))
	require.NoError(t, users.CreateUser(ctx, &domain.User{Name: "fresh", Email: "fresh@example.com", PasswordHash: "x", OTP: "222222", OTPExpiresAt: &fresh}))
	verified := &domain.User{Name: "done", Email: "done@example.com", PasswordHash: "x", OTP: "333333", OTPExpiresAt: &old}
	require.NoError(t, users.CreateUser(ctx, verified))
	require.NoError(t, users.MarkVerified(ctx, verified.ID))

	n, err := users.DeleteStaleUnverified(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = users.GetUserByEmail(ctx, "stale@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = users.GetUserByEmail(ctx, "fresh@example.com")
	require.NoError(t, err)
	_, err = users.GetUserByEmail(ctx, "done@example.com")
	require.NoError(t, err)
}

func TestStudents(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	students := st.Students()

	list, err := students.ListStudents(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
	require.NotNil(t, list, "empty list encodes as []")

	var ids []string
	for i, name := range []string{"Ada", "Grace", "Linus"} {
		s := &domain.Student{Name: name, Email: name + "@example.com", EnrollNo: int64(100 + i)}
		require.NoError(t, students.CreateStudent(ctx, s))
		require.NotEmpty(t, s.ID)
		ids = append(ids, s.ID)
	}

	t.Run("list keeps insertion order", func(t *testing.T) {
		list, err := students.ListStudents(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		for i, s := range list {
			require.Equal(t, ids[i], s.ID)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		got, err := students.UpdateStudent(ctx, ids[0], domain.StudentPatch{Name: ptr("Ada L.")})
		require.NoError(t, err)
		require.Equal(t, "Ada L.", got.Name)
		require.Equal(t, "Ada@example.com", got.Email)
		require.EqualValues(t, 100, got.EnrollNo)
		require.False(t, got.UpdatedAt.Before(got.CreatedAt))
	})

	t.Run("update unknown id", func(t *testing.T) {
		_, err := students.UpdateStudent(ctx, "missing", domain.StudentPatch{Name: ptr("x")})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, students.DeleteStudent(ctx, ids[1]))
		require.NoError(t, students.DeleteStudent(ctx, ids[1]))
		require.NoError(t, students.DeleteStudent(ctx, "not-an-id"))

		_, err := students.GetStudentByID(ctx, ids[1])
		require.ErrorIs(t, err, store.ErrNotFound)

		list, err := students.ListStudents(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})
}
