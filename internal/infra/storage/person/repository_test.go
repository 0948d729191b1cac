package person

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	"github.com/m04kA/SMC-BusSeating/internal/infra/storage/schema"
	"github.com/m04kA/SMC-BusSeating/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BusSeating/pkg/ptr"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, schema.Apply(ctx, db, psqlbuilder.DriverSQLite))
	_, err = db.ExecContext(ctx, `INSERT INTO routes (number, bus_number, driver, capacity) VALUES (4, 'KA-04', 'Selvam', 50)`)
	require.NoError(t, err)

	return NewRepository(db, psqlbuilder.For(psqlbuilder.DriverSQLite))
}

func TestRepository_FindByRoleAndEmail(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(ctx, &domain.Person{
		ID:          "s1",
		Name:        "Priya",
		Email:       "Priya@Campus.edu",
		DateOfBirth: "2003-05-14",
		Role:        domain.RoleStudent,
		Gender:      ptr.Ptr(domain.GenderFemale),
		Paid:        ptr.Ptr(true),
		SeatNumber:  ptr.Ptr(12),
	}, ptr.Ptr(4), 0))
	require.NoError(t, repo.Create(ctx, &domain.Person{
		ID:          "f1",
		Name:        "Dr. Iyer",
		Email:       "iyer@campus.edu",
		DateOfBirth: "1975-11-02",
		Role:        domain.RoleStaff,
	}, nil, 0))

	tests := []struct {
		name    string
		role    domain.Role
		email   string
		wantID  string
		wantErr error
	}{
		{name: "exact email", role: domain.RoleStudent, email: "Priya@Campus.edu", wantID: "s1"},
		{name: "case insensitive", role: domain.RoleStudent, email: "PRIYA@campus.EDU", wantID: "s1"},
		{name: "staff", role: domain.RoleStaff, email: "iyer@campus.edu", wantID: "f1"},
		{name: "wrong role", role: domain.RoleStaff, email: "priya@campus.edu", wantErr: ErrPersonNotFound},
		{name: "unknown email", role: domain.RoleStudent, email: "nobody@campus.edu", wantErr: ErrPersonNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := repo.FindByRoleAndEmail(ctx, tt.role, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, p.ID)
		})
	}
}

func TestRepository_FindByRoleAndEmail_NonASCII(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(ctx, &domain.Person{
		ID:          "f2",
		Name:        "Élise",
		Email:       "ÉLISE@campus.edu",
		DateOfBirth: "1981-07-09",
		Role:        domain.RoleStaff,
	}, ptr.Ptr(4), 0))

	for _, email := range []string{"ÉLISE@campus.edu", "élise@campus.edu", "Élise@CAMPUS.edu"} {
		p, err := repo.FindByRoleAndEmail(ctx, domain.RoleStaff, email)
		require.NoError(t, err, email)
		assert.Equal(t, "f2", p.ID)
		assert.Equal(t, "ÉLISE@campus.edu", p.Email)
	}

	dup := &domain.Person{ID: "f3", Name: "E", Email: "élise@campus.edu", DateOfBirth: "1981-07-09", Role: domain.RoleStaff}
	assert.ErrorIs(t, repo.Create(ctx, dup, nil, 0), ErrExecQuery)
}

func TestRepository_FindByRoleAndEmail_NullableFields(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(ctx, &domain.Person{
		ID:          "s2",
		Name:        "Kumar",
		Email:       "kumar@campus.edu",
		DateOfBirth: "2002-01-30",
		Role:        domain.RoleStudent,
	}, ptr.Ptr(4), 1))

	p, err := repo.FindByRoleAndEmail(ctx, domain.RoleStudent, "kumar@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, "2002-01-30", p.DateOfBirth)
	assert.Nil(t, p.Gender)
	assert.Nil(t, p.Paid)
	assert.Nil(t, p.SeatNumber)
	assert.False(t, p.HasPaid())
}

func TestRepository_Create_DuplicateEmailPerRole(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	p := &domain.Person{ID: "a", Name: "A", Email: "dup@campus.edu", DateOfBirth: "2000-01-01", Role: domain.RoleStudent}
	require.NoError(t, repo.Create(ctx, p, nil, 0))

	dup := &domain.Person{ID: "b", Name: "B", Email: "DUP@campus.edu", DateOfBirth: "2000-01-01", Role: domain.RoleStudent}
	assert.ErrorIs(t, repo.Create(ctx, dup, nil, 0), ErrExecQuery)

	// та же почта у сотрудника допустима
	staff := &domain.Person{ID: "c", Name: "C", Email: "dup@campus.edu", DateOfBirth: "2000-01-01", Role: domain.RoleStaff}
	assert.NoError(t, repo.Create(ctx, staff, nil, 0))
}
