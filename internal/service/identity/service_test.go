package identity

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	personRepo "github.com/m04kA/SMC-BusSeating/internal/infra/storage/person"
	"github.com/m04kA/SMC-BusSeating/internal/infra/storage/schema"
	"github.com/m04kA/SMC-BusSeating/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BusSeating/pkg/ptr"
)

type fakeRepo struct {
	people []domain.Person
	err    error
}

func (f *fakeRepo) FindByRoleAndEmail(_ context.Context, role domain.Role, email string) (*domain.Person, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.people {
		if p.Role == role && strings.EqualFold(p.Email, email) {
			found := p
			return &found, nil
		}
	}
	return nil, personRepo.ErrPersonNotFound
}

type fakeMetrics struct {
	outcomes []string
}

func (m *fakeMetrics) ObserveLogin(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func people() []domain.Person {
	return []domain.Person{
		{ID: "s1", Name: "Priya", Email: "priya@campus.edu", DateOfBirth: "2003-05-14", Role: domain.RoleStudent, Paid: ptr.Ptr(true)},
		{ID: "s2", Name: "Arun", Email: "arun@campus.edu", DateOfBirth: "2002-08-09", Role: domain.RoleStudent, Paid: ptr.Ptr(false)},
		{ID: "s3", Name: "Kavya", Email: "kavya@campus.edu", DateOfBirth: "2004-01-21", Role: domain.RoleStudent},
		{ID: "f1", Name: "Dr. Iyer", Email: "iyer@campus.edu", DateOfBirth: "1975-11-02", Role: domain.RoleStaff},
	}
}

func TestService_Authenticate(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		role        domain.Role
		wantID      string
		wantErr     error
		wantOutcome string
	}{
		{name: "paid student", email: "priya@campus.edu", password: "2003-05-14", role: domain.RoleStudent, wantID: "s1", wantOutcome: OutcomeSuccess},
		{name: "email case insensitive", email: "PRIYA@Campus.edu", password: "2003-05-14", role: domain.RoleStudent, wantID: "s1", wantOutcome: OutcomeSuccess},
		{name: "staff without paid flag", email: "iyer@campus.edu", password: "1975-11-02", role: domain.RoleStaff, wantID: "f1", wantOutcome: OutcomeSuccess},
		{name: "unpaid student", email: "arun@campus.edu", password: "2002-08-09", role: domain.RoleStudent, wantErr: ErrUnpaidFee, wantOutcome: OutcomeUnpaid},
		{name: "student without paid flag", email: "kavya@campus.edu", password: "2004-01-21", role: domain.RoleStudent, wantErr: ErrUnpaidFee, wantOutcome: OutcomeUnpaid},
		{name: "unpaid student wrong password", email: "arun@campus.edu", password: "2000-01-01", role: domain.RoleStudent, wantErr: ErrInvalidCredentials, wantOutcome: OutcomeInvalidCredentials},
		{name: "wrong password", email: "priya@campus.edu", password: "2003-05-15", role: domain.RoleStudent, wantErr: ErrInvalidCredentials, wantOutcome: OutcomeInvalidCredentials},
		{name: "wrong role", email: "iyer@campus.edu", password: "1975-11-02", role: domain.RoleStudent, wantErr: ErrInvalidCredentials, wantOutcome: OutcomeInvalidCredentials},
		{name: "unknown email", email: "ghost@campus.edu", password: "2003-05-14", role: domain.RoleStudent, wantErr: ErrInvalidCredentials, wantOutcome: OutcomeInvalidCredentials},
		{name: "missing email", email: " ", password: "2003-05-14", role: domain.RoleStudent, wantErr: ErrValidation, wantOutcome: OutcomeValidation},
		{name: "missing password", email: "priya@campus.edu", role: domain.RoleStudent, wantErr: ErrValidation, wantOutcome: OutcomeValidation},
		{name: "missing role", email: "priya@campus.edu", password: "2003-05-14", wantErr: ErrValidation, wantOutcome: OutcomeValidation},
		{name: "unknown role", email: "priya@campus.edu", password: "2003-05-14", role: "admin", wantErr: ErrValidation, wantOutcome: OutcomeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMetrics{}
			svc := NewService(&fakeRepo{people: people()}, m, nopLogger{})

			got, err := svc.Authenticate(context.Background(), tt.email, tt.password, tt.role)
			assert.Equal(t, []string{tt.wantOutcome}, m.outcomes)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Empty(t, got.DateOfBirth)
		})
	}
}

func TestService_Authenticate_UnknownRoleMessage(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeMetrics{}, nopLogger{})

	_, err := svc.Authenticate(context.Background(), "a@campus.edu", "x", "driver")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestService_Authenticate_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("connection refused")}, &fakeMetrics{}, nopLogger{})

	_, err := svc.Authenticate(context.Background(), "a@campus.edu", "x", domain.RoleStaff)
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Authenticate_NonASCIIEmailOnSQLite(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, schema.Apply(ctx, db, psqlbuilder.DriverSQLite))

	repo := personRepo.NewRepository(db, psqlbuilder.For(psqlbuilder.DriverSQLite))
	require.NoError(t, repo.Create(ctx, &domain.Person{
		ID:          "f9",
		Name:        "Élise",
		Email:       "ÉLISE@campus.edu",
		DateOfBirth: "1981-07-09",
		Role:        domain.RoleStaff,
	}, nil, 0))

	svc := NewService(repo, &fakeMetrics{}, nopLogger{})

	for _, email := range []string{"ÉLISE@campus.edu", "élise@campus.edu", " Élise@Campus.edu "} {
		p, err := svc.Authenticate(ctx, email, "1981-07-09", domain.RoleStaff)
		require.NoError(t, err, email)
		assert.Equal(t, "f9", p.ID)
		assert.Empty(t, p.DateOfBirth)
	}
}
