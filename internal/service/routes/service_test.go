package routes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	"github.com/m04kA/SMC-BusSeating/pkg/ptr"
)

type fakeRepo struct {
	routes []domain.Route
	err    error
}

func (f *fakeRepo) List(context.Context) ([]domain.Route, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Route, len(f.routes))
	for i, r := range f.routes {
		r.Roster = nil
		out[i] = r
	}
	return out, nil
}

func (f *fakeRepo) ListWithRosters(context.Context) ([]domain.Route, error) {
	return f.routes, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Overview(t *testing.T) {
	repo := &fakeRepo{routes: []domain.Route{
		{Number: 9, Capacity: 50, Roster: []domain.Person{
			{ID: "a", Role: domain.RoleStudent, Gender: ptr.Ptr(domain.GenderMale)},
		}},
		{Number: 2, Capacity: 40, Roster: []domain.Person{
			{ID: "b", Role: domain.RoleStaff},
			{ID: "c", Role: domain.RoleStudent, Gender: ptr.Ptr(domain.GenderFemale)},
		}},
	}}
	svc := NewService(repo, nopLogger{})

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, overview, 2)
	assert.Equal(t, 2, overview[0].Number)
	assert.Equal(t, 1, overview[0].Staff)
	assert.Equal(t, 1, overview[0].Girls)
	assert.Equal(t, 9, overview[1].Number)
	assert.Equal(t, 1, overview[1].Boys)
}

func TestService_Errors(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("boom")}, nopLogger{})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.Overview(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
