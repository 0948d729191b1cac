package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

type fakeAuth struct {
	person *domain.Person
	err    error
}

func (f fakeAuth) Login(context.Context, string, string, domain.Role) (*domain.Person, error) {
	return f.person, f.err
}

func TestLogin(t *testing.T) {
	s, err := Login(context.Background(), fakeAuth{person: &domain.Person{
		ID:   "f1",
		Name: "Dr. Iyer",
		Role: domain.RoleStaff,
	}}, "iyer@campus.edu", "1975-11-02", domain.RoleStaff)
	require.NoError(t, err)

	assert.Equal(t, "f1", s.PersonID)
	assert.True(t, s.IsStaff())
	assert.True(t, s.Active())
}

func TestLogin_Rejected(t *testing.T) {
	_, err := Login(context.Background(), fakeAuth{err: errors.New("Invalid credentials")}, "x", "y", domain.RoleStudent)
	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestSession_Close(t *testing.T) {
	s := &Session{PersonID: "s1", Role: domain.RoleStudent}

	var order []int
	require.NoError(t, s.Attach(func() { order = append(order, 1) }))
	require.NoError(t, s.Attach(func() { order = append(order, 2) }))

	s.Close()
	s.Close()
	assert.Equal(t, []int{2, 1}, order)
	assert.False(t, s.Active())

	called := false
	assert.ErrorIs(t, s.Attach(func() { called = true }), ErrClosed)
	assert.True(t, called)
}
