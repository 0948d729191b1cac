package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteValidate(t *testing.T) {
	tests := []struct {
		name    string
		route   Route
		wantErr error
	}{
		{
			name:  "roster fits",
			route: Route{Number: 1, Capacity: 2, Roster: []Person{{ID: "a"}, {ID: "b"}}},
		},
		{
			name:    "zero capacity",
			route:   Route{Number: 2, Capacity: 0},
			wantErr: ErrInvalidCapacity,
		},
		{
			name:    "roster over capacity",
			route:   Route{Number: 3, Capacity: 1, Roster: []Person{{ID: "a"}, {ID: "b"}}},
			wantErr: ErrRosterOverCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.route.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRouteStaffAndStudentsKeepRosterOrder(t *testing.T) {
	r := Route{Roster: []Person{
		{ID: "s1", Role: RoleStudent},
		{ID: "t1", Role: RoleStaff},
		{ID: "s2", Role: RoleStudent},
	}}

	staff := r.Staff()
	students := r.Students()

	assert.Len(t, staff, 1)
	assert.Equal(t, "t1", staff[0].ID)
	assert.Equal(t, []string{"s1", "s2"}, []string{students[0].ID, students[1].ID})
}
