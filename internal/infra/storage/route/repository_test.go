package route

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
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// у каждого соединения in-memory базы своя схема
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, schema.Apply(context.Background(), db, psqlbuilder.DriverSQLite))
	return db
}

func insertPerson(t *testing.T, db *sql.DB, id, name, role string, gender interface{}, routeNumber, position int) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO people (id, name, email, email_key, date_of_birth, role, gender, route_number, roster_position)
		 VALUES (?, ?, ?, ?, '2000-01-01', ?, ?, ?, ?)`,
		id, name, id+"@campus.edu", id+"@campus.edu", role, gender, routeNumber, position,
	)
	require.NoError(t, err)
}

func TestRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t), psqlbuilder.For(psqlbuilder.DriverSQLite))

	for _, number := range []int{7, 2, 12} {
		require.NoError(t, repo.Create(ctx, &domain.Route{
			Number:    number,
			BusNumber: "KA-01",
			Driver:    "Ravi",
			Capacity:  50,
		}))
	}

	routes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 3)
	assert.Equal(t, 2, routes[0].Number)
	assert.Equal(t, 7, routes[1].Number)
	assert.Equal(t, 12, routes[2].Number)
	assert.Empty(t, routes[0].Roster)
}

func TestRepository_GetByNumber(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRepository(db, psqlbuilder.For(psqlbuilder.DriverSQLite))

	require.NoError(t, repo.Create(ctx, &domain.Route{Number: 3, BusNumber: "KA-03", Driver: "Mani", Capacity: 40}))
	insertPerson(t, db, "s2", "Bala", "student", "male", 3, 1)
	insertPerson(t, db, "f1", "Dr. Rao", "staff", nil, 3, 0)
	insertPerson(t, db, "s3", "Chitra", "student", nil, 3, 2)

	route, err := repo.GetByNumber(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "KA-03", route.BusNumber)
	assert.Equal(t, 40, route.Capacity)

	require.Len(t, route.Roster, 3)
	assert.Equal(t, "f1", route.Roster[0].ID)
	assert.Equal(t, "s2", route.Roster[1].ID)
	assert.Equal(t, "s3", route.Roster[2].ID)

	assert.True(t, route.Roster[1].HasGender(domain.GenderMale))
	assert.Nil(t, route.Roster[2].Gender)
	for _, p := range route.Roster {
		assert.Empty(t, p.DateOfBirth)
	}
}

func TestRepository_GetByNumber_NotFound(t *testing.T) {
	repo := NewRepository(newTestDB(t), psqlbuilder.For(psqlbuilder.DriverSQLite))

	_, err := repo.GetByNumber(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

func TestRepository_ListWithRosters(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRepository(db, psqlbuilder.For(psqlbuilder.DriverSQLite))

	require.NoError(t, repo.Create(ctx, &domain.Route{Number: 1, BusNumber: "A", Driver: "X", Capacity: 10}))
	require.NoError(t, repo.Create(ctx, &domain.Route{Number: 2, BusNumber: "B", Driver: "Y", Capacity: 10}))
	insertPerson(t, db, "a", "Anu", "student", "female", 1, 0)
	insertPerson(t, db, "b", "Babu", "student", "male", 2, 0)
	insertPerson(t, db, "c", "Chandru", "staff", nil, 2, 1)

	// человек без маршрута в ростеры не попадает
	_, err := db.Exec(`INSERT INTO people (id, name, email, email_key, date_of_birth, role) VALUES ('z', 'Zed', 'z@campus.edu', 'z@campus.edu', '2000-01-01', 'student')`)
	require.NoError(t, err)

	routes, err := repo.ListWithRosters(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Len(t, routes[0].Roster, 1)
	assert.Len(t, routes[1].Roster, 2)
}

func TestRepository_Exists(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t), psqlbuilder.For(psqlbuilder.DriverSQLite))
	require.NoError(t, repo.Create(ctx, &domain.Route{Number: 5, BusNumber: "E", Driver: "V", Capacity: 30}))

	ok, err := repo.Exists(ctx, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, 6)
	require.NoError(t, err)
	assert.False(t, ok)
}
