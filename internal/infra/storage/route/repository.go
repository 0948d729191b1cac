package route

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	"github.com/m04kA/SMC-BusSeating/pkg/dbmetrics"
)

var rosterColumns = []string{
	"id",
	"name",
	"email",
	"role",
	"gender",
	"paid",
	"seat_number",
	"route_number",
}

// Repository репозиторий маршрутов и их ростеров
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория маршрутов
func NewRepository(db DBExecutor, sb squirrel.StatementBuilderType) *Repository {
	return &Repository{db: db, sb: sb}
}

// Create сохраняет маршрут без ростера (ростер хранится в people)
func (r *Repository) Create(ctx context.Context, route *domain.Route) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Insert("routes").
		Columns("number", "bus_number", "driver", "capacity").
		Values(route.Number, route.BusNumber, route.Driver, route.Capacity).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// List возвращает маршруты без ростеров, по возрастанию номера
func (r *Repository) List(ctx context.Context) ([]domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select("number", "bus_number", "driver", "capacity").
		From("routes").
		OrderBy("number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		var route domain.Route
		if err := rows.Scan(&route.Number, &route.BusNumber, &route.Driver, &route.Capacity); err != nil {
			return nil, fmt.Errorf("%w: List - scan route: %v", ErrScanRow, err)
		}
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return routes, nil
}

// ListWithRosters возвращает все маршруты вместе с ростерами
func (r *Repository) ListWithRosters(ctx context.Context) ([]domain.Route, error) {
	routes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return routes, nil
	}

	rosters, err := r.loadRosters(ctx, squirrel.NotEq{"route_number": nil})
	if err != nil {
		return nil, err
	}

	for i := range routes {
		routes[i].Roster = rosters[routes[i].Number]
	}
	return routes, nil
}

// GetByNumber получает маршрут с ростером по номеру
func (r *Repository) GetByNumber(ctx context.Context, number int) (*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select("number", "bus_number", "driver", "capacity").
		From("routes").
		Where(squirrel.Eq{"number": number}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	var route domain.Route
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&route.Number,
		&route.BusNumber,
		&route.Driver,
		&route.Capacity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - scan route: %v", ErrScanRow, err)
	}

	rosters, err := r.loadRosters(ctx, squirrel.Eq{"route_number": number})
	if err != nil {
		return nil, err
	}
	route.Roster = rosters[number]

	return &route, nil
}

// Exists проверяет наличие маршрута
func (r *Repository) Exists(ctx context.Context, number int) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select("COUNT(*)").
		From("routes").
		Where(squirrel.Eq{"number": number}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: Exists - scan count: %v", ErrScanRow, err)
	}
	return count > 0, nil
}

// loadRosters читает пассажиров, сгруппированных по маршруту, в порядке ростера.
// Дата рождения не выбирается.
func (r *Repository) loadRosters(ctx context.Context, where squirrel.Sqlizer) (map[int][]domain.Person, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select(rosterColumns...).
		From("people").
		Where(where).
		OrderBy("route_number ASC", "roster_position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadRosters - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadRosters - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rosters := make(map[int][]domain.Person)
	for rows.Next() {
		var (
			p           domain.Person
			role        string
			gender      sql.NullString
			paid        sql.NullBool
			seatNumber  sql.NullInt64
			routeNumber int
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &role, &gender, &paid, &seatNumber, &routeNumber); err != nil {
			return nil, fmt.Errorf("%w: loadRosters - scan person: %v", ErrScanRow, err)
		}

		p.Role = domain.Role(role)
		if gender.Valid {
			g := domain.Gender(gender.String)
			p.Gender = &g
		}
		if paid.Valid {
			v := paid.Bool
			p.Paid = &v
		}
		if seatNumber.Valid {
			n := int(seatNumber.Int64)
			p.SeatNumber = &n
		}

		rosters[routeNumber] = append(rosters[routeNumber], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadRosters - iterate rows: %v", ErrScanRow, err)
	}

	return rosters, nil
}
