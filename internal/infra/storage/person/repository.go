package person

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	"github.com/m04kA/SMC-BusSeating/pkg/dbmetrics"
)

// Repository репозиторий студентов и сотрудников
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor, sb squirrel.StatementBuilderType) *Repository {
	return &Repository{db: db, sb: sb}
}

// Create сохраняет человека. routeNumber == nil - человек не закреплен за маршрутом,
// position - позиция в ростере маршрута.
func (r *Repository) Create(ctx context.Context, p *domain.Person, routeNumber *int, position int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Insert("people").
		Columns(
			"id",
			"name",
			"email",
			"email_key",
			"date_of_birth",
			"role",
			"gender",
			"paid",
			"seat_number",
			"route_number",
			"roster_position",
		).
		Values(
			p.ID,
			p.Name,
			p.Email,
			domain.NormalizeEmail(p.Email),
			p.DateOfBirth,
			string(p.Role),
			nullableGender(p.Gender),
			nullableBool(p.Paid),
			nullableInt(p.SeatNumber),
			nullableInt(routeNumber),
			position,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// FindByRoleAndEmail ищет человека среди людей с ролью role по email без учета регистра.
// Сравнение идет по email_key, который считается в Go: LOWER() в sqlite знает только ASCII.
// Возвращает запись вместе с датой рождения - она нужна для проверки пароля.
func (r *Repository) FindByRoleAndEmail(ctx context.Context, role domain.Role, email string) (*domain.Person, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select(
		"id",
		"name",
		"email",
		"date_of_birth",
		"role",
		"gender",
		"paid",
		"seat_number",
	).
		From("people").
		Where(squirrel.Eq{"role": string(role)}).
		Where(squirrel.Eq{"email_key": domain.NormalizeEmail(email)}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByRoleAndEmail - build select query: %v", ErrBuildQuery, err)
	}

	var (
		p          domain.Person
		roleStr    string
		gender     sql.NullString
		paid       sql.NullBool
		seatNumber sql.NullInt64
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.DateOfBirth,
		&roleStr,
		&gender,
		&paid,
		&seatNumber,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByRoleAndEmail - scan person: %v", ErrScanRow, err)
	}

	p.Role = domain.Role(roleStr)
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

	return &p, nil
}

func nullableGender(g *domain.Gender) interface{} {
	if g == nil {
		return nil
	}
	return string(*g)
}

func nullableBool(b *bool) interface{} {
	if b == nil {
		return nil
	}
	return *b
}

func nullableInt(n *int) interface{} {
	if n == nil {
		return nil
	}
	return int64(*n)
}
