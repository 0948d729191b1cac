package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	"github.com/m04kA/SMC-BusSeating/pkg/dbmetrics"
)

// Repository журнал посещаемости. Записи только добавляются: методов изменения
// и удаления нет. Порядок записей задает автоинкрементный id, а не дата.
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor, sb squirrel.StatementBuilderType) *Repository {
	return &Repository{db: db, sb: sb}
}

// Append добавляет запись в конец журнала маршрута
func (r *Repository) Append(ctx context.Context, routeNumber int, record domain.AttendanceRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Insert("attendance").
		Columns("route_number", "record_date", "headcount").
		Values(routeNumber, record.DateString(), record.Count).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// Recent возвращает последние limit добавленных записей, от новых к старым
func (r *Repository) Recent(ctx context.Context, routeNumber int, limit int) ([]domain.AttendanceRecord, error) {
	if limit <= 0 {
		return []domain.AttendanceRecord{}, nil
	}
	records := make([]domain.AttendanceRecord, 0, limit)

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select("record_date", "headcount").
		From("attendance").
		Where(squirrel.Eq{"route_number": routeNumber}).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Recent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Recent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			dateStr string
			record  domain.AttendanceRecord
		)
		if err := rows.Scan(&dateStr, &record.Count); err != nil {
			return nil, fmt.Errorf("%w: Recent - scan record: %v", ErrScanRow, err)
		}

		record.Date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: Recent - parse date %q: %v", ErrScanRow, dateStr, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Recent - iterate rows: %v", ErrScanRow, err)
	}

	return records, nil
}
