// Package seed загружает маршруты и пассажиров из TOML-фикстуры в пустую базу.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

var ErrInvalidFixture = errors.New("seed: invalid fixture")

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) error
	List(ctx context.Context) ([]domain.Route, error)
}

// PersonRepository интерфейс репозитория людей
type PersonRepository interface {
	Create(ctx context.Context, p *domain.Person, routeNumber *int, position int) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Fixture содержимое файла фикстуры
type Fixture struct {
	Routes []RouteFixture  `toml:"routes"`
	People []PersonFixture `toml:"people"`
}

type RouteFixture struct {
	Number    int    `toml:"number"`
	BusNumber string `toml:"bus_number"`
	Driver    string `toml:"driver"`
	Capacity  int    `toml:"capacity"`
}

// PersonFixture пассажир; порядок в файле задает порядок ростера маршрута
type PersonFixture struct {
	ID          string `toml:"id"` // пусто - сгенерировать UUID
	Name        string `toml:"name"`
	Email       string `toml:"email"`
	DateOfBirth string `toml:"dob"`
	Role        string `toml:"role"`
	Gender      string `toml:"gender"`
	Paid        *bool  `toml:"paid"`
	SeatNumber  *int   `toml:"seat_number"`
	Route       *int   `toml:"route"`
}

// LoadFile читает и проверяет фикстуру
func LoadFile(path string) (*Fixture, error) {
	var f Fixture
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidFixture, path, err)
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Parse разбирает фикстуру из строки
func Parse(data string) (*Fixture, error) {
	var f Fixture
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidFixture, err)
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// applyDefaults автобус без указанной вместимости считается стандартным
func (f *Fixture) applyDefaults() {
	for i := range f.Routes {
		if f.Routes[i].Capacity == 0 {
			f.Routes[i].Capacity = domain.DefaultCapacity
		}
	}
}

// Validate проверяет ссылки на маршруты, роли и вместимость
func (f *Fixture) Validate() error {
	routes := make(map[int]*domain.Route, len(f.Routes))
	for _, r := range f.Routes {
		if _, dup := routes[r.Number]; dup {
			return fmt.Errorf("%w: duplicate route %d", ErrInvalidFixture, r.Number)
		}
		if r.Capacity > domain.MaxCapacity {
			return fmt.Errorf("%w: route %d: capacity %d exceeds %d", ErrInvalidFixture, r.Number, r.Capacity, domain.MaxCapacity)
		}
		routes[r.Number] = &domain.Route{Number: r.Number, Capacity: r.Capacity}
	}

	for i, p := range f.People {
		if p.Name == "" || p.Email == "" || p.DateOfBirth == "" {
			return fmt.Errorf("%w: person #%d: name, email and dob are required", ErrInvalidFixture, i)
		}
		if !domain.Role(p.Role).IsValid() {
			return fmt.Errorf("%w: person %q: unknown role %q", ErrInvalidFixture, p.Email, p.Role)
		}
		if p.Route == nil {
			continue
		}
		route, ok := routes[*p.Route]
		if !ok {
			return fmt.Errorf("%w: person %q: unknown route %d", ErrInvalidFixture, p.Email, *p.Route)
		}
		route.Roster = append(route.Roster, domain.Person{})
	}

	for _, route := range routes {
		if err := route.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFixture, err)
		}
	}
	return nil
}

// Loader записывает фикстуру в базу
type Loader struct {
	routeRepo  RouteRepository
	personRepo PersonRepository
	txManager  TransactionManager
	logger     Logger
}

func NewLoader(routeRepo RouteRepository, personRepo PersonRepository, txManager TransactionManager, logger Logger) *Loader {
	return &Loader{
		routeRepo:  routeRepo,
		personRepo: personRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Apply записывает фикстуру одной транзакцией. Если маршруты уже есть, ничего не делает.
func (l *Loader) Apply(ctx context.Context, f *Fixture) error {
	existing, err := l.routeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: list routes: %w", err)
	}
	if len(existing) > 0 {
		l.logger.Info("Seed: %d routes already present, skipping", len(existing))
		return nil
	}

	err = l.txManager.Do(ctx, func(ctx context.Context) error {
		for _, r := range f.Routes {
			route := &domain.Route{
				Number:    r.Number,
				BusNumber: r.BusNumber,
				Driver:    r.Driver,
				Capacity:  r.Capacity,
			}
			if err := l.routeRepo.Create(ctx, route); err != nil {
				return fmt.Errorf("route %d: %w", r.Number, err)
			}
		}

		positions := make(map[int]int)
		for _, p := range f.People {
			person := p.toDomain()

			position := 0
			if p.Route != nil {
				position = positions[*p.Route]
				positions[*p.Route]++
			}
			if err := l.personRepo.Create(ctx, &person, p.Route, position); err != nil {
				return fmt.Errorf("person %q: %w", p.Email, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	l.logger.Info("Seed: loaded %d routes and %d people", len(f.Routes), len(f.People))
	return nil
}

func (p PersonFixture) toDomain() domain.Person {
	person := domain.Person{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		DateOfBirth: p.DateOfBirth,
		Role:        domain.Role(p.Role),
		Paid:        p.Paid,
		SeatNumber:  p.SeatNumber,
	}
	if person.ID == "" {
		person.ID = uuid.NewString()
	}
	if p.Gender != "" {
		g := domain.Gender(p.Gender)
		person.Gender = &g
	}
	return person
}
