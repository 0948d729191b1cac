// Package overview держит экран администратора согласованным с сервером:
// сводка загружается один раз, посещаемость выбранного маршрута опрашивается
// периодически. Результаты, пришедшие после смены выбора, отбрасываются.
package overview

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	"github.com/m04kA/SMC-BusSeating/internal/occupancy"
	"github.com/m04kA/SMC-BusSeating/pkg/poller"
)

// Options параметры контроллера
type Options struct {
	PollInterval     time.Duration
	RecentAttendance int              // 0 - значение сервера по умолчанию
	OnChange         func(view View) // вызывается вне блокировки после каждого изменения
}

// Controller синхронизирует снимок экрана с сервером.
//
// Все состояние под mu, сетевые вызовы выполняются без блокировки. token
// увеличивается при каждом Select, ClearSelection и Close; асинхронный результат
// применяется, только если token не изменился с момента его запуска.
type Controller struct {
	source Source
	opts   Options
	logger Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	view   View
	token  uint64
	poll   *poller.Handle
	closed bool
}

// NewController создает контроллер. Ничего не загружает до LoadOverview/Select.
func NewController(source Source, opts Options, logger Logger) *Controller {
	if opts.PollInterval <= 0 {
		opts.PollInterval = domain.DefaultPollInterval
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Controller{
		source: source,
		opts:   opts,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		view: View{
			Overview:   OverviewState{Status: StatusIdle},
			Detail:     DetailState{Status: StatusIdle},
			Attendance: AttendanceState{Status: StatusIdle},
		},
	}
}

// LoadOverview загружает сводку. Ошибка попадает в снимок и возвращается.
func (c *Controller) LoadOverview(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.view.Overview.Status = StatusLoading
	c.view.Overview.Error = ""
	c.mu.Unlock()
	c.notify()

	rows, err := c.source.Overview(ctx)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if err != nil {
		c.logger.Warn("LoadOverview: %v", err)
		c.view.Overview.Status = StatusFailed
		c.view.Overview.Error = err.Error()
	} else {
		rows = occupancy.SortSummaries(rows)
		c.view.Overview = OverviewState{
			Status: StatusReady,
			Rows:   rows,
			Fleet:  occupancy.FleetTotals(rows),
		}
	}
	c.mu.Unlock()
	c.notify()

	return err
}

// Select выбирает маршрут: останавливает прежний опрос, загружает карточку
// и запускает опрос посещаемости. Возвращает ErrSuperseded, если выбор успел
// смениться до прихода карточки.
func (c *Controller) Select(ctx context.Context, number int) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.token++
	token := c.token
	c.stopPollLocked()

	c.view.Detail = DetailState{Status: StatusLoading, RouteNumber: number}
	c.view.Attendance = AttendanceState{Status: StatusLoading, RouteNumber: number}
	c.poll = poller.Start(c.ctx, c.opts.PollInterval, func(pollCtx context.Context) {
		c.pollAttendance(pollCtx, token, number)
	})
	c.mu.Unlock()
	c.notify()

	detail, err := c.source.RouteDetail(ctx, number)

	c.mu.Lock()
	if c.token != token {
		c.mu.Unlock()
		return ErrSuperseded
	}
	if err != nil {
		c.logger.Warn("Select: route=%d: %v", number, err)
		c.view.Detail.Status = StatusFailed
		c.view.Detail.Error = err.Error()
	} else {
		c.view.Detail.Status = StatusReady
		c.view.Detail.Detail = detail
		// карточка приходит с последними отметками; опрос их не перетирает
		if !c.view.Attendance.HasData {
			c.view.Attendance.Status = StatusReady
			c.view.Attendance.Records = detail.Attendance
		}
	}
	c.mu.Unlock()
	c.notify()

	return err
}

// ClearSelection снимает выбор и останавливает опрос
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	c.token++
	c.stopPollLocked()
	c.view.Detail = DetailState{Status: StatusIdle}
	c.view.Attendance = AttendanceState{Status: StatusIdle}
	c.mu.Unlock()
	c.notify()
}

// Close останавливает опрос. Результаты, которые придут позже, игнорируются.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.token++
	c.stopPollLocked()
	c.mu.Unlock()

	c.cancel()
}

// Snapshot возвращает глубокую копию текущего состояния
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.clone()
}

func (c *Controller) pollAttendance(ctx context.Context, token uint64, number int) {
	// каждый тик проходит через Loading, записи при этом остаются на экране
	c.mu.Lock()
	if c.token != token {
		c.mu.Unlock()
		return
	}
	c.view.Attendance.Status = StatusLoading
	c.mu.Unlock()
	c.notify()

	records, err := c.source.Attendance(ctx, number, c.opts.RecentAttendance)

	c.mu.Lock()
	if c.token != token {
		c.mu.Unlock()
		return
	}
	if err != nil {
		// прежние записи остаются на экране, ошибка не показывается
		c.logger.Warn("pollAttendance: route=%d: %v", number, err)
		if c.view.Attendance.HasData || c.view.Detail.Status == StatusReady {
			c.view.Attendance.Status = StatusReady
		} else {
			c.view.Attendance.Status = StatusFailed
		}
	} else {
		c.view.Attendance.Status = StatusReady
		c.view.Attendance.Records = records
		c.view.Attendance.HasData = true
	}
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) stopPollLocked() {
	if c.poll != nil {
		c.poll.Stop()
		c.poll = nil
	}
}

func (c *Controller) notify() {
	if c.opts.OnChange == nil {
		return
	}
	c.opts.OnChange(c.Snapshot())
}
