// Package rabbitmq публикует события посещаемости в topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

// RoutingKeyAttendanceSubmitted ключ маршрутизации события о новой отметке
const RoutingKeyAttendanceSubmitted = "attendance.submitted"

const (
	publishTimeout = 5 * time.Second
	confirmBuffer  = 16
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// attendanceSubmittedMessage тело события
type attendanceSubmittedMessage struct {
	RouteNumber int    `json:"routeNumber"`
	Date        string `json:"date"` // YYYY-MM-DD
	Count       int    `json:"count"`
	SubmittedAt string `json:"submittedAt"` // RFC3339
}

// Publisher публикует события с подтверждением доставки до брокера.
// При закрытом канале один раз переподключается.
type Publisher struct {
	url      string
	exchange string
	logger   Logger

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	confirms chan amqp.Confirmation
}

// NewPublisher подключается к брокеру и объявляет durable topic exchange
func NewPublisher(url, exchange string, logger Logger) (*Publisher, error) {
	p := &Publisher{
		url:      url,
		exchange: exchange,
		logger:   logger,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connectLocked(); err != nil {
		return nil, err
	}
	return p, nil
}

// PublishAttendanceSubmitted публикует событие о принятой отметке посещаемости
func (p *Publisher) PublishAttendanceSubmitted(ctx context.Context, event domain.AttendanceSubmitted) error {
	msg, err := newAttendanceMessage(event)
	if err != nil {
		return fmt.Errorf("%w: encode event: %v", ErrPublish, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() || p.ch == nil || p.ch.IsClosed() {
		p.logger.Warn("rabbitmq: channel closed, reconnecting")
		p.closeLocked()
		if err := p.connectLocked(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	tag := p.ch.GetNextPublishSeqNo()
	if err := p.ch.PublishWithContext(ctx, p.exchange, RoutingKeyAttendanceSubmitted, false, false, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	return awaitConfirm(ctx, p.confirms, tag, p.logger)
}

// awaitConfirm ждет подтверждение с тегом tag. Подтверждения прежних публикаций,
// которые не дождались своего ответа, пропускаются.
func awaitConfirm(ctx context.Context, confirms <-chan amqp.Confirmation, tag uint64, logger Logger) error {
	for {
		select {
		case c, ok := <-confirms:
			if !ok {
				return fmt.Errorf("%w: confirm channel closed", ErrPublish)
			}
			if c.DeliveryTag < tag {
				logger.Warn("rabbitmq: late confirm skipped, tag=%d ack=%t", c.DeliveryTag, c.Ack)
				continue
			}
			if c.DeliveryTag != tag {
				return fmt.Errorf("%w: unexpected confirm tag=%d, want %d", ErrPublish, c.DeliveryTag, tag)
			}
			if !c.Ack {
				return fmt.Errorf("%w: not acknowledged", ErrPublish)
			}
			return nil
		case <-ctx.Done():
			return fmt.Errorf("%w: waiting for confirm: %v", ErrPublish, ctx.Err())
		}
	}
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
	return nil
}

func (p *Publisher) connectLocked() error {
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(10 * time.Second),
	})
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("%w: declare exchange %q: %v", ErrConnect, p.exchange, err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("%w: enable confirms: %v", ErrConnect, err)
	}

	p.conn = conn
	p.ch = ch
	p.confirms = ch.NotifyPublish(make(chan amqp.Confirmation, confirmBuffer))
	p.logger.Info("rabbitmq: connected, exchange=%s", p.exchange)
	return nil
}

func (p *Publisher) closeLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
	p.confirms = nil
}

func newAttendanceMessage(event domain.AttendanceSubmitted) (amqp.Publishing, error) {
	body, err := json.Marshal(attendanceSubmittedMessage{
		RouteNumber: event.RouteNumber,
		Date:        event.Record.DateString(),
		Count:       event.Record.Count,
		SubmittedAt: event.SubmittedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return amqp.Publishing{}, err
	}

	return amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    event.SubmittedAt,
		Type:         RoutingKeyAttendanceSubmitted,
		Body:         body,
	}, nil
}

// NoopPublisher используется, когда брокер выключен в конфигурации
type NoopPublisher struct{}

func (NoopPublisher) PublishAttendanceSubmitted(context.Context, domain.AttendanceSubmitted) error {
	return nil
}
