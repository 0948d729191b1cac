package routesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
)

const (
	// maxErrorBody сколько байт тела ответа включать в текст ошибки
	maxErrorBody = 512

	// maxResponseBody больше этого ответ не читается
	maxResponseBody = 1 << 20
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type apiResult interface {
	result() (bool, string)
}

// Client клиент HTTP API сервиса рассадки
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Login проверяет учетные данные, password - дата рождения
func (c *Client) Login(ctx context.Context, email, password string, role domain.Role) (*domain.Person, error) {
	var resp loginResponse
	body := loginRequest{Email: email, Password: password, Role: string(role)}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}

	p := resp.User.toDomain()
	return &p, nil
}

// ListRoutes получает маршруты без ростеров
func (c *Client) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	var resp routesResponse
	if err := c.do(ctx, http.MethodGet, "/routes", nil, &resp); err != nil {
		return nil, err
	}

	routes := make([]domain.Route, 0, len(resp.Routes))
	for _, r := range resp.Routes {
		routes = append(routes, r.toDomain())
	}
	return routes, nil
}

// Overview получает сводку заполненности по всем маршрутам
func (c *Client) Overview(ctx context.Context) ([]domain.RouteSummary, error) {
	var resp overviewResponse
	if err := c.do(ctx, http.MethodGet, "/routes/admin/overview", nil, &resp); err != nil {
		return nil, err
	}

	summaries := make([]domain.RouteSummary, 0, len(resp.Overview))
	for _, s := range resp.Overview {
		summaries = append(summaries, s.toDomain())
	}
	return summaries, nil
}

// RouteDetail получает карточку маршрута
func (c *Client) RouteDetail(ctx context.Context, number int) (*domain.RouteDetail, error) {
	var resp routeDetailResponse
	if err := c.do(ctx, http.MethodGet, "/routes/"+strconv.Itoa(number), nil, &resp); err != nil {
		return nil, err
	}

	attendance, err := attendanceToDomain(resp.Route.Attendance)
	if err != nil {
		return nil, fmt.Errorf("%w: RouteDetail - bad attendance date: %v", ErrTransport, err)
	}

	return &domain.RouteDetail{
		Number:     resp.Route.Number,
		BusNumber:  resp.Route.BusNumber,
		Driver:     resp.Route.Driver,
		Capacity:   resp.Route.Capacity,
		Staff:      peopleToDomain(resp.Route.Staff),
		Students:   peopleToDomain(resp.Route.Students),
		Attendance: attendance,
	}, nil
}

// Attendance получает последние limit отметок; limit <= 0 - значение сервера по умолчанию
func (c *Client) Attendance(ctx context.Context, number int, limit int) ([]domain.AttendanceRecord, error) {
	path := "/routes/" + strconv.Itoa(number) + "/attendance"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}

	var resp attendanceResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	records, err := attendanceToDomain(resp.Attendance)
	if err != nil {
		return nil, fmt.Errorf("%w: Attendance - bad date: %v", ErrTransport, err)
	}
	return records, nil
}

// SubmitAttendance отправляет отметку; нулевая дата - сегодня по часам сервера
func (c *Client) SubmitAttendance(ctx context.Context, number int, date time.Time, count int) (*domain.AttendanceRecord, error) {
	body := submitAttendanceRequest{Count: count}
	if !date.IsZero() {
		body.Date = date.Format(domain.DateFormat)
	}

	var resp submitAttendanceResponse
	if err := c.do(ctx, http.MethodPost, "/routes/"+strconv.Itoa(number)+"/attendance", body, &resp); err != nil {
		return nil, err
	}

	rec, err := resp.Record.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: SubmitAttendance - bad date: %v", ErrTransport, err)
	}
	return &rec, nil
}

// do выполняет запрос и разбирает ответ в out.
// Не 2xx или не JSON - ErrTransport с текстом ответа, success:false - ErrRequestFailed.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out apiResult) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody+1))
	if err != nil {
		return fmt.Errorf("%w: %s %s: failed to read body: %v", ErrTransport, method, path, err)
	}
	if len(raw) > maxResponseBody {
		return fmt.Errorf("%w: %s %s: response body exceeds %d bytes", ErrTransport, method, path, maxResponseBody)
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("%s %s - unexpected status %d", method, path, resp.StatusCode)
		return fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, errorText(raw, isJSON, resp.Status))
	}
	if !isJSON {
		return fmt.Errorf("%w: expected JSON, got %q: %s", ErrTransport, resp.Header.Get("Content-Type"), errorText(raw, false, resp.Status))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrTransport, err)
	}
	if ok, msg := out.result(); !ok {
		return fmt.Errorf("%w: %s", ErrRequestFailed, msg)
	}
	return nil
}

// errorText достает сообщение сервера: поле message из JSON или сам текст ответа
func errorText(raw []byte, isJSON bool, status string) string {
	if isJSON {
		var env envelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
			return env.Message
		}
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return status
	}
	if len(text) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text
}
