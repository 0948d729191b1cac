package submit_attendance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BusSeating/internal/domain"
	"github.com/m04kA/SMC-BusSeating/internal/service/attendance"
)

type fakeAttendance struct {
	gotRoute int
	gotDate  time.Time
	gotCount int
}

func (f *fakeAttendance) Append(_ context.Context, routeNumber int, date time.Time, count int) (*domain.AttendanceRecord, error) {
	f.gotRoute, f.gotDate, f.gotCount = routeNumber, date, count
	if count < 0 {
		return nil, attendance.ErrInvalidAttendance
	}
	if routeNumber != 3 {
		return nil, attendance.ErrRouteNotFound
	}
	if date.IsZero() {
		date = time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	}
	return &domain.AttendanceRecord{Date: date, Count: count}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, path, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/routes/{number:[0-9]+}/attendance", h.Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{name: "created", path: "/routes/3/attendance", body: `{"date":"2024-03-01","count":38}`, wantStatus: http.StatusCreated},
		{name: "created without date", path: "/routes/3/attendance", body: `{"count":0}`, wantStatus: http.StatusCreated},
		{name: "negative count", path: "/routes/3/attendance", body: `{"count":-2}`, wantStatus: http.StatusBadRequest},
		{name: "missing count", path: "/routes/3/attendance", body: `{"date":"2024-03-01"}`, wantStatus: http.StatusBadRequest},
		{name: "bad date", path: "/routes/3/attendance", body: `{"date":"01/03/2024","count":1}`, wantStatus: http.StatusBadRequest},
		{name: "unknown route", path: "/routes/8/attendance", body: `{"count":1}`, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeAttendance{}, nopLogger{}), tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Handle_ResponseBody(t *testing.T) {
	svc := &fakeAttendance{}
	rec := serve(NewHandler(svc, nopLogger{}), "/routes/3/attendance", `{"date":"2024-03-01","count":38}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SubmitAttendanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "2024-03-01", resp.Record.Date)
	assert.Equal(t, 38, resp.Record.Count)
	assert.Equal(t, 3, svc.gotRoute)
}
