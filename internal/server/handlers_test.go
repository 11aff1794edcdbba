package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/mihrab-app/mihrab/internal/prayer"
	"github.com/mihrab-app/mihrab/internal/timetable"
)

type stubSource struct{}

func (stubSource) Times(_ context.Context, date time.Time) (timetable.DayTimes, error) {
	day := timetable.Midnight(date, time.UTC)
	times := make(map[prayer.Name]time.Time, len(prayer.Order))
	for i, name := range prayer.Order {
		times[name] = day.Add(time.Duration(5+3*i) * time.Hour)
	}
	return timetable.DayTimes{Date: day, Times: times, Hijri: "25 Safar 1448 AH"}, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHandler(now time.Time) *Handler {
	h := NewHandler(timetable.NewLoader(stubSource{}, time.UTC), time.UTC)
	h.now = func() time.Time { return now }
	return h
}

func TestHandleTimetable(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	h := testHandler(now)

	req := httptest.NewRequest(http.MethodGet, "/v1/timetable", nil)
	rec := httptest.NewRecorder()
	h.HandleTimetable(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp timetableResponse
	if err := go_json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Date != "2026-03-14" {
		t.Errorf("date = %q, want 2026-03-14", resp.Date)
	}
	if resp.Hijri != "25 Safar 1448 AH" {
		t.Errorf("hijri = %q", resp.Hijri)
	}
	if len(resp.Prayers) != 6 {
		t.Fatalf("len(prayers) = %d, want 6", len(resp.Prayers))
	}
	if resp.Prayers[0].Name != "fajr" || resp.Prayers[0].Clock != "05:00" {
		t.Errorf("first prayer = %+v, want fajr at 05:00", resp.Prayers[0])
	}
}

func TestHandleTimetableExplicitDate(t *testing.T) {
	t.Parallel()

	h := testHandler(time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/v1/timetable?date=2026-04-02", nil)
	rec := httptest.NewRecorder()
	h.HandleTimetable(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp timetableResponse
	if err := go_json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Date != "2026-04-02" {
		t.Errorf("date = %q, want 2026-04-02", resp.Date)
	}
}

func TestHandleTimetableBadDate(t *testing.T) {
	t.Parallel()

	h := testHandler(time.Now())

	req := httptest.NewRequest(http.MethodGet, "/v1/timetable?date=04-02-2026", nil)
	rec := httptest.NewRecorder()
	h.HandleTimetable(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleNext(t *testing.T) {
	t.Parallel()

	// 13:55, five minutes before asr at 14:00
	now := time.Date(2026, time.March, 14, 13, 55, 0, 0, time.UTC)
	h := testHandler(now)

	req := httptest.NewRequest(http.MethodGet, "/v1/next", nil)
	rec := httptest.NewRecorder()
	h.HandleNext(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp nextResponse
	if err := go_json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Next.Name != "asr" {
		t.Errorf("next = %q, want asr", resp.Next.Name)
	}
	if resp.Next.Tomorrow {
		t.Error("next marked as tomorrow")
	}
	if resp.Current != "dhuhr" {
		t.Errorf("current = %q, want dhuhr", resp.Current)
	}
	if resp.Count.HHMMSS != "00:05:00" {
		t.Errorf("countdown = %q, want 00:05:00", resp.Count.HHMMSS)
	}
	if resp.Count.Urgent {
		t.Error("countdown urgent at exactly five minutes")
	}
	if len(resp.Prayers) != 6 {
		t.Errorf("len(prayers) = %d, want 6", len(resp.Prayers))
	}
}

func TestHandleNextAfterIsha(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 14, 23, 30, 0, 0, time.UTC)
	h := testHandler(now)

	req := httptest.NewRequest(http.MethodGet, "/v1/next", nil)
	rec := httptest.NewRecorder()
	h.HandleNext(rec, req)

	var resp nextResponse
	if err := go_json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Next.Name != "fajr" || !resp.Next.Tomorrow {
		t.Errorf("next = %+v, want tomorrow's fajr", resp.Next)
	}
	if resp.Current != "isha" {
		t.Errorf("current = %q, want isha", resp.Current)
	}
}

func TestHandleSurahs(t *testing.T) {
	t.Parallel()

	h := testHandler(time.Now())

	req := httptest.NewRequest(http.MethodGet, "/v1/surahs", nil)
	rec := httptest.NewRecorder()
	h.HandleSurahs(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp []surahResponse
	if err := go_json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 114 {
		t.Errorf("len(surahs) = %d, want 114", len(resp))
	}
}

func TestHandleSurah(t *testing.T) {
	t.Parallel()

	h := testHandler(time.Now())

	tests := []struct {
		name        string
		number      string
		wantStatus  int
		wantBundled bool
	}{
		{name: "bundled text", number: "1", wantStatus: http.StatusOK, wantBundled: true},
		{name: "metadata only", number: "2", wantStatus: http.StatusOK, wantBundled: false},
		{name: "unknown", number: "300", wantStatus: http.StatusNotFound},
		{name: "not a number", number: "abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/v1/surahs/"+tt.number, nil)
			req.SetPathValue("number", tt.number)
			rec := httptest.NewRecorder()
			h.HandleSurah(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp surahDetailResponse
			if err := go_json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.TextBundled != tt.wantBundled {
				t.Errorf("text_bundled = %v, want %v", resp.TextBundled, tt.wantBundled)
			}
			if tt.wantBundled && len(resp.Text) != resp.Verses {
				t.Errorf("len(text) = %d, metadata says %d", len(resp.Text), resp.Verses)
			}
		})
	}
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return context.DeadlineExceeded }

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func TestHandleHealth(t *testing.T) {
	t.Parallel()

	logger := newTestLogger()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	HandleHealth(okPinger{}, logger)(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("healthy status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	HandleHealth(failingPinger{}, logger)(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("degraded status = %d, want 503", rec.Code)
	}
}
