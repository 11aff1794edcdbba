package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mihrab-app/mihrab/internal/prayer"
	"github.com/mihrab-app/mihrab/internal/quran"
	"github.com/mihrab-app/mihrab/internal/timetable"
	"github.com/mihrab-app/mihrab/internal/xhttp"
	"github.com/mihrab-app/mihrab/internal/xslog"
)

const dateLayout = "2006-01-02"

type Handler struct {
	loader *timetable.Loader
	loc    *time.Location
	now    func() time.Time
}

func NewHandler(loader *timetable.Loader, loc *time.Location) *Handler {
	return &Handler{
		loader: loader,
		loc:    loc,
		now:    func() time.Time { return time.Now().In(loc) },
	}
}

type prayerTimeResponse struct {
	Name    string `json:"name"`
	Display string `json:"display"`
	Arabic  string `json:"arabic"`
	Time    string `json:"time"`
	Clock   string `json:"clock"`
}

type timetableResponse struct {
	Date    string               `json:"date"`
	Hijri   string               `json:"hijri,omitempty"`
	Prayers []prayerTimeResponse `json:"prayers"`
}

// HandleTimetable handles GET /v1/timetable requests. The optional date
// query parameter defaults to today in the configured timezone.
func (h *Handler) HandleTimetable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date := timetable.Midnight(h.now(), h.loc)
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, h.loc)
		if err != nil {
			xhttp.WriteError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	day, err := h.loader.Load(ctx, date)
	if err != nil {
		xslog.FromContext(ctx).ErrorContext(ctx, "failed to load timetable", xslog.Error(err))
		xhttp.WriteError(w, http.StatusBadGateway, "failed to load timetable")
		return
	}

	resp := timetableResponse{
		Date:    day.Date.Format(dateLayout),
		Hijri:   day.Hijri,
		Prayers: make([]prayerTimeResponse, 0, len(prayer.Order)),
	}
	for _, name := range prayer.Order {
		t := day.Time(name)
		resp.Prayers = append(resp.Prayers, prayerTimeResponse{
			Name:    string(name),
			Display: name.Display(),
			Arabic:  name.Arabic(),
			Time:    t.Format(time.RFC3339),
			Clock:   t.Format("15:04"),
		})
	}

	xhttp.WriteOK(w, resp)
}

type nextResponse struct {
	Now     string            `json:"now"`
	Current string            `json:"current"`
	Next    nextPrayer        `json:"next"`
	Prayers []snapshotPrayer  `json:"prayers"`
	Count   countdownResponse `json:"countdown"`
}

type nextPrayer struct {
	Name     string `json:"name"`
	Display  string `json:"display"`
	Time     string `json:"time"`
	Tomorrow bool   `json:"tomorrow"`
}

type snapshotPrayer struct {
	Name   string `json:"name"`
	Time   string `json:"time"`
	Passed bool   `json:"passed"`
	Next   bool   `json:"next"`
}

type countdownResponse struct {
	HHMMSS       string `json:"hhmmss"`
	Human        string `json:"human"`
	TotalSeconds int    `json:"total_seconds"`
	Urgent       bool   `json:"urgent"`
}

// HandleNext handles GET /v1/next requests: the upcoming prayer and the
// countdown to it, computed at request time.
func (h *Handler) HandleNext(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := h.now()

	day, err := h.loader.Load(ctx, now)
	if err != nil {
		xslog.FromContext(ctx).ErrorContext(ctx, "failed to load timetable", xslog.Error(err))
		xhttp.WriteError(w, http.StatusBadGateway, "failed to load timetable")
		return
	}

	snap := prayer.Compute(day, now)

	resp := nextResponse{
		Now:     snap.Now.Format(time.RFC3339),
		Current: string(snap.Current),
		Next: nextPrayer{
			Name:     string(snap.Next.Name),
			Display:  snap.Next.Name.Display(),
			Time:     snap.Next.Time.Format(time.RFC3339),
			Tomorrow: snap.NextIsTomorrow,
		},
		Prayers: make([]snapshotPrayer, 0, len(snap.Prayers)),
		Count: countdownResponse{
			HHMMSS:       snap.Countdown.HHMMSS(),
			Human:        snap.Countdown.Human(),
			TotalSeconds: snap.Countdown.TotalSeconds,
			Urgent:       snap.Countdown.IsUrgent,
		},
	}
	for _, p := range snap.Prayers {
		resp.Prayers = append(resp.Prayers, snapshotPrayer{
			Name:   string(p.Name),
			Time:   p.Time.Format(time.RFC3339),
			Passed: p.IsPassed,
			Next:   p.IsNext,
		})
	}

	xhttp.WriteOK(w, resp)
}

type surahResponse struct {
	Number     int    `json:"number"`
	Name       string `json:"name"`
	Arabic     string `json:"arabic"`
	Meaning    string `json:"meaning"`
	Verses     int    `json:"verses"`
	Revelation string `json:"revelation"`
}

// HandleSurahs handles GET /v1/surahs requests.
func (h *Handler) HandleSurahs(w http.ResponseWriter, r *http.Request) {
	surahs, err := quran.Surahs()
	if err != nil {
		ctx := r.Context()
		xslog.FromContext(ctx).ErrorContext(ctx, "failed to load corpus", xslog.Error(err))
		xhttp.Error(w, http.StatusInternalServerError)
		return
	}

	resp := make([]surahResponse, 0, len(surahs))
	for _, s := range surahs {
		resp = append(resp, newSurahResponse(s))
	}

	xhttp.WriteOK(w, resp)
}

type verseResponse struct {
	Number          int    `json:"number"`
	Arabic          string `json:"arabic"`
	Translation     string `json:"translation"`
	Transliteration string `json:"transliteration"`
}

type surahDetailResponse struct {
	surahResponse
	TextBundled bool            `json:"text_bundled"`
	Text        []verseResponse `json:"text,omitempty"`
}

// HandleSurah handles GET /v1/surahs/{number} requests. Verse text is
// included when the surah is part of the bundled corpus.
func (h *Handler) HandleSurah(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		xhttp.WriteError(w, http.StatusBadRequest, "invalid surah number")
		return
	}

	s, err := quran.SurahByNumber(number)
	if errors.Is(err, quran.ErrUnknownSurah) {
		xhttp.WriteError(w, http.StatusNotFound, "unknown surah")
		return
	}
	if err != nil {
		ctx := r.Context()
		xslog.FromContext(ctx).ErrorContext(ctx, "failed to load corpus", xslog.Error(err))
		xhttp.Error(w, http.StatusInternalServerError)
		return
	}

	resp := surahDetailResponse{surahResponse: newSurahResponse(s)}

	verses, err := quran.Verses(number)
	switch {
	case err == nil:
		resp.TextBundled = true
		resp.Text = make([]verseResponse, 0, len(verses))
		for _, v := range verses {
			resp.Text = append(resp.Text, verseResponse{
				Number:          v.Number,
				Arabic:          v.Arabic,
				Translation:     v.Translation,
				Transliteration: v.Transliteration,
			})
		}
	case errors.Is(err, quran.ErrTextNotBundled):
		// metadata only
	default:
		ctx := r.Context()
		xslog.FromContext(ctx).ErrorContext(ctx, "failed to load corpus", xslog.Error(err))
		xhttp.Error(w, http.StatusInternalServerError)
		return
	}

	xhttp.WriteOK(w, resp)
}

func newSurahResponse(s quran.Surah) surahResponse {
	return surahResponse{
		Number:     s.Number,
		Name:       s.Name,
		Arabic:     s.Arabic,
		Meaning:    s.Meaning,
		Verses:     s.Verses,
		Revelation: s.Revelation,
	}
}

// Pinger reports backend liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealth reports process and cache backend health.
func HandleHealth(backend Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		status := "ok"
		code := http.StatusOK
		if err := backend.Ping(ctx); err != nil {
			logger.ErrorContext(ctx, "cache backend unreachable", xslog.Error(err))
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		xhttp.WriteJSON(w, code, map[string]string{"status": status})
	}
}
