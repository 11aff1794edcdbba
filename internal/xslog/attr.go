package xslog

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/mihrab-app/mihrab/internal/version"
	"github.com/mihrab-app/mihrab/internal/xhttp"
)

const keyError = "error"

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func RequestMethod(r *http.Request) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, r.Method)
}

func RequestPath(r *http.Request) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, r.URL.Path)
}

func IP(ip string) slog.Attr {
	const ipKey = "ip"
	return slog.String(ipKey, ip)
}

func RequestIP(r *http.Request) slog.Attr {
	return IP(xhttp.GetRequestIP(r))
}

func RequestID(id string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, id)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Date(t time.Time) slog.Attr {
	const dateKey = "date"
	return slog.String(dateKey, t.Format("2006-01-02"))
}

func Prayer(name string) slog.Attr {
	const prayerKey = "prayer"
	return slog.String(prayerKey, name)
}

func Surah(number int) slog.Attr {
	const surahKey = "surah"
	return slog.Int(surahKey, number)
}
