package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"

	"github.com/mihrab-app/mihrab/internal/xhttp"
)

const gzipEncoding = "gzip"

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

type gzipResponseWriter struct {
	http.ResponseWriter
	writer *gzip.Writer
}

var _ http.ResponseWriter = (*gzipResponseWriter)(nil)

func (g *gzipResponseWriter) Write(b []byte) (int, error) {
	return g.writer.Write(b)
}

func (g *gzipResponseWriter) Flush() {
	_ = g.writer.Flush()
	if flusher, ok := g.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (g *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return g.ResponseWriter
}

// Gzip compresses responses for clients that accept it. Content-Length is
// dropped since the compressed size is unknown up front.
func Gzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !clientAcceptsGzip(r) {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set(xhttp.ContentEncoding, gzipEncoding)

		gw := gzipWriterPool.Get().(*gzip.Writer)
		gw.Reset(w)
		defer func() {
			_ = gw.Close()
			gzipWriterPool.Put(gw)
		}()

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, writer: gw}, r)
	})
}

func clientAcceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), gzipEncoding)
}
