package main

import (
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const readHeaderTimeout = 10 * time.Second

func newServer(dir string, port int, log *zap.Logger) *http.Server {
	return &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           newHandler(dir, log),
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// newHandler serves dir read-only.
func newHandler(dir string, log *zap.Logger) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		log.Debug("Serving", zap.String("path", r.URL.Path))
		files.ServeHTTP(w, r)
	})
}
