package handlers

import (
	"compress/gzip"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

func (con *Controller) PanicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				con.sugar.Errorf("Error recovering from panic: %v", err)
				http.Error(res, "Error recovering from panic", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(res, req)
	})
}

// AuthenticateMiddleware resolves the caller's user id from the auth
// cookie, minting a fresh one for first-time visitors, and passes it
// down via the User-ID header.
func (con *Controller) AuthenticateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		uid, err := con.userService.GetUserIDFromCookie(req)
		if err != nil || uid == "" {
			uid = uuid.NewString()
		}
		req.Header.Set("User-ID", uid)

		next.ServeHTTP(res, req)
	})
}

func (con *Controller) LoggingMiddleware(next http.Handler) http.Handler {
	logFn := func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()

		responseData := &responseData{status: 0, size: 0}
		lw := loggingResponseWriter{
			ResponseWriter: res,
			responseData:   responseData,
		}
		next.ServeHTTP(&lw, req)

		duration := time.Since(start)
		con.sugar.Infoln(
			"uri", req.RequestURI,
			"method", req.Method,
			"status", responseData.status,
			"size", responseData.size,
			"duration", duration,
		)
		requestsTotal.WithLabelValues(req.Method).Inc()
	}

	return http.HandlerFunc(logFn)
}

func (con *Controller) GzipEncodeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(res, req)
			return
		}

		gz := gzip.NewWriter(res)
		defer gz.Close()

		res.Header().Set("Content-Encoding", "gzip")
		next.ServeHTTP(gzipWriter{ResponseWriter: res, Writer: gz}, req)
	})
}

func (con *Controller) GzipDecodeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") {
			gz, err := gzip.NewReader(req.Body)
			if err != nil {
				http.Error(res, "Bad request", http.StatusBadRequest)
				return
			}
			defer gz.Close()
			req.Body = gz
		}

		next.ServeHTTP(res, req)
	})
}
