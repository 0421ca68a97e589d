package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"lancontrol/internal/logs"
	"lancontrol/internal/models"
)

// Recoverer перехватывает панику в обработчике, пишет лог со стеком
// и отвечает 500 в формате application/problem+json.
// Если detailed() == true (режим --debug), в ответ попадают паника и стек.
func Recoverer(detailed func() bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				reqid := GetRequestID(r)
				stack := string(debug.Stack())
				logs.Logger.WithFields(logrus.Fields{
					"reqid":  reqid,
					"uri":    r.RequestURI,
					"method": r.Method,
				}).Errorf("panic: %v\nstack:\n%s", rec, stack)

				extra := map[string]any{"reqid": reqid}
				detail := "unexpected server error (see logs by reqid)"
				if detailed != nil && detailed() {
					detail = fmt.Sprint(rec)
					extra["stack"] = stack
				}
				models.WriteProblem(w, r, http.StatusInternalServerError, "Internal Server Error", detail, extra)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
