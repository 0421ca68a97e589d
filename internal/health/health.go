package health

import (
	"net/http"

	"github.com/gorilla/mux"

	"lancontrol/internal/models"
)

// RegisterRoutes — liveness (/healthz) и readiness (/readyz).
// ready сообщает, принимает ли сервер соединения; nil — всегда готов.
func RegisterRoutes(r *mux.Router, ready func() bool) {
	r.HandleFunc("/healthz", liveness).Methods(http.MethodGet)
	r.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if ready != nil && !ready() {
			http.Error(w, "not serving", http.StatusServiceUnavailable)
			return
		}
		models.WriteText(w, http.StatusOK, "ok\n")
	}).Methods(http.MethodGet)
}

func liveness(w http.ResponseWriter, _ *http.Request) {
	models.WriteText(w, http.StatusOK, "ok\n")
}
