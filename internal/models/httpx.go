package models

import (
	"encoding/json"
	"net/http"
)

// Problem — ответ об ошибке в стиле RFC 7807.
type Problem struct {
	Type     string         `json:"type,omitempty"`
	Title    string         `json:"title"`
	Status   int            `json:"status"`
	Detail   string         `json:"detail,omitempty"`
	Instance string         `json:"instance,omitempty"` // путь запроса
	Extra    map[string]any `json:"extra,omitempty"`
}

// WriteProblem пишет application/problem+json. r может быть nil.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, title, detail string, extra map[string]any) {
	p := Problem{
		Title:  title,
		Status: status,
		Detail: detail,
		Extra:  extra,
	}
	if r != nil {
		p.Instance = r.URL.Path
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(p)
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteText(w http.ResponseWriter, status int, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(s))
}
