package handler

import (
	"net/http"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, response{
			Success: true,
			Status:  "OK",
			Message: "E-commerce Dashboard API is running",
		})
	})
}

// NotFoundHandler responde rotas inexistentes com o envelope padrão
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusNotFound, response{Success: false, Message: "Route not found"})
	})
}
