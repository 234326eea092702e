package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, jwtSecret string) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestLogger)
	if jwtSecret != "" {
		r.Use(BearerAuth(jwtSecret))
	}
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("[pos-svc] POS service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
