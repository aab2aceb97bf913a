package httpapi

import (
	"log"
	"net/http"

	"menu-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter assembles the public and admin surfaces. The admin UI runs on a
// separate origin and uses PATCH/DELETE, so CORS is wide open here.
func NewRouter(h *Handler, auth service.AuthServiceInterface) http.Handler {
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(RequireAdmin(auth))
	h.RegisterAdminRoutes(admin)

	return cors.AllowAll().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("[menu-svc] listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
