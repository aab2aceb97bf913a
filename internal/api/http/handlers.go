package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"menu-svc/internal/domain"
	"menu-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu        service.MenuServiceInterface
	Catalog     service.CatalogServiceInterface
	Suggestions service.SuggestionServiceInterface
	Auth        service.AuthServiceInterface
	QR          service.QRGenerator
}

func NewHandler(menu service.MenuServiceInterface, catalog service.CatalogServiceInterface,
	suggestions service.SuggestionServiceInterface, auth service.AuthServiceInterface,
	qr service.QRGenerator) *Handler {
	return &Handler{Menu: menu, Catalog: catalog, Suggestions: suggestions, Auth: auth, QR: qr}
}

// RegisterRoutes wires the public surface; admin routes go through
// RegisterAdminRoutes behind the auth middleware.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")
	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/qrcode", h.getMenuQRCode).Methods("GET")
	r.HandleFunc("/api/suggestions/current", h.getCurrentSuggestions).Methods("GET")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeBody rejects malformed bodies and unknown fields so every request
// shape is validated before any store access.
func decodeBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var inUse *service.AllergenInUseError
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, service.ErrCodeExists):
		respondError(w, http.StatusConflict, "code_exists")
	case errors.As(err, &inUse):
		respondJSON(w, http.StatusConflict, map[string]interface{}{
			"error":            "allergen_in_use",
			"itemsUsing":       inUse.ItemsUsing,
			"supplementsUsing": inUse.SupplementsUsing,
		})
	default:
		log.Printf("[menu-svc] internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Menu.Menu(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) getMenuQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.QR.Generate()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "qr_generation_failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getCurrentSuggestions(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.Suggestions.Current()
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"sheet": sheet})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var payload domain.LoginPayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.Username == "" || payload.Password == "" {
		respondError(w, http.StatusBadRequest, "missing_credentials")
		return
	}

	token, err := h.Auth.Login(payload.Username, payload.Password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// logout is a no-op server-side: tokens are stateless, the client drops its
// copy.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
