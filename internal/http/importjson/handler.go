package importjson

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/costperday/costperday/internal/importer"
	"github.com/costperday/costperday/internal/item"
)

type Handler struct {
	importSvc *importer.Service
	itemSvc   *item.Service
}

func NewHandler(importSvc *importer.Service, itemSvc *item.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		itemSvc:   itemSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importArchive)
}

type importSuccessResponse struct {
	Imported int `json:"imported"`
}

// importArchive validates the uploaded archive in full before touching the
// store, then replaces the whole collection with its contents.
func (h *Handler) importArchive(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".json") {
		http.Error(w, "only .json files are accepted", http.StatusBadRequest)
		return
	}

	items, err := h.importSvc.Parse(file)
	if err != nil {
		// Every parse failure describes a problem with the upload.
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.itemSvc.ReplaceAll(r.Context(), items); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importSuccessResponse{Imported: len(items)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
