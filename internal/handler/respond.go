package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/mvaldez/catalogo/internal/repository"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeRepoError maps repository failures. Storage corruption gets a clear
// message instead of a silent empty catalog.
func writeRepoError(w http.ResponseWriter, r *http.Request, err error) {
	zctx.From(r.Context()).Error("repository failure", zap.Error(err))
	if errors.Is(err, repository.ErrStorageCorrupt) {
		writeError(w, http.StatusInternalServerError, "catalog storage is corrupt; refusing to discard data")
		return
	}
	writeError(w, http.StatusInternalServerError, "server error")
}
