package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/model"
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/services/game"
)

// apiError is the introspection API's error body
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type roomHandler struct {
	controller *game.Controller
}

func newRoomHandler(controller *game.Controller) *roomHandler {
	return &roomHandler{controller: controller}
}

// Get serves the public room snapshot. The current word is never exposed.
func (h *roomHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])

	info, err := h.controller.RoomInfo(code)
	if err != nil {
		if errors.Is(err, model.ErrRoomNotFound) {
			writeJSON(w, http.StatusNotFound, apiError{Code: "ROOM_NOT_FOUND", Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, apiError{Code: "INTERNAL_ERROR", Message: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, info)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}
