package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain refusals onto transport statuses. Anything not a
// sentinel is a storage failure and comes back as a 500 without leaking
// the cause.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrTurnNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrAlreadyJoined),
		errors.Is(err, domain.ErrInvalidSessionState),
		errors.Is(err, domain.ErrNotEnoughPlayers),
		errors.Is(err, domain.ErrSessionFinished),
		errors.Is(err, domain.ErrTurnAlreadyCompleted),
		errors.Is(err, domain.ErrNoParticipants):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotCreator),
		errors.Is(err, domain.ErrNotYourTurn),
		errors.Is(err, domain.ErrNotTurnOwner):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrInvalidMode),
		errors.Is(err, domain.ErrInvalidActionKind),
		errors.Is(err, domain.ErrInvalidUserID):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Msg("internal error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
