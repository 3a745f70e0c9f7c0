package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/arash/truth-or-dare-bot/internal/domain"
	"github.com/arash/truth-or-dare-bot/internal/service"
)

// AdminHandler serves the operator surface: question bank curation, user
// search and global statistics.
type AdminHandler struct {
	promptService *service.PromptService
	statsService  *service.StatsService
}

func NewAdminHandler(promptService *service.PromptService, statsService *service.StatsService) *AdminHandler {
	return &AdminHandler{promptService: promptService, statsService: statsService}
}

type CreatePromptRequest struct {
	Kind       string `json:"kind"`
	Text       string `json:"text"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
}

func (h *AdminHandler) CreatePrompt(w http.ResponseWriter, r *http.Request) {
	var req CreatePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "Prompt text is required", http.StatusBadRequest)
		return
	}
	if req.Category == "" {
		req.Category = domain.CategoryGeneral
	}

	prompt, err := h.promptService.CreatePrompt(r.Context(), domain.ActionKind(req.Kind), req.Text, domain.Difficulty(req.Difficulty), req.Category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, prompt)
}

func (h *AdminHandler) ListPrompts(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	prompts, err := h.promptService.ListPrompts(r.Context(), domain.ActionKind(kind), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prompts)
}

func (h *AdminHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	overview, err := h.statsService.UserOverview(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (h *AdminHandler) SessionStats(w http.ResponseWriter, r *http.Request) {
	overview, err := h.statsService.SessionOverview(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (h *AdminHandler) PromptStats(w http.ResponseWriter, r *http.Request) {
	overview, err := h.statsService.PromptOverview(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (h *AdminHandler) ActiveUsers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	rows, err := h.statsService.MostActiveUsers(r.Context(), 7*24*time.Hour, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *AdminHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "Query parameter q is required", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, err := h.statsService.SearchUsers(r.Context(), query, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
