package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FerdyAtmaja/forum-api-V2/shared/api"
	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	mw "github.com/FerdyAtmaja/forum-api-V2/shared/middleware"
	"github.com/FerdyAtmaja/forum-api-V2/shared/utils"
)

const renderHTML = "html"

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var body domain.NewThread
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.thread.Create(r.Context(), body, mw.GetUserIdFromContext(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedThreadResponse{AddedThread: added})
}

// GetThread returns the thread detail. With ?render=html every text field is
// returned as sanitized html instead of raw markdown.
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	detail, err := h.thread.Detail(r.Context(), chi.URLParam(r, "threadId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if r.URL.Query().Get("render") == renderHTML {
		detail = h.renderer.ThreadDetail(detail)
	}

	utils.WriteSuccess(w, http.StatusOK, api.ThreadResponse{Thread: detail})
}
