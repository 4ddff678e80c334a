package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/FerdyAtmaja/forum-api-V2/shared/middleware"
	"github.com/FerdyAtmaja/forum-api-V2/shared/middleware/metrics"
	"github.com/FerdyAtmaja/forum-api-V2/shared/utils"
)

// ToggleLike likes the comment, or takes the like back when the user already liked it.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.like.Toggle(r.Context(), threadId, commentId, mw.GetUserIdFromContext(r)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	metrics.RecordLikeToggle()

	utils.WriteSuccess(w, http.StatusOK, nil)
}
