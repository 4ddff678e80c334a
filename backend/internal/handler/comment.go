package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FerdyAtmaja/forum-api-V2/shared/api"
	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	mw "github.com/FerdyAtmaja/forum-api-V2/shared/middleware"
	"github.com/FerdyAtmaja/forum-api-V2/shared/middleware/metrics"
	"github.com/FerdyAtmaja/forum-api-V2/shared/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var body domain.NewComment
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.comment.Create(r.Context(), body, chi.URLParam(r, "threadId"), mw.GetUserIdFromContext(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedCommentResponse{AddedComment: added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.comment.Delete(r.Context(), threadId, commentId, mw.GetUserIdFromContext(r)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	metrics.RecordDeletion("comment")

	utils.WriteSuccess(w, http.StatusOK, nil)
}
