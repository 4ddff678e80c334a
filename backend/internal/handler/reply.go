package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FerdyAtmaja/forum-api-V2/backend/internal/service"
	"github.com/FerdyAtmaja/forum-api-V2/shared/api"
	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	mw "github.com/FerdyAtmaja/forum-api-V2/shared/middleware"
	"github.com/FerdyAtmaja/forum-api-V2/shared/middleware/metrics"
	"github.com/FerdyAtmaja/forum-api-V2/shared/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	var body domain.NewReply
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	added, err := h.reply.Create(r.Context(), body, threadId, commentId, mw.GetUserIdFromContext(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedReplyResponse{AddedReply: added})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	target := service.ReplyTarget{
		ThreadId:  chi.URLParam(r, "threadId"),
		CommentId: chi.URLParam(r, "commentId"),
		ReplyId:   chi.URLParam(r, "replyId"),
	}

	if err := h.reply.Delete(r.Context(), target, mw.GetUserIdFromContext(r)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	metrics.RecordDeletion("reply")

	utils.WriteSuccess(w, http.StatusOK, nil)
}
