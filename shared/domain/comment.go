package domain

import "time"

type NewComment struct {
	Content string `json:"content" validate:"required,notblank"`
}

func (c NewComment) Validate() error {
	return validateEntity("NEW_COMMENT", c)
}

type AddedComment struct {
	Id      CommentId `json:"id" validate:"required"`
	Content string    `json:"content" validate:"required"`
	Owner   UserId    `json:"owner" validate:"required"`
}

func (c AddedComment) Validate() error {
	return validateEntity("ADDED_COMMENT", c)
}

// Comment is a stored comment. IsDeleted only ever goes false -> true.
type Comment struct {
	Id        CommentId
	ThreadId  ThreadId
	Owner     UserId
	Username  Username
	Content   string
	Date      time.Time
	IsDeleted bool
}

type CommentDetail struct {
	Id        CommentId     `json:"id"`
	Username  Username      `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	LikeCount int           `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}
