package domain

import "time"

type NewReply struct {
	Content string `json:"content" validate:"required,notblank"`
}

func (r NewReply) Validate() error {
	return validateEntity("NEW_REPLY", r)
}

type AddedReply struct {
	Id      ReplyId `json:"id" validate:"required"`
	Content string  `json:"content" validate:"required"`
	Owner   UserId  `json:"owner" validate:"required"`
}

func (r AddedReply) Validate() error {
	return validateEntity("ADDED_REPLY", r)
}

// Reply is a stored reply. Same soft-delete rule as Comment.
type Reply struct {
	Id        ReplyId
	CommentId CommentId
	Owner     UserId
	Username  Username
	Content   string
	Date      time.Time
	IsDeleted bool
}

// ReplyDetail deliberately carries neither the comment id nor the deletion flag.
type ReplyDetail struct {
	Id       ReplyId   `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username Username  `json:"username"`
}
