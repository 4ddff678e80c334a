package domain

import (
	"time"
)

// NewThread is the untrusted payload of a thread creation.
type NewThread struct {
	Title string `json:"title" validate:"required,notblank"`
	Body  string `json:"body" validate:"required,notblank"`
}

func (t NewThread) Validate() error {
	return validateEntity("NEW_THREAD", t)
}

// AddedThread is what the store reports back after persisting a NewThread.
type AddedThread struct {
	Id    ThreadId `json:"id" validate:"required"`
	Title string   `json:"title" validate:"required"`
	Owner UserId   `json:"owner" validate:"required"`
}

func (t AddedThread) Validate() error {
	return validateEntity("ADDED_THREAD", t)
}

// Thread is a stored thread joined with its owner's username.
type Thread struct {
	Id       ThreadId
	Title    string
	Body     string
	Date     time.Time
	Owner    UserId
	Username Username
}

// ThreadDetail is the denormalized read model of a thread with its comments and replies.
type ThreadDetail struct {
	Id       ThreadId        `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username Username        `json:"username"`
	Comments []CommentDetail `json:"comments"`
}
