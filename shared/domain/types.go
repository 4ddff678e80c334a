package domain

type (
	UserId   = string
	Username = string
	Password = string

	ThreadId  = string
	CommentId = string
	ReplyId   = string
)

// Id prefixes, every stored id is "<prefix>-<suffix>"
const (
	UserIdPrefix    = "user"
	ThreadIdPrefix  = "thread"
	CommentIdPrefix = "comment"
	ReplyIdPrefix   = "reply"
	LikeIdPrefix    = "like"
)
