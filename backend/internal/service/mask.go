package service

// ContentKind selects the placeholder shown in place of deleted content.
type ContentKind int

const (
	CommentContent ContentKind = iota
	ReplyContent
)

const (
	DeletedCommentPlaceholder = "**komentar telah dihapus**"
	DeletedReplyPlaceholder   = "**balasan telah dihapus**"
)

func (k ContentKind) Placeholder() string {
	if k == ReplyContent {
		return DeletedReplyPlaceholder
	}
	return DeletedCommentPlaceholder
}

// MaskContent returns content unchanged unless isDeleted, in which case the
// placeholder of kind replaces it. Deleted content never leaves the service.
func MaskContent(kind ContentKind, content string, isDeleted bool) string {
	if isDeleted {
		return kind.Placeholder()
	}
	return content
}
