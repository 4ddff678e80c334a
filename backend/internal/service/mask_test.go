package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskContent(t *testing.T) {
	tests := []struct {
		name      string
		kind      ContentKind
		content   string
		isDeleted bool
		expected  string
	}{
		{"live comment", CommentContent, "hello", false, "hello"},
		{"deleted comment", CommentContent, "hello", true, "**komentar telah dihapus**"},
		{"live reply", ReplyContent, "hi", false, "hi"},
		{"deleted reply", ReplyContent, "hi", true, "**balasan telah dihapus**"},
		{"empty live content is kept", ReplyContent, "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskContent(tt.kind, tt.content, tt.isDeleted))
		})
	}
}
