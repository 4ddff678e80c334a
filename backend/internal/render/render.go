// Package render turns markdown content of a thread detail into sanitized html.
package render

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/FerdyAtmaja/forum-api-V2/shared/domain"
	"github.com/FerdyAtmaja/forum-api-V2/shared/logger"
)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)

	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{md: md, policy: p}
}

// HTML renders text as markdown and sanitizes the result. On a render failure
// the escaped source is returned.
func (r *Renderer) HTML(text string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		logger.Log.Warn("markdown render failed", "error", err)
		return html.EscapeString(text)
	}
	return strings.TrimSpace(r.policy.Sanitize(buf.String()))
}

// inlineHTML is HTML without the paragraph wrapper, for single line fields.
func (r *Renderer) inlineHTML(text string) string {
	out := r.HTML(text)
	inner, ok := strings.CutPrefix(out, "<p>")
	if !ok {
		return out
	}
	inner, ok = strings.CutSuffix(inner, "</p>")
	if !ok || strings.Contains(inner, "<p>") {
		return out
	}
	return inner
}

// ThreadDetail returns a copy of detail with title, body, comment and reply
// content rendered. Masked placeholders render like any other content.
func (r *Renderer) ThreadDetail(detail domain.ThreadDetail) domain.ThreadDetail {
	rendered := detail
	rendered.Title = r.inlineHTML(detail.Title)
	rendered.Body = r.HTML(detail.Body)
	rendered.Comments = make([]domain.CommentDetail, len(detail.Comments))
	for i, comment := range detail.Comments {
		comment.Content = r.HTML(comment.Content)
		replies := make([]domain.ReplyDetail, len(comment.Replies))
		for j, reply := range comment.Replies {
			reply.Content = r.HTML(reply.Content)
			replies[j] = reply
		}
		comment.Replies = replies
		rendered.Comments[i] = comment
	}
	return rendered
}
