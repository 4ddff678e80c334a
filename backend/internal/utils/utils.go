package utils

import (
	"fmt"
	"unicode/utf8"

	"github.com/FerdyAtmaja/forum-api-V2/shared/config"
	"github.com/FerdyAtmaja/forum-api-V2/shared/errors"
)

// ContentValidator enforces the configured length limits. Presence checks
// belong to the domain entities, this only looks at rune counts.
type ContentValidator struct {
	maxTitleLen   int
	maxContentLen int
}

func NewContentValidator(cfg *config.Public) *ContentValidator {
	return &ContentValidator{
		maxTitleLen:   cfg.MaxTitleLen,
		maxContentLen: cfg.MaxContentLen,
	}
}

func (v *ContentValidator) Title(title string) error {
	if v.maxTitleLen > 0 && utf8.RuneCountInString(title) > v.maxTitleLen {
		return errors.Validation(fmt.Sprintf("title is too long, max %d characters", v.maxTitleLen))
	}
	return nil
}

func (v *ContentValidator) Content(content string) error {
	if v.maxContentLen > 0 && utf8.RuneCountInString(content) > v.maxContentLen {
		return errors.Validation(fmt.Sprintf("content is too long, max %d characters", v.maxContentLen))
	}
	return nil
}
