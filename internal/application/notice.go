package application

import (
	"errors"

	"github.com/bnema/clipgen-cli/internal/domain"
)

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is the inline message shown next to the control that caused it.
type Notice struct {
	Level NoticeLevel
	Text  string
}

func (n Notice) Empty() bool {
	return n.Text == ""
}

func InfoNotice(text string) Notice {
	return Notice{Level: NoticeInfo, Text: text}
}

func SuccessNotice(text string) Notice {
	return Notice{Level: NoticeSuccess, Text: text}
}

// WarningNotice reports an action that went through with a degraded follow-up.
func WarningNotice(text string) Notice {
	return Notice{Level: NoticeWarning, Text: text}
}

func ErrorNotice(err error) Notice {
	if err == nil {
		return Notice{}
	}
	if errors.Is(err, domain.ErrConfirmationDeclined) {
		return InfoNotice(domain.UserMessage(err))
	}
	return Notice{Level: NoticeError, Text: domain.UserMessage(err)}
}
