package api

import (
	"bytes"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/tidwall/gjson"
)

const maxRawDetailLen = 300

// classify turns a non-2xx response into an APIError.
func classify(op string, status int, body []byte) *domain.APIError {
	kind := domain.ErrorKindValidation
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		kind = domain.ErrorKindAuth
	}

	return &domain.APIError{
		Op:     op,
		Kind:   kind,
		Status: status,
		Detail: extractDetail(body),
	}
}

func networkError(op string, err error) *domain.APIError {
	return &domain.APIError{Op: op, Kind: domain.ErrorKindNetwork, Err: err}
}

// extractDetail reads the human readable message out of an error payload.
// FastAPI reports either {"detail": "..."} or a list of validation entries
// under "detail", each with a "msg".
func extractDetail(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	if !gjson.ValidBytes(trimmed) {
		return truncate(string(trimmed))
	}

	detail := gjson.GetBytes(trimmed, "detail")
	switch {
	case detail.Type == gjson.String:
		return detail.String()
	case detail.IsArray():
		if msg := detail.Get("0.msg"); msg.Exists() {
			return msg.String()
		}
		if first := detail.Get("0"); first.Type == gjson.String {
			return first.String()
		}
	case detail.IsObject():
		if msg := detail.Get("msg"); msg.Exists() {
			return msg.String()
		}
	case !detail.Exists():
		for _, path := range []string{"message", "error"} {
			if msg := gjson.GetBytes(trimmed, path); msg.Type == gjson.String {
				return msg.String()
			}
		}
	}

	if detail.Exists() {
		return truncate(detail.Raw)
	}
	return truncate(string(trimmed))
}

func truncate(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) <= maxRawDetailLen {
		return raw
	}
	cut := maxRawDetailLen
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return raw[:cut] + "..."
}
