package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// UserID is assigned by the backend. It decodes from either a JSON number or a
// JSON string and always encodes as a string.
type UserID string

func (id *UserID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return fmt.Errorf("decode user id: %w", err)
		}
		*id = UserID(raw)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return fmt.Errorf("decode user id: %w", err)
	}
	*id = UserID(number.String())
	return nil
}

type User struct {
	ID    UserID `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DisplayName prefers the user's name and falls back to the email address.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return strings.TrimSpace(u.Email)
}

type Session struct {
	Token string
	User  *User
}

// Valid reports whether the token and the user are either both present or
// both absent.
func (s Session) Valid() bool {
	return (strings.TrimSpace(s.Token) == "") == (s.User == nil)
}

func (s Session) Authenticated() bool {
	return strings.TrimSpace(s.Token) != "" && s.User != nil
}
