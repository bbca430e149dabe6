package application

import (
	"strings"

	"github.com/bnema/clipgen-cli/internal/domain"
)

type LoginCommand struct {
	Email    string
	Password string
}

func (c LoginCommand) normalize() (LoginCommand, error) {
	c.Email = strings.TrimSpace(c.Email)
	if c.Email == "" || c.Password == "" {
		return LoginCommand{}, domain.ErrMissingCredentials
	}
	return c, nil
}

type SignupCommand struct {
	Name     string
	Email    string
	Password string
}

func (c SignupCommand) normalize() (SignupCommand, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	if c.Email == "" || c.Password == "" {
		return SignupCommand{}, domain.ErrMissingCredentials
	}
	return c, nil
}

type ChangePasswordCommand struct {
	OldPassword string
	NewPassword string
}

func (c ChangePasswordCommand) validate() error {
	if c.OldPassword == "" || c.NewPassword == "" {
		return domain.ErrMissingCredentials
	}
	return nil
}
