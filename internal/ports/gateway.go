package ports

import (
	"context"
	"io"

	"github.com/bnema/clipgen-cli/internal/domain"
)

type AuthResult struct {
	Token string
	User  domain.User
}

// Gateway is the backend API. Every failure it returns is a *domain.APIError.
type Gateway interface {
	Login(ctx context.Context, email string, password string) (AuthResult, error)
	Signup(ctx context.Context, name string, email string, password string) (AuthResult, error)
	Generate(ctx context.Context, token string, prompt string) (string, error)
	GetCredits(ctx context.Context, token string) (domain.Credits, error)
	SaveToLibrary(ctx context.Context, token string, req domain.SaveRequest) error
	ListLibrary(ctx context.Context, token string) ([]domain.LibraryItem, error)
	DeleteLibraryItem(ctx context.Context, token string, id domain.LibraryItemID) error
	Checkout(ctx context.Context, token string, tier domain.TierID) error
	GetPurchaseHistory(ctx context.Context, token string) ([]domain.Purchase, error)
	UpdateEmail(ctx context.Context, token string, email string) (domain.User, error)
	ChangePassword(ctx context.Context, token string, oldPassword string, newPassword string) error
	DeleteAccount(ctx context.Context, token string) error
	Download(ctx context.Context, url string, w io.Writer) (int64, error)
}
