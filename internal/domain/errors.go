package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated     = errors.New("not logged in")
	ErrInsufficientCredits  = errors.New("no credits left")
	ErrGenerationInFlight   = errors.New("a generation is already running")
	ErrConfirmationDeclined = errors.New("confirmation declined")
	ErrUnknownTier          = errors.New("unknown tier")
	ErrEmptyPrompt          = errors.New("prompt is empty")
	ErrNoImage              = errors.New("no generated image")
	ErrStaleResponse        = errors.New("stale response discarded")
	ErrSecretNotFound       = errors.New("secret not found")
	ErrInvalidTheme         = errors.New("invalid theme")
	ErrLibraryItemNotFound  = errors.New("library item not found")
	ErrMissingCredentials   = errors.New("email and password are required")
	ErrPurchaseInFlight     = errors.New("a purchase is already running")
)

// Kind sentinels for errors.Is against an *APIError.
var (
	ErrAuth       = errors.New("authentication failed")
	ErrValidation = errors.New("request rejected")
	ErrNetwork    = errors.New("network failure")
)

type ErrorKind string

const (
	ErrorKindAuth       ErrorKind = "auth"
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindNetwork    ErrorKind = "network"
)

// APIError is the single failure shape returned by the backend gateway.
type APIError struct {
	Op     string
	Kind   ErrorKind
	Status int
	// Detail is the backend's human-readable message, shown to the user as is.
	Detail string
	Err    error
}

func (e *APIError) Error() string {
	switch {
	case e.Detail != "" && e.Status > 0:
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Detail, e.Status)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Status > 0:
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	default:
		return e.Op + ": " + string(e.Kind) + " error"
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAuth:
		return e.Kind == ErrorKindAuth
	case ErrValidation:
		return e.Kind == ErrorKindValidation
	case ErrNetwork:
		return e.Kind == ErrorKindNetwork
	default:
		return false
	}
}

// UserMessage is the text shown next to the control that triggered err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Detail != "":
			return apiErr.Detail
		case apiErr.Kind == ErrorKindAuth:
			return "Your session has expired. Please log in again."
		case apiErr.Kind == ErrorKindNetwork:
			return "Could not reach the server. Check your connection and try again."
		default:
			return "The server rejected the request."
		}
	}

	switch {
	case errors.Is(err, ErrInsufficientCredits):
		return "You are out of credits. Buy a pack to keep generating."
	case errors.Is(err, ErrGenerationInFlight):
		return "Generating... please wait for the current image."
	case errors.Is(err, ErrConfirmationDeclined):
		return "Cancelled."
	case errors.Is(err, ErrNotAuthenticated):
		return "Please log in first."
	}

	return err.Error()
}
