package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultImageFormat = "jpg"
	DefaultImageWidth  = 768
	DefaultImageHeight = 768

	// RecentCreationsLimit is how many library items the dashboard shows.
	RecentCreationsLimit = 6
)

type LibraryItemID string

// LibraryItem references an asset stored by the backend. The client only
// holds metadata and the URL, never the bytes.
type LibraryItem struct {
	ID        LibraryItemID `json:"id"`
	URL       string        `json:"url"`
	Prompt    string        `json:"prompt"`
	CreatedAt time.Time     `json:"created_at"`
	Format    string        `json:"format,omitempty"`
	Width     int           `json:"width,omitempty"`
	Height    int           `json:"height,omitempty"`
}

type SaveRequest struct {
	UserID UserID `json:"user_id"`
	Prompt string `json:"prompt"`
	URL    string `json:"url"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// NewSaveRequest fills the image defaults used for generated clipart.
func NewSaveRequest(userID UserID, prompt, url string) SaveRequest {
	return SaveRequest{
		UserID: userID,
		Prompt: prompt,
		URL:    url,
		Format: DefaultImageFormat,
		Width:  DefaultImageWidth,
		Height: DefaultImageHeight,
	}
}

func (r SaveRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return ErrNoImage
	}
	if strings.TrimSpace(string(r.UserID)) == "" {
		return fmt.Errorf("user id is required")
	}
	return nil
}

// WithoutItem returns items minus every entry with the given id, preserving
// order.
func WithoutItem(items []LibraryItem, id LibraryItemID) []LibraryItem {
	kept := make([]LibraryItem, 0, len(items))
	for _, item := range items {
		if item.ID == id {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

func RecentItems(items []LibraryItem, limit int) []LibraryItem {
	if limit <= 0 || len(items) <= limit {
		return append([]LibraryItem(nil), items...)
	}
	return append([]LibraryItem(nil), items[:limit]...)
}
