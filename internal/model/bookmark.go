package model

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrDuplicateID  = errors.New("duplicate id")
)

// Bookmark represents one record of the static dataset.
type Bookmark struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	URL         string   `json:"url" yaml:"url"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	Title       string
	URL         string
	Description string
	Category    string
	Tags        []string
}

// NewBookmark creates a Bookmark with a generated UUID.
// Used by sources that carry no ids of their own.
func NewBookmark(params NewBookmarkParams) Bookmark {
	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	return Bookmark{
		ID:          GenerateUUID(),
		Title:       params.Title,
		URL:         params.URL,
		Description: params.Description,
		Category:    params.Category,
		Tags:        tags,
	}
}

// Validate checks that the fields every record must carry are present.
func (b Bookmark) Validate() error {
	err := validation.ValidateStruct(&b,
		validation.Field(&b.ID, validation.Required),
		validation.Field(&b.Title, validation.Required),
		validation.Field(&b.URL, validation.Required),
		validation.Field(&b.Category, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingField, err)
	}
	return nil
}

// HasTag reports whether the bookmark carries the given tag.
func (b Bookmark) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
