package models

import (
	"fmt"
	"time"
)

// TimestampLayout renders as DD-MM-YYYY @ HH:MM
const TimestampLayout = "02-01-2006 @ 15:04"

const blank = "blank"

// FormatTimestamp formats t the way notes store their created and updated dates
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp parses a note timestamp in local time
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.Local)
}

type Note struct {
	ID          int64   `json:"id,omitempty"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Category    []int64 `json:"category"`
	DateCreated string  `json:"dateCreated"`
	DateUpdated string  `json:"dateUpdated"`
}

// WithDefaults fills empty fields the way a freshly materialised note expects
func (n Note) WithDefaults() Note {
	if n.Title == "" {
		n.Title = blank
	}
	if n.Content == "" {
		n.Content = blank
	}
	if n.Category == nil {
		n.Category = []int64{}
	}
	return n
}

func (n Note) String() string {
	return fmt.Sprintf("NOTE ID: %d, TITLE: %s, CATEGORY: %v, CONTENT: %s, DATE CREATED: %s, DATE UPDATED: %s",
		n.ID, n.Title, n.Category, n.Content, n.DateCreated, n.DateUpdated)
}

type Category struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// WithDefaults fills empty fields with placeholder text
func (c Category) WithDefaults() Category {
	if c.Name == "" {
		c.Name = blank
	}
	if c.Description == "" {
		c.Description = blank
	}
	return c
}

func (c Category) String() string {
	return fmt.Sprintf("CATEGORY ID: %d, NAME: %s, DESCRIPTION: %s", c.ID, c.Name, c.Description)
}

type CreateNoteRequest struct {
	Title    string  `json:"title" validate:"required,max=200"`
	Content  string  `json:"content" validate:"max=100000"`
	Category []int64 `json:"category" validate:"omitempty,dive,gt=0"`
}

type UpdateNoteRequest struct {
	Title    string  `json:"title" validate:"required,max=200"`
	Content  string  `json:"content" validate:"max=100000"`
	Category []int64 `json:"category" validate:"omitempty,dive,gt=0"`
	Date     string  `json:"date" validate:"omitempty,notetimestamp"`
}

type SwapNotesRequest struct {
	ID1 int64 `json:"id1" validate:"required,gt=0"`
	ID2 int64 `json:"id2" validate:"required,gt=0,nefield=ID1"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100,categoryname"`
	Description string `json:"description" validate:"max=500"`
}
