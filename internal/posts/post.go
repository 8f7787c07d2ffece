// Copyright (c) 2026 Inkwell. All rights reserved.

package posts

import "time"

// Post is a blog post as persisted in the document collection.
//
// The author is stored as a structured first/last name pair even though the
// wire form flattens it to a single string. ID and CreatedAt are assigned by
// the repository at insert time and are immutable afterwards.
type Post struct {
	ID              string    `json:"id"`
	AuthorFirstName string    `json:"author_firstname"`
	AuthorLastName  string    `json:"author_lastname"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
}

// Author returns the flattened "FirstName LastName" form of the author pair.
func (p *Post) Author() string {
	return p.AuthorFirstName + " " + p.AuthorLastName
}

// WirePost is the JSON representation of a post as sent over HTTP.
//
// # Shape
//
// Exactly five keys: id, author, title, content, created. The author pair is
// flattened to one string and the creation timestamp is ISO-8601 (RFC 3339).
type WirePost struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Created string `json:"created"`
}

// Wire maps the stored form to the wire form.
func (p *Post) Wire() WirePost {
	return WirePost{
		ID:      p.ID,
		Author:  p.Author(),
		Title:   p.Title,
		Content: p.Content,
		Created: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// WireList maps a slice of stored posts to their wire form.
// It always returns a non-nil slice so an empty collection serializes as [].
func WireList(records []*Post) []WirePost {
	wire := make([]WirePost, 0, len(records))
	for _, record := range records {
		wire = append(wire, record.Wire())
	}
	return wire
}

// Patch describes a partial update of the mutable post fields.
// Nil fields are left unchanged; ID and CreatedAt are never touched.
type Patch struct {
	AuthorFirstName *string
	AuthorLastName  *string
	Title           *string
	Content         *string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.AuthorFirstName == nil && p.AuthorLastName == nil && p.Title == nil && p.Content == nil
}

// Global field names for validation
const (
	FieldID              = "id"
	FieldTitle           = "title"
	FieldContent         = "content"
	FieldAuthorFirstName = "author.firstName"
	FieldAuthorLastName  = "author.lastName"
)

// Validation bounds for user-supplied fields.
const (
	maxTitleLen = 200
	maxNameLen  = 100
)
