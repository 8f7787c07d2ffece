// Copyright (c) 2026 Inkwell. All rights reserved.

package posts

import "context"

// Repository is the durable keyed collection of [Post] records.
//
// Implementations assign ID (UUIDv7) and CreatedAt on insert. Every
// read-after-insert observes those values on the same record pointer.
// Update and delete return a not-found error for absent ids.
type Repository interface {
	// CreatePost inserts a single record (the POST endpoint path).
	CreatePost(context context.Context, p *Post) error

	// InsertPosts bulk-creates records. Administrative/seed path only.
	InsertPosts(context context.Context, records []*Post) error

	// ListPosts returns every record, order unspecified.
	ListPosts(context context.Context) ([]*Post, error)

	// GetPost returns the record with the given id.
	GetPost(context context.Context, id string) (*Post, error)

	// GetAnyPost returns an arbitrary single record. Tooling/test aid,
	// not part of the public API surface.
	GetAnyPost(context context.Context) (*Post, error)

	// UpdatePost applies a partial update to the mutable fields.
	UpdatePost(context context.Context, id string, patch Patch) error

	// DeletePost removes the record.
	DeletePost(context context.Context, id string) error
}
