// Copyright (c) 2026 Inkwell. All rights reserved.

package posts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/internal/platform/apperr"
	"github.com/inkwell-dev/inkwell/internal/posts"
	"github.com/inkwell-dev/inkwell/pkg/pointer"
)

func newTestPost() *posts.Post {
	return &posts.Post{
		AuthorFirstName: "Jane",
		AuthorLastName:  "Doe",
		Title:           "T",
		Content:         "C",
	}
}

/*
TestMemoryRepository_CreateAssignsIdentity verifies id/created assignment on insert.
*/
func TestMemoryRepository_CreateAssignsIdentity(t *testing.T) {
	repo := posts.NewMemoryRepository()
	record := newTestPost()

	require.NoError(t, repo.CreatePost(context.Background(), record))

	assert.NotEmpty(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	fetched, err := repo.GetPost(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, fetched.ID)
	assert.Equal(t, "Jane", fetched.AuthorFirstName)
}

/*
TestMemoryRepository_UniqueIDs checks that ids are never reused across inserts.
*/
func TestMemoryRepository_UniqueIDs(t *testing.T) {
	repo := posts.NewMemoryRepository()
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		record := newTestPost()
		require.NoError(t, repo.CreatePost(context.Background(), record))
		assert.False(t, seen[record.ID], "id %q reused", record.ID)
		seen[record.ID] = true
	}
}

/*
TestMemoryRepository_InsertPosts checks the bulk seed path.
*/
func TestMemoryRepository_InsertPosts(t *testing.T) {
	repo := posts.NewMemoryRepository()

	records := make([]*posts.Post, 10)
	for i := range records {
		records[i] = newTestPost()
	}

	require.NoError(t, repo.InsertPosts(context.Background(), records))

	all, err := repo.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 10)
}

/*
TestMemoryRepository_GetAnyPost returns some record when the store is non-empty.
*/
func TestMemoryRepository_GetAnyPost(t *testing.T) {
	repo := posts.NewMemoryRepository()

	_, err := repo.GetAnyPost(context.Background())
	assert.True(t, apperr.IsAppError(err))

	record := newTestPost()
	require.NoError(t, repo.CreatePost(context.Background(), record))

	any, err := repo.GetAnyPost(context.Background())
	require.NoError(t, err)
	assert.Equal(t, record.ID, any.ID)
}

/*
TestMemoryRepository_UpdatePost verifies partial updates mutate only the
provided fields and never touch id/created.
*/
func TestMemoryRepository_UpdatePost(t *testing.T) {
	repo := posts.NewMemoryRepository()
	record := newTestPost()
	require.NoError(t, repo.CreatePost(context.Background(), record))

	patch := posts.Patch{
		Title:           pointer.To("Updated title"),
		AuthorFirstName: pointer.To("John"),
	}
	require.NoError(t, repo.UpdatePost(context.Background(), record.ID, patch))

	fetched, err := repo.GetPost(context.Background(), record.ID)
	require.NoError(t, err)

	assert.Equal(t, "Updated title", fetched.Title)
	assert.Equal(t, "John", fetched.AuthorFirstName)
	// Untouched fields survive.
	assert.Equal(t, "Doe", fetched.AuthorLastName)
	assert.Equal(t, "C", fetched.Content)
	// Immutable fields survive.
	assert.Equal(t, record.ID, fetched.ID)
	assert.Equal(t, record.CreatedAt, fetched.CreatedAt)
}

/*
TestMemoryRepository_UpdatePost_NotFound checks the absent-id signal.
*/
func TestMemoryRepository_UpdatePost_NotFound(t *testing.T) {
	repo := posts.NewMemoryRepository()

	err := repo.UpdatePost(context.Background(), "0190b7c8-9f4a-7cc1-a9ab-22f1d1f0a001", posts.Patch{})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestMemoryRepository_DeletePost verifies removal and the not-found signal afterwards.
*/
func TestMemoryRepository_DeletePost(t *testing.T) {
	repo := posts.NewMemoryRepository()
	record := newTestPost()
	require.NoError(t, repo.CreatePost(context.Background(), record))

	require.NoError(t, repo.DeletePost(context.Background(), record.ID))

	_, err := repo.GetPost(context.Background(), record.ID)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)

	// Deleting again reports absence as well.
	assert.Error(t, repo.DeletePost(context.Background(), record.ID))
}

/*
TestMemoryRepository_CopySemantics checks that callers cannot mutate stored
state through returned pointers.
*/
func TestMemoryRepository_CopySemantics(t *testing.T) {
	repo := posts.NewMemoryRepository()
	record := newTestPost()
	require.NoError(t, repo.CreatePost(context.Background(), record))

	fetched, err := repo.GetPost(context.Background(), record.ID)
	require.NoError(t, err)
	fetched.Title = "mutated outside the store"

	again, err := repo.GetPost(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", again.Title)
}
