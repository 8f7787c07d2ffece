// Copyright (c) 2026 Inkwell. All rights reserved.

package posts_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/internal/posts"
)

/*
TestPost_Wire verifies the storage-to-wire transformation: the author pair
flattens to one string, the timestamp becomes ISO-8601, and the remaining
fields pass through unchanged.
*/
func TestPost_Wire(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	record := &posts.Post{
		ID:              "0190b7c8-9f4a-7cc1-a9ab-22f1d1f0a001",
		AuthorFirstName: "Jane",
		AuthorLastName:  "Doe",
		Title:           "T",
		Content:         "C",
		CreatedAt:       createdAt,
	}

	wire := record.Wire()

	assert.Equal(t, record.ID, wire.ID)
	assert.Equal(t, "Jane Doe", wire.Author)
	assert.Equal(t, "T", wire.Title)
	assert.Equal(t, "C", wire.Content)
	assert.Equal(t, "2026-03-14T09:26:53Z", wire.Created)
}

/*
TestPost_Wire_NonUTC checks that non-UTC timestamps normalize to UTC.
*/
func TestPost_Wire_NonUTC(t *testing.T) {
	zone := time.FixedZone("JST", 9*60*60)
	record := &posts.Post{CreatedAt: time.Date(2026, 1, 2, 9, 0, 0, 0, zone)}

	assert.Equal(t, "2026-01-02T00:00:00Z", record.Wire().Created)
}

/*
TestPost_Wire_JSONShape asserts the exact five wire keys.
*/
func TestPost_Wire_JSONShape(t *testing.T) {
	record := &posts.Post{
		ID:              "0190b7c8-9f4a-7cc1-a9ab-22f1d1f0a001",
		AuthorFirstName: "Jane",
		AuthorLastName:  "Doe",
		Title:           "T",
		Content:         "C",
		CreatedAt:       time.Now().UTC(),
	}

	payload, err := json.Marshal(record.Wire())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Len(t, decoded, 5)
	for _, key := range []string{"id", "author", "title", "content", "created"} {
		assert.Contains(t, decoded, key)
	}
}

/*
TestWireList_Empty checks that an empty collection serializes as [], not null.
*/
func TestWireList_Empty(t *testing.T) {
	payload, err := json.Marshal(posts.WireList(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(payload))
}

/*
TestPatch_IsZero checks patch emptiness detection.
*/
func TestPatch_IsZero(t *testing.T) {
	title := "New title"

	assert.True(t, posts.Patch{}.IsZero())
	assert.False(t, posts.Patch{Title: &title}.IsZero())
}
