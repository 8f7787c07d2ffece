// Copyright (c) 2026 Inkwell. All rights reserved.

package posts

import (
	"context"
	"sync"
	"time"

	"github.com/inkwell-dev/inkwell/internal/platform/dberr"
	"github.com/inkwell-dev/inkwell/pkg/uuidv7"
)

// MemoryRepository is a mutex-guarded in-memory [Repository].
//
// # Usage
//
// Handler and service tests construct a fresh instance per test case so every
// test runs against an isolated store. It mirrors the semantics of
// [PostgresRepository]: id/created assignment on insert, not-found signals,
// last-writer-wins updates.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]Post
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]Post)}
}

func (repository *MemoryRepository) CreatePost(_ context.Context, p *Post) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	p.ID = uuidv7.New()
	p.CreatedAt = time.Now().UTC()

	// Store a copy so callers cannot mutate persisted state through the pointer.
	repository.records[p.ID] = *p
	return nil
}

func (repository *MemoryRepository) InsertPosts(ctx context.Context, records []*Post) error {
	for _, record := range records {
		if err := repository.CreatePost(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (repository *MemoryRepository) ListPosts(_ context.Context) ([]*Post, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	records := make([]*Post, 0, len(repository.records))
	for _, record := range repository.records {
		copied := record
		records = append(records, &copied)
	}
	return records, nil
}

func (repository *MemoryRepository) GetPost(_ context.Context, id string) (*Post, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	record, found := repository.records[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	return &record, nil
}

func (repository *MemoryRepository) GetAnyPost(_ context.Context) (*Post, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, record := range repository.records {
		copied := record
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (repository *MemoryRepository) UpdatePost(_ context.Context, id string, patch Patch) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	record, found := repository.records[id]
	if !found {
		return dberr.ErrNotFound
	}

	if patch.AuthorFirstName != nil {
		record.AuthorFirstName = *patch.AuthorFirstName
	}
	if patch.AuthorLastName != nil {
		record.AuthorLastName = *patch.AuthorLastName
	}
	if patch.Title != nil {
		record.Title = *patch.Title
	}
	if patch.Content != nil {
		record.Content = *patch.Content
	}

	repository.records[id] = record
	return nil
}

func (repository *MemoryRepository) DeletePost(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, found := repository.records[id]; !found {
		return dberr.ErrNotFound
	}

	delete(repository.records, id)
	return nil
}
