// Copyright (c) 2026 Inkwell. All rights reserved.

package posts

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/inkwell-dev/inkwell/internal/platform/constants"
)

// CachedRepository decorates a [Repository] with a Redis read-through cache
// on single-record lookups.
//
// # Semantics
//
// The cache is strictly best-effort: a Redis outage degrades to direct
// database reads and never fails a request. Writes invalidate the cached
// entry so the next read observes the database state.
type CachedRepository struct {
	next   Repository
	client *redis.Client
	logger *slog.Logger
}

func NewCachedRepository(next Repository, client *redis.Client, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{next: next, client: client, logger: logger}
}

func cacheKey(id string) string {
	return constants.RedisPrefixPost + id
}

func (repository *CachedRepository) GetPost(context context.Context, id string) (*Post, error) {
	payload, err := repository.client.Get(context, cacheKey(id)).Bytes()
	if err == nil {
		record := &Post{}
		if unmarshalErr := json.Unmarshal(payload, record); unmarshalErr == nil {
			return record, nil
		}
		// Corrupt entry: drop it and fall through to the database.
		repository.invalidate(context, id)
	} else if !errors.Is(err, redis.Nil) {
		repository.logger.Warn("post_cache_read_failed", slog.String("post_id", id), slog.Any("error", err))
	}

	record, err := repository.next.GetPost(context, id)
	if err != nil {
		return nil, err
	}

	if payload, marshalErr := json.Marshal(record); marshalErr == nil {
		if setErr := repository.client.Set(context, cacheKey(id), payload, constants.PostCacheTTL).Err(); setErr != nil {
			repository.logger.Warn("post_cache_write_failed", slog.String("post_id", id), slog.Any("error", setErr))
		}
	}

	return record, nil
}

func (repository *CachedRepository) UpdatePost(context context.Context, id string, patch Patch) error {
	if err := repository.next.UpdatePost(context, id, patch); err != nil {
		return err
	}

	repository.invalidate(context, id)
	return nil
}

func (repository *CachedRepository) DeletePost(context context.Context, id string) error {
	if err := repository.next.DeletePost(context, id); err != nil {
		return err
	}

	repository.invalidate(context, id)
	return nil
}

// invalidate drops the cached entry for id. Failures are logged, not surfaced.
func (repository *CachedRepository) invalidate(context context.Context, id string) {
	if err := repository.client.Del(context, cacheKey(id)).Err(); err != nil {
		repository.logger.Warn("post_cache_invalidate_failed", slog.String("post_id", id), slog.Any("error", err))
	}
}

// # Passthrough Operations

func (repository *CachedRepository) CreatePost(context context.Context, p *Post) error {
	return repository.next.CreatePost(context, p)
}

func (repository *CachedRepository) InsertPosts(context context.Context, records []*Post) error {
	return repository.next.InsertPosts(context, records)
}

func (repository *CachedRepository) ListPosts(context context.Context) ([]*Post, error) {
	return repository.next.ListPosts(context)
}

func (repository *CachedRepository) GetAnyPost(context context.Context) (*Post, error) {
	return repository.next.GetAnyPost(context)
}
