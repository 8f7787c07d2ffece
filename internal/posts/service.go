// Copyright (c) 2026 Inkwell. All rights reserved.

package posts

import (
	"context"
	"log/slog"

	"github.com/inkwell-dev/inkwell/internal/platform/apperr"
	"github.com/inkwell-dev/inkwell/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListPosts(context context.Context) ([]*Post, error) {
	return service.repo.ListPosts(context)
}

func (service *Service) GetPost(context context.Context, id string) (*Post, error) {
	// A malformed id can never reference a record; report absence rather than
	// letting the uuid column reject it as a 500.
	if validator := new(validate.Validator).UUID(FieldID, id); validator.HasErrors() {
		return nil, apperr.NotFound("Post")
	}

	return service.repo.GetPost(context, id)
}

func (service *Service) GetAnyPost(context context.Context) (*Post, error) {
	return service.repo.GetAnyPost(context)
}

func (service *Service) CreatePost(context context.Context, post *Post) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, post.Title).MaxLen(FieldTitle, post.Title, maxTitleLen)
	validator.Required(FieldContent, post.Content)
	validator.Required(FieldAuthorFirstName, post.AuthorFirstName).MaxLen(FieldAuthorFirstName, post.AuthorFirstName, maxNameLen)
	validator.Required(FieldAuthorLastName, post.AuthorLastName).MaxLen(FieldAuthorLastName, post.AuthorLastName, maxNameLen)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreatePost(context, post); err != nil {
		return err
	}

	service.logger.Info("post_created",
		slog.String("post_id", post.ID),
		slog.String("title", post.Title),
	)
	return nil
}

// InsertPosts bulk-creates records after validating each one. Used by the
// seed command, never by the HTTP surface.
func (service *Service) InsertPosts(context context.Context, records []*Post) error {
	for _, record := range records {
		validator := &validate.Validator{}
		validator.Required(FieldTitle, record.Title)
		validator.Required(FieldContent, record.Content)
		validator.Required(FieldAuthorFirstName, record.AuthorFirstName)
		validator.Required(FieldAuthorLastName, record.AuthorLastName)

		if err := validator.Err(); err != nil {
			return err
		}
	}

	if err := service.repo.InsertPosts(context, records); err != nil {
		return err
	}

	service.logger.Info("posts_seeded", slog.Int("count", len(records)))
	return nil
}

// UpdatePost applies a partial update. bodyID is the optional id carried in
// the request body; when present it must match the path id.
func (service *Service) UpdatePost(context context.Context, id string, bodyID *string, patch Patch) error {
	validator := &validate.Validator{}

	if bodyID != nil {
		validator.Custom(FieldID, *bodyID != id, "Body id must match the path id")
	}

	if patch.Title != nil {
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, maxTitleLen)
	}
	if patch.Content != nil {
		validator.Required(FieldContent, *patch.Content)
	}
	if patch.AuthorFirstName != nil {
		validator.Required(FieldAuthorFirstName, *patch.AuthorFirstName).MaxLen(FieldAuthorFirstName, *patch.AuthorFirstName, maxNameLen)
	}
	if patch.AuthorLastName != nil {
		validator.Required(FieldAuthorLastName, *patch.AuthorLastName).MaxLen(FieldAuthorLastName, *patch.AuthorLastName, maxNameLen)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if uuidCheck := new(validate.Validator).UUID(FieldID, id); uuidCheck.HasErrors() {
		return apperr.NotFound("Post")
	}

	if err := service.repo.UpdatePost(context, id, patch); err != nil {
		return err
	}

	service.logger.Info("post_updated", slog.String("post_id", id))
	return nil
}

func (service *Service) DeletePost(context context.Context, id string) error {
	if validator := new(validate.Validator).UUID(FieldID, id); validator.HasErrors() {
		return apperr.NotFound("Post")
	}

	if err := service.repo.DeletePost(context, id); err != nil {
		return err
	}

	service.logger.Warn("post_deleted", slog.String("post_id", id))
	return nil
}
