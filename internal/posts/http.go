// Copyright (c) 2026 Inkwell. All rights reserved.

/*
Package posts implements the blog-post resource: entity, validation,
storage, and HTTP delivery.

# Architecture

The handler acts as a thin mediation layer between the web and the domain
service:
  - Protocol: Standard RESTful JSON interface.
  - Transformation: Stored records always leave the handler in wire form.
  - Verification: Enforces strict input validation before touching storage.

This layer is strictly responsible for transport concerns (status codes, JSON).
*/
package posts

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/inkwell-dev/inkwell/internal/platform/request"
	"github.com/inkwell-dev/inkwell/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the /posts HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the post resource routes.
//
// # Endpoints
//   - GET    /      : Lists every post in wire form.
//   - POST   /      : Creates a post, returns it with assigned id/created.
//   - GET    /{id}  : Fetches a single post.
//   - PUT    /{id}  : Partially updates a post, no response body.
//   - DELETE /{id}  : Removes a post, no response body.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPosts)
	router.Post("/", handler.createPost)
	router.Get("/{id}", handler.getPost)
	router.Put("/{id}", handler.updatePost)
	router.Delete("/{id}", handler.deletePost)

	return router
}

// # Request Payloads

// authorPayload is the structured author pair as it appears in request bodies.
type authorPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type createPostRequest struct {
	Author  authorPayload `json:"author"`
	Title   string        `json:"title"`
	Content string        `json:"content"`
}

// updatePostRequest carries the mutable fields as pointers so absent fields
// can be told apart from blank ones. The optional id must match the path.
type updatePostRequest struct {
	ID      *string        `json:"id"`
	Author  *authorPayload `json:"author"`
	Title   *string        `json:"title"`
	Content *string        `json:"content"`
}

func (request *updatePostRequest) patch() Patch {
	patch := Patch{
		Title:   request.Title,
		Content: request.Content,
	}
	if request.Author != nil {
		patch.AuthorFirstName = &request.Author.FirstName
		patch.AuthorLastName = &request.Author.LastName
	}
	return patch
}

// # Endpoint Handlers

// listPosts handles GET /posts.
//
// Returns 200 with a bare JSON array of wire-form posts.
func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	records, err := handler.service.ListPosts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, WireList(records))
}

// getPost handles GET /posts/{id}.
//
// Returns 200 with the wire-form post, or 404 when absent.
func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	record, err := handler.service.GetPost(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record.Wire())
}

// createPost handles POST /posts.
//
// Returns 201 with the created post (assigned id/created included), or 400
// when any required field is missing or blank.
func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	var input createPostRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record := &Post{
		AuthorFirstName: input.Author.FirstName,
		AuthorLastName:  input.Author.LastName,
		Title:           input.Title,
		Content:         input.Content,
	}

	if err := handler.service.CreatePost(request.Context(), record); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record.Wire())
}

// updatePost handles PUT /posts/{id}.
//
// Returns 204 with no body, 400 when the body id does not match the path id
// or a provided field is blank, 404 when the id is absent.
func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input updatePostRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePost(request.Context(), id, input.ID, input.patch()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// deletePost handles DELETE /posts/{id}.
//
// Returns 204 with no body, or 404 when the id is absent.
func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeletePost(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
