package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"crmapi/internal/dto"
	"crmapi/internal/model"
	"crmapi/internal/repository"
	"crmapi/internal/result"
)

// PostService defines the use cases for handling posts.
type PostService interface {
	// List returns all posts.
	List(ctx context.Context) result.OperationResult[[]dto.Post]

	// Get returns a single post by its identity.
	Get(ctx context.Context, id int) result.OperationResult[dto.Post]

	// Create stores a new post after resolving its owning customer.
	Create(ctx context.Context, in dto.PostCreate) result.OperationResult[dto.Post]

	// CreateBatch stores all posts or none: any item referencing a missing
	// customer rejects the whole batch.
	CreateBatch(ctx context.Context, ins []dto.PostCreate) result.OperationResult[[]dto.Post]

	// Update merges the input fields onto the stored post.
	Update(ctx context.Context, id int, in dto.PostUpdate) result.OperationResult[dto.Post]

	// Delete removes the post. The owning customer is never touched.
	Delete(ctx context.Context, id int) result.OperationResult[bool]
}

// postService is a concrete implementation of PostService.
type postService struct {
	posts     repository.PostRepository
	customers repository.CustomerRepository
	log       zerolog.Logger
}

// NewPostService constructs a new PostService.
func NewPostService(posts repository.PostRepository, customers repository.CustomerRepository, log zerolog.Logger) PostService {
	return &postService{posts: posts, customers: customers, log: log}
}

func postNotFoundMsg(id int) string {
	return fmt.Sprintf("Post with ID %d not found.", id)
}

func (s *postService) List(ctx context.Context) result.OperationResult[[]dto.Post] {
	posts, err := s.posts.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list posts failed")
		return result.Fail[[]dto.Post](internalErrorMessage, http.StatusInternalServerError)
	}
	return result.Ok(dto.PostsFromModel(posts))
}

func (s *postService) Get(ctx context.Context, id int) result.OperationResult[dto.Post] {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result.NotFound[dto.Post](postNotFoundMsg(id))
		}
		s.log.Error().Err(err).Int("post_id", id).Msg("get post failed")
		return result.Fail[dto.Post](internalErrorMessage, http.StatusInternalServerError)
	}
	return result.Ok(dto.PostFromModel(post))
}

func (s *postService) Create(ctx context.Context, in dto.PostCreate) result.OperationResult[dto.Post] {
	_, err := s.customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result.NotFound[dto.Post](customerNotFoundMsg(in.CustomerID))
		}
		s.log.Error().Err(err).Int("customer_id", in.CustomerID).Msg("create post customer lookup failed")
		return result.Fail[dto.Post](internalErrorMessage, http.StatusInternalServerError)
	}

	deriveBodyAndCategory(&in.Body, in.Type, &in.Category)

	entity := in.ToModel()
	created, err := s.posts.Create(ctx, &entity)
	if err != nil {
		s.log.Error().Err(err).Int("customer_id", in.CustomerID).Msg("create post failed")
		return result.Fail[dto.Post](internalErrorMessage, http.StatusInternalServerError)
	}
	return result.Ok(dto.PostFromModel(created))
}

func (s *postService) CreateBatch(ctx context.Context, ins []dto.PostCreate) result.OperationResult[[]dto.Post] {
	if len(ins) == 0 {
		return result.BadRequest[[]dto.Post]("No posts provided for batch creation")
	}

	var (
		entities []model.Post
		errs     []string
	)
	for _, in := range ins {
		_, err := s.customers.FindByID(ctx, in.CustomerID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				errs = append(errs, fmt.Sprintf("Customer with ID %d not found for post with title '%s'", in.CustomerID, in.Title))
				continue
			}
			s.log.Error().Err(err).Int("customer_id", in.CustomerID).Msg("batch create customer lookup failed")
			return result.Fail[[]dto.Post](internalErrorMessage, http.StatusInternalServerError)
		}

		deriveBodyAndCategory(&in.Body, in.Type, &in.Category)
		entities = append(entities, in.ToModel())
	}

	// All-or-nothing: any invalid item rejects the whole batch, including
	// the valid ones. Nothing has been persisted at this point.
	if len(errs) > 0 {
		return result.BadRequest[[]dto.Post]("Validation errors: " + strings.Join(errs, "; "))
	}

	created, err := s.posts.AddRange(ctx, entities)
	if err != nil {
		s.log.Error().Err(err).Int("count", len(entities)).Msg("batch create posts failed")
		return result.Fail[[]dto.Post](internalErrorMessage, http.StatusInternalServerError)
	}
	return result.Ok(dto.PostsFromModel(created))
}

func (s *postService) Update(ctx context.Context, id int, in dto.PostUpdate) result.OperationResult[dto.Post] {
	original, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result.NotFound[dto.Post](postNotFoundMsg(id))
		}
		s.log.Error().Err(err).Int("post_id", id).Msg("update post lookup failed")
		return result.Fail[dto.Post](internalErrorMessage, http.StatusInternalServerError)
	}

	deriveBodyAndCategory(&in.Body, in.Type, &in.Category)

	edited := *original
	in.MergeInto(&edited)

	updated, _, err := s.posts.Update(ctx, &edited, original)
	if err != nil {
		s.log.Error().Err(err).Int("post_id", id).Msg("update post failed")
		return result.Fail[dto.Post](internalErrorMessage, http.StatusInternalServerError)
	}
	return result.Ok(dto.PostFromModel(updated))
}

func (s *postService) Delete(ctx context.Context, id int) result.OperationResult[bool] {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result.NotFound[bool](postNotFoundMsg(id))
		}
		s.log.Error().Err(err).Int("post_id", id).Msg("delete post lookup failed")
		return result.Fail[bool](internalErrorMessage, http.StatusInternalServerError)
	}

	if err := s.posts.Remove(ctx, post); err != nil {
		s.log.Error().Err(err).Int("post_id", id).Msg("delete post failed")
		return result.Fail[bool](internalErrorMessage, http.StatusInternalServerError)
	}
	return result.Ok(true)
}
