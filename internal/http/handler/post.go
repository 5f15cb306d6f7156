package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"crmapi/internal/dto"
	"crmapi/internal/service"
)

// ListPosts handles GET /api/posts.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200 {array} dto.Post
// @Router       /api/posts [get]
func ListPosts(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := svc.List(c.UserContext())
		if !res.Success {
			return failureResponse(c, res)
		}
		return c.JSON(res.Data)
	}
}

// GetPost handles GET /api/posts/:id.
//
// @Summary      Get a post by ID
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200 {object} dto.Post
// @Failure      404 {object} map[string]string
// @Router       /api/posts/{id} [get]
func GetPost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res := svc.Get(c.UserContext(), id)
		if !res.Success {
			return failureResponse(c, res)
		}
		return c.JSON(res.Data)
	}
}

// CreatePost handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post body dto.PostCreate true "Post to create"
// @Success      201 {object} dto.Post
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/posts [post]
func CreatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.PostCreate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		if err := validate.Struct(in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", validationMessage(err))
		}

		res := svc.Create(c.UserContext(), in)
		if !res.Success {
			return failureResponse(c, res)
		}

		c.Location(fmt.Sprintf("/api/posts/%d", res.Data.PostID))
		return c.Status(fiber.StatusCreated).JSON(res.Data)
	}
}

// CreatePostBatch handles POST /api/posts/batch. The batch is all-or-nothing:
// any invalid item rejects every item.
//
// @Summary      Create posts in batch
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        posts body []dto.PostCreate true "Posts to create"
// @Success      201 {array} dto.Post
// @Failure      400 {object} map[string]string
// @Router       /api/posts/batch [post]
func CreatePostBatch(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ins []dto.PostCreate
		if err := c.BodyParser(&ins); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		for _, in := range ins {
			if err := validate.Struct(in); err != nil {
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", validationMessage(err))
			}
		}

		res := svc.CreateBatch(c.UserContext(), ins)
		if !res.Success {
			return failureResponse(c, res)
		}
		return c.Status(fiber.StatusCreated).JSON(res.Data)
	}
}

// UpdatePost handles PUT /api/posts/:id.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        post body dto.PostUpdate true "Updated fields"
// @Success      200 {object} dto.Post
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/posts/{id} [put]
func UpdatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in dto.PostUpdate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		if err := validate.Struct(in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", validationMessage(err))
		}

		res := svc.Update(c.UserContext(), id, in)
		if !res.Success {
			return failureResponse(c, res)
		}
		return c.JSON(res.Data)
	}
}

// DeletePost handles DELETE /api/posts/:id. The owning customer is never
// touched.
//
// @Summary      Delete a post
// @Tags         posts
// @Param        id path int true "Post ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Router       /api/posts/{id} [delete]
func DeletePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res := svc.Delete(c.UserContext(), id)
		if !res.Success {
			return failureResponse(c, res)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
