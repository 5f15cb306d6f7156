package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"crmapi/internal/dto"
	"crmapi/internal/result"
	serviceMocks "crmapi/internal/service/mocks"
)

func TestListPosts(t *testing.T) {
	mockSvc := new(serviceMocks.MockPostService)
	app := fiber.New()
	app.Get("/api/posts", ListPosts(mockSvc))

	mockSvc.On("List", mock.Anything).
		Return(result.Ok([]dto.Post{{PostID: 1, Title: "t"}})).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.Post
	json.NewDecoder(resp.Body).Decode(&out)
	assert.Len(t, out, 1)
	mockSvc.AssertExpectations(t)
}

func TestGetPost(t *testing.T) {
	mockSvc := new(serviceMocks.MockPostService)
	app := fiber.New()
	app.Get("/api/posts/:id", GetPost(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, 4).
			Return(result.Ok(dto.Post{PostID: 4, Title: "t"})).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/posts/4", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, 4).
			Return(result.NotFound[dto.Post]("Post with ID 4 not found.")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/posts/4", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Post with ID 4 not found.", body["message"])
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/posts/nope", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreatePost(t *testing.T) {
	mockSvc := new(serviceMocks.MockPostService)
	app := fiber.New()
	app.Post("/api/posts", CreatePost(mockSvc))

	t.Run("created with location", func(t *testing.T) {
		in := dto.PostCreate{Title: "t", Body: "b", Type: 1, CustomerID: 7}
		mockSvc.On("Create", mock.Anything, in).
			Return(result.Ok(dto.Post{PostID: 21, Title: "t", Category: "Entertainment", CustomerID: 7})).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/posts", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/api/posts/21", resp.Header.Get("Location"))
	})

	t.Run("customer not found", func(t *testing.T) {
		in := dto.PostCreate{Title: "t", CustomerID: 99}
		mockSvc.On("Create", mock.Anything, in).
			Return(result.NotFound[dto.Post]("Customer with ID 99 not found.")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/posts", in))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("validation rejects missing title", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/posts", dto.PostCreate{CustomerID: 7}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertNotCalled(t, "Create", mock.Anything, dto.PostCreate{CustomerID: 7})
	})
}

func TestCreatePostBatch(t *testing.T) {
	mockSvc := new(serviceMocks.MockPostService)
	app := fiber.New()
	app.Post("/api/posts/batch", CreatePostBatch(mockSvc))

	t.Run("created", func(t *testing.T) {
		ins := []dto.PostCreate{
			{Title: "a", Type: 1, CustomerID: 1},
			{Title: "b", Type: 2, CustomerID: 1},
		}
		mockSvc.On("CreateBatch", mock.Anything, ins).
			Return(result.Ok([]dto.Post{{PostID: 1}, {PostID: 2}})).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/posts/batch", ins))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var out []dto.Post
		json.NewDecoder(resp.Body).Decode(&out)
		assert.Len(t, out, 2)
	})

	t.Run("empty batch rejected by service", func(t *testing.T) {
		mockSvc.On("CreateBatch", mock.Anything, []dto.PostCreate{}).
			Return(result.BadRequest[[]dto.Post]("No posts provided for batch creation")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/posts/batch", []dto.PostCreate{}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "No posts provided for batch creation", body["message"])
	})

	t.Run("aggregate validation failure", func(t *testing.T) {
		ins := []dto.PostCreate{{Title: "orphan", CustomerID: 99}}
		mockSvc.On("CreateBatch", mock.Anything, ins).
			Return(result.BadRequest[[]dto.Post]("Validation errors: Customer with ID 99 not found for post with title 'orphan'")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/posts/batch", ins))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdatePost(t *testing.T) {
	mockSvc := new(serviceMocks.MockPostService)
	app := fiber.New()
	app.Put("/api/posts/:id", UpdatePost(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := dto.PostUpdate{Title: "t", Body: "b", Type: 2}
		mockSvc.On("Update", mock.Anything, 4, in).
			Return(result.Ok(dto.Post{PostID: 4, Title: "t", Category: "Politics"})).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/api/posts/4", in))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("validation rejects out-of-range type", func(t *testing.T) {
		in := dto.PostUpdate{Title: "t", Body: "b", Type: 11}
		resp, _ := app.Test(jsonRequest(http.MethodPut, "/api/posts/4", in))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertNotCalled(t, "Update", mock.Anything, 4, in)
	})
}

func TestDeletePost(t *testing.T) {
	mockSvc := new(serviceMocks.MockPostService)
	app := fiber.New()
	app.Delete("/api/posts/:id", DeletePost(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, 4).Return(result.Ok(true)).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/posts/4", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, 4).
			Return(result.NotFound[bool]("Post with ID 4 not found.")).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/posts/4", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
