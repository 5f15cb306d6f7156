package handler

import (
	"bytes"
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

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestListCustomers(t *testing.T) {
	mockSvc := new(serviceMocks.MockCustomerService)
	app := fiber.New()
	app.Get("/api/customers", ListCustomers(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).
			Return(result.Ok([]dto.Customer{{CustomerID: 1, Name: "Alice"}})).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out []dto.Customer
		json.NewDecoder(resp.Body).Decode(&out)
		assert.Len(t, out, 1)
		assert.Equal(t, "Alice", out[0].Name)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service failure", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).
			Return(result.Fail[[]dto.Customer]("internal server error", http.StatusInternalServerError)).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "internal server error", body["message"])
	})
}

func TestGetCustomer(t *testing.T) {
	mockSvc := new(serviceMocks.MockCustomerService)
	app := fiber.New()
	app.Get("/api/customers/:id", GetCustomer(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, 7).
			Return(result.Ok(dto.Customer{CustomerID: 7, Name: "Alice"})).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/customers/7", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out dto.Customer
		json.NewDecoder(resp.Body).Decode(&out)
		assert.Equal(t, 7, out.CustomerID)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, 99).
			Return(result.NotFound[dto.Customer]("Customer with ID 99 not found.")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/customers/99", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Customer with ID 99 not found.", body["message"])
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/customers/abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
	})
}

func TestCreateCustomer(t *testing.T) {
	mockSvc := new(serviceMocks.MockCustomerService)
	app := fiber.New()
	app.Post("/api/customers", CreateCustomer(mockSvc))

	t.Run("created with location", func(t *testing.T) {
		in := dto.CustomerCreate{Name: "Alice Smith"}
		mockSvc.On("Create", mock.Anything, in).
			Return(result.Ok(dto.Customer{CustomerID: 12, Name: "Alice Smith"})).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/customers", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/api/customers/12", resp.Header.Get("Location"))
		mockSvc.AssertExpectations(t)
	})

	t.Run("conflict", func(t *testing.T) {
		in := dto.CustomerCreate{Name: "Alice Smith"}
		mockSvc.On("Create", mock.Anything, in).
			Return(result.Conflict[dto.Customer]("A customer with the name 'Alice Smith' already exists.")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/customers", in))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "A customer with the name 'Alice Smith' already exists.", body["message"])
	})

	t.Run("validation rejects empty name", func(t *testing.T) {
		// Clear calls recorded by earlier subtests so AssertNotCalled only
		// observes this subtest's request.
		mockSvc.Calls = nil

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/customers", dto.CustomerCreate{Name: ""}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("validation rejects digits in name", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/customers", dto.CustomerCreate{Name: "Alice1"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateCustomer(t *testing.T) {
	mockSvc := new(serviceMocks.MockCustomerService)
	app := fiber.New()
	app.Put("/api/customers/:id", UpdateCustomer(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := dto.CustomerUpdate{Name: "New Name"}
		mockSvc.On("Update", mock.Anything, 3, in).
			Return(result.Ok(dto.Customer{CustomerID: 3, Name: "New Name"})).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/api/customers/3", in))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		in := dto.CustomerUpdate{Name: "New Name"}
		mockSvc.On("Update", mock.Anything, 3, in).
			Return(result.NotFound[dto.Customer]("Customer with ID 3 not found.")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/api/customers/3", in))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteCustomer(t *testing.T) {
	mockSvc := new(serviceMocks.MockCustomerService)
	app := fiber.New()
	app.Delete("/api/customers/:id", DeleteCustomer(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, 5).Return(result.Ok(true)).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/customers/5", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, 5).
			Return(result.NotFound[bool]("Customer with ID 5 not found.")).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/customers/5", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
