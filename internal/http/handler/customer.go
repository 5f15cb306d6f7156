package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"crmapi/internal/dto"
	"crmapi/internal/service"
)

// ListCustomers handles GET /api/customers.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200 {array} dto.Customer
// @Router       /api/customers [get]
func ListCustomers(svc service.CustomerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := svc.List(c.UserContext())
		if !res.Success {
			return failureResponse(c, res)
		}
		return c.JSON(res.Data)
	}
}

// GetCustomer handles GET /api/customers/:id.
//
// @Summary      Get a customer by ID
// @Tags         customers
// @Produce      json
// @Param        id path int true "Customer ID"
// @Success      200 {object} dto.Customer
// @Failure      404 {object} map[string]string
// @Router       /api/customers/{id} [get]
func GetCustomer(svc service.CustomerService) fiber.Handler {
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

// CreateCustomer handles POST /api/customers.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer body dto.CustomerCreate true "Customer to create"
// @Success      201 {object} dto.Customer
// @Failure      400 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /api/customers [post]
func CreateCustomer(svc service.CustomerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.CustomerCreate
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

		c.Location(fmt.Sprintf("/api/customers/%d", res.Data.CustomerID))
		return c.Status(fiber.StatusCreated).JSON(res.Data)
	}
}

// UpdateCustomer handles PUT /api/customers/:id.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path int true "Customer ID"
// @Param        customer body dto.CustomerUpdate true "Updated fields"
// @Success      200 {object} dto.Customer
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/customers/{id} [put]
func UpdateCustomer(svc service.CustomerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in dto.CustomerUpdate
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

// DeleteCustomer handles DELETE /api/customers/:id. Deleting a customer also
// deletes every post it owns.
//
// @Summary      Delete a customer and its posts
// @Tags         customers
// @Param        id path int true "Customer ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Router       /api/customers/{id} [delete]
func DeleteCustomer(svc service.CustomerService) fiber.Handler {
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
