package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/customer-import/internal/application/customer"
)

type CustomerHandler struct {
	getCustomer app.GetCustomerByID
	getImport   app.GetImportByID
}

func NewCustomerHandler(getCustomer app.GetCustomerByID, getImport app.GetImportByID) *CustomerHandler {
	return &CustomerHandler{getCustomer: getCustomer, getImport: getImport}
}

func (h *CustomerHandler) GetCustomerByID(c echo.Context) error {
	out, err := h.getCustomer.Execute(c.Request().Context(), app.GetCustomerByIDInput{
		ID: c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidCustomerID) {
			return c.JSON(http.StatusBadRequest, errorResponse("invalid_customer_id", "id must be a customer id"))
		}
		if errors.Is(err, app.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse("not_found", "customer not found"))
		}

		return c.JSON(http.StatusInternalServerError, errorResponse("internal_error", "failed to get customer"))
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) GetImportByID(c echo.Context) error {
	out, err := h.getImport.Execute(c.Request().Context(), app.GetImportByIDInput{
		ID: c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidImportID) {
			return c.JSON(http.StatusBadRequest, errorResponse("invalid_import_id", "id must be a customer import id"))
		}
		if errors.Is(err, app.ErrImportNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse("not_found", "customer import not found"))
		}

		return c.JSON(http.StatusInternalServerError, errorResponse("internal_error", "failed to get customer import"))
	}

	return c.JSON(http.StatusOK, out)
}
