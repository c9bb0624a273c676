package echo

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/customer-import/internal/application/customer"
	"github.com/mohammadpnp/customer-import/internal/importfile"
	"go.uber.org/zap"
)

const mimeTextCSV = "text/csv"

type ImportHandler struct {
	useCase app.ImportCustomers
	logger  *zap.Logger
}

type importCustomerRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
	Password    string `json:"password" validate:"required,min=6"`
}

type importCustomersRequest struct {
	Customers []importCustomerRequest `json:"customers" validate:"required,dive"`
}

func NewImportHandler(useCase app.ImportCustomers, logger *zap.Logger) *ImportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportHandler{useCase: useCase, logger: logger}
}

// ImportCustomers accepts either a JSON body {"customers": [...]} or a raw
// text/csv upload. Any invalid record rejects the whole request.
func (h *ImportHandler) ImportCustomers(c echo.Context) error {
	var (
		in  app.ImportCustomersInput
		res *apiResponse
	)
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), mimeTextCSV) {
		in, res = h.bindCSV(c)
	} else {
		in, res = h.bindJSON(c)
	}
	if res != nil {
		return c.JSON(http.StatusBadRequest, res)
	}

	out, err := h.useCase.Execute(c.Request().Context(), in)
	if err != nil {
		h.logger.Error("import customers failed", zap.Int("rows", len(in.Customers)), zap.Error(err))
		if errors.Is(err, app.ErrImportCustomers) {
			return c.JSON(http.StatusInternalServerError, errorResponse("import_failed", "Failed to import customers"))
		}
		return c.JSON(http.StatusInternalServerError, errorResponse("internal_error", "failed to import customers"))
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ImportHandler) bindJSON(c echo.Context) (app.ImportCustomersInput, *apiResponse) {
	var req importCustomersRequest
	if err := c.Bind(&req); err != nil {
		res := errorResponse("bad_request", "invalid request body")
		return app.ImportCustomersInput{}, &res
	}
	if err := c.Validate(&req); err != nil {
		res := errorResponse("invalid_data", "Invalid request body", validationMessages(err)...)
		return app.ImportCustomersInput{}, &res
	}

	customers := make([]app.ImportCustomerData, 0, len(req.Customers))
	for _, row := range req.Customers {
		customers = append(customers, app.ImportCustomerData{
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			Email:       row.Email,
			CompanyName: row.CompanyName,
			Phone:       row.Phone,
			Password:    row.Password,
		})
	}
	return app.ImportCustomersInput{Customers: customers}, nil
}

func (h *ImportHandler) bindCSV(c echo.Context) (app.ImportCustomersInput, *apiResponse) {
	records, err := importfile.ParseCSV(c.Request().Body)
	if err != nil {
		res := errorResponse("invalid_csv", importfile.ErrInvalidCSV.Error())
		return app.ImportCustomersInput{}, &res
	}
	if len(records) == 0 {
		res := errorResponse("no_customers", importfile.ErrNoCustomers.Error())
		return app.ImportCustomersInput{}, &res
	}
	if problems := importfile.Validate(records); len(problems) > 0 {
		res := errorResponse("invalid_data", "Invalid CSV data", problems...)
		return app.ImportCustomersInput{}, &res
	}

	customers := make([]app.ImportCustomerData, 0, len(records))
	for _, record := range records {
		customers = append(customers, app.ImportCustomerData(record))
	}
	return app.ImportCustomersInput{Customers: customers}, nil
}
