package echo

import e "github.com/labstack/echo/v4"

type RouteConfig struct {
	AdminToken    string
	ImportLimiter *RateLimiter
}

func RegisterRoutes(server *e.Echo, importHandler *ImportHandler, customerHandler *CustomerHandler, cfg RouteConfig) {
	if server.Validator == nil {
		server.Validator = NewValidator()
	}

	admin := server.Group("/admin/customers", AdminAuth(cfg.AdminToken))
	admin.POST("/import", importHandler.ImportCustomers, cfg.ImportLimiter.Middleware())
	admin.GET("/imports/:id", customerHandler.GetImportByID)
	admin.GET("/:id", customerHandler.GetCustomerByID)
}
