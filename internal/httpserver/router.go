package httpserver

import (
	"github.com/labstack/echo/v4"
)

type Deps struct {
	UserHandler     *UserHandler
	DeviceHandler   *DeviceHandler
	ContractHandler *ContractHandler
	ReportHandler   *ReportHandler
	CartHandler     *CartHandler
	AIHandler       *AIHandler

	// SearchHandler is nil when Elasticsearch is not configured.
	SearchHandler *SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	users := v1.Group("/users")
	users.POST("", d.UserHandler.CreateUser)
	users.GET("/:id", d.UserHandler.GetUser)
	users.PUT("/:id", d.UserHandler.UpdateUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)
	users.GET("/:id/devices", d.DeviceHandler.GetUserDevices)
	users.GET("/:id/reports", d.ReportHandler.GetUserReports)

	devices := v1.Group("/devices")
	devices.POST("", d.DeviceHandler.CreateDevice)
	devices.GET("", d.DeviceHandler.GetDevices)
	devices.GET("/:id", d.DeviceHandler.GetDevice)
	devices.DELETE("/:id", d.DeviceHandler.DeleteDevice)
	devices.GET("/:id/reports", d.ReportHandler.GetDeviceReports)

	contracts := v1.Group("/contracts")
	contracts.POST("", d.ContractHandler.CreateContract)
	contracts.GET("", d.ContractHandler.GetContracts)
	contracts.GET("/:id", d.ContractHandler.GetContract)
	contracts.DELETE("/:id", d.ContractHandler.DeleteContract)

	reports := v1.Group("/reports")
	reports.POST("", d.ReportHandler.CreateReport)
	reports.GET("", d.ReportHandler.GetReports)
	reports.GET("/:id", d.ReportHandler.GetReport)
	reports.DELETE("/:id", d.ReportHandler.DeleteReport)

	cart := v1.Group("/cart")
	cart.GET("/:user_id", d.CartHandler.GetCart)
	cart.POST("/:user_id/items", d.CartHandler.AddToCart)
	cart.DELETE("/:user_id/items/:device_id", d.CartHandler.RemoveFromCart)
	cart.DELETE("/:user_id", d.CartHandler.ClearCart)
	cart.POST("/:user_id/checkout", d.CartHandler.CheckoutCart)

	v1.GET("/orders", d.CartHandler.GetOrders)

	ai := v1.Group("/ai")
	ai.POST("/recommend", d.AIHandler.Recommend)
	ai.POST("/query", d.AIHandler.Query)
	ai.POST("/explain", d.AIHandler.Explain)

	if d.SearchHandler != nil {
		v1.GET("/search", d.SearchHandler.Search)
	}
}
