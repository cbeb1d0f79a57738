package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nishan023/rms-test-sub000/configs"
	"github.com/nishan023/rms-test-sub000/controllers"
	"github.com/nishan023/rms-test-sub000/middlewares"
	"github.com/nishan023/rms-test-sub000/repository"
	"github.com/nishan023/rms-test-sub000/services"
	"github.com/nishan023/rms-test-sub000/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	stock := services.LogStockAdjuster{}
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, menuRepo, customerRepo, stock, hub)
	paymentSvc := services.NewPaymentService(db, orderRepo, paymentRepo, customerRepo, hub)
	creditSvc := services.NewCreditService(db, customerRepo, orderRepo, hub)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	customerCtrl := controllers.NewCustomerController(creditSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Public — QR menu ordering clients
	r.GET("/menu", menuCtrl.List)
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders/:id", orderCtrl.Detail)

	// Admin dashboard (staff/admin)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin", "staff"))
	{
		admin.GET("/orders", orderCtrl.ListActive)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		admin.POST("/orders/:id/cancel", orderCtrl.CancelOrder)
		admin.PATCH("/orders/:id/items/:menuItemId", orderCtrl.UpdateQuantity)
		admin.POST("/orders/:id/items/:menuItemId/reduce", orderCtrl.ReduceItem)
		admin.DELETE("/orders/:id/items/:menuItemId", orderCtrl.CancelItem)

		admin.POST("/orders/:id/pay/cash", paymentCtrl.PayCash)
		admin.POST("/orders/:id/pay/online", paymentCtrl.PayOnline)
		admin.POST("/orders/:id/pay/mixed", paymentCtrl.PayMixed)
		admin.POST("/orders/:id/pay/credit", paymentCtrl.PayCredit)

		admin.POST("/customers", customerCtrl.Create)
		admin.GET("/customers", customerCtrl.List)
		admin.GET("/customers/:id", customerCtrl.Detail)
		admin.POST("/customers/:id/charges", customerCtrl.RecordCharge)
		admin.POST("/customers/:id/payments", customerCtrl.RecordPayment)
		admin.DELETE("/customers/:id", customerCtrl.Delete)
	}

	// Staff creation is admin-only
	r.POST("/admin/staff", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"), authCtrl.CreateStaff)

	// Live order feed for dashboards
	r.GET("/ws/orders", middlewares.AuthMiddleware(cfg.JWTSecret, "admin", "staff"), hub.HandleWebSocket)
}
