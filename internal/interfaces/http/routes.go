package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowdesk/internal/infrastructure/ratelimit"
	"flowdesk/internal/interfaces/http/middleware"
	"flowdesk/internal/shared/authorization"
)

// SetupRoutes registers middleware and all API routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.engine.Static(r.cfg.Upload.PublicPath, r.cfg.Upload.Dir)

	api := r.engine.Group("/api")
	if r.rateLimiter != nil {
		api.Use(middleware.RateLimit(r.rateLimiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: r.cfg.RateLimit.RequestsPerMinute,
		}))
	}

	r.setupAuthRoutes(api)

	protected := api.Group("")
	protected.Use(r.authMiddleware.RequireAuth())

	r.setupUserRoutes(protected)
	r.setupBoardRoutes(protected)
	r.setupTicketRoutes(protected)
	r.setupCRMRoutes(protected)
	r.setupProjectRoutes(protected)
	r.setupHRRoutes(protected)
	r.setupNotificationRoutes(protected)
}

func (r *Router) setupAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh", r.authHandler.Refresh)
	}
}

func (r *Router) setupUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("/me", r.userHandler.Me)
		users.GET("", authorization.RequireAdmin(), r.userHandler.List)
		users.PUT("/:id", r.userHandler.Update)
		users.DELETE("/:id", authorization.RequireAdmin(), r.userHandler.Delete)
	}

	uploads := api.Group("/uploads")
	{
		uploads.POST("/photo", r.userHandler.UploadPhoto)
	}
}

func (r *Router) setupBoardRoutes(api *gin.RouterGroup) {
	columns := api.Group("/columns")
	{
		columns.GET("", r.boardHandler.ListColumns)
		columns.POST("", authorization.RequireAdmin(), r.boardHandler.CreateColumn)
		columns.PUT("/:id", authorization.RequireAdmin(), r.boardHandler.UpdateColumn)
		columns.DELETE("/:id", authorization.RequireAdmin(), r.boardHandler.DeleteColumn)
	}
}

func (r *Router) setupTicketRoutes(api *gin.RouterGroup) {
	tickets := api.Group("/tickets")
	{
		tickets.GET("", r.ticketHandler.List)
		tickets.POST("", r.ticketHandler.Create)
		tickets.GET("/:id", r.ticketHandler.Get)
		tickets.PUT("/:id", r.ticketHandler.Update)
		tickets.DELETE("/:id", r.ticketHandler.Delete)
		tickets.PATCH("/:id/move", r.ticketHandler.Move)

		tickets.POST("/:id/comments", r.ticketHandler.AddComment)
		tickets.GET("/:id/comments", r.ticketHandler.ListComments)
	}

	comments := api.Group("/comments")
	{
		comments.DELETE("/:id", r.ticketHandler.DeleteComment)
	}
}

func (r *Router) setupCRMRoutes(api *gin.RouterGroup) {
	accounts := api.Group("/accounts")
	{
		accounts.GET("", r.crmHandler.ListAccounts)
		accounts.POST("", r.crmHandler.CreateAccount)
		accounts.PUT("/:id", r.crmHandler.UpdateAccount)
		accounts.DELETE("/:id", r.crmHandler.DeleteAccount)
	}

	contacts := api.Group("/contacts")
	{
		contacts.GET("", r.crmHandler.ListContacts)
		contacts.POST("", r.crmHandler.CreateContact)
		contacts.PUT("/:id", r.crmHandler.UpdateContact)
		contacts.DELETE("/:id", r.crmHandler.DeleteContact)
	}

	leads := api.Group("/leads")
	{
		leads.GET("", r.crmHandler.ListLeads)
		leads.POST("", r.crmHandler.CreateLead)
		leads.PUT("/:id", r.crmHandler.UpdateLead)
		leads.DELETE("/:id", r.crmHandler.DeleteLead)
	}

	opportunities := api.Group("/opportunities")
	{
		opportunities.GET("", r.crmHandler.ListOpportunities)
		opportunities.POST("", r.crmHandler.CreateOpportunity)
		opportunities.PUT("/:id", r.crmHandler.UpdateOpportunity)
		opportunities.DELETE("/:id", r.crmHandler.DeleteOpportunity)
		opportunities.PATCH("/:id/move", r.crmHandler.MoveOpportunity)
	}

	cases := api.Group("/cases")
	{
		cases.GET("", r.crmHandler.ListCases)
		cases.POST("", r.crmHandler.CreateCase)
		cases.PUT("/:id", r.crmHandler.UpdateCase)
		cases.DELETE("/:id", r.crmHandler.DeleteCase)
	}
}

func (r *Router) setupProjectRoutes(api *gin.RouterGroup) {
	sprints := api.Group("/sprints")
	{
		sprints.GET("", r.projectHandler.ListSprints)
		sprints.POST("", r.projectHandler.CreateSprint)
		sprints.PUT("/:id", r.projectHandler.UpdateSprint)
		sprints.DELETE("/:id", r.projectHandler.DeleteSprint)
	}

	tasks := api.Group("/tasks")
	{
		tasks.GET("", r.projectHandler.ListTasks)
		tasks.POST("", r.projectHandler.CreateTask)
		tasks.PUT("/:id", r.projectHandler.UpdateTask)
		tasks.DELETE("/:id", r.projectHandler.DeleteTask)
	}
}

func (r *Router) setupHRRoutes(api *gin.RouterGroup) {
	employees := api.Group("/employees")
	{
		employees.GET("", r.hrHandler.ListEmployees)
		employees.POST("", r.hrHandler.CreateEmployee)
		employees.PUT("/:id", r.hrHandler.UpdateEmployee)
		employees.DELETE("/:id", r.hrHandler.DeleteEmployee)
	}

	attendance := api.Group("/attendance")
	{
		attendance.GET("", r.hrHandler.ListAttendance)
		attendance.POST("/check-in", r.hrHandler.CheckIn)
		attendance.POST("/check-out", r.hrHandler.CheckOut)
	}

	payroll := api.Group("/payroll")
	payroll.Use(authorization.RequireAdmin())
	{
		payroll.GET("", r.hrHandler.ListPayroll)
		payroll.POST("", r.hrHandler.CreatePayroll)
		payroll.PUT("/:id", r.hrHandler.UpdatePayroll)
		payroll.PATCH("/:id/pay", r.hrHandler.MarkPayrollPaid)
		payroll.DELETE("/:id", r.hrHandler.DeletePayroll)
	}
}

func (r *Router) setupNotificationRoutes(api *gin.RouterGroup) {
	notifications := api.Group("/notifications")
	{
		notifications.GET("", r.notificationHandler.List)
		notifications.POST("", r.notificationHandler.Create)
		notifications.PATCH("/read-all", r.notificationHandler.MarkAllRead)
		notifications.PATCH("/:id/read", r.notificationHandler.MarkRead)
		notifications.DELETE("/:id", r.notificationHandler.Delete)
	}

	templates := api.Group("/templates")
	templates.Use(authorization.RequireAdmin())
	{
		templates.GET("", r.notificationHandler.ListTemplates)
		templates.POST("", r.notificationHandler.CreateTemplate)
		templates.PUT("/:id", r.notificationHandler.UpdateTemplate)
		templates.DELETE("/:id", r.notificationHandler.DeleteTemplate)
		templates.POST("/:id/render", r.notificationHandler.RenderTemplate)
	}

	messages := api.Group("/messages")
	messages.Use(authorization.RequireAdmin())
	{
		messages.POST("", r.notificationHandler.SendMessage)
	}
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
