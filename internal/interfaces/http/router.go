// Package http assembles the Gin engine: repositories, use cases,
// handlers, and middleware are wired here.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUC "flowdesk/internal/application/auth/usecases"
	boardUC "flowdesk/internal/application/board/usecases"
	crmUC "flowdesk/internal/application/crm/usecases"
	hrUC "flowdesk/internal/application/hr/usecases"
	notificationUC "flowdesk/internal/application/notification/usecases"
	projectUC "flowdesk/internal/application/project/usecases"
	ticketUC "flowdesk/internal/application/ticket/usecases"
	userUC "flowdesk/internal/application/user/usecases"
	"flowdesk/internal/infrastructure/auth"
	"flowdesk/internal/infrastructure/config"
	"flowdesk/internal/infrastructure/email"
	"flowdesk/internal/infrastructure/ratelimit"
	"flowdesk/internal/infrastructure/render"
	"flowdesk/internal/infrastructure/repository"
	"flowdesk/internal/infrastructure/sms"
	"flowdesk/internal/infrastructure/storage"
	"flowdesk/internal/interfaces/http/handlers"
	"flowdesk/internal/interfaces/http/middleware"
	sharedDB "flowdesk/internal/shared/db"
	"flowdesk/internal/shared/logger"
)

type Router struct {
	engine              *gin.Engine
	cfg                 *config.Config
	logger              logger.Interface
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         ratelimit.RateLimiter
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	boardHandler        *handlers.BoardHandler
	ticketHandler       *handlers.TicketHandler
	crmHandler          *handlers.CRMHandler
	projectHandler      *handlers.ProjectHandler
	hrHandler           *handlers.HRHandler
	notificationHandler *handlers.NotificationHandler
}

// NewRouter builds the full dependency graph on top of the database
// handle. Construction fails only when local infrastructure (the upload
// directory) cannot be prepared.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	txManager := sharedDB.NewTransactionManager(db)

	userRepo := repository.NewUserRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	contactRepo := repository.NewContactRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	caseRepo := repository.NewCaseRepository(db)
	sprintRepo := repository.NewSprintRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	payrollRepo := repository.NewPayrollRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	tokens := auth.NewTokenServiceAdapter(jwtService)
	renderer := render.NewMarkdownRenderer()

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})
	smsClient := sms.NewClient(sms.Config{
		APIURL:     cfg.SMS.APIURL,
		APIKey:     cfg.SMS.APIKey,
		Originator: cfg.SMS.Originator,
		Route:      cfg.SMS.Route,
	})

	photoStore, err := storage.NewPhotoStore(cfg.Upload.Dir, cfg.Upload.MaxSizeMB)
	if err != nil {
		return nil, err
	}

	authHandler := handlers.NewAuthHandler(
		authUC.NewRegisterUseCase(userRepo, hasher, tokens, log),
		authUC.NewLoginUseCase(userRepo, hasher, tokens, log),
		authUC.NewRefreshTokenUseCase(userRepo, tokens, log),
	)

	userHandler := handlers.NewUserHandler(
		userUC.NewGetProfileUseCase(userRepo, log),
		userUC.NewListUsersUseCase(userRepo, log),
		userUC.NewUpdateUserUseCase(userRepo, log),
		userUC.NewDeleteUserUseCase(userRepo, log),
		userUC.NewUploadPhotoUseCase(userRepo, photoStore, log),
	)

	boardHandler := handlers.NewBoardHandler(
		boardUC.NewListColumnsUseCase(columnRepo, txManager, log),
		boardUC.NewCreateColumnUseCase(columnRepo, log),
		boardUC.NewUpdateColumnUseCase(columnRepo, log),
		boardUC.NewDeleteColumnUseCase(columnRepo, ticketRepo, txManager, log),
	)

	ticketHandler := handlers.NewTicketHandler(
		ticketUC.NewCreateTicketUseCase(ticketRepo, txManager, log),
		ticketUC.NewGetTicketUseCase(ticketRepo, log),
		ticketUC.NewListTicketsUseCase(ticketRepo, log),
		ticketUC.NewUpdateTicketUseCase(ticketRepo, log),
		ticketUC.NewDeleteTicketUseCase(ticketRepo, commentRepo, txManager, log),
		ticketUC.NewMoveTicketUseCase(ticketRepo, txManager, log),
		ticketUC.NewAddCommentUseCase(ticketRepo, commentRepo, txManager, renderer, log),
		ticketUC.NewListCommentsUseCase(ticketRepo, commentRepo, log),
		ticketUC.NewDeleteCommentUseCase(ticketRepo, commentRepo, txManager, log),
	)

	crmHandler := handlers.NewCRMHandler(
		crmUC.NewAccountUseCases(accountRepo, log),
		crmUC.NewContactUseCases(contactRepo, accountRepo, log),
		crmUC.NewLeadUseCases(leadRepo, log),
		crmUC.NewOpportunityUseCases(opportunityRepo, accountRepo, txManager, log),
		crmUC.NewCaseUseCases(caseRepo, accountRepo, log),
	)

	projectHandler := handlers.NewProjectHandler(
		projectUC.NewSprintUseCases(sprintRepo, log),
		projectUC.NewTaskUseCases(taskRepo, sprintRepo, log),
	)

	hrHandler := handlers.NewHRHandler(
		hrUC.NewEmployeeUseCases(employeeRepo, log),
		hrUC.NewAttendanceUseCases(attendanceRepo, employeeRepo, txManager, log),
		hrUC.NewPayrollUseCases(payrollRepo, employeeRepo, log),
	)

	notificationHandler := handlers.NewNotificationHandler(
		notificationUC.NewNotificationUseCases(notificationRepo, log),
		notificationUC.NewTemplateUseCases(templateRepo, renderer, log),
		notificationUC.NewDispatchUseCase(templateRepo, renderer, emailService, smsClient, log),
	)

	return &Router{
		engine:              engine,
		cfg:                 cfg,
		logger:              log,
		authMiddleware:      middleware.NewAuthMiddleware(jwtService, log),
		rateLimiter:         buildRateLimiter(cfg),
		authHandler:         authHandler,
		userHandler:         userHandler,
		boardHandler:        boardHandler,
		ticketHandler:       ticketHandler,
		crmHandler:          crmHandler,
		projectHandler:      projectHandler,
		hrHandler:           hrHandler,
		notificationHandler: notificationHandler,
	}, nil
}

// buildRateLimiter returns nil when rate limiting is disabled. Redis
// backs the limiter when a host is configured so limits hold across
// instances; otherwise the limiter is process-local.
func buildRateLimiter(cfg *config.Config) ratelimit.RateLimiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	if cfg.Redis.Host != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return ratelimit.NewRedisRateLimiter(client)
	}
	return ratelimit.NewMemoryRateLimiter()
}
