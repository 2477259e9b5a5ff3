package handler

import (
	"net/http"
	"time"

	"github.com/IBM/sarama"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/CutieCat6778/reservation-frontdesk/config"
	"github.com/CutieCat6778/reservation-frontdesk/internal/session"
	"github.com/CutieCat6778/reservation-frontdesk/pkg/validate"
	_ "github.com/CutieCat6778/reservation-frontdesk/swagger"
)

type Handler struct {
	log         *zap.Logger
	backendSvc  BackendService
	queue       Enqueuer
	sessions    *session.Store
	frontendURI string
	now         func() time.Time
}

func New(log *zap.Logger, cfg config.Config, svc BackendService, producer sarama.SyncProducer) *Handler {
	return NewWithQueue(log, cfg, svc, NewEnqueuer(producer))
}

func NewWithQueue(log *zap.Logger, cfg config.Config, svc BackendService, queue Enqueuer) *Handler {
	return &Handler{
		log:         log,
		backendSvc:  svc,
		queue:       queue,
		sessions:    session.NewStore(),
		frontendURI: cfg.Frontend.PublicURI,
		now:         time.Now,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORS())
	e.Validator = validate.NewCustomValidator()

	e.GET("/manage/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(defaultRPS),
	)

	api.POST("/reservations", h.CreateReservation)
	api.POST("/reservations/login", h.GuestLogin)
	api.POST("/reservations/logout", h.GuestLogout)

	guest := api.Group("/reservations", h.auth(session.RoleGuest))
	guest.GET("/me", h.GuestReservation)
	guest.PATCH("/:id", h.GuestUpdate)
	guest.POST("/:id/cancel", h.GuestCancel)

	admin := api.Group("/admin")
	admin.POST("/login", h.AdminLogin)
	admin.POST("/logout", h.AdminLogout)

	staff := admin.Group("", h.auth(session.RoleStaff))
	staff.GET("/dashboard", h.Dashboard)
	staff.GET("/reservations/hours", h.ListHourRange)
	staff.GET("/reservations/views/:view", h.ListView)
	staff.GET("/reservations/:id", h.AdminReservation)
	staff.GET("/reservations/:id/templates", h.DeclineTemplates)
	staff.PATCH("/reservations/:id", h.AdminUpdate)
	staff.POST("/reservations/:id/confirm", h.Confirm)
	staff.POST("/reservations/:id/decline", h.Decline)
	staff.POST("/reservations/:id/reopen", h.Reopen)

	return e
}

// Health godoc
// @Summary health check
// @Tags health
// @Success 200
// @Router /manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
