package http

import (
	"net/http"
	"time"

	"JobTracker/internal/config"
	jwtMiddleware "JobTracker/internal/middleware/jwt"
	analyticsService "JobTracker/internal/modules/analytics/application/service"
	analyticsPersistence "JobTracker/internal/modules/analytics/infrastructure/persistence"
	analyticsHandler "JobTracker/internal/modules/analytics/interface/http"
	applicationService "JobTracker/internal/modules/application/application/service"
	applicationPersistence "JobTracker/internal/modules/application/infrastructure/persistence"
	applicationHandler "JobTracker/internal/modules/application/interface/http"
	notificationService "JobTracker/internal/modules/notification/application/service"
	"JobTracker/internal/modules/notification/infrastructure/mq"
	notificationPersistence "JobTracker/internal/modules/notification/infrastructure/persistence"
	notificationHandler "JobTracker/internal/modules/notification/interface/http"
	reminderService "JobTracker/internal/modules/reminder/application/service"
	reminderPersistence "JobTracker/internal/modules/reminder/infrastructure/persistence"
	reminderHandler "JobTracker/internal/modules/reminder/interface/http"
	scraperService "JobTracker/internal/modules/scraper/application/service"
	scraperCache "JobTracker/internal/modules/scraper/infrastructure/cache"
	scraperHandler "JobTracker/internal/modules/scraper/interface/http"
	userService "JobTracker/internal/modules/user/application/service"
	userPersistence "JobTracker/internal/modules/user/infrastructure/persistence"
	userHandler "JobTracker/internal/modules/user/interface/http"
	"JobTracker/pkg/clock"
	"JobTracker/pkg/redis"
	"JobTracker/pkg/ssl"
	"JobTracker/pkg/util/myjwt"
	"JobTracker/pkg/ws"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Server 路由和需要由 main 管理生命周期的服务
type Server struct {
	Engine    *gin.Engine
	Reminders reminderService.ReminderService
}

func NewServer(conf *config.Config, db *gorm.DB, publisher mq.Publisher) *Server {
	ge := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition"}
	ge.Use(cors.New(corsConfig))
	ge.Use(ssl.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port, conf.MainConfig.ForceSSL))

	clk := clock.System()
	jwtManager := myjwt.New(conf.JwtConfig.Key, conf.JwtConfig.Issuer, conf.JwtConfig.ExpireHours)
	wsHub := ws.NewHub()
	sink := notificationService.NewSink(wsHub, publisher)

	// 只有连上 redis 才做跨实例互斥
	var locker reminderService.Locker
	if redis.IsConnected() {
		locker = redis.Locker{}
	}

	userRepo := userPersistence.NewUserRepository(db)
	userUow := userPersistence.NewUserUnitOfWork(db)
	appRepo := applicationPersistence.NewApplicationRepository(db)
	interviewRepo := applicationPersistence.NewInterviewRepository(db)
	appUow := applicationPersistence.NewApplicationUnitOfWork(db)
	notificationRepo := notificationPersistence.NewNotificationRepository(db)
	reminderRepo := reminderPersistence.NewReminderRepository(db)
	reminderUow := reminderPersistence.NewReminderUnitOfWork(db)
	analyticsRepo := analyticsPersistence.NewAnalyticsRepository(db)

	userSvc := userService.NewUserService(userRepo, userUow, jwtManager, sink, clk)
	appSvc := applicationService.NewApplicationService(appRepo, appUow, sink, clk)
	interviewSvc := applicationService.NewInterviewService(interviewRepo, appUow, clk)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	reminderSvc := reminderService.NewReminderService(reminderRepo, reminderUow, sink, clk, locker,
		time.Duration(conf.ReminderConfig.LockTTLSeconds)*time.Second)
	analyticsSvc := analyticsService.NewAnalyticsService(analyticsRepo, clk)
	scraperSvc := scraperService.NewScraperService(
		&http.Client{Timeout: time.Duration(conf.ScraperConfig.TimeoutSeconds) * time.Second},
		conf.ScraperConfig.UserAgent,
		scraperCache.NewRedisCache(),
		time.Duration(conf.ScraperConfig.CacheTTLMinutes)*time.Minute,
	)

	userH := userHandler.NewUserHandler(userSvc)
	appH := applicationHandler.NewApplicationHandler(appSvc)
	interviewH := applicationHandler.NewInterviewHandler(interviewSvc)
	notificationH := notificationHandler.NewNotificationHandler(notificationSvc)
	wsH := notificationHandler.NewWsHandler(wsHub, jwtManager)
	cronH := reminderHandler.NewCronHandler(reminderSvc, conf.ReminderConfig.CronSecret)
	analyticsH := analyticsHandler.NewAnalyticsHandler(analyticsSvc)
	scraperH := scraperHandler.NewScraperHandler(scraperSvc)

	ge.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": clk.Now()})
	})
	ge.POST("/register", userH.Register)
	ge.POST("/login", userH.Login)
	ge.GET("/api/cron/reminders", cronH.Reminders)
	ge.GET("/wss", wsH.Connect)

	authed := ge.Group("/")
	authed.Use(jwtMiddleware.Auth(jwtManager))
	authed.GET("/applications", appH.List)
	authed.POST("/applications", appH.Create)
	authed.GET("/applications/search", appH.Search)
	authed.POST("/applications/quick-add", appH.QuickAdd)
	authed.POST("/applications/import", appH.Import)
	authed.GET("/applications/export", appH.Export)
	authed.GET("/applications/:id", appH.Get)
	authed.PUT("/applications/:id", appH.Update)
	authed.DELETE("/applications/:id", appH.Delete)
	authed.PATCH("/applications/:id/status", appH.UpdateStatus)
	authed.PATCH("/applications/:id/archive", appH.Archive)
	authed.POST("/interviews", interviewH.Create)
	authed.PUT("/interviews/:id", interviewH.Update)
	authed.DELETE("/interviews/:id", interviewH.Delete)
	authed.GET("/notifications", notificationH.List)
	authed.GET("/notifications/unread-count", notificationH.UnreadCount)
	authed.POST("/notifications/:id/read", notificationH.MarkRead)
	authed.POST("/notifications/read-all", notificationH.MarkAllRead)
	authed.GET("/settings", userH.GetSettings)
	authed.PUT("/settings", userH.UpdateSettings)
	authed.GET("/analytics", analyticsH.Analytics)
	authed.GET("/dashboard", analyticsH.Dashboard)
	authed.GET("/scrape-job", scraperH.Scrape)

	return &Server{Engine: ge, Reminders: reminderSvc}
}
