package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/inspection-scheduler/internal/audit"
	"github.com/BruksfildServices01/inspection-scheduler/internal/cache"
	"github.com/BruksfildServices01/inspection-scheduler/internal/clock"
	"github.com/BruksfildServices01/inspection-scheduler/internal/config"
	"github.com/BruksfildServices01/inspection-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/inspection-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/inspection-scheduler/internal/middleware"
	ucInspection "github.com/BruksfildServices01/inspection-scheduler/internal/usecase/inspection"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	inspectionRepo := infraRepo.NewInspectionGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	calendarCache := cache.NewCalendarCache(rdb)
	clk := clock.System()

	// ======================================================
	// USE CASES
	// ======================================================
	createInspectionUC := ucInspection.NewCreateInspection(
		inspectionRepo,
		auditDispatcher,
		calendarCache,
		clk,
	)

	updateInspectionUC := ucInspection.NewUpdateInspection(
		inspectionRepo,
		auditDispatcher,
		calendarCache,
		clk,
	)

	deleteInspectionUC := ucInspection.NewDeleteInspection(
		inspectionRepo,
		auditDispatcher,
		calendarCache,
		clk,
	)

	getInspectionUC := ucInspection.NewGetInspection(inspectionRepo, clk)
	listInspectionsUC := ucInspection.NewListInspections(inspectionRepo, clk)
	nextSlotUC := ucInspection.NewNextAvailableSlot(inspectionRepo)
	statsUC := ucInspection.NewStats(inspectionRepo)
	calendarFeedUC := ucInspection.NewCalendarFeed(inspectionRepo, calendarCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	inspectionHandler := handlers.NewInspectionHandler(
		createInspectionUC,
		updateInspectionUC,
		deleteInspectionUC,
		getInspectionUC,
		listInspectionsUC,
		nextSlotUC,
		statsUC,
	)

	calendarHandler := handlers.NewCalendarHandler(calendarFeedUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// INSPECTIONS
			// ------------------------------
			secured.GET("/inspections", inspectionHandler.List)
			secured.GET("/inspections/next-slot", inspectionHandler.NextSlot)
			secured.GET("/inspections/stats", inspectionHandler.Stats)
			secured.GET("/inspections/:id", inspectionHandler.Get)

			secured.GET("/calendar", calendarHandler.Feed)
			secured.GET("/audit-logs", auditLogsHandler.List)

			// Mutations are consultant-only. Inspectors stay read-only.
			writes := secured.Group("/")
			writes.Use(middleware.RequireConsultant())
			{
				writes.POST("/inspections", inspectionHandler.Create)
				writes.PUT("/inspections/:id", inspectionHandler.Update)
				writes.DELETE("/inspections/:id", inspectionHandler.Delete)
			}
		}
	}
}
