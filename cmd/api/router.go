package api

import (
	"net/http"

	"lifeops-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Static data (no auth required)
		api.GET("/reference", h.GetReference)

		// Everything below sees the session when there is one. Signed-out
		// reads get empty collections; signed-out writes get 401.
		data := api.Group("")
		data.Use(delivery.AuthMiddleware(h.authUsecase))

		// The AI endpoint is shared by every user, so only a session may move it
		settings := data.Group("/settings")
		{
			settings.GET("/ollama", h.settingsHandler.GetOllama)
			settings.PUT("/ollama", delivery.RequireSession(), h.settingsHandler.UpdateOllama)
			settings.POST("/ollama/test", delivery.RequireSession(), h.settingsHandler.TestOllama)
		}

		data.GET("/auth/me", h.authHandler.Me)
		data.GET("/workbook", delivery.RequireSession(), h.GetWorkbook)

		tasks := data.Group("/tasks")
		{
			tasks.GET("", h.taskHandler.GetTasks)
			tasks.POST("", h.taskHandler.CreateTask)
			tasks.POST("/seed", h.taskHandler.SeedDaily)
			tasks.PATCH("/:id/toggle", h.taskHandler.ToggleTask)
			tasks.POST("/:id/postpone", h.taskHandler.PostponeTask)
			tasks.DELETE("/:id", h.taskHandler.DeleteTask)
		}

		companies := data.Group("/companies")
		{
			companies.GET("", h.companyHandler.GetCompanies)
			companies.GET("/stats", h.companyHandler.GetStats)
			companies.POST("", h.companyHandler.CreateCompany)
			companies.PUT("/:id", h.companyHandler.UpdateCompany)
			companies.PATCH("/:id/status", h.companyHandler.ChangeStatus)
			companies.DELETE("/:id", h.companyHandler.DeleteCompany)
		}

		weakpoints := data.Group("/weakpoints")
		{
			weakpoints.GET("", h.weakPointHandler.GetWeakPoints)
			weakpoints.POST("", h.weakPointHandler.CreateWeakPoint)
			weakpoints.PUT("/:id", h.weakPointHandler.UpdateWeakPoint)
			weakpoints.PATCH("/:id/status", h.weakPointHandler.SetStatus)
			weakpoints.DELETE("/:id", h.weakPointHandler.DeleteWeakPoint)
		}

		records := data.Group("/records/:collection")
		{
			records.GET("", h.recordHandler.GetRecords)
			records.POST("", h.recordHandler.CreateRecord)
			records.PUT("/:id", h.recordHandler.UpdateRecord)
			records.DELETE("/:id", h.recordHandler.DeleteRecord)
		}

		routine := data.Group("/routine")
		{
			routine.GET("", h.routineHandler.GetToday)
			routine.PUT("/:routineId", h.routineHandler.CheckRoutine)
		}

		apikeys := data.Group("/apikeys")
		{
			apikeys.GET("", h.apiKeyHandler.GetApiKeys)
			apikeys.POST("", h.apiKeyHandler.CreateApiKey)
			apikeys.PUT("/pin", h.apiKeyHandler.SetPin)
			apikeys.PUT("/:id", h.apiKeyHandler.UpdateApiKey)
			apikeys.DELETE("/:id", h.apiKeyHandler.DeleteApiKey)
			apikeys.POST("/:id/reveal", delivery.RequireSession(), h.apiKeyHandler.RevealApiKey)
		}

		bucket := data.Group("/bucket")
		{
			bucket.GET("", h.bucketHandler.GetItems)
			bucket.POST("", h.bucketHandler.CreateItem)
			bucket.PATCH("/:id/status", h.bucketHandler.UpdateStatus)
			bucket.DELETE("/:id", h.bucketHandler.DeleteItem)
		}

		journal := data.Group("/journal")
		{
			journal.GET("", h.journalHandler.GetEntries)
			journal.POST("", h.journalHandler.CreateEntry)
			journal.DELETE("/:id", h.journalHandler.DeleteEntry)
		}

		dashboard := data.Group("/dashboard")
		{
			dashboard.GET("", h.reportHandler.GetDashboard)
			dashboard.POST("/evaluate", delivery.RequireSession(), h.reportHandler.Evaluate)
		}
	}
}
