package api

import (
	"log"
	"net/http"

	"lifeops-backend/internal/apperr"
	apikeyDelivery "lifeops-backend/internal/apikey/delivery"
	apikeyUsecase "lifeops-backend/internal/apikey/usecase"
	authDelivery "lifeops-backend/internal/auth/delivery"
	authUsecase "lifeops-backend/internal/auth/usecase"
	"lifeops-backend/internal/backing"
	bucketDelivery "lifeops-backend/internal/bucket/delivery"
	bucketUsecase "lifeops-backend/internal/bucket/usecase"
	companyDelivery "lifeops-backend/internal/company/delivery"
	companyUsecase "lifeops-backend/internal/company/usecase"
	journalDelivery "lifeops-backend/internal/journal/delivery"
	journalUsecase "lifeops-backend/internal/journal/usecase"
	"lifeops-backend/internal/provision"
	recordDelivery "lifeops-backend/internal/record/delivery"
	recordUsecase "lifeops-backend/internal/record/usecase"
	"lifeops-backend/internal/reference"
	reportDelivery "lifeops-backend/internal/report/delivery"
	reportUsecase "lifeops-backend/internal/report/usecase"
	routineDelivery "lifeops-backend/internal/routine/delivery"
	routineUsecase "lifeops-backend/internal/routine/usecase"
	taskDelivery "lifeops-backend/internal/task/delivery"
	taskUsecase "lifeops-backend/internal/task/usecase"
	weakpointDelivery "lifeops-backend/internal/weakpoint/delivery"
	weakpointUsecase "lifeops-backend/internal/weakpoint/usecase"
	"lifeops-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// Usecases is everything the HTTP layer serves
type Usecases struct {
	Auth       authUsecase.AuthUsecase
	Tasks      taskUsecase.TaskUsecase
	Companies  companyUsecase.CompanyUsecase
	WeakPoints weakpointUsecase.WeakPointUsecase
	Records    recordUsecase.RecordUsecase
	Routines   routineUsecase.RoutineUsecase
	ApiKeys    apikeyUsecase.ApiKeyUsecase
	Bucket     bucketUsecase.BucketUsecase
	Journal    journalUsecase.JournalUsecase
	Reports    reportUsecase.ReportUsecase
}

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	workbooks   *provision.Workbooks
	config      *config.Config

	settingsHandler  *SettingsHandler
	authHandler      *authDelivery.AuthHandler
	taskHandler      *taskDelivery.TaskHandler
	companyHandler   *companyDelivery.CompanyHandler
	weakPointHandler *weakpointDelivery.WeakPointHandler
	recordHandler    *recordDelivery.RecordHandler
	routineHandler   *routineDelivery.RoutineHandler
	apiKeyHandler    *apikeyDelivery.ApiKeyHandler
	bucketHandler    *bucketDelivery.BucketHandler
	journalHandler   *journalDelivery.JournalHandler
	reportHandler    *reportDelivery.ReportHandler
}

// NewHandler wires the feature handlers. settings is shared with the AI
// evaluator; nil starts from cfg.
func NewHandler(uc Usecases, workbooks *provision.Workbooks, cfg *config.Config, settings *RuntimeSettings) *Handler {
	if settings == nil {
		settings = NewRuntimeSettings(cfg.OllamaBaseURL, cfg.OllamaModel)
	}

	return &Handler{
		authUsecase: uc.Auth,
		workbooks:   workbooks,
		config:      cfg,

		settingsHandler:  NewSettingsHandler(settings),
		authHandler:      authDelivery.NewAuthHandler(),
		taskHandler:      taskDelivery.NewTaskHandler(uc.Tasks),
		companyHandler:   companyDelivery.NewCompanyHandler(uc.Companies),
		weakPointHandler: weakpointDelivery.NewWeakPointHandler(uc.WeakPoints),
		recordHandler:    recordDelivery.NewRecordHandler(uc.Records),
		routineHandler:   routineDelivery.NewRoutineHandler(uc.Routines),
		apiKeyHandler:    apikeyDelivery.NewApiKeyHandler(uc.ApiKeys),
		bucketHandler:    bucketDelivery.NewBucketHandler(uc.Bucket),
		journalHandler:   journalDelivery.NewJournalHandler(uc.Journal),
		reportHandler:    reportDelivery.NewReportHandler(uc.Reports),
	}
}

// Router builds the engine with CORS and every route
func (h *Handler) Router() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)
	return r
}

func (h *Handler) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return h.Router().Run(addr)
}

// GetWorkbook resolves, creating if needed, the caller's spreadsheet
// GET /api/workbook
func (h *Handler) GetWorkbook(c *gin.Context) {
	res, err := h.workbooks.For(c.GetString("userID")).Resolve(c.Request.Context())
	if err != nil {
		if backing.IsUnauthorized(err) {
			err = apperr.ErrSignedOut
		}
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"spreadsheetId": res.ID,
		"url":           backing.SpreadsheetURL(res.ID),
		"state":         res.State.String(),
	}})
}

// GetReference returns the static plan data
// GET /api/reference
func (h *Handler) GetReference(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": reference.All()})
}
