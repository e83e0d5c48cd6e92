package root

import (
	"context"
	"log"

	api "lifeops-backend/cmd/api"
	apikeyRepo "lifeops-backend/internal/apikey/repository"
	apikeyUsecase "lifeops-backend/internal/apikey/usecase"
	authRepo "lifeops-backend/internal/auth/repository"
	authUsecase "lifeops-backend/internal/auth/usecase"
	bucketRepo "lifeops-backend/internal/bucket/repository"
	bucketUsecase "lifeops-backend/internal/bucket/usecase"
	companyRepo "lifeops-backend/internal/company/repository"
	companyUsecase "lifeops-backend/internal/company/usecase"
	journalRepo "lifeops-backend/internal/journal/repository"
	journalUsecase "lifeops-backend/internal/journal/usecase"
	recordRepo "lifeops-backend/internal/record/repository"
	recordUsecase "lifeops-backend/internal/record/usecase"
	reportUsecase "lifeops-backend/internal/report/usecase"
	routineRepo "lifeops-backend/internal/routine/repository"
	routineUsecase "lifeops-backend/internal/routine/usecase"
	taskRepo "lifeops-backend/internal/task/repository"
	"lifeops-backend/internal/task/scheduler"
	taskUsecase "lifeops-backend/internal/task/usecase"
	weakpointRepo "lifeops-backend/internal/weakpoint/repository"
	weakpointUsecase "lifeops-backend/internal/weakpoint/usecase"
	"lifeops-backend/pkg/ai"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()
			if port == "" {
				port = a.cfg.Port
			}

			sheets, files, docs := a.google, a.google, a.google
			clk := a.clock

			// Initialize use cases (dependency injection)
			authUC := authUsecase.NewAuthUsecase(a.google, authRepo.NewUserRepository(a.db), a.cfg.SessionTTL)
			tasks := taskUsecase.NewTaskUsecase(taskRepo.NewSheetRepository(sheets, a.workbooks), taskRepo.NewSeedMarker(a.kv), clk)
			companies := companyUsecase.NewCompanyUsecase(companyRepo.NewSheetRepository(sheets, a.workbooks), clk)
			routines := routineUsecase.NewRoutineUsecase(routineRepo.NewSheetRepository(sheets, a.workbooks), clk)

			settings := api.NewRuntimeSettings(a.cfg.OllamaBaseURL, a.cfg.OllamaModel)
			evaluator, err := newEvaluator(cmd.Context(), a, settings)
			if err != nil {
				log.Printf("Warning: Failed to initialize AI evaluator: %v", err)
			} else {
				log.Printf("AI evaluator initialized with provider: %s", evaluator.Name())
			}

			uc := api.Usecases{
				Auth:       authUC,
				Tasks:      tasks,
				Companies:  companies,
				WeakPoints: weakpointUsecase.NewWeakPointUsecase(weakpointRepo.NewSheetRepository(sheets, a.workbooks), clk),
				Records:    recordUsecase.NewRecordUsecase(recordRepo.NewSheetRepository(sheets, a.workbooks), clk),
				Routines:   routines,
				ApiKeys:    apikeyUsecase.NewApiKeyUsecase(apikeyRepo.NewSheetRepository(sheets, files, a.workbooks), apikeyRepo.NewPinRepository(a.kv), clk),
				Bucket:     bucketUsecase.NewBucketUsecase(bucketRepo.NewDocumentRepository(docs, files, a.workbooks), clk),
				Journal:    journalUsecase.NewJournalUsecase(journalRepo.NewDocumentRepository(docs, files, a.workbooks), clk),
				Reports:    reportUsecase.NewReportUsecase(companies, routines, tasks, evaluator, a.cfg.AITimeout, clk),
			}

			seeder := scheduler.NewDailySeedScheduler(tasks, authUC, a.cfg.DailySeedInterval)
			seeder.Start()
			defer seeder.Stop()

			return api.NewHandler(uc, a.workbooks, a.cfg, settings).Start(":" + port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PORT or 8080)")
	return cmd
}

// newEvaluator reads the Ollama endpoint from settings on every call so the
// settings endpoint can repoint it without a restart
func newEvaluator(ctx context.Context, a *app, settings *api.RuntimeSettings) (ai.Evaluator, error) {
	provider, err := ai.ParseProvider(a.cfg.AIProvider)
	if err != nil {
		return nil, err
	}
	return ai.NewEvaluator(ctx, ai.Config{
		Provider:        provider,
		GeminiAPIKey:    a.cfg.GeminiAPIKey,
		GeminiModel:     a.cfg.GeminiModel,
		OllamaBaseURL:   a.cfg.OllamaBaseURL,
		OllamaModel:     a.cfg.OllamaModel,
		OllamaBaseURLFn: settings.OllamaBaseURL,
		OllamaModelFn:   settings.OllamaModel,
	})
}
