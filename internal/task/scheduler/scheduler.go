package scheduler

import (
	"context"
	"log"
	"time"

	authdomain "lifeops-backend/internal/auth/domain"
	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/task/usecase"
)

// SessionSource lists the users currently holding a usable access token
type SessionSource interface {
	ActiveSessions() []authdomain.Session
}

// DailySeedScheduler adds the daily routine tasks for every signed-in user.
// The seed marker makes repeated ticks on the same day no-ops.
type DailySeedScheduler struct {
	taskUsecase usecase.TaskUsecase
	sessions    SessionSource
	interval    time.Duration
	stopChan    chan struct{}
}

// NewDailySeedScheduler creates a new scheduler
func NewDailySeedScheduler(taskUsecase usecase.TaskUsecase, sessions SessionSource, interval time.Duration) *DailySeedScheduler {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &DailySeedScheduler{
		taskUsecase: taskUsecase,
		sessions:    sessions,
		interval:    interval,
		stopChan:    make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *DailySeedScheduler) Start() {
	log.Printf("[TaskScheduler] Starting daily task seeder (interval: %s)", s.interval)

	go func() {
		s.seedAll()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.seedAll()
			case <-s.stopChan:
				log.Println("[TaskScheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *DailySeedScheduler) Stop() {
	close(s.stopChan)
}

// seedAll seeds each active session's task list; one user's failure does
// not stop the others
func (s *DailySeedScheduler) seedAll() int {
	total := 0
	for _, session := range s.sessions.ActiveSessions() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		ctx = backing.WithAccessToken(ctx, session.AccessToken)
		added, err := s.taskUsecase.SeedDaily(ctx, session.UserID)
		cancel()
		if err != nil {
			log.Printf("[TaskScheduler] Error seeding tasks for user %s: %v", session.UserID, err)
			continue
		}
		total += added
	}
	return total
}
