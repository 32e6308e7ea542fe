package cron

import (
	"log"

	authUtils "auth/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type Scheduler struct {
	cron *cron.Cron
	db   *gorm.DB
}

func NewScheduler(db *gorm.DB) *Scheduler {
	// Create cron with seconds precision and logging
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron: c,
		db:   db,
	}
}

// Start initializes and starts all scheduled jobs
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// Schedule session cleanup to run every hour
	// Cron expression: "0 0 * * * *" = at minute 0 of every hour
	_, err := s.cron.AddFunc("0 0 * * * *", s.runTokenCleanup)
	if err != nil {
		log.Printf("Error scheduling token cleanup job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

// runTokenCleanup purges expired refresh tokens
func (s *Scheduler) runTokenCleanup() {
	log.Println("Running refresh token cleanup job...")

	if err := authUtils.CleanExpiredTokens(s.db); err != nil {
		log.Printf("Error during refresh token cleanup: %v", err)
		return
	}

	log.Println("Refresh token cleanup completed")
}

// RunNow manually triggers the cleanup job (useful for testing)
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering refresh token cleanup...")
	s.runTokenCleanup()
}
