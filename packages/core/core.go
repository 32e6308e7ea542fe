package core

import (
	"core/cron"
	"core/handlers"
	"core/importer"
	"core/services"
	"log"

	authMiddleware "auth/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	StoryHandler       *handlers.StoryHandler
	StoryService       *services.StoryService
	SeasonHandler      *handlers.SeasonHandler
	SeasonService      *services.SeasonService
	StatsHandler       *handlers.StatsHandler
	StatsService       *services.StatsService
	TransferHandler    *handlers.TransferHandler
	TransferService    *services.TransferService
	AwardHandler       *handlers.AwardHandler
	AwardService       *services.AwardService
	ClubHandler        *handlers.ClubHandler
	ClubService        *services.ClubService
	PlayerHandler      *handlers.PlayerHandler
	PlayerService      *services.PlayerService
	CompetitionHandler *handlers.CompetitionHandler
	CompetitionService *services.CompetitionService
	GeneratorService   *services.GeneratorService
	Importer           *importer.Importer
	Scheduler          *cron.Scheduler
	db                 *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	clubService := services.NewClubService(db)
	clubHandler := handlers.NewClubHandler(clubService)

	playerService := services.NewPlayerService(db)
	playerHandler := handlers.NewPlayerHandler(playerService)

	competitionService := services.NewCompetitionService(db)
	competitionHandler := handlers.NewCompetitionHandler(competitionService)

	storyService := services.NewStoryService(db)
	generatorService := services.NewGeneratorService(db)
	storyHandler := handlers.NewStoryHandler(storyService, generatorService)

	seasonService := services.NewSeasonService(db)
	seasonHandler := handlers.NewSeasonHandler(seasonService)

	statsService := services.NewStatsService(db)
	statsHandler := handlers.NewStatsHandler(statsService)

	transferService := services.NewTransferService(db, clubService, playerService)
	transferHandler := handlers.NewTransferHandler(transferService)

	awardService := services.NewAwardService(db, competitionService, clubService, playerService)
	awardHandler := handlers.NewAwardHandler(awardService)

	scheduler := cron.NewScheduler(db)

	return &Module{
		StoryHandler:       storyHandler,
		StoryService:       storyService,
		SeasonHandler:      seasonHandler,
		SeasonService:      seasonService,
		StatsHandler:       statsHandler,
		StatsService:       statsService,
		TransferHandler:    transferHandler,
		TransferService:    transferService,
		AwardHandler:       awardHandler,
		AwardService:       awardService,
		ClubHandler:        clubHandler,
		ClubService:        clubService,
		PlayerHandler:      playerHandler,
		PlayerService:      playerService,
		CompetitionHandler: competitionHandler,
		CompetitionService: competitionService,
		GeneratorService:   generatorService,
		Importer:           importer.NewImporter(db),
		Scheduler:          scheduler,
		db:                 db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	stories := r.Group("/stories")
	{
		stories.GET("/generate", m.StoryHandler.GenerateStory)
		stories.POST("", authMiddleware.JWTMiddleware(), m.StoryHandler.CreateStory)
		stories.GET("/mine", authMiddleware.JWTMiddleware(), m.StoryHandler.GetMyStories)
		stories.GET("/:slug", authMiddleware.OptionalJWTMiddleware(), m.StoryHandler.GetStory)
		stories.POST("/:slug/seasons", authMiddleware.JWTMiddleware(), m.SeasonHandler.AddSeason)
		stories.PUT("/:slug/seasons/:id/current", authMiddleware.JWTMiddleware(), m.SeasonHandler.SetCurrentSeason)
		stories.PUT("/:slug/stats", authMiddleware.JWTMiddleware(), m.StatsHandler.UpsertPlayerStats)
		stories.PUT("/:slug/awards", authMiddleware.JWTMiddleware(), m.AwardHandler.RecordSeasonAwards)
		stories.POST("/:slug/transfers", authMiddleware.JWTMiddleware(), m.TransferHandler.RecordTransfer)
	}

	seasons := r.Group("/seasons")
	{
		seasons.GET("/:id", authMiddleware.OptionalJWTMiddleware(), m.SeasonHandler.GetSeasonData)
		seasons.GET("/:id/stats", authMiddleware.OptionalJWTMiddleware(), m.StatsHandler.GetSeasonPlayerStats)
		seasons.GET("/:id/transfers", authMiddleware.OptionalJWTMiddleware(), m.TransferHandler.GetSeasonTransfers)
		seasons.GET("/:id/awards", authMiddleware.OptionalJWTMiddleware(), m.AwardHandler.GetSeasonAwards)
	}

	stats := r.Group("/stats")
	{
		stats.GET("/overview", m.StatsHandler.GetOverview)
		stats.PATCH("/:id", authMiddleware.JWTMiddleware(), m.StatsHandler.UpdateStatField)
		stats.DELETE("/:id", authMiddleware.JWTMiddleware(), m.StatsHandler.DeletePlayerStat)
	}

	r.DELETE("/transfers/:id", authMiddleware.JWTMiddleware(), m.TransferHandler.DeleteTransfer)

	clubs := r.Group("/clubs")
	{
		clubs.GET("", m.ClubHandler.GetAllClubs)
		clubs.GET("/:id", m.ClubHandler.GetClub)
		clubs.GET("/:id/players", m.ClubHandler.GetClubPlayers)
	}

	players := r.Group("/players")
	{
		players.GET("", m.PlayerHandler.GetAllPlayers)
		players.GET("/:id", m.PlayerHandler.GetPlayer)
	}

	r.GET("/competitions", m.CompetitionHandler.GetAllCompetitions)
}

// StartScheduler starts the cron scheduler for periodic maintenance
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}
