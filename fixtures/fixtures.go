package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	authModels "auth/models"
	authUtils "auth/utils"
	"core/models"
	coreUtils "core/utils"

	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData creates demo users, reference data and one career story
// per user with seasons, stats, transfers and awards.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	competitions, err := f.generateCompetitions()
	if err != nil {
		return fmt.Errorf("failed to generate competitions: %w", err)
	}

	clubs, err := f.generateClubs(competitions)
	if err != nil {
		return fmt.Errorf("failed to generate clubs: %w", err)
	}

	players, err := f.generatePlayers(clubs)
	if err != nil {
		return fmt.Errorf("failed to generate players: %w", err)
	}

	users, err := f.generateUsers()
	if err != nil {
		return fmt.Errorf("failed to generate users: %w", err)
	}

	err = f.generateStories(users, clubs, players, competitions)
	if err != nil {
		return fmt.Errorf("failed to generate stories: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	log.Printf("Created %d competitions, %d clubs, %d players, %d users with one story each",
		len(competitions), len(clubs), len(players), len(users))
	return nil
}

func (f *Fixtures) generateCompetitions() ([]models.Competition, error) {
	defs := []models.Competition{
		{Name: "Premier League", Country: "England", Tier: 1, CompetitionType: models.CompetitionTypeLeague, LeagueRep: 95, MinWageBudget: 120000},
		{Name: "La Liga", Country: "Spain", Tier: 1, CompetitionType: models.CompetitionTypeLeague, LeagueRep: 92, MinWageBudget: 100000},
		{Name: "Serie A", Country: "Italy", Tier: 1, CompetitionType: models.CompetitionTypeLeague, LeagueRep: 88, MinWageBudget: 90000},
		{Name: "Ligue 1", Country: "France", Tier: 1, CompetitionType: models.CompetitionTypeLeague, LeagueRep: 82, MinWageBudget: 70000},
		{Name: "FA Cup", Country: "England", Tier: 1, CompetitionType: models.CompetitionTypeCup, LeagueRep: 80},
		{Name: "UEFA Champions League", Country: "Europe", Tier: 1, CompetitionType: models.CompetitionTypeInternational, LeagueRep: 99},
	}

	var competitions []models.Competition
	for _, def := range defs {
		def.Slug = coreUtils.Slugify(def.Name)
		if err := f.db.Create(&def).Error; err != nil {
			return nil, err
		}
		competitions = append(competitions, def)
		log.Printf("Created competition: %s (ID: %d)", def.Name, def.ID)
	}

	return competitions, nil
}

func (f *Fixtures) generateClubs(competitions []models.Competition) ([]models.Club, error) {
	leagueByName := make(map[string]uint)
	for _, competition := range competitions {
		leagueByName[competition.Name] = competition.ID
	}

	defs := []struct {
		name    string
		league  string
		country string
		overall int
	}{
		{"Arsenal", "Premier League", "England", 84},
		{"Liverpool", "Premier League", "England", 85},
		{"Manchester City", "Premier League", "England", 86},
		{"Real Madrid", "La Liga", "Spain", 87},
		{"FC Barcelone", "La Liga", "Spain", 85},
		{"AC Milan", "Serie A", "Italy", 82},
		{"Olympique de Marseille", "Ligue 1", "France", 79},
		{"Paris Saint-Germain", "Ligue 1", "France", 84},
	}

	var clubs []models.Club
	for _, def := range defs {
		leagueID := leagueByName[def.league]
		club := models.Club{
			Name:                def.name,
			Slug:                coreUtils.Slugify(def.name),
			Country:             def.country,
			LeagueID:            &leagueID,
			Overall:             def.overall,
			AttRating:           def.overall + 1,
			MidRating:           def.overall,
			DefRating:           def.overall - 1,
			DomPrestige:         8,
			IntlPrestige:        7,
			ScoutRegion:         def.country,
			YouthScoutingRegion: def.country,
		}

		if err := f.db.Create(&club).Error; err != nil {
			return nil, err
		}

		clubs = append(clubs, club)
		log.Printf("Created club: %s (ID: %d)", club.Name, club.ID)
	}

	return clubs, nil
}

func (f *Fixtures) generatePlayers(clubs []models.Club) ([]models.Player, error) {
	defs := []struct {
		playerID    int64
		name        string
		positions   models.Positions
		nationality string
		age         int
		overall     int
		clubIndex   int
	}{
		{158023, "Bukayo Saka", models.Positions{"RW", "RM", "LW"}, "England", 23, 87, 0},
		{231747, "Martin Odegaard", models.Positions{"CAM", "CM"}, "Norway", 26, 88, 0},
		{239085, "Declan Rice", models.Positions{"CDM", "CM"}, "England", 26, 87, 0},
		{246191, "Mohamed Salah", models.Positions{"RW", "ST"}, "Egypt", 33, 89, 1},
		{192985, "Kevin De Bruyne", models.Positions{"CM", "CAM"}, "Belgium", 34, 90, 2},
		{231866, "Jude Bellingham", models.Positions{"CM", "CAM"}, "England", 22, 90, 3},
		{228702, "Kylian Mbappe", models.Positions{"ST", "LW"}, "France", 26, 91, 3},
		{253004, "Lamine Yamal", models.Positions{"RW", "RM"}, "Spain", 18, 89, 4},
	}

	now := time.Now()
	contractEnd := now.AddDate(3, 0, 0)

	var players []models.Player
	for _, def := range defs {
		playerID := def.playerID
		clubID := clubs[def.clubIndex].ID
		wage := float64(50000 + rand.Intn(200000)) // #nosec G404

		player := models.Player{
			ExternalID:    &playerID,
			Name:          def.name,
			Slug:          coreUtils.Slugify(fmt.Sprintf("%s-%d", def.name, playerID)),
			Positions:     def.positions,
			Nationality:   def.nationality,
			BirthYear:     now.Year() - def.age,
			Age:           def.age,
			ClubID:        &clubID,
			WageEUR:       wage,
			WageUSD:       wage * 1.08,
			WageGBP:       wage * 0.85,
			ContractStart: &now,
			ContractEnd:   &contractEnd,
			Overall:       def.overall,
			Potential:     def.overall + rand.Intn(4), // #nosec G404
		}

		if err := f.db.Create(&player).Error; err != nil {
			return nil, err
		}

		players = append(players, player)
		log.Printf("Created player: %s (ID: %d, overall: %d)", player.Name, player.ID, player.Overall)
	}

	return players, nil
}

func (f *Fixtures) generateUsers() ([]authModels.User, error) {
	usernames := []string{"alexandre", "marie", "julien"}

	var users []authModels.User
	for i, username := range usernames {
		hashedPassword, err := authUtils.HashPassword("password123")
		if err != nil {
			return nil, err
		}

		user := authModels.User{
			ID:         uint(i + 1), // #nosec G115 -- Force IDs 1, 2, 3, ...
			Email:      fmt.Sprintf("%s@storytracker.app", username),
			Username:   username,
			Slug:       username,
			Password:   hashedPassword,
			Enabled:    true,
			LoginCount: rand.Intn(50) + 1, // #nosec G404
			Roles:      authModels.GetDefaultRoles(),
		}

		if err := f.db.Create(&user).Error; err != nil {
			return nil, err
		}

		users = append(users, user)
		log.Printf("Created user: %s (ID: %d)", username, user.ID)
	}

	return users, nil
}

func (f *Fixtures) generateStories(users []authModels.User, clubs []models.Club, players []models.Player, competitions []models.Competition) error {
	challenges := []string{
		"Win the league within three seasons",
		"Reach a European final with a squad built from the academy",
		"Take a mid-table side to the title without spending over 50M",
	}
	backgrounds := []string{
		"A fallen giant looking for redemption after a decade of mediocrity.",
		"A young coach promoted from the reserves, doubted by the board.",
		"A club bought by local supporters, rebuilding from the ground up.",
	}

	for i, user := range users {
		club := clubs[i%len(clubs)]

		story := models.Story{
			UserID:     user.ID,
			ClubID:     club.ID,
			Name:       fmt.Sprintf("%s's %s Career", user.Username, club.Name),
			Formation:  "4-3-3",
			Challenge:  challenges[i%len(challenges)],
			Background: backgrounds[i%len(backgrounds)],
			Slug:       coreUtils.Slugify(fmt.Sprintf("%s-%s-career", user.Username, club.Name)),
			IsPublic:   i == 0,
		}

		if err := f.db.Create(&story).Error; err != nil {
			return err
		}

		firstSeason := models.Season{StoryID: story.ID, SeasonNumber: 1, Name: "24/25", IsCurrent: false}
		if err := f.db.Create(&firstSeason).Error; err != nil {
			return err
		}
		currentSeason := models.Season{StoryID: story.ID, SeasonNumber: 2, Name: "25/26", IsCurrent: true}
		if err := f.db.Create(&currentSeason).Error; err != nil {
			return err
		}

		// Stat lines for the finished season
		for s := 0; s < 3; s++ {
			player := players[(i+s)%len(players)]
			stats := models.PlayerStats{
				StoryID:       story.ID,
				SeasonID:      firstSeason.ID,
				PlayerID:      player.ID,
				Appearances:   30 + rand.Intn(8),                    // #nosec G404
				Goals:         rand.Intn(25),                        // #nosec G404
				Assists:       rand.Intn(15),                        // #nosec G404
				YellowCards:   rand.Intn(6),                         // #nosec G404
				AverageRating: 6.5 + float64(rand.Intn(20))/10.0,    // #nosec G404
				OverallRating: player.Overall + rand.Intn(3) - 1,    // #nosec G404
			}
			if err := f.db.Create(&stats).Error; err != nil {
				return err
			}
		}

		// One incoming transfer for the finished season
		counterparty := clubs[(i+3)%len(clubs)]
		signing := players[(i+4)%len(players)]
		transfer := models.Transfer{
			StoryID:    story.ID,
			SeasonID:   firstSeason.ID,
			PlayerID:   signing.ID,
			FromClubID: counterparty.ID,
			ToClubID:   club.ID,
			Fee:        float64(10000000 + rand.Intn(80000000)), // #nosec G404
			Date:       time.Now().AddDate(0, -10, 0),
		}
		if err := f.db.Create(&transfer).Error; err != nil {
			return err
		}

		// League title and player of the season for the finished season
		winner := models.CompetitionWinner{
			StoryID:       story.ID,
			SeasonID:      firstSeason.ID,
			CompetitionID: competitions[i%4].ID,
			ClubID:        club.ID,
		}
		if err := f.db.Create(&winner).Error; err != nil {
			return err
		}

		award := models.AwardWinner{
			StoryID:   story.ID,
			SeasonID:  firstSeason.ID,
			AwardName: "Player of the Season",
			PlayerID:  players[i%len(players)].ID,
		}
		if err := f.db.Create(&award).Error; err != nil {
			return err
		}

		log.Printf("Created story: %s (ID: %d, 2 seasons)", story.Name, story.ID)
	}

	return nil
}

// ClearAllData removes all fixture data
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	// Delete in correct order due to foreign key constraints
	tables := []interface{}{
		&models.AwardWinner{},
		&models.CompetitionWinner{},
		&models.Transfer{},
		&models.PlayerStats{},
		&models.Season{},
		&models.Story{},
		&models.Player{},
		&models.Club{},
		&models.Competition{},
		&authModels.RefreshToken{},
		&authModels.User{},
	}

	for _, table := range tables {
		if err := f.db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}

	// Reset auto-increment sequences to start from 1
	sequences := []string{
		"ALTER SEQUENCE users_id_seq RESTART WITH 1",
		"ALTER SEQUENCE refresh_tokens_id_seq RESTART WITH 1",
		"ALTER SEQUENCE competitions_id_seq RESTART WITH 1",
		"ALTER SEQUENCE clubs_id_seq RESTART WITH 1",
		"ALTER SEQUENCE players_id_seq RESTART WITH 1",
		"ALTER SEQUENCE stories_id_seq RESTART WITH 1",
		"ALTER SEQUENCE seasons_id_seq RESTART WITH 1",
		"ALTER SEQUENCE player_stats_id_seq RESTART WITH 1",
		"ALTER SEQUENCE transfers_id_seq RESTART WITH 1",
		"ALTER SEQUENCE competition_winners_id_seq RESTART WITH 1",
		"ALTER SEQUENCE award_winners_id_seq RESTART WITH 1",
	}

	for _, seq := range sequences {
		f.db.Exec(seq)
	}

	log.Println("All fixture data cleared!")
	return nil
}
