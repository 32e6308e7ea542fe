package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_06_02_000000_create_reference_tables",
			Up: func(db *gorm.DB) error {
				// Create competitions table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS competitions (
						id SERIAL PRIMARY KEY,
						name VARCHAR(255) UNIQUE NOT NULL,
						slug VARCHAR(255),
						country VARCHAR(255),
						tier INTEGER DEFAULT 1,
						competition_type VARCHAR(32) DEFAULT 'LEAGUE',
						league_rep INTEGER DEFAULT 0,
						min_wage_budget FLOAT DEFAULT 0,
						logo_url VARCHAR(512),
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_competitions_slug ON competitions(slug);
					CREATE INDEX IF NOT EXISTS idx_competitions_deleted_at ON competitions(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Create clubs table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS clubs (
						id SERIAL PRIMARY KEY,
						name VARCHAR(255) UNIQUE NOT NULL,
						slug VARCHAR(255),
						country VARCHAR(255),
						league_id INTEGER REFERENCES competitions(id),
						logo_small_url VARCHAR(512),
						logo_big_url VARCHAR(512),
						overall INTEGER DEFAULT 0,
						att_rating INTEGER DEFAULT 0,
						mid_rating INTEGER DEFAULT 0,
						def_rating INTEGER DEFAULT 0,
						dom_prestige INTEGER DEFAULT 0,
						intl_prestige INTEGER DEFAULT 0,
						league_rep INTEGER DEFAULT 0,
						scout_region VARCHAR(255),
						youth_scouting_region VARCHAR(255),
						international_competition VARCHAR(255),
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_clubs_slug ON clubs(slug);
					CREATE INDEX IF NOT EXISTS idx_clubs_league_id ON clubs(league_id);
					CREATE INDEX IF NOT EXISTS idx_clubs_deleted_at ON clubs(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Create players table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id SERIAL PRIMARY KEY,
						player_id BIGINT UNIQUE,
						name VARCHAR(255) NOT NULL,
						slug VARCHAR(255),
						positions JSONB DEFAULT '[]'::jsonb,
						nationality VARCHAR(255),
						birth_date TIMESTAMP NULL,
						birth_year INTEGER DEFAULT 0,
						age INTEGER DEFAULT 0,
						face_pic_url VARCHAR(512),
						club_id INTEGER REFERENCES clubs(id),
						wage_eur FLOAT DEFAULT 100,
						wage_usd FLOAT DEFAULT 100,
						wage_gbp FLOAT DEFAULT 100,
						contract_start TIMESTAMP NULL,
						contract_end TIMESTAMP NULL,
						contract_loan BOOLEAN DEFAULT false,
						overall INTEGER DEFAULT 0,
						potential INTEGER DEFAULT 0,
						import_source VARCHAR(64),
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_players_name ON players(name);
					CREATE INDEX IF NOT EXISTS idx_players_slug ON players(slug);
					CREATE INDEX IF NOT EXISTS idx_players_club_id ON players(club_id);
					CREATE INDEX IF NOT EXISTS idx_players_deleted_at ON players(deleted_at);
				`).Error; err != nil {
					return err
				}

				return nil
			},
			Down: func(db *gorm.DB) error {
				// Drop tables in reverse order (because of foreign keys)
				if err := db.Exec("DROP TABLE IF EXISTS players CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS clubs CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS competitions CASCADE").Error; err != nil {
					return err
				}
				return nil
			},
		},
		{
			Name: "2025_06_02_000001_create_story_tables",
			Up: func(db *gorm.DB) error {
				// Create stories table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS stories (
						id SERIAL PRIMARY KEY,
						user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
						club_id INTEGER NOT NULL REFERENCES clubs(id),
						name VARCHAR(255) NOT NULL,
						formation VARCHAR(32),
						challenge VARCHAR(512),
						background TEXT,
						slug VARCHAR(255) UNIQUE NOT NULL,
						is_public BOOLEAN DEFAULT false,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_stories_user_id ON stories(user_id);
					CREATE INDEX IF NOT EXISTS idx_stories_is_public ON stories(is_public);
					CREATE INDEX IF NOT EXISTS idx_stories_deleted_at ON stories(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Create seasons table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS seasons (
						id SERIAL PRIMARY KEY,
						story_id INTEGER NOT NULL REFERENCES stories(id) ON DELETE CASCADE,
						season_number INTEGER NOT NULL,
						name VARCHAR(32) NOT NULL,
						is_current BOOLEAN DEFAULT false,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_seasons_story_name ON seasons(story_id, name);
					CREATE INDEX IF NOT EXISTS idx_seasons_is_current ON seasons(is_current);
					CREATE INDEX IF NOT EXISTS idx_seasons_deleted_at ON seasons(deleted_at);
				`).Error; err != nil {
					return err
				}

				return nil
			},
			Down: func(db *gorm.DB) error {
				if err := db.Exec("DROP TABLE IF EXISTS seasons CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS stories CASCADE").Error; err != nil {
					return err
				}
				return nil
			},
		},
		{
			Name: "2025_06_02_000002_create_season_data_tables",
			Up: func(db *gorm.DB) error {
				// Create player_stats table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS player_stats (
						id SERIAL PRIMARY KEY,
						story_id INTEGER NOT NULL REFERENCES stories(id) ON DELETE CASCADE,
						season_id INTEGER NOT NULL REFERENCES seasons(id) ON DELETE CASCADE,
						player_id INTEGER NOT NULL REFERENCES players(id),
						overall_rating INTEGER DEFAULT 0,
						appearances INTEGER DEFAULT 0,
						goals INTEGER DEFAULT 0,
						assists INTEGER DEFAULT 0,
						clean_sheets INTEGER DEFAULT 0,
						yellow_cards INTEGER DEFAULT 0,
						red_cards INTEGER DEFAULT 0,
						average_rating FLOAT DEFAULT 0,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_player_stats_key ON player_stats(story_id, season_id, player_id);
					CREATE INDEX IF NOT EXISTS idx_player_stats_deleted_at ON player_stats(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Create transfers table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS transfers (
						id SERIAL PRIMARY KEY,
						story_id INTEGER NOT NULL REFERENCES stories(id) ON DELETE CASCADE,
						season_id INTEGER NOT NULL REFERENCES seasons(id) ON DELETE CASCADE,
						player_id INTEGER NOT NULL REFERENCES players(id),
						from_club_id INTEGER NOT NULL REFERENCES clubs(id),
						to_club_id INTEGER NOT NULL REFERENCES clubs(id),
						fee FLOAT DEFAULT 0,
						date TIMESTAMP NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_transfers_story_id ON transfers(story_id);
					CREATE INDEX IF NOT EXISTS idx_transfers_season_id ON transfers(season_id);
					CREATE INDEX IF NOT EXISTS idx_transfers_deleted_at ON transfers(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Create competition_winners table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS competition_winners (
						id SERIAL PRIMARY KEY,
						story_id INTEGER NOT NULL REFERENCES stories(id) ON DELETE CASCADE,
						season_id INTEGER NOT NULL REFERENCES seasons(id) ON DELETE CASCADE,
						competition_id INTEGER NOT NULL REFERENCES competitions(id),
						club_id INTEGER NOT NULL REFERENCES clubs(id),
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_competition_winners_key ON competition_winners(story_id, season_id, competition_id);
					CREATE INDEX IF NOT EXISTS idx_competition_winners_deleted_at ON competition_winners(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Create award_winners table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS award_winners (
						id SERIAL PRIMARY KEY,
						story_id INTEGER NOT NULL REFERENCES stories(id) ON DELETE CASCADE,
						season_id INTEGER NOT NULL REFERENCES seasons(id) ON DELETE CASCADE,
						award_name VARCHAR(255) NOT NULL,
						player_id INTEGER NOT NULL REFERENCES players(id),
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_award_winners_key ON award_winners(story_id, season_id, award_name);
					CREATE INDEX IF NOT EXISTS idx_award_winners_deleted_at ON award_winners(deleted_at);
				`).Error; err != nil {
					return err
				}

				return nil
			},
			Down: func(db *gorm.DB) error {
				if err := db.Exec("DROP TABLE IF EXISTS award_winners CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS competition_winners CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS transfers CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS player_stats CASCADE").Error; err != nil {
					return err
				}
				return nil
			},
		},
	}
}
