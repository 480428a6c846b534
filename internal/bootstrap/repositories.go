package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RiftStats_Go/internal/database/postgres"
	"github.com/osse101/RiftStats_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	User     repository.User
	Favorite repository.Favorite
	Champion repository.Champion
	Match    repository.Match
	Report   repository.Report
	Repair   repository.Repair
}

// InitializeRepositories creates all repository implementations over one pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:     postgres.NewUserRepository(dbPool),
		Favorite: postgres.NewFavoriteRepository(dbPool),
		Champion: postgres.NewChampionRepository(dbPool),
		Match:    postgres.NewMatchRepository(dbPool),
		Report:   postgres.NewReportRepository(dbPool),
		Repair:   postgres.NewRepairRepository(dbPool),
	}
}
