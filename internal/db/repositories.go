package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Sessions  *SessionRepository
	Golfers   *GolferRepository
	Statuses  *GolferStatusRepository
	Foursomes *FoursomeRepository
	Champions *ChampionRepository
	Photos    *PhotoRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Sessions:  NewSessionRepository(database),
		Golfers:   NewGolferRepository(database),
		Statuses:  NewGolferStatusRepository(database),
		Foursomes: NewFoursomeRepository(database),
		Champions: NewChampionRepository(database),
		Photos:    NewPhotoRepository(database),
	}
}
