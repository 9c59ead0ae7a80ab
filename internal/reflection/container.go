package reflection

import (
	"github.com/kndri/selah-journaling/internal/streak"
	"gorm.io/gorm"
)

type ReflectionContainer struct {
	Handler *Handler
	Service ReflectionService
}

func NewReflectionContainer(db *gorm.DB, streaks streak.StreakService) *ReflectionContainer {
	repo := NewRepository(db)
	service := NewService(repo, streaks)
	handler := NewHandler(service)

	return &ReflectionContainer{
		Handler: handler,
		Service: service,
	}
}
