package streak

import "gorm.io/gorm"

type StreakContainer struct {
	Handler *Handler
	Service StreakService
}

func NewStreakContainer(db *gorm.DB) *StreakContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &StreakContainer{
		Handler: handler,
		Service: service,
	}
}
