package reminder

import "gorm.io/gorm"

type ReminderContainer struct {
	Handler   *Handler
	Service   ReminderService
	Scheduler *Scheduler
}

func NewReminderContainer(db *gorm.DB) *ReminderContainer {
	repo := NewRepository(db)
	scheduler := NewScheduler()
	service := NewService(repo, scheduler)
	handler := NewHandler(service)

	return &ReminderContainer{
		Handler:   handler,
		Service:   service,
		Scheduler: scheduler,
	}
}
