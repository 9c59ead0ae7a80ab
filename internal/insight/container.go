package insight

import (
	"context"

	"github.com/kndri/selah-journaling/internal/config"
)

type InsightContainer struct {
	Handler *Handler
	Service Service
}

func NewInsightContainer() *InsightContainer {
	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		config.Logger().WithError(err).Fatal("failed to initialize insight provider")
	}
	service := NewService(provider)
	handler := NewHandler(service)

	return &InsightContainer{
		Handler: handler,
		Service: service,
	}
}
