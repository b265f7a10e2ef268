package setup

import (
	"context"

	"socialnet/internal/config"
	"socialnet/internal/handler"
	"socialnet/internal/service"
	"socialnet/internal/storage/mongo"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Storage *mongo.Storage
	Handler *handler.Handler
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := mongo.New(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}

	users := service.NewUser(storage)
	posts := service.NewPost(storage)
	comments := service.NewComment(storage)
	tags := service.NewTag(storage)

	h := handler.New(users, posts, comments, tags, cfg)

	return &Dependencies{
		Config:  cfg,
		Storage: storage,
		Handler: h,
	}, nil
}
