package service

import (
	"github.com/akarpov/messagely/internal/config"
	"github.com/akarpov/messagely/internal/logger"
	"github.com/akarpov/messagely/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	MessageService MessageService
}

func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg, logger),
		UserService:    NewUserService(repositories.UserRepository, logger),
		MessageService: NewMessageService(repositories.MessageRepository, logger),
	}
}
