// Package handler contains the pieces shared by the web handlers.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/kj-requests/kj-requests/internal/config"
	"github.com/kj-requests/kj-requests/internal/requestgate"
)

// ErrMissingDependency is returned by Init when a required dependency is nil.
var ErrMissingDependency = errors.New("handler dependency is nil")

// Dependencies are handed to every handler at start up.
type Dependencies struct {
	Cfg  *config.Config
	DB   *gorm.DB
	Gate *requestgate.Gate
}

// Service is the interface for a web handler service.
type Service interface {
	Init(router fiber.Router, deps *Dependencies) error
}
