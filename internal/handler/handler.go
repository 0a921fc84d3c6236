package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"wellnessPosts/internal/config"
	"wellnessPosts/internal/service"
)

type Handlers struct {
	PostService   service.PostService
	HealthService service.HealthService
	Cfg           *config.Config
	Validate      *validator.Validate
	Log           logrus.FieldLogger
}

func NewHandlers(service *service.Service, config *config.Config, log logrus.FieldLogger) *Handlers {
	return &Handlers{
		PostService:   service.Post,
		HealthService: service.Health,
		Cfg:           config,
		Validate:      NewValidator(),
		Log:           log,
	}
}

// NewValidator reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
