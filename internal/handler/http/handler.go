package http

import (
	"embed"
	"html/template"

	"github.com/MKhiriev/go-todo-keeper/internal/controller"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/session"
	"github.com/MKhiriev/go-todo-keeper/internal/translator"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.New("pages").ParseFS(templatesFS, "templates/*.html"))

type Handler struct {
	services   *service.Services
	controller *controller.Controller
	translator translator.Translator
	sessions   *session.Manager
	ids        utils.IDGenerator

	logger *logger.Logger
}

// NewHandler wires the controller and a fresh session manager. Sessions live
// as long as the handler.
func NewHandler(services *service.Services, tr translator.Translator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	ids := utils.NewUUIDGenerator()
	return &Handler{
		services:   services,
		controller: controller.New(services.ItemService, tr, logger),
		translator: tr,
		sessions:   session.NewManager(ids),
		ids:        ids,
		logger:     logger,
	}
}
