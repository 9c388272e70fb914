package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nutrition-clinic-service/internal/domain/dtos"
	"nutrition-clinic-service/internal/logger"
	"nutrition-clinic-service/internal/services"
)

type ConsultationHandler struct {
	consultationService services.ConsultationServiceContract
	log                 *logger.Logger
}

func NewConsultationHandler(service services.ConsultationServiceContract, baseLog *logger.Logger) *ConsultationHandler {
	return &ConsultationHandler{
		consultationService: service,
		log:                 baseLog.With("handler", "ConsultationHandler"),
	}
}

func (h *ConsultationHandler) List(c *fiber.Ctx) error {
	consultations, err := h.consultationService.ListConsultations(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(consultations)
}

func (h *ConsultationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid consultation id"})
	}
	consultation, err := h.consultationService.GetConsultation(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(consultation)
}

func (h *ConsultationHandler) Create(c *fiber.Ctx) error {
	var request dtos.ConsultationRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not parse request body"})
	}
	consultation, err := h.consultationService.CreateConsultation(c.Context(), request)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(consultation)
}

func RegisterConsultationRoutes(app *fiber.App, h *ConsultationHandler) {
	group := app.Group("/consultas")
	group.Get("/", h.List)
	group.Get("/:id", h.Get)
	group.Post("/", h.Create)
}
