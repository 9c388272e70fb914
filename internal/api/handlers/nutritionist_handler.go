package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nutrition-clinic-service/internal/domain/dtos"
	"nutrition-clinic-service/internal/logger"
	"nutrition-clinic-service/internal/services"
)

type NutritionistHandler struct {
	nutritionistService services.NutritionistServiceContract
	log                 *logger.Logger
}

func NewNutritionistHandler(service services.NutritionistServiceContract, baseLog *logger.Logger) *NutritionistHandler {
	return &NutritionistHandler{
		nutritionistService: service,
		log:                 baseLog.With("handler", "NutritionistHandler"),
	}
}

func (h *NutritionistHandler) List(c *fiber.Ctx) error {
	nutritionists, err := h.nutritionistService.ListNutritionists(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(nutritionists)
}

func (h *NutritionistHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid nutritionist id"})
	}
	nutritionist, err := h.nutritionistService.GetNutritionist(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(nutritionist)
}

func (h *NutritionistHandler) Create(c *fiber.Ctx) error {
	var request dtos.NutritionistRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not parse request body"})
	}
	nutritionist, err := h.nutritionistService.CreateNutritionist(c.Context(), request)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(nutritionist)
}

func (h *NutritionistHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid nutritionist id"})
	}
	var request dtos.NutritionistRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not parse request body"})
	}
	nutritionist, err := h.nutritionistService.UpdateNutritionist(c.Context(), id, request)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(nutritionist)
}

func (h *NutritionistHandler) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid nutritionist id"})
	}
	if err := h.nutritionistService.RemoveNutritionist(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NutritionistHandler) AddExperienceYear(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid nutritionist id"})
	}
	if err := h.nutritionistService.AddExperienceYear(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NutritionistHandler) AddCertification(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid nutritionist id"})
	}
	var request dtos.AddCertificationRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not parse request body"})
	}
	if err := h.nutritionistService.AddCertification(c.Context(), request.Certification, id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func RegisterNutritionistRoutes(app *fiber.App, h *NutritionistHandler) {
	group := app.Group("/nutricionistas")
	group.Get("/", h.List)
	group.Get("/:id", h.Get)
	group.Post("/", h.Create)
	group.Put("/:id", h.Update)
	group.Delete("/:id", h.Remove)
	group.Post("/:id/experiencia", h.AddExperienceYear)
	group.Post("/:id/certificacoes", h.AddCertification)
}
