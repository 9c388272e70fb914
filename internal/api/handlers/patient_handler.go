package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nutrition-clinic-service/internal/domain/dtos"
	"nutrition-clinic-service/internal/logger"
	"nutrition-clinic-service/internal/services"
)

type PatientHandler struct {
	patientService services.PatientServiceContract
	log            *logger.Logger
}

func NewPatientHandler(service services.PatientServiceContract, baseLog *logger.Logger) *PatientHandler {
	return &PatientHandler{
		patientService: service,
		log:            baseLog.With("handler", "PatientHandler"),
	}
}

func (h *PatientHandler) List(c *fiber.Ctx) error {
	patients, err := h.patientService.ListPatients(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(patients)
}

func (h *PatientHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid patient id"})
	}
	patient, err := h.patientService.GetPatient(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(patient)
}

func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var request dtos.PatientRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not parse request body"})
	}
	patient, err := h.patientService.CreatePatient(c.Context(), request)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(patient)
}

func (h *PatientHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid patient id"})
	}
	var request dtos.PatientRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not parse request body"})
	}
	patient, err := h.patientService.UpdatePatient(c.Context(), id, request)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(patient)
}

func (h *PatientHandler) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid patient id"})
	}
	if err := h.patientService.RemovePatient(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func RegisterPatientRoutes(app *fiber.App, h *PatientHandler) {
	group := app.Group("/pacientes")
	group.Get("/", h.List)
	group.Get("/:id", h.Get)
	group.Post("/", h.Create)
	group.Put("/:id", h.Update)
	group.Delete("/:id", h.Remove)
}
