package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kampuspmb/admin_service/internal/domain"
	"github.com/kampuspmb/admin_service/internal/dto"
	"github.com/kampuspmb/admin_service/internal/helper/utils"
	"github.com/kampuspmb/admin_service/internal/services"
)

type RegistrationHandler struct {
	svc       services.RegistrationService
	exportSvc services.ExportService
}

func NewRegistrationHandler(svc services.RegistrationService, exportSvc services.ExportService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc, exportSvc: exportSvc}
}

func (h *RegistrationHandler) SetupRoutes(admin fiber.Router) {
	reg := admin.Group("/registrations")
	reg.Get("/", h.List)
	reg.Post("/", h.Create)
	reg.Patch("/status", h.SetStatus)
	reg.Delete("/", h.Delete)
	reg.Get("/download", h.Download)
	reg.Get("/download-all", h.DownloadAll)
}

func (h *RegistrationHandler) List(ctx *fiber.Ctx) error {
	list, err := h.svc.List()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, list)
}

func (h *RegistrationHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.RegistrationCreateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "namaLengkap and nik are required")
	}

	reg, err := h.svc.Create(requestBody)
	if err != nil {
		return utils.ResponseDomainError(ctx, err, "Registration not found", "Registration already exists")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, reg)
}

func (h *RegistrationHandler) SetStatus(ctx *fiber.Ctx) error {
	var requestBody dto.RegistrationStatusRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id and a valid status are required")
	}

	if err := h.svc.SetStatus(requestBody.ID, domain.RegistrationStatus(requestBody.Status)); err != nil {
		return utils.ResponseDomainError(ctx, err, "Registration not found", "")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"success": true})
}

func (h *RegistrationHandler) Delete(ctx *fiber.Ctx) error {
	id := ctx.Query("id")
	if id == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing ID")
	}

	if err := h.svc.Delete(ctx.Context(), id); err != nil {
		return utils.ResponseDomainError(ctx, err, "Data not found", "")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"success": true})
}

// Download streams one registrant's archive: attachments plus the
// summary workbook. Attachment fetch failures never fail the request;
// a missing record or a serialization failure does.
func (h *RegistrationHandler) Download(ctx *fiber.Ctx) error {
	id := ctx.Query("id")
	if id == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "ID is required")
	}

	res, err := h.exportSvc.ExportOne(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Registration not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to generate ZIP file")
	}

	return sendArchive(ctx, res)
}

func (h *RegistrationHandler) DownloadAll(ctx *fiber.Ctx) error {
	res, err := h.exportSvc.ExportAll(ctx.Context())
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to generate ZIP file")
	}

	return sendArchive(ctx, res)
}

func sendArchive(ctx *fiber.Ctx, res *services.ExportResult) error {
	ctx.Set(fiber.HeaderContentType, "application/zip")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return ctx.Status(fiber.StatusOK).Send(res.Data)
}
