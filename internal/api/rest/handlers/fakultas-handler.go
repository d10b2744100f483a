package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kampuspmb/admin_service/internal/domain"
	"github.com/kampuspmb/admin_service/internal/dto"
	"github.com/kampuspmb/admin_service/internal/helper/utils"
	"github.com/kampuspmb/admin_service/internal/repository"
)

type FakultasHandler struct {
	repo repository.FakultasRepository
}

func NewFakultasHandler(repo repository.FakultasRepository) *FakultasHandler {
	return &FakultasHandler{repo: repo}
}

func (h *FakultasHandler) SetupRoutes(admin fiber.Router) {
	fakultas := admin.Group("/fakultas")
	fakultas.Get("/", h.List)
	fakultas.Post("/", h.Create)
	fakultas.Put("/", h.Update)
	fakultas.Delete("/", h.Delete)
}

func (h *FakultasHandler) List(ctx *fiber.Ctx) error {
	list, err := h.repo.FindAll()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch fakultas")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, list)
}

func (h *FakultasHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.FakultasRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "nama is required")
	}

	id := strings.TrimSpace(requestBody.ID)
	if id == "" {
		id = strings.ToUpper(requestBody.Nama)
	}

	isActive := true
	if requestBody.IsActive != nil {
		isActive = *requestBody.IsActive
	}

	f := &domain.Fakultas{
		ID:          id,
		Nama:        requestBody.Nama,
		NamaLengkap: requestBody.NamaLengkap,
		Deskripsi:   requestBody.Deskripsi,
		Akreditasi:  requestBody.Akreditasi,
		IsActive:    isActive,
	}

	if err := h.repo.Create(f); err != nil {
		return utils.ResponseDomainError(ctx, err, "Fakultas tidak ditemukan", "Nama fakultas sudah ada")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, f)
}

func (h *FakultasHandler) Update(ctx *fiber.Ctx) error {
	var requestBody dto.FakultasRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if requestBody.ID == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "ID is required")
	}

	f, err := h.repo.FindByID(requestBody.ID)
	if err != nil {
		return utils.ResponseDomainError(ctx, err, "Fakultas tidak ditemukan", "Nama fakultas sudah ada")
	}

	f.Nama = requestBody.Nama
	f.NamaLengkap = requestBody.NamaLengkap
	f.Deskripsi = requestBody.Deskripsi
	f.Akreditasi = requestBody.Akreditasi
	if requestBody.IsActive != nil {
		f.IsActive = *requestBody.IsActive
	}

	if err := h.repo.Save(f); err != nil {
		return utils.ResponseDomainError(ctx, err, "Fakultas tidak ditemukan", "Nama fakultas sudah ada")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, f)
}

func (h *FakultasHandler) Delete(ctx *fiber.Ctx) error {
	id := ctx.Query("id")
	if id == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "ID is required")
	}

	if err := h.repo.Delete(id); err != nil {
		return utils.ResponseDomainError(ctx, err, "Fakultas tidak ditemukan", "")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"message": "Fakultas deleted successfully"})
}
