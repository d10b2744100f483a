package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kampuspmb/admin_service/internal/domain"
	"github.com/kampuspmb/admin_service/internal/dto"
	"github.com/kampuspmb/admin_service/internal/helper/utils"
	"github.com/kampuspmb/admin_service/internal/repository"
)

type ProgramStudiHandler struct {
	repo repository.ProgramStudiRepository
}

func NewProgramStudiHandler(repo repository.ProgramStudiRepository) *ProgramStudiHandler {
	return &ProgramStudiHandler{repo: repo}
}

func (h *ProgramStudiHandler) SetupRoutes(admin fiber.Router) {
	prodi := admin.Group("/program-studi")
	prodi.Get("/", h.List)
	prodi.Post("/", h.Create)
	prodi.Put("/", h.Update)
	prodi.Delete("/", h.Delete)
}

func (h *ProgramStudiHandler) List(ctx *fiber.Ctx) error {
	list, err := h.repo.FindAll()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch program studi")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, list)
}

func (h *ProgramStudiHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.ProgramStudiRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "nama is required")
	}

	id := requestBody.ID
	if id == "" {
		id = uuid.NewString()
	}

	isActive := true
	if requestBody.IsActive != nil {
		isActive = *requestBody.IsActive
	}

	p := &domain.ProgramStudi{
		ID:            id,
		Nama:          requestBody.Nama,
		Fakultas:      requestBody.Fakultas,
		Jenjang:       requestBody.Jenjang,
		Akreditasi:    requestBody.Akreditasi,
		BiayaSemester: requestBody.BiayaSemester,
		Deskripsi:     requestBody.Deskripsi,
		IsActive:      isActive,
	}

	if err := h.repo.Create(p); err != nil {
		return utils.ResponseDomainError(ctx, err, "Program studi tidak ditemukan", "Program studi sudah ada")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, p)
}

func (h *ProgramStudiHandler) Update(ctx *fiber.Ctx) error {
	var requestBody dto.ProgramStudiRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if requestBody.ID == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "ID is required")
	}

	p, err := h.repo.FindByID(requestBody.ID)
	if err != nil {
		return utils.ResponseDomainError(ctx, err, "Program studi tidak ditemukan", "Program studi sudah ada")
	}

	p.Nama = requestBody.Nama
	p.Fakultas = requestBody.Fakultas
	p.Jenjang = requestBody.Jenjang
	p.Akreditasi = requestBody.Akreditasi
	p.BiayaSemester = requestBody.BiayaSemester
	p.Deskripsi = requestBody.Deskripsi
	if requestBody.IsActive != nil {
		p.IsActive = *requestBody.IsActive
	}

	if err := h.repo.Save(p); err != nil {
		return utils.ResponseDomainError(ctx, err, "Program studi tidak ditemukan", "Program studi sudah ada")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, p)
}

func (h *ProgramStudiHandler) Delete(ctx *fiber.Ctx) error {
	id := ctx.Query("id")
	if id == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "ID is required")
	}

	if err := h.repo.Delete(id); err != nil {
		return utils.ResponseDomainError(ctx, err, "Program studi tidak ditemukan", "")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"message": "Program studi deleted successfully"})
}
