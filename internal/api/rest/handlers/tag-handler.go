package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kampuspmb/admin_service/internal/domain"
	"github.com/kampuspmb/admin_service/internal/dto"
	"github.com/kampuspmb/admin_service/internal/helper"
	"github.com/kampuspmb/admin_service/internal/helper/utils"
	"github.com/kampuspmb/admin_service/internal/repository"
)

type TagHandler struct {
	repo repository.TagRepository
}

func NewTagHandler(repo repository.TagRepository) *TagHandler {
	return &TagHandler{repo: repo}
}

func (h *TagHandler) SetupRoutes(admin fiber.Router) {
	tags := admin.Group("/tags")
	tags.Get("/", h.List)
	tags.Post("/", h.Create)
	tags.Delete("/", h.Delete)
}

func (h *TagHandler) List(ctx *fiber.Ctx) error {
	list, err := h.repo.FindAll()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, list)
}

func (h *TagHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.TagCreateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Nama tag harus diisi")
	}
	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Nama tag harus diisi")
	}

	slug := helper.TagSlug(requestBody.Nama)

	if _, err := h.repo.FindByNamaOrSlug(requestBody.Nama, slug); err == nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Tag sudah ada")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Internal server error")
	}

	warna := requestBody.Warna
	if warna == "" {
		warna = "#3b82f6"
	}

	t := &domain.Tag{
		ID:    uuid.NewString(),
		Nama:  requestBody.Nama,
		Slug:  slug,
		Warna: warna,
		Aktif: true,
	}
	if err := h.repo.Create(t); err != nil {
		return utils.ResponseDomainError(ctx, err, "Tag tidak ditemukan", "Tag sudah ada")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, t)
}

func (h *TagHandler) Delete(ctx *fiber.Ctx) error {
	id := ctx.Query("id")
	if id == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "ID tag harus disediakan")
	}

	if err := h.repo.Delete(id); err != nil {
		return utils.ResponseDomainError(ctx, err, "Tag tidak ditemukan", "")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"message": "Tag berhasil dihapus"})
}
