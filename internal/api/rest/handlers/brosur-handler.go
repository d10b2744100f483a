package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kampuspmb/admin_service/internal/domain"
	"github.com/kampuspmb/admin_service/internal/dto"
	"github.com/kampuspmb/admin_service/internal/helper/utils"
	"github.com/kampuspmb/admin_service/internal/repository"
)

type BrosurHandler struct {
	repo repository.BrosurRepository
}

func NewBrosurHandler(repo repository.BrosurRepository) *BrosurHandler {
	return &BrosurHandler{repo: repo}
}

func (h *BrosurHandler) SetupRoutes(admin fiber.Router) {
	brosur := admin.Group("/brosur")
	brosur.Get("/", h.Get)
	brosur.Post("/", h.Create)
	brosur.Put("/", h.Update)
}

// Get returns the single brochure, or null when none has been set.
func (h *BrosurHandler) Get(ctx *fiber.Ctx) error {
	b, err := h.repo.FindFirst()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return utils.ResponseSuccess(ctx, fiber.StatusOK, nil)
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch brosur")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, b)
}

func (h *BrosurHandler) Create(ctx *fiber.Ctx) error {
	b, status, err := h.upsert(ctx, true)
	if err != nil {
		return utils.ResponseError(ctx, status, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, b)
}

func (h *BrosurHandler) Update(ctx *fiber.Ctx) error {
	b, status, err := h.upsert(ctx, false)
	if err != nil {
		return utils.ResponseError(ctx, status, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, b)
}

// upsert enforces the singleton: POST always replaces, PUT updates in
// place when a row exists and creates one otherwise.
func (h *BrosurHandler) upsert(ctx *fiber.Ctx, replace bool) (*domain.Brosur, int, error) {
	var requestBody dto.BrosurRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return nil, fiber.StatusBadRequest, errors.New("Please provide valid inputs")
	}
	if err := validate.Struct(requestBody); err != nil {
		return nil, fiber.StatusBadRequest, errors.New("imageUrl is required")
	}

	aktif := true
	if requestBody.Aktif != nil {
		aktif = *requestBody.Aktif
	}

	if !replace {
		existing, err := h.repo.FindFirst()
		if err == nil {
			existing.ImageUrl = requestBody.ImageUrl
			existing.LinkUrl = requestBody.LinkUrl
			existing.Aktif = aktif
			if err := h.repo.Save(existing); err != nil {
				return nil, fiber.StatusInternalServerError, errors.New("Failed to update brosur")
			}
			return existing, 0, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fiber.StatusInternalServerError, errors.New("Failed to update brosur")
		}
	}

	b := &domain.Brosur{
		ID:       uuid.NewString(),
		ImageUrl: requestBody.ImageUrl,
		LinkUrl:  requestBody.LinkUrl,
		Aktif:    aktif,
	}
	if err := h.repo.Replace(b); err != nil {
		return nil, fiber.StatusInternalServerError, errors.New("Failed to save brosur")
	}
	return b, 0, nil
}
