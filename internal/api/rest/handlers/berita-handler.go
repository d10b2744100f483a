package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kampuspmb/admin_service/internal/domain"
	"github.com/kampuspmb/admin_service/internal/dto"
	"github.com/kampuspmb/admin_service/internal/helper/utils"
	"github.com/kampuspmb/admin_service/internal/interfaces"
	"github.com/kampuspmb/admin_service/internal/repository"
)

type BeritaHandler struct {
	repo     repository.BeritaRepository
	uploader interfaces.Uploader
}

func NewBeritaHandler(repo repository.BeritaRepository, uploader interfaces.Uploader) *BeritaHandler {
	return &BeritaHandler{repo: repo, uploader: uploader}
}

// SetupPublicRoutes must be registered before the auth middleware is
// mounted so the campus site can read without a session.
func (h *BeritaHandler) SetupPublicRoutes(public fiber.Router) {
	public.Get("/berita/public", h.PublicList)
}

func (h *BeritaHandler) SetupRoutes(admin fiber.Router) {
	berita := admin.Group("/berita")
	berita.Get("/", h.List)
	berita.Post("/", h.Create)
	berita.Put("/", h.Update)
	berita.Delete("/", h.Delete)
	berita.Post("/upload", h.UploadImage)
}

func (h *BeritaHandler) List(ctx *fiber.Ctx) error {
	list, err := h.repo.FindAll()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch berita")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, list)
}

func (h *BeritaHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.BeritaCreateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "judul and slug are required")
	}

	jenis := domain.BeritaJenis(requestBody.Jenis)
	if jenis == "" {
		jenis = domain.BeritaJenisInternal
	}

	aktif := true
	if requestBody.Aktif != nil {
		aktif = *requestBody.Aktif
	}

	b := &domain.Berita{
		ID:      uuid.NewString(),
		Judul:   requestBody.Judul,
		Konten:  requestBody.Konten,
		Gambar:  requestBody.Gambar,
		Slug:    requestBody.Slug,
		LinkUrl: requestBody.LinkUrl,
		Jenis:   jenis,
		Excerpt: requestBody.Excerpt,
		Author:  requestBody.Author,
		Tags:    requestBody.Tags,
		Tanggal: requestBody.Tanggal,
		Aktif:   aktif,
	}

	if err := h.repo.Create(b); err != nil {
		return utils.ResponseDomainError(ctx, err, "Berita tidak ditemukan", "Slug sudah digunakan")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, b)
}

func (h *BeritaHandler) Update(ctx *fiber.Ctx) error {
	var requestBody dto.BeritaUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "id is required")
	}

	b, err := h.repo.FindByID(requestBody.ID)
	if err != nil {
		return utils.ResponseDomainError(ctx, err, "Berita tidak ditemukan", "Slug sudah digunakan")
	}

	b.Judul = requestBody.Judul
	b.Konten = requestBody.Konten
	b.Gambar = requestBody.Gambar
	b.Slug = requestBody.Slug
	b.LinkUrl = requestBody.LinkUrl
	if requestBody.Jenis != "" {
		b.Jenis = domain.BeritaJenis(requestBody.Jenis)
	}
	b.Excerpt = requestBody.Excerpt
	b.Author = requestBody.Author
	b.Tags = requestBody.Tags
	b.Tanggal = requestBody.Tanggal
	if requestBody.Aktif != nil {
		b.Aktif = *requestBody.Aktif
	}

	if err := h.repo.Save(b); err != nil {
		return utils.ResponseDomainError(ctx, err, "Berita tidak ditemukan", "Slug sudah digunakan")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, b)
}

func (h *BeritaHandler) Delete(ctx *fiber.Ctx) error {
	id := ctx.Query("id")
	if id == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "ID is required")
	}

	if err := h.repo.Delete(id); err != nil {
		return utils.ResponseDomainError(ctx, err, "Berita tidak ditemukan", "")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"message": "Berita deleted successfully"})
}

// PublicList serves the campus site: active rows only, optionally one
// row by slug or a jenis-filtered, limited listing.
func (h *BeritaHandler) PublicList(ctx *fiber.Ctx) error {
	var q dto.PublicBeritaQuery
	if err := ctx.QueryParser(&q); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid query")
	}

	if q.Slug != "" {
		b, err := h.repo.FindPublicBySlug(q.Slug)
		if err != nil {
			return utils.ResponseDomainError(ctx, err, "Berita not found", "")
		}
		return utils.ResponseSuccess(ctx, fiber.StatusOK, b)
	}

	list, err := h.repo.FindPublic(q.Jenis, q.Limit)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, list)
}

func (h *BeritaHandler) UploadImage(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "No file provided")
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "File harus berupa gambar")
	}

	const maxSize = 5 * 1024 * 1024
	if file.Size > maxSize {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Ukuran file maksimal 5MB")
	}

	f, err := file.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "cannot open uploaded file")
	}
	defer f.Close()

	uploadCtx, cancel := context.WithTimeout(ctx.Context(), 20*time.Second)
	defer cancel()

	url, publicID, err := h.uploader.UploadImage(uploadCtx, "berita", f)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Upload failed")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"imageUrl": url,
		"publicId": publicID,
	})
}
