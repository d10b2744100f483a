package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kampuspmb/admin_service/internal/dto"
	"github.com/kampuspmb/admin_service/internal/helper"
	"github.com/kampuspmb/admin_service/internal/helper/utils"
)

type AuthHandler struct {
	auth          helper.Auth
	adminUsername string
	adminPassHash string
}

func NewAuthHandler(auth helper.Auth, adminUsername, adminPassHash string) *AuthHandler {
	return &AuthHandler{
		auth:          auth,
		adminUsername: adminUsername,
		adminPassHash: adminPassHash,
	}
}

func (h *AuthHandler) SetupRoutes(api fiber.Router) {
	api.Post("/login", h.Login)
	api.Post("/logout", h.Logout)
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.AdminLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "username and password are required")
	}
	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "username and password are required")
	}

	if requestBody.Username != h.adminUsername ||
		h.auth.VerifyPassword(requestBody.Password, h.adminPassHash) != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := h.auth.GenerateToken(requestBody.Username)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not generate token")
	}

	ctx.Cookie(h.auth.TokenCookie(token, time.Hour))
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"success": true,
		"message": "Login berhasil",
	})
}

func (h *AuthHandler) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(h.auth.TokenCookie("", 0))
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"success": true})
}
