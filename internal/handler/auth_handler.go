package handler

import (
	"errors"

	"financing-backend/internal/dto"
	"financing-backend/internal/helper"
	"financing-backend/internal/repository"
	"financing-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	usecase *usecase.UserUsecase
}

func NewAuthHandler(u *usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{usecase: u}
}

// Ambil id user dari claims yang disimpan middleware. Kalau tidak ada
// (misal route dipasang tanpa middleware), anggap belum login.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("user_id").(float64)
	if !ok {
		return 0, false
	}
	return uint(id), true
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "User not authenticated",
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Format data salah",
		})
	}

	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := h.usecase.Register(&req)
	if err != nil {
		if repository.IsDuplicate(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "Username atau email sudah terdaftar",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Registrasi gagal",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully!",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Format data salah",
		})
	}

	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, err := h.usecase.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrTooManyAttempts) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Email/username atau password salah",
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"access_token": token,
		"token_type":   "bearer",
		"expires_in":   int(usecase.TokenTTL.Seconds()),
	})
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	user, err := h.usecase.Profile(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "User tidak ditemukan",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Format data salah",
		})
	}

	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := h.usecase.UpdateProfile(userID, &req)
	if err != nil {
		if repository.IsDuplicate(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "Username atau email sudah dipakai akun lain",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal update profil",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profil berhasil diperbarui",
		"user":    user,
	})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Format data salah",
		})
	}

	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.usecase.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, usecase.ErrWrongOldPassword) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Password lama salah",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal update password",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password berhasil diubah",
	})
}
