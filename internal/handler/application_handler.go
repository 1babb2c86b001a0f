package handler

import (
	"strconv"

	"financing-backend/internal/dto"
	"financing-backend/internal/helper"
	"financing-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	repo repository.ApplicationRepository
}

func NewApplicationHandler(repo repository.ApplicationRepository) *ApplicationHandler {
	return &ApplicationHandler{repo: repo}
}

func (h *ApplicationHandler) Index(c *fiber.Ctx) error {
	if _, ok := currentUserID(c); !ok {
		return unauthenticated(c)
	}

	applications, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal mengambil data aplikasi",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"applications": applications,
	})
}

func (h *ApplicationHandler) Show(c *fiber.Ctx) error {
	if _, ok := currentUserID(c); !ok {
		return unauthenticated(c)
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "ID aplikasi tidak valid",
		})
	}

	application, err := h.repo.GetByID(uint(id))
	if err != nil {
		if repository.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Application not Found.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal mengambil data aplikasi",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"application": application,
	})
}

func (h *ApplicationHandler) Store(c *fiber.Ctx) error {
	if _, ok := currentUserID(c); !ok {
		return unauthenticated(c)
	}

	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Format data salah",
		})
	}

	// Validasi dulu sebelum menyentuh database sama sekali
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	application, err := h.repo.CreateAggregate(&req)
	if err != nil {
		if repository.IsDuplicate(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "Application creation failed",
				"error":   "nik, no_hp, atau email nasabah sudah terdaftar",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Application creation failed",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"message":     "Application created successfully!",
		"application": application,
		"nasabah":     application.Nasabah,
	})
}

func (h *ApplicationHandler) Update(c *fiber.Ctx) error {
	if _, ok := currentUserID(c); !ok {
		return unauthenticated(c)
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "ID aplikasi tidak valid",
		})
	}

	var req dto.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Format data salah",
		})
	}

	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	application, err := h.repo.UpdateAggregate(uint(id), &req)
	if err != nil {
		if repository.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Application not Found.",
			})
		}
		if repository.IsDuplicate(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "Application update failed",
				"error":   "nik, no_hp, atau email nasabah sudah terdaftar",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Application update failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Application updated successfully!",
		"application": application,
	})
}

func (h *ApplicationHandler) Destroy(c *fiber.Ctx) error {
	if _, ok := currentUserID(c); !ok {
		return unauthenticated(c)
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "ID aplikasi tidak valid",
		})
	}

	if err := h.repo.DeleteAggregate(uint(id)); err != nil {
		if repository.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Application not Found.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Application deletion failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Application and related data deleted successfully!",
	})
}
