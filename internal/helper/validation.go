package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var Validate = validator.New()

func init() {
	// Pakai nama json di pesan error supaya path field cocok dengan payload
	// klien, misal "nasabah.nama" bukan "Nasabah.Nama"
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Balikan 422 dengan daftar error per field, bentuknya:
// {"success": false, "message": "Validation errors", "errors": {"nasabah.nama": "..."}}
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid input",
		})
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[FieldPath(fieldErr)] = validationMessage(fieldErr)
	}

	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"message": "Validation errors",
		"errors":  errorsMap,
	})
}

// Buang nama struct paling luar dari namespace error
func FieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx != -1 {
		return ns[idx+1:]
	}
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field ini wajib diisi"
	case "email":
		return "format email tidak valid"
	case "oneof":
		return fmt.Sprintf("nilai harus salah satu dari: %s", fe.Param())
	case "min":
		return fmt.Sprintf("minimal %s", fe.Param())
	case "max":
		return fmt.Sprintf("maksimal %s", fe.Param())
	case "gte":
		return fmt.Sprintf("harus lebih besar atau sama dengan %s", fe.Param())
	case "datetime":
		return "format tanggal harus YYYY-MM-DD"
	case "eqfield":
		return "konfirmasi password tidak sama"
	default:
		return fmt.Sprintf("gagal pada aturan '%s'", fe.Tag())
	}
}
