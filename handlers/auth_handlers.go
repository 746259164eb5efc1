package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Brandongr90/la-gruta-dashboard/models"
)

// HandleLogin authenticates a dashboard user and returns a session token.
func HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cuerpo de la petición inválido"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Email y contraseña son requeridos"})
	}

	user, err := credentialStore.Validate(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Credenciales inválidas"})
	}

	token, err := credentialStore.GenerateToken(*user)
	if err != nil {
		log.Printf("Error creating JWT for user %s: %v", user.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "No se pudo firmar el token"})
	}

	return c.JSON(fiber.Map{"success": true, "data": models.LoginResponse{Token: token, User: *user}})
}
