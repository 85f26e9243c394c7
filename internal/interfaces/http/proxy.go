package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
)

// BackendProxy reexpide /api/* hacia el backend real conservando ruta y query:
// el equivalente de servidor del rewrite same-origin del frontend. En modo
// mock no se registra: no hay backend al que reexpedir.
func BackendProxy(backendBaseURL string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return proxy.Do(c, backendBaseURL+c.OriginalURL())
	}
}
