package web

import (
	"embed"
	"io/fs"

	"github.com/gofiber/fiber/v2"
)

//go:embed static
var staticFiles embed.FS

// Register serves the embedded dashboard page. The page is the external
// chart-renderer collaborator: it only fetches prepared series from the API
// and draws them.
func Register(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		data, err := fs.ReadFile(staticFiles, "static/index.html")
		if err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(data)
	})
}
