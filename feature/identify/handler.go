package identify

import (
	"strconv"

	"path-mapper/core/logger"
	"path-mapper/feature/catalog"
	"path-mapper/feature/gamepath"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// maxRequestPaths bounds a single POST /identify request.
const maxRequestPaths = 10000

// IdentifyRequest is the body of POST /identify.
type IdentifyRequest struct {
	Paths []string `json:"paths"`
}

// IdentifyResponse is the result of POST /identify.
type IdentifyResponse struct {
	Results []Identified `json:"results"`
}

// ItemResponse is the result of GET /identify/item.
type ItemResponse struct {
	RowID uint32 `json:"row_id"`
	Name  string `json:"name"`
}

// Handler handles HTTP requests for identification.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the identify routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/identify")
	group.Post("/", h.HandleIdentify)
	group.Get("/item", h.HandleItem)
}

// HandleIdentify identifies game paths.
// @Summary Identify Paths
// @Description Returns, per path, the labels of the game entities the file affects.
// @Tags identify
// @Accept json
// @Produce json
// @Param request body IdentifyRequest true "Paths to identify"
// @Success 200 {object} IdentifyResponse "Labels per path"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /identify [post]
func (h *Handler) HandleIdentify(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req IdentifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if len(req.Paths) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "paths must not be empty"})
	}
	if len(req.Paths) > maxRequestPaths {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "too many paths, at most " + strconv.Itoa(maxRequestPaths) + " per request",
		})
	}

	results, err := h.service.Identify(c.UserContext(), req.Paths)
	if err != nil {
		l.Error("Identification failed", zap.Int("paths", len(req.Paths)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(IdentifyResponse{Results: results})
}

// HandleItem looks up a single item.
// @Summary Lookup Item
// @Description Finds the item using an exact model set, weapon type, variant and slot.
// @Tags identify
// @Produce json
// @Param set query int true "Model set id"
// @Param type query int false "Weapon type (weapons only)"
// @Param variant query int true "Variant"
// @Param slot query string true "Equip slot name (e.g. 'body', 'mainhand')"
// @Success 200 {object} ItemResponse "Item"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /identify/item [get]
func (h *Handler) HandleItem(c *fiber.Ctx) error {
	set, err := queryUint16(c, "set", true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	weaponType, err := queryUint16(c, "type", false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	variant, err := queryUint16(c, "variant", true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	slot, ok := gamepath.EquipSlotFromName(c.Query("slot"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown slot " + strconv.Quote(c.Query("slot"))})
	}

	item, found := h.service.Item(set, weaponType, variant, slot)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
	}
	return c.JSON(itemResponse(item))
}

func itemResponse(item catalog.Item) ItemResponse {
	return ItemResponse{RowID: item.RowID, Name: item.Name}
}

func queryUint16(c *fiber.Ctx, name string, required bool) (uint16, error) {
	raw := c.Query(name)
	if raw == "" {
		if required {
			return 0, fiber.NewError(fiber.StatusBadRequest, name+" is required")
		}
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name+" "+strconv.Quote(raw))
	}
	return uint16(v), nil
}
