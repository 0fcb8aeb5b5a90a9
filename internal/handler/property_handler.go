package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "emlak/internal/errors"
	"emlak/internal/model"
	"emlak/internal/service"
)

// PropertyHandler handles the public listing endpoints.
type PropertyHandler struct {
	propertyService service.PropertyService
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// PropertyResponse is the wire representation of a listing.
type PropertyResponse struct {
	ID           uint                 `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Price        decimal.Decimal      `json:"price"`
	SquareMeters int                  `json:"squareMeters"`
	RoomCount    string               `json:"roomCount"`
	Floor        int                  `json:"floor"`
	BuildingAge  int                  `json:"buildingAge"`
	Type         model.PropertyType   `json:"type"`
	Status       model.PropertyStatus `json:"status"`
	Location     string               `json:"location"`
	CreatedAt    time.Time            `json:"createdAt"`
	Images       []string             `json:"images"`
}

func newPropertyResponse(p *model.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		SquareMeters: p.SquareMeters,
		RoomCount:    p.RoomCount,
		Floor:        p.Floor,
		BuildingAge:  p.BuildingAge,
		Type:         p.Type,
		Status:       p.Status,
		Location:     p.Location,
		CreatedAt:    p.CreatedAt,
		Images:       p.ImageURLs(),
	}
}

// ListProperties godoc
// @Summary List properties
// @Description Returns listings newest first. Without a status parameter only ACTIVE listings are visible; status=ALL shows everything.
// @Tags properties
// @Produce json
// @Param type query string false "SALE or RENT"
// @Param status query string false "ACTIVE, PASSIVE or ALL"
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Success 200 {array} PropertyResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c echo.Context) error {
	filter, err := parseListFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_FILTER",
		})
	}

	properties, err := h.propertyService.List(c.Request().Context(), filter)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		resp = append(resp, newPropertyResponse(&properties[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetProperty godoc
// @Summary Get a property
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} PropertyResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c echo.Context) error {
	id, err := parsePropertyID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid property id",
			Code:  "INVALID_ID",
		})
	}

	property, err := h.propertyService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, newPropertyResponse(property))
}

func parseListFilter(c echo.Context) (model.ListFilter, error) {
	var filter model.ListFilter

	if v := c.QueryParam("type"); v != "" {
		t := model.PropertyType(v)
		if t != model.PropertyTypeSale && t != model.PropertyTypeRent {
			return filter, fmt.Errorf("unknown type %q", v)
		}
		filter.Type = &t
	}

	status, err := model.ParseStatusFilter(c.QueryParam("status"))
	if err != nil {
		return filter, err
	}
	filter.Status = status

	if v := c.QueryParam("minPrice"); v != "" {
		min, err := decimal.NewFromString(v)
		if err != nil {
			return filter, err
		}
		filter.MinPrice = &min
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		max, err := decimal.NewFromString(v)
		if err != nil {
			return filter, err
		}
		filter.MaxPrice = &max
	}
	return filter, nil
}

func parsePropertyID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
