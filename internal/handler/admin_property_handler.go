package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "emlak/internal/errors"
	"emlak/internal/model"
	"emlak/internal/service"
)

// AdminPropertyHandler handles the token-gated mutation endpoints.
type AdminPropertyHandler struct {
	propertyService service.PropertyService
}

// NewAdminPropertyHandler creates a new admin property handler.
func NewAdminPropertyHandler(propertyService service.PropertyService) *AdminPropertyHandler {
	return &AdminPropertyHandler{propertyService: propertyService}
}

// PropertyRequest is the typed payload for create and update. Updates carry
// the full field set; omitted fields are overwritten, not preserved.
type PropertyRequest struct {
	Title        string          `json:"title" validate:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	SquareMeters int             `json:"squareMeters" validate:"min=1"`
	RoomCount    string          `json:"roomCount"`
	Floor        int             `json:"floor"`
	BuildingAge  int             `json:"buildingAge" validate:"min=0"`
	Type         string          `json:"type" validate:"required,oneof=SALE RENT"`
	Status       string          `json:"status" validate:"omitempty,oneof=ACTIVE PASSIVE"`
	Location     string          `json:"location"`
	Images       []string        `json:"images" validate:"omitempty,dive,required"`
}

// CreateResponse carries the id of a newly created listing.
type CreateResponse struct {
	ID uint `json:"id"`
}

// SuccessResponse acknowledges a completed mutation.
type SuccessResponse struct {
	Success bool `json:"success"`
}

func (h *AdminPropertyHandler) bindPropertyRequest(c echo.Context) (*PropertyRequest, error) {
	var req PropertyRequest
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}
	if req.Price.IsNegative() {
		return nil, c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "price must not be negative",
			Code:  "VALIDATION_FAILED",
		})
	}
	return &req, nil
}

func (r *PropertyRequest) toInput() service.PropertyInput {
	return service.PropertyInput{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		SquareMeters: r.SquareMeters,
		RoomCount:    r.RoomCount,
		Floor:        r.Floor,
		BuildingAge:  r.BuildingAge,
		Type:         model.PropertyType(r.Type),
		Status:       model.PropertyStatus(r.Status),
		Location:     r.Location,
		Images:       r.Images,
	}
}

// CreateProperty godoc
// @Summary Create a listing
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PropertyRequest true "Listing fields"
// @Success 201 {object} CreateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/properties [post]
func (h *AdminPropertyHandler) CreateProperty(c echo.Context) error {
	req, err := h.bindPropertyRequest(c)
	if req == nil {
		return err
	}

	id, err := h.propertyService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, CreateResponse{ID: id})
}

// UpdateProperty godoc
// @Summary Update a listing
// @Description Overwrites every field and replaces the full image set.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body PropertyRequest true "Listing fields"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/properties/{id} [put]
func (h *AdminPropertyHandler) UpdateProperty(c echo.Context) error {
	id, err := parsePropertyID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid property id",
			Code:  "INVALID_ID",
		})
	}

	req, err := h.bindPropertyRequest(c)
	if req == nil {
		return err
	}

	if err := h.propertyService.Update(c.Request().Context(), id, req.toInput()); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// DeleteProperty godoc
// @Summary Delete a listing
// @Description Removes the listing and its images. Deleting an already-deleted id succeeds.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/properties/{id} [delete]
func (h *AdminPropertyHandler) DeleteProperty(c echo.Context) error {
	id, err := parsePropertyID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid property id",
			Code:  "INVALID_ID",
		})
	}

	if err := h.propertyService.Delete(c.Request().Context(), id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
