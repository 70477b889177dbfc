package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/cleanup/internal/domain/errors"
	"github.com/polkiloo/cleanup/internal/domain/model"
	"github.com/polkiloo/cleanup/internal/server/http/dto"
)

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation), errors.Is(err, domainErrors.ErrInvalidRating):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	timeline := make([]dto.TimelineEntryResponse, 0, len(order.Timeline))
	for _, entry := range order.Timeline {
		timeline = append(timeline, dto.TimelineEntryResponse{
			Status: string(entry.Status),
			Label:  entry.Status.Label(),
			At:     entry.At,
		})
	}
	return dto.OrderResponse{
		ID:           order.ID,
		ShortID:      order.ShortID(),
		Name:         order.Name,
		Service:      string(order.Service),
		ServiceLabel: order.ServiceLabel,
		Items:        order.Items,
		PickupDate:   order.PickupDate,
		DeliveryDate: order.DeliveryDate,
		Price:        order.Price,
		Status:       string(order.Status),
		StatusLabel:  order.Status.Label(),
		Step:         order.Status.Index(),
		Timeline:     timeline,
		Rating:       order.Rating,
	}
}

func toServiceResponse(info model.ServiceInfo) dto.ServiceResponse {
	return dto.ServiceResponse{ID: string(info.Kind), Label: info.Label, Rate: info.Rate}
}
