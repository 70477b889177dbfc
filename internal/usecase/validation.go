package usecase

import (
	"fmt"
	"strconv"
	"strings"

	domainErrors "github.com/polkiloo/cleanup/internal/domain/errors"
	"github.com/polkiloo/cleanup/internal/domain/model"
)

const (
	minRating = 1
	maxRating = 5
)

// ValidateCreateRequest checks creation input and resolves its service.
func ValidateCreateRequest(req model.CreateOrderRequest) (model.ServiceInfo, error) {
	if strings.TrimSpace(req.Name) == "" {
		return model.ServiceInfo{}, fmt.Errorf("%w: name is required", domainErrors.ErrValidation)
	}
	if req.Items < 1 {
		return model.ServiceInfo{}, fmt.Errorf("%w: items must be at least 1", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(req.PickupDate) == "" {
		return model.ServiceInfo{}, fmt.Errorf("%w: pickup date is required", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(req.DeliveryDate) == "" {
		return model.ServiceInfo{}, fmt.Errorf("%w: delivery date is required", domainErrors.ErrValidation)
	}
	info, ok := model.LookupService(req.Service)
	if !ok {
		return model.ServiceInfo{}, fmt.Errorf("%w: unknown service %q", domainErrors.ErrValidation, req.Service)
	}
	return info, nil
}

// ParseRating parses free-form rating input as a whole number in 1..5.
func ParseRating(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domainErrors.ErrInvalidRating, raw)
	}
	if err := checkRating(value); err != nil {
		return 0, err
	}
	return value, nil
}

func checkRating(value int) error {
	if value < minRating || value > maxRating {
		return fmt.Errorf("%w: %d is outside %d..%d", domainErrors.ErrInvalidRating, value, minRating, maxRating)
	}
	return nil
}
