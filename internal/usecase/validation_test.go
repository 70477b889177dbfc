package usecase

import (
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/cleanup/internal/domain/errors"
	"github.com/polkiloo/cleanup/internal/domain/model"
)

func validRequest() model.CreateOrderRequest {
	return model.CreateOrderRequest{
		Name:         "A",
		Service:      "basic",
		Items:        5,
		PickupDate:   "2024-01-01",
		DeliveryDate: "2024-01-03",
	}
}

func TestValidateCreateRequest(t *testing.T) {
	info, err := ValidateCreateRequest(validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Kind != model.ServiceBasic {
		t.Fatalf("expected basic service, got %s", info.Kind)
	}

	cases := map[string]func(*model.CreateOrderRequest){
		"empty name":       func(r *model.CreateOrderRequest) { r.Name = "   " },
		"zero items":       func(r *model.CreateOrderRequest) { r.Items = 0 },
		"negative items":   func(r *model.CreateOrderRequest) { r.Items = -3 },
		"missing pickup":   func(r *model.CreateOrderRequest) { r.PickupDate = "" },
		"missing delivery": func(r *model.CreateOrderRequest) { r.DeliveryDate = " " },
		"unknown service":  func(r *model.CreateOrderRequest) { r.Service = "ironing" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			if _, err := ValidateCreateRequest(req); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestValidateCreateRequestAcceptsAliases(t *testing.T) {
	req := validRequest()
	req.Service = "dry-clean"
	info, err := ValidateCreateRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Kind != model.ServiceSpecialty {
		t.Fatalf("expected specialty, got %s", info.Kind)
	}
}

func TestParseRating(t *testing.T) {
	valid := map[string]int{"1": 1, "5": 5, " 3 ": 3, "4": 4}
	for raw, want := range valid {
		got, err := ParseRating(raw)
		if err != nil || got != want {
			t.Fatalf("ParseRating(%q) = %d, %v; want %d", raw, got, err, want)
		}
	}

	for _, raw := range []string{"0", "6", "-1", "abc", "", "4.5", "4abc"} {
		if _, err := ParseRating(raw); !errors.Is(err, domainErrors.ErrInvalidRating) {
			t.Fatalf("ParseRating(%q) expected invalid rating, got %v", raw, err)
		}
	}
}
