package model

import (
	"testing"
	"time"
)

func TestStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   Status
		value string
		index int
	}{
		{"processing", StatusProcessing, "processing", 0},
		{"washed", StatusWashed, "washed", 1},
		{"dried", StatusDried, "dried", 2},
		{"ready for pickup", StatusReadyForPickup, "ready_for_pickup", 3},
		{"completed", StatusCompleted, "completed", 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			if tc.got.Index() != tc.index {
				t.Fatalf("expected index %d, got %d", tc.index, tc.got.Index())
			}
		})
	}
}

func TestStatusNext(t *testing.T) {
	cases := []struct {
		from, want Status
	}{
		{StatusProcessing, StatusWashed},
		{StatusWashed, StatusDried},
		{StatusDried, StatusReadyForPickup},
		{StatusReadyForPickup, StatusCompleted},
		{StatusCompleted, StatusCompleted},
		{Status("unknown"), Status("unknown")},
	}
	for _, tc := range cases {
		if got := tc.from.Next(); got != tc.want {
			t.Errorf("%s.Next() = %s, want %s", tc.from, got, tc.want)
		}
	}
}

func TestStatusHelpers(t *testing.T) {
	if InitialStatus() != StatusProcessing {
		t.Fatalf("unexpected initial status %s", InitialStatus())
	}
	if !TerminalStatus().Terminal() || StatusDried.Terminal() {
		t.Fatal("only completed is terminal")
	}
	if Status("lost").Valid() {
		t.Fatal("unknown status must be invalid")
	}
	if StatusReadyForPickup.Label() != "ready for pickup" {
		t.Fatalf("unexpected label %q", StatusReadyForPickup.Label())
	}
}

func TestOrderShortID(t *testing.T) {
	o := Order{ID: "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"}
	if got := o.ShortID(); got != "BD4BED" {
		t.Fatalf("expected BD4BED, got %s", got)
	}
	if got := (Order{ID: "abc"}).ShortID(); got != "ABC" {
		t.Fatalf("expected ABC, got %s", got)
	}
}

func TestOrderCloneIsDeep(t *testing.T) {
	rating := 4
	o := Order{
		ID:       "x",
		Timeline: []TimelineEntry{{Status: StatusProcessing, At: time.Unix(0, 0)}},
		Rating:   &rating,
	}
	c := o.Clone()
	c.Timeline[0].Status = StatusWashed
	*c.Rating = 1

	if o.Timeline[0].Status != StatusProcessing {
		t.Fatal("clone shares timeline storage")
	}
	if *o.Rating != 4 {
		t.Fatal("clone shares rating storage")
	}
}

func TestLookupService(t *testing.T) {
	cases := []struct {
		raw   string
		kind  ServiceKind
		label string
		rate  float64
		ok    bool
	}{
		{"basic", ServiceBasic, "Wash & Fold", 2, true},
		{"express", ServiceExpress, "Express", 3, true},
		{"specialty", ServiceSpecialty, "Dry Clean", 5, true},
		{" Express ", ServiceExpress, "Express", 3, true},
		{"wash-fold", ServiceBasic, "Wash & Fold", 2, true},
		{"dry-clean", ServiceSpecialty, "Dry Clean", 5, true},
		{"ironing", "", "", 0, false},
		{"", "", "", 0, false},
	}
	for _, tc := range cases {
		info, ok := LookupService(tc.raw)
		if ok != tc.ok {
			t.Fatalf("LookupService(%q) ok=%v, want %v", tc.raw, ok, tc.ok)
		}
		if info.Kind != tc.kind || info.Label != tc.label || info.Rate != tc.rate {
			t.Fatalf("LookupService(%q) = %+v", tc.raw, info)
		}
	}
}

func TestServicePrice(t *testing.T) {
	basic, _ := LookupService("basic")
	express, _ := LookupService("express")
	specialty, _ := LookupService("specialty")

	if got := basic.Price(5); got != 10.00 {
		t.Fatalf("basic x5 = %v, want 10.00", got)
	}
	if got := express.Price(3); got != 9.00 {
		t.Fatalf("express x3 = %v, want 9.00", got)
	}
	if got := specialty.Price(7); got != 35.00 {
		t.Fatalf("specialty x7 = %v, want 35.00", got)
	}

	odd := ServiceInfo{Rate: 0.333}
	if got := odd.Price(3); got != 1.00 {
		t.Fatalf("expected rounding to cents, got %v", got)
	}
}

func TestServicesReturnsCopy(t *testing.T) {
	list := Services()
	if len(list) != 3 {
		t.Fatalf("expected 3 services, got %d", len(list))
	}
	list[0].Rate = 100
	if again := Services(); again[0].Rate != 2 {
		t.Fatal("catalog must not be mutable through Services")
	}
}
