package model

import (
	"math"
	"strings"
)

// ServiceKind identifies a laundry service offering.
type ServiceKind string

const (
	ServiceBasic     ServiceKind = "basic"
	ServiceExpress   ServiceKind = "express"
	ServiceSpecialty ServiceKind = "specialty"
)

// ServiceInfo describes display label and per-item rate of a service.
type ServiceInfo struct {
	Kind  ServiceKind
	Label string
	Rate  float64
}

var catalog = []ServiceInfo{
	{Kind: ServiceBasic, Label: "Wash & Fold", Rate: 2.00},
	{Kind: ServiceExpress, Label: "Express", Rate: 3.00},
	{Kind: ServiceSpecialty, Label: "Dry Clean", Rate: 5.00},
}

var serviceAliases = map[string]ServiceKind{
	"wash-fold": ServiceBasic,
	"dry-clean": ServiceSpecialty,
}

// Services returns the service catalog in display order.
func Services() []ServiceInfo {
	return append([]ServiceInfo(nil), catalog...)
}

// LookupService resolves a service identifier, accepting legacy aliases.
func LookupService(raw string) (ServiceInfo, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := serviceAliases[key]; ok {
		key = string(alias)
	}
	for _, info := range catalog {
		if string(info.Kind) == key {
			return info, true
		}
	}
	return ServiceInfo{}, false
}

// Price returns items * rate rounded to cents.
func (s ServiceInfo) Price(items int) float64 {
	return math.Round(float64(items)*s.Rate*100) / 100
}

// Quote is a price estimate for a prospective order.
type Quote struct {
	Service ServiceInfo
	Items   int
	Price   float64
}
