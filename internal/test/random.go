package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/polkiloo/cleanup/internal/domain/model"
)

const nameLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomName returns a customer name of one or two words within the provided length bounds.
func RandomName(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = nameLetters[randomIntn(len(nameLetters))]
	}
	if length >= 3 && randomIntn(2) == 0 {
		buf[1+randomIntn(length-2)] = ' '
	}
	return strings.TrimSpace(string(buf))
}

// RandomCreateRequest builds a valid creation request for any catalog service.
func RandomCreateRequest() model.CreateOrderRequest {
	services := model.Services()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, randomIntn(300))
	return model.CreateOrderRequest{
		Name:         RandomName(3, 24),
		Service:      string(services[randomIntn(len(services))].Kind),
		Items:        1 + randomIntn(40),
		PickupDate:   day.Format(time.DateOnly),
		DeliveryDate: day.AddDate(0, 0, 1+randomIntn(5)).Format(time.DateOnly),
	}
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
