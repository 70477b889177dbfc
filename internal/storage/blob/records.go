package blob

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/cleanup/internal/domain/errors"
	"github.com/polkiloo/cleanup/internal/domain/model"
)

type timelineRecord struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

type orderRecord struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Service      string           `json:"service"`
	ServiceLabel string           `json:"serviceLabel"`
	Items        int              `json:"items"`
	PickupDate   string           `json:"pickupDate"`
	DeliveryDate string           `json:"deliveryDate"`
	Price        float64          `json:"price"`
	Status       string           `json:"status"`
	Timeline     []timelineRecord `json:"timeline"`
	Rating       *int             `json:"rating"`
}

type notificationRecord struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// marshal is json.Marshal without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func encodeOrders(orders []model.Order) ([]byte, error) {
	records := make([]orderRecord, 0, len(orders))
	for _, o := range orders {
		timeline := make([]timelineRecord, 0, len(o.Timeline))
		for _, e := range o.Timeline {
			timeline = append(timeline, timelineRecord{Status: string(e.Status), At: e.At})
		}
		records = append(records, orderRecord{
			ID:           o.ID,
			Name:         o.Name,
			Service:      string(o.Service),
			ServiceLabel: o.ServiceLabel,
			Items:        o.Items,
			PickupDate:   o.PickupDate,
			DeliveryDate: o.DeliveryDate,
			Price:        o.Price,
			Status:       string(o.Status),
			Timeline:     timeline,
			Rating:       o.Rating,
		})
	}
	return marshal(records)
}

// decodeOrders returns the decodable orders plus the number of records it had to skip.
func decodeOrders(data []byte) ([]model.Order, int, error) {
	var records []orderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domainErrors.ErrPersistenceCorrupt, err)
	}

	orders := make([]model.Order, 0, len(records))
	skipped := 0
	for _, r := range records {
		o, ok := r.toModel()
		if !ok {
			skipped++
			continue
		}
		orders = append(orders, o)
	}
	return orders, skipped, nil
}

func (r orderRecord) toModel() (model.Order, bool) {
	status := model.Status(r.Status)
	if r.ID == "" || !status.Valid() || len(r.Timeline) == 0 {
		return model.Order{}, false
	}

	timeline := make([]model.TimelineEntry, 0, len(r.Timeline))
	prev := -1
	for _, e := range r.Timeline {
		st := model.Status(e.Status)
		if !st.Valid() || st.Index() < prev {
			return model.Order{}, false
		}
		prev = st.Index()
		timeline = append(timeline, model.TimelineEntry{Status: st, At: e.At})
	}
	if timeline[0].Status != model.StatusProcessing || timeline[len(timeline)-1].Status != status {
		return model.Order{}, false
	}

	var rating *int
	if r.Rating != nil && *r.Rating >= 1 && *r.Rating <= 5 {
		v := *r.Rating
		rating = &v
	}

	return model.Order{
		ID:           r.ID,
		Name:         r.Name,
		Service:      model.ServiceKind(r.Service),
		ServiceLabel: r.ServiceLabel,
		Items:        r.Items,
		PickupDate:   r.PickupDate,
		DeliveryDate: r.DeliveryDate,
		Price:        r.Price,
		Status:       status,
		Timeline:     timeline,
		Rating:       rating,
	}, true
}

func encodeNotifications(items []model.Notification) ([]byte, error) {
	records := make([]notificationRecord, 0, len(items))
	for _, n := range items {
		records = append(records, notificationRecord{ID: n.ID, Message: n.Message, At: n.At})
	}
	return marshal(records)
}

func decodeNotifications(data []byte) ([]model.Notification, error) {
	var records []notificationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrPersistenceCorrupt, err)
	}
	items := make([]model.Notification, 0, len(records))
	for _, r := range records {
		items = append(items, model.Notification{ID: r.ID, Message: r.Message, At: r.At})
	}
	return items, nil
}
