package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/cleanup/internal/domain/errors"
	"github.com/polkiloo/cleanup/internal/domain/model"
)

var t0 = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func TestOrderStoreCreate(t *testing.T) {
	s := NewOrderStore()

	req := validRequest()
	req.Name = "  A  "
	o, err := s.Create(req, "id-1", t0)
	require.NoError(t, err)

	assert.Equal(t, "A", o.Name)
	assert.Equal(t, model.ServiceBasic, o.Service)
	assert.Equal(t, "Wash & Fold", o.ServiceLabel)
	assert.Equal(t, 10.00, o.Price)
	assert.Equal(t, model.StatusProcessing, o.Status)
	require.Len(t, o.Timeline, 1)
	assert.Equal(t, model.TimelineEntry{Status: model.StatusProcessing, At: t0}, o.Timeline[0])
	assert.Nil(t, o.Rating)

	express := validRequest()
	express.Service = "express"
	express.Items = 3
	o2, err := s.Create(express, "id-2", t0)
	require.NoError(t, err)
	assert.Equal(t, 9.00, o2.Price)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "id-2", list[0].ID, "newest order first")
	assert.Equal(t, "id-1", list[1].ID)
}

func TestOrderStoreCreateRejectsInvalidInput(t *testing.T) {
	s := NewOrderStore()
	req := validRequest()
	req.Items = 0

	_, err := s.Create(req, "id", t0)
	require.ErrorIs(t, err, domainErrors.ErrValidation)
	assert.Empty(t, s.List())
}

func TestOrderStoreAdvanceTo(t *testing.T) {
	s := NewOrderStore()
	_, err := s.Create(validRequest(), "id", t0)
	require.NoError(t, err)

	o, changed, err := s.AdvanceTo("id", model.StatusDried, t0.Add(time.Second))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, model.StatusDried, o.Status)
	require.Len(t, o.Timeline, 2, "absolute jump records a single entry")

	o, changed, err = s.AdvanceTo("id", model.StatusWashed, t0.Add(2*time.Second))
	require.NoError(t, err)
	assert.False(t, changed, "never regress")
	assert.Equal(t, model.StatusDried, o.Status)

	_, changed, err = s.AdvanceTo("id", model.StatusDried, t0.Add(2*time.Second))
	require.NoError(t, err)
	assert.False(t, changed)

	_, _, err = s.AdvanceTo("missing", model.StatusWashed, t0)
	require.ErrorIs(t, err, domainErrors.ErrNotFound)

	_, _, err = s.AdvanceTo("id", model.Status("lost"), t0)
	require.ErrorIs(t, err, domainErrors.ErrInvalidTransition)
}

func TestOrderStoreSetRating(t *testing.T) {
	s := NewOrderStore()
	_, err := s.Create(validRequest(), "id", t0)
	require.NoError(t, err)

	for _, bad := range []int{0, 6, -1} {
		_, err := s.SetRating("id", bad)
		require.ErrorIs(t, err, domainErrors.ErrInvalidRating)
	}
	o, _ := s.Get("id")
	assert.Nil(t, o.Rating)

	o, err = s.SetRating("id", 1)
	require.NoError(t, err)
	require.NotNil(t, o.Rating)
	assert.Equal(t, 1, *o.Rating)

	o, err = s.SetRating("id", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, *o.Rating, "rating can be overwritten")

	_, err = s.SetRating("missing", 3)
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestOrderStoreReturnsCopies(t *testing.T) {
	s := NewOrderStore()
	o, err := s.Create(validRequest(), "id", t0)
	require.NoError(t, err)

	o.Timeline[0].Status = model.StatusCompleted
	o.Status = model.StatusCompleted

	got, ok := s.Get("id")
	require.True(t, ok)
	assert.Equal(t, model.StatusProcessing, got.Status)
	assert.Equal(t, model.StatusProcessing, got.Timeline[0].Status)
}

func TestOrderStoreLatestAndRestore(t *testing.T) {
	s := NewOrderStore()
	_, ok := s.Latest()
	assert.False(t, ok)

	s.Restore([]model.Order{
		{ID: "b", Status: model.StatusWashed},
		{ID: "a", Status: model.StatusProcessing},
	})
	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, "b", latest.ID)
	assert.Len(t, s.List(), 2)
}
