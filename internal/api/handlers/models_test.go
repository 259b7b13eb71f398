package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

func TestFromDomainReservation(t *testing.T) {
	cancelled := time.Date(2022, 8, 3, 12, 0, 0, 0, time.UTC)
	r := &domain.Reservation{
		ID:         3,
		CreatedAt:  time.Date(2022, 8, 1, 10, 0, 0, 0, time.UTC),
		DeletedAt:  &cancelled,
		GuestName:  "John",
		GuestEmail: "john@example.com",
		Arrival:    time.Date(2022, 8, 10, 0, 0, 0, 0, time.UTC),
		Departure:  time.Date(2022, 8, 12, 0, 0, 0, 0, time.UTC),
	}

	resp := FromDomainReservation(r)

	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "2022-08-01T10:00:00Z", resp.Created)
	assert.Nil(t, resp.Updated)
	if assert.NotNil(t, resp.Deleted) {
		assert.Equal(t, "2022-08-03T12:00:00Z", *resp.Deleted)
	}
	assert.Equal(t, "John", resp.Name)
	assert.Equal(t, "john@example.com", resp.Email)
	assert.Equal(t, "2022-08-10", resp.Arrival)
	assert.Equal(t, "2022-08-12", resp.Departure)
}
