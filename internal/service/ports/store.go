package ports

import (
	"context"

	"github.com/stpnv0/HotelDesk/internal/domain"
)

type BookingStore interface {
	Load(ctx context.Context) ([]*domain.Booking, error)
	Save(ctx context.Context, bookings []*domain.Booking) error
}
