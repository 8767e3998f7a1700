package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"luxe/infras/otel"
	"luxe/infras/postgres"
	"luxe/internal/domains/booking/model"
	"luxe/shared/constant"
	gDto "luxe/shared/dto"
	gRepo "luxe/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FilterOverlapping matches confirmed bookings intersecting the closed date
// range [checkIn, checkOut]. Pass roomID <= 0 to match every room.
func FilterOverlapping(roomID int, checkIn, checkOut time.Time) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldStatus,
			Value:    model.StatusConfirmed,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "overlap_check_out",
			Field:    model.FieldCheckIn,
			Value:    checkOut.Format(constant.StayDateFormat),
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "overlap_check_in",
			Field:    model.FieldCheckOut,
			Value:    checkIn.Format(constant.StayDateFormat),
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		},
	}

	if roomID > 0 {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Value:    roomID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

// FilterConfirmedByRoom matches every confirmed booking of one room.
func FilterConfirmedByRoom(roomID int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusConfirmed,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

// FilterConfirmed matches every confirmed booking.
func FilterConfirmed() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusConfirmed,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
