package usecases

import (
	"context"

	"hotel-booking-service/internal/module/room/models/entity"
	"hotel-booking-service/internal/module/room/models/request"
	"hotel-booking-service/internal/module/room/models/response"
	"hotel-booking-service/internal/module/room/repositories"
	"hotel-booking-service/internal/pkg/errors"
	"hotel-booking-service/internal/pkg/helpers"
	"hotel-booking-service/internal/pkg/log"

	"go.elastic.co/apm"
	"go.uber.org/zap"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	FindAvailable(ctx context.Context, payload *request.FindAvailable) ([]response.Room, error)
	HasConflict(ctx context.Context, roomID int64, payload *request.CheckConflict) (response.Conflict, error)
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// FindAvailable lists rooms that can hold the guests for the whole stay.
func (u *usecase) FindAvailable(ctx context.Context, payload *request.FindAvailable) ([]response.Room, error) {
	span, ctx := apm.StartSpan(ctx, "RoomUsecase.FindAvailable", "usecase")
	defer span.End()

	stay, err := helpers.ParseDateRange(payload.CheckIn, payload.CheckOut)
	if err != nil {
		return nil, err
	}
	if payload.Guests < 1 {
		return nil, errors.BadRequest("guest count must be at least 1")
	}

	rooms, err := u.repo.FindAvailable(ctx, stay, payload.Guests)
	if err != nil {
		return nil, err
	}

	u.log.Debug(ctx, "available rooms",
		zap.String("checkin", payload.CheckIn),
		zap.String("checkout", payload.CheckOut),
		zap.Int("guests", payload.Guests),
		zap.Int("count", len(rooms)),
	)

	resp := make([]response.Room, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, ToResponse(room))
	}
	return resp, nil
}

func (u *usecase) HasConflict(ctx context.Context, roomID int64, payload *request.CheckConflict) (response.Conflict, error) {
	stay, err := helpers.ParseDateRange(payload.CheckIn, payload.CheckOut)
	if err != nil {
		return response.Conflict{}, err
	}

	if _, err := u.repo.FindRoomByID(ctx, roomID); err != nil {
		return response.Conflict{}, err
	}

	conflict, err := u.repo.HasConflict(ctx, roomID, stay, 0)
	if err != nil {
		return response.Conflict{}, err
	}

	return response.Conflict{
		RoomID:      roomID,
		CheckIn:     payload.CheckIn,
		CheckOut:    payload.CheckOut,
		HasConflict: conflict,
	}, nil
}

func ToResponse(room entity.Room) response.Room {
	resp := response.Room{
		ID:           room.ID,
		RoomNumber:   room.RoomNumber,
		RoomType:     room.RoomTypeName,
		Capacity:     room.Capacity,
		Status:       string(room.Status),
		Price:        room.Price,
		PointsEarned: room.PointsEarned,
	}
	if room.Floor.Valid {
		floor := room.Floor.Int64
		resp.Floor = &floor
	}
	return resp
}
