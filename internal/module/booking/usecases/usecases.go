package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"hotel-booking-service/internal/module/booking/models/entity"
	"hotel-booking-service/internal/module/booking/models/event"
	"hotel-booking-service/internal/module/booking/models/request"
	"hotel-booking-service/internal/module/booking/models/response"
	"hotel-booking-service/internal/module/booking/repositories"
	roomEntity "hotel-booking-service/internal/module/room/models/entity"
	roomRepositories "hotel-booking-service/internal/module/room/repositories"
	"hotel-booking-service/internal/pkg/database"
	"hotel-booking-service/internal/pkg/errors"
	"hotel-booking-service/internal/pkg/helpers"
	"hotel-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

const maxCodeAttempts = 5

type usecase struct {
	repo     repositories.Repositories
	roomRepo roomRepositories.Repositories
	tr       database.Transactor
	log      log.Logger
	publish  message.Publisher
	now      func() time.Time
}

type Usecase interface {
	Create(ctx context.Context, payload *request.CreateBooking) (response.Booking, error)
	CreateFromPublicRequest(ctx context.Context, payload *request.PublicBooking, identity string) (response.BookingSummary, error)
	UpdateStatus(ctx context.Context, bookingID int64, payload *request.UpdateStatus) (response.Booking, error)
	Delete(ctx context.Context, bookingID int64) error
	Update(ctx context.Context, bookingID int64, payload *request.UpdateBooking) (response.Booking, error)
	GetBooking(ctx context.Context, bookingID int64) (response.Booking, error)
	CustomerHistory(ctx context.Context, customerID int64) ([]response.History, error)
	DeletedBookings(ctx context.Context) ([]response.Booking, error)
}

func New(repo repositories.Repositories, roomRepo roomRepositories.Repositories, tr database.Transactor, log log.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:     repo,
		roomRepo: roomRepo,
		tr:       tr,
		log:      log,
		publish:  publish,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create books a room for an existing customer. The booking starts PENDING
// and the room keeps its status until the booking is confirmed.
func (u *usecase) Create(ctx context.Context, payload *request.CreateBooking) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "BookingUsecase.Create", "usecase")
	defer span.End()

	if payload.CustomerID <= 0 || payload.RoomID <= 0 {
		return response.Booking{}, errors.BadRequest("customer_id and room_id are required")
	}
	stay, err := helpers.ParseDateRange(payload.CheckIn, payload.CheckOut)
	if err != nil {
		return response.Booking{}, err
	}
	adults, err := guestCounts(payload.Adults, payload.Children)
	if err != nil {
		return response.Booking{}, err
	}

	unlock, err := u.roomRepo.AcquireRoomLock(ctx, payload.RoomID)
	if err != nil {
		return response.Booking{}, err
	}
	defer unlock()

	var booking entity.Booking
	err = u.tr.WithTransaction(ctx, func(ctx context.Context) error {
		customer, err := u.repo.FindCustomerByID(ctx, payload.CustomerID)
		if err != nil {
			return err
		}

		room, err := u.roomRepo.LockRoom(ctx, payload.RoomID)
		if err != nil {
			return err
		}
		if room.Status != roomEntity.RoomAvailable {
			return errors.Conflict(fmt.Sprintf("room %s is not available", room.RoomNumber))
		}
		if err := checkCapacity(room, adults, payload.Children); err != nil {
			return err
		}
		if err := u.ensureNoConflict(ctx, room.ID, stay, 0); err != nil {
			return err
		}

		code, err := u.newConfirmationCode(ctx)
		if err != nil {
			return err
		}

		booking = entity.Booking{
			Code:             code,
			CustomerID:       customer.ID,
			RoomID:           room.ID,
			CustomerFullName: firstNonEmpty(payload.CustomerFullName, customer.FullName),
			CustomerPhone:    firstNonEmpty(payload.Phone, customer.Phone.String),
			CheckInDate:      stay.CheckIn,
			CheckOutDate:     stay.CheckOut,
			PricePerNight:    room.Price,
			TotalPrice:       entity.Total(room.Price, stay),
			Adults:           adults,
			Children:         payload.Children,
			Status:           entity.StatusPending,
			RoomNumber:       room.RoomNumber,
			RoomTypeID:       room.RoomTypeID,
			RoomTypeName:     room.RoomTypeName,
		}
		return u.repo.InsertBooking(ctx, &booking)
	})
	if err != nil {
		return response.Booking{}, err
	}

	u.log.Info(ctx, "booking created",
		zap.Int64("booking_id", booking.ID),
		zap.String("code", booking.Code),
		zap.Int64("room_id", booking.RoomID),
	)

	return ToResponse(booking), nil
}

// CreateFromPublicRequest books a room for a guest. identity is the email of
// the authenticated customer, empty for anonymous requests.
func (u *usecase) CreateFromPublicRequest(ctx context.Context, payload *request.PublicBooking, identity string) (response.BookingSummary, error) {
	span, ctx := apm.StartSpan(ctx, "BookingUsecase.CreateFromPublicRequest", "usecase")
	defer span.End()

	stay, err := helpers.ParseDateRange(payload.CheckIn, payload.CheckOut)
	if err != nil {
		return response.BookingSummary{}, err
	}
	adults, err := guestCounts(payload.Adults, payload.Children)
	if err != nil {
		return response.BookingSummary{}, err
	}
	if identity == "" && (payload.CustomerIDNumber == "" || payload.CustomerEmail == "" || payload.CustomerName == "") {
		return response.BookingSummary{}, errors.BadRequest("customer name, email and id number are required")
	}

	unlock, err := u.roomRepo.AcquireRoomLock(ctx, payload.RoomID)
	if err != nil {
		return response.BookingSummary{}, err
	}
	defer unlock()

	var booking entity.Booking
	err = u.tr.WithTransaction(ctx, func(ctx context.Context) error {
		room, err := u.roomRepo.LockRoom(ctx, payload.RoomID)
		if err != nil {
			return err
		}
		if room.Status == roomEntity.RoomOutOfService {
			return errors.Conflict(fmt.Sprintf("room %s is out of service", room.RoomNumber))
		}
		if err := checkCapacity(room, adults, payload.Children); err != nil {
			return err
		}
		if err := u.ensureNoConflict(ctx, room.ID, stay, 0); err != nil {
			return err
		}

		customer, err := u.resolveCustomer(ctx, payload, identity)
		if err != nil {
			return err
		}

		code, err := u.newConfirmationCode(ctx)
		if err != nil {
			return err
		}

		booking = entity.Booking{
			Code:             code,
			CustomerID:       customer.ID,
			RoomID:           room.ID,
			CustomerFullName: customer.FullName,
			CustomerPhone:    customer.Phone.String,
			CheckInDate:      stay.CheckIn,
			CheckOutDate:     stay.CheckOut,
			PricePerNight:    room.Price,
			TotalPrice:       entity.Total(room.Price, stay),
			Adults:           adults,
			Children:         payload.Children,
			Status:           entity.StatusPending,
		}
		return u.repo.InsertBooking(ctx, &booking)
	})
	if err != nil {
		return response.BookingSummary{}, err
	}

	u.log.Info(ctx, "public booking created",
		zap.Int64("booking_id", booking.ID),
		zap.String("code", booking.Code),
		zap.Int64("customer_id", booking.CustomerID),
	)

	return response.BookingSummary{
		Code:   booking.Code,
		Status: string(booking.Status),
		Total:  booking.TotalPrice,
	}, nil
}

// resolveCustomer picks the booking's customer: the token identity first,
// then an id number match, then an email match (which must not belong to a
// different id number), and finally a new guest on the lowest tier.
func (u *usecase) resolveCustomer(ctx context.Context, payload *request.PublicBooking, identity string) (entity.Customer, error) {
	if identity != "" {
		customer, err := u.repo.FindCustomerByEmail(ctx, identity)
		if errors.Is(err, errors.CodeNotFound) {
			return entity.Customer{}, errors.UnauthorizedError("customer token does not match any customer")
		}
		return customer, err
	}

	customer, err := u.repo.FindCustomerByIDNumber(ctx, payload.CustomerIDNumber)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, errors.CodeNotFound) {
		return entity.Customer{}, err
	}

	_, err = u.repo.FindCustomerByEmail(ctx, payload.CustomerEmail)
	if err == nil {
		return entity.Customer{}, errors.Conflict("email is already registered with a different id number")
	}
	if !errors.Is(err, errors.CodeNotFound) {
		return entity.Customer{}, err
	}

	tierID, err := u.repo.FindLowestTierID(ctx)
	if err != nil {
		return entity.Customer{}, err
	}

	customer = entity.Customer{
		FullName:      payload.CustomerName,
		IDNumber:      payload.CustomerIDNumber,
		Email:         payload.CustomerEmail,
		Phone:         nullString(payload.CustomerPhone),
		Address:       nullString(payload.CustomerAddress),
		CurrentPoints: 0,
		LoyaltyTierID: tierID,
	}
	if err := u.repo.InsertCustomer(ctx, &customer); err != nil {
		return entity.Customer{}, err
	}

	u.log.Info(ctx, "guest customer created", zap.Int64("customer_id", customer.ID))
	return customer, nil
}

// UpdateStatus moves a booking to a new status and reconciles its room in
// the same transaction. A checkout schedules the delayed loyalty task before
// commit and publishes the CheckedOut event after it.
func (u *usecase) UpdateStatus(ctx context.Context, bookingID int64, payload *request.UpdateStatus) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "BookingUsecase.UpdateStatus", "usecase")
	defer span.End()

	next, err := entity.ParseBookingStatus(payload.Status)
	if err != nil {
		return response.Booking{}, err
	}

	var (
		booking    entity.Booking
		checkedOut bool
		scheduled  bool
	)
	err = u.tr.WithTransaction(ctx, func(ctx context.Context) error {
		booking, err = u.repo.FindBookingForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		if booking.Status.IsTerminal() {
			if booking.Status == next {
				return nil
			}
			return errors.StateViolation(fmt.Sprintf("booking %d is %s and cannot move to %s", booking.ID, booking.Status, next))
		}

		if err := u.reconcileRoom(ctx, booking.RoomID, next); err != nil {
			return err
		}

		now := u.now()
		if next == entity.StatusCheckedIn && !booking.ActualCheckinAt.Valid {
			booking.ActualCheckinAt = sql.NullTime{Time: now, Valid: true}
		}
		if next == entity.StatusCheckedOut && !booking.ActualCheckoutAt.Valid {
			booking.ActualCheckoutAt = sql.NullTime{Time: now, Valid: true}
		}

		checkedOut = next == entity.StatusCheckedOut
		booking.Status = next
		if err := u.repo.UpdateBooking(ctx, booking); err != nil {
			return err
		}

		if checkedOut {
			scheduled = u.scheduleCheckout(ctx, booking)
		}
		return nil
	})
	if err != nil {
		return response.Booking{}, err
	}

	u.log.Info(ctx, "booking status updated",
		zap.Int64("booking_id", booking.ID),
		zap.String("status", string(booking.Status)),
	)

	if checkedOut {
		u.publishCheckedOut(ctx, booking, scheduled)
	}

	return ToResponse(booking), nil
}

// reconcileRoom writes the room status a transition into next requires,
// skipping the write when the room already has it.
func (u *usecase) reconcileRoom(ctx context.Context, roomID int64, next entity.BookingStatus) error {
	room, err := u.roomRepo.LockRoom(ctx, roomID)
	if err != nil {
		return err
	}

	target := entity.TargetRoomStatus(next, room.Status)
	if target == room.Status {
		return nil
	}

	if err := u.roomRepo.UpdateRoomStatus(ctx, room.ID, target); err != nil {
		return err
	}
	u.log.Info(ctx, "room status reconciled",
		zap.Int64("room_id", room.ID),
		zap.String("from", string(room.Status)),
		zap.String("to", string(target)),
	)
	return nil
}

// scheduleCheckout enqueues the delayed loyalty task for a checkout. It runs
// inside the checkout transaction so a crash after commit cannot lose the
// accrual; the loyalty side skips bookings whose checkout never committed.
func (u *usecase) scheduleCheckout(ctx context.Context, booking entity.Booking) bool {
	taskID, err := u.repo.ScheduleCheckoutRetry(ctx, checkedOutEvent(booking))
	if err != nil {
		u.log.Warn(ctx, "error schedule loyalty task, relying on the checkout event",
			zap.Int64("booking_id", booking.ID),
			zap.Error(err),
		)
		return false
	}
	u.log.Info(ctx, "loyalty task scheduled",
		zap.Int64("booking_id", booking.ID),
		zap.String("task_id", taskID),
	)
	return true
}

// publishCheckedOut hands the committed checkout to loyalty processing.
// Failures here are logged and never undo the checkout.
func (u *usecase) publishCheckedOut(ctx context.Context, booking entity.Booking, scheduled bool) {
	payload, err := json.Marshal(checkedOutEvent(booking))
	if err == nil {
		err = u.publish.Publish(event.TopicCheckedOut, message.NewMessage(watermill.NewUUID(), payload))
	}
	if err == nil {
		return
	}

	u.log.Error(ctx, "loyalty automation failure",
		zap.Int64("booking_id", booking.ID),
		zap.Error(errors.AutomationFailure(err.Error())),
	)
	if !scheduled {
		u.log.Error(ctx, "loyalty automation needs manual reconciliation", zap.Int64("booking_id", booking.ID))
		return
	}
	u.log.Warn(ctx, "loyalty processing left to the scheduled task", zap.Int64("booking_id", booking.ID))
}

func checkedOutEvent(booking entity.Booking) event.CheckedOut {
	return event.CheckedOut{
		BookingID:        booking.ID,
		ConfirmationCode: booking.Code,
		CustomerID:       booking.CustomerID,
		RoomID:           booking.RoomID,
		RoomTypeID:       booking.RoomTypeID,
		CheckedOutAt:     booking.ActualCheckoutAt.Time,
	}
}

// Delete soft-deletes a booking. Unless the booking is checked out, a
// RESERVED or OCCUPIED room is released.
func (u *usecase) Delete(ctx context.Context, bookingID int64) error {
	span, ctx := apm.StartSpan(ctx, "BookingUsecase.Delete", "usecase")
	defer span.End()

	return u.tr.WithTransaction(ctx, func(ctx context.Context) error {
		booking, err := u.repo.FindBookingForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		if booking.Status != entity.StatusCheckedOut {
			room, err := u.roomRepo.LockRoom(ctx, booking.RoomID)
			if err != nil {
				return err
			}
			if room.Status == roomEntity.RoomReserved || room.Status == roomEntity.RoomOccupied {
				if err := u.roomRepo.UpdateRoomStatus(ctx, room.ID, roomEntity.RoomAvailable); err != nil {
					return err
				}
				u.log.Info(ctx, "room released by booking deletion",
					zap.Int64("booking_id", booking.ID),
					zap.Int64("room_id", room.ID),
				)
			}
		}

		return u.repo.SoftDeleteBooking(ctx, booking.ID)
	})
}

// Update edits a non-terminal booking. Moving to another room snapshots that
// room's price and carries the booking's hold on the room across.
func (u *usecase) Update(ctx context.Context, bookingID int64, payload *request.UpdateBooking) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "BookingUsecase.Update", "usecase")
	defer span.End()

	if payload.RoomID > 0 {
		unlock, err := u.roomRepo.AcquireRoomLock(ctx, payload.RoomID)
		if err != nil {
			return response.Booking{}, err
		}
		defer unlock()
	}

	var booking entity.Booking
	err := u.tr.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		booking, err = u.repo.FindBookingForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking.Status.IsTerminal() {
			return errors.StateViolation(fmt.Sprintf("booking %d is %s and cannot be changed", booking.ID, booking.Status))
		}

		if payload.CustomerID > 0 && payload.CustomerID != booking.CustomerID {
			customer, err := u.repo.FindCustomerByID(ctx, payload.CustomerID)
			if err != nil {
				return err
			}
			booking.CustomerID = customer.ID
			booking.CustomerFullName = firstNonEmpty(payload.CustomerFullName, customer.FullName)
			booking.CustomerPhone = firstNonEmpty(payload.Phone, customer.Phone.String)
		} else {
			booking.CustomerFullName = firstNonEmpty(payload.CustomerFullName, booking.CustomerFullName)
			booking.CustomerPhone = firstNonEmpty(payload.Phone, booking.CustomerPhone)
		}

		stay, datesChanged, err := changedStay(booking, payload)
		if err != nil {
			return err
		}
		booking.CheckInDate, booking.CheckOutDate = stay.CheckIn, stay.CheckOut

		adults, children := booking.Adults, booking.Children
		if payload.Adults != nil {
			adults = *payload.Adults
		}
		if payload.Children != nil {
			children = *payload.Children
		}
		if adults, err = guestCounts(adults, children); err != nil {
			return err
		}
		booking.Adults, booking.Children = adults, children

		roomChanged := payload.RoomID > 0 && payload.RoomID != booking.RoomID
		room, oldRoom, err := u.lockRooms(ctx, booking, payload.RoomID, roomChanged)
		if err != nil {
			return err
		}
		if roomChanged {
			if room.Status == roomEntity.RoomOutOfService {
				return errors.Conflict(fmt.Sprintf("room %s is out of service", room.RoomNumber))
			}
			if err := u.moveRoomHold(ctx, booking, oldRoom, room); err != nil {
				return err
			}
			booking.RoomID = room.ID
			booking.PricePerNight = room.Price
			booking.RoomNumber, booking.RoomTypeID, booking.RoomTypeName = room.RoomNumber, room.RoomTypeID, room.RoomTypeName
		}
		if err := checkCapacity(room, booking.Adults, booking.Children); err != nil {
			return err
		}
		if roomChanged || datesChanged {
			if err := u.ensureNoConflict(ctx, room.ID, stay, booking.ID); err != nil {
				return err
			}
		}

		booking.TotalPrice = entity.Total(booking.PricePerNight, stay)
		return u.repo.UpdateBooking(ctx, booking)
	})
	if err != nil {
		return response.Booking{}, err
	}

	u.log.Info(ctx, "booking updated", zap.Int64("booking_id", booking.ID))
	return ToResponse(booking), nil
}

// lockRooms locks the room the booking ends up in. When the booking moves and
// holds its current room, both rooms are locked in ascending id order so two
// swaps between the same rooms cannot deadlock.
func (u *usecase) lockRooms(ctx context.Context, booking entity.Booking, newRoomID int64, roomChanged bool) (roomEntity.Room, roomEntity.Room, error) {
	if !roomChanged {
		room, err := u.roomRepo.LockRoom(ctx, booking.RoomID)
		return room, roomEntity.Room{}, err
	}
	if !holdsRoom(booking.Status) {
		room, err := u.roomRepo.LockRoom(ctx, newRoomID)
		return room, roomEntity.Room{}, err
	}

	ids := []int64{booking.RoomID, newRoomID}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	locked := make(map[int64]roomEntity.Room, len(ids))
	for _, id := range ids {
		room, err := u.roomRepo.LockRoom(ctx, id)
		if err != nil {
			return roomEntity.Room{}, roomEntity.Room{}, err
		}
		locked[id] = room
	}
	return locked[newRoomID], locked[booking.RoomID], nil
}

// moveRoomHold releases the old room and claims the new one when the
// booking's status already drives a room status. Both rooms are locked.
func (u *usecase) moveRoomHold(ctx context.Context, booking entity.Booking, oldRoom, newRoom roomEntity.Room) error {
	if !holdsRoom(booking.Status) {
		return nil
	}
	if newRoom.Status != roomEntity.RoomAvailable {
		return errors.Conflict(fmt.Sprintf("room %s is not available", newRoom.RoomNumber))
	}

	if oldRoom.Status == roomEntity.RoomReserved || oldRoom.Status == roomEntity.RoomOccupied {
		if err := u.roomRepo.UpdateRoomStatus(ctx, oldRoom.ID, roomEntity.RoomAvailable); err != nil {
			return err
		}
	}

	target := entity.TargetRoomStatus(booking.Status, newRoom.Status)
	if target == newRoom.Status {
		return nil
	}
	return u.roomRepo.UpdateRoomStatus(ctx, newRoom.ID, target)
}

// GetBooking returns a booking with its derived nights and amount paid.
func (u *usecase) GetBooking(ctx context.Context, bookingID int64) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	paid, err := u.repo.SumPayments(ctx, booking.ID)
	if err != nil {
		return response.Booking{}, err
	}

	resp := ToResponse(booking)
	resp.AmountPaid = paid
	return resp, nil
}

// CustomerHistory lists a customer's bookings, newest check-in first.
func (u *usecase) CustomerHistory(ctx context.Context, customerID int64) ([]response.History, error) {
	if _, err := u.repo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}

	bookings, err := u.repo.FindBookingsByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	history := make([]response.History, 0, len(bookings))
	for _, b := range bookings {
		history = append(history, response.History{
			Code:       b.Code,
			RoomNumber: b.RoomNumber,
			RoomType:   b.RoomTypeName,
			CheckIn:    b.CheckInDate.Format(helpers.DateLayout),
			CheckOut:   b.CheckOutDate.Format(helpers.DateLayout),
			Total:      b.TotalPrice,
			Status:     string(b.Status),
		})
	}
	return history, nil
}

// DeletedBookings lists soft-deleted bookings, most recently deleted first.
func (u *usecase) DeletedBookings(ctx context.Context) ([]response.Booking, error) {
	bookings, err := u.repo.FindDeletedBookings(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Booking, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToResponse(b))
	}
	return resp, nil
}

func (u *usecase) ensureNoConflict(ctx context.Context, roomID int64, stay helpers.DateRange, excludeBookingID int64) error {
	conflict, err := u.roomRepo.HasConflict(ctx, roomID, stay, excludeBookingID)
	if err != nil {
		return err
	}
	if conflict {
		return errors.Conflict("room is already booked for these dates, please choose another room or dates")
	}
	return nil
}

func (u *usecase) newConfirmationCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := helpers.GenerateConfirmationCode()
		exists, err := u.repo.ConfirmationCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.InternalServerError("could not generate a unique confirmation code")
}

// changedStay applies the requested dates over the booking's current stay.
func changedStay(booking entity.Booking, payload *request.UpdateBooking) (helpers.DateRange, bool, error) {
	stay := booking.Stay()
	if payload.CheckIn == "" && payload.CheckOut == "" {
		return stay, false, nil
	}

	checkIn, checkOut := stay.CheckIn, stay.CheckOut
	if payload.CheckIn != "" {
		t, err := helpers.ParseDate(payload.CheckIn)
		if err != nil {
			return helpers.DateRange{}, false, err
		}
		checkIn = t
	}
	if payload.CheckOut != "" {
		t, err := helpers.ParseDate(payload.CheckOut)
		if err != nil {
			return helpers.DateRange{}, false, err
		}
		checkOut = t
	}

	next := helpers.NewDateRange(checkIn, checkOut)
	if err := next.Validate(); err != nil {
		return helpers.DateRange{}, false, err
	}
	return next, !next.CheckIn.Equal(stay.CheckIn) || !next.CheckOut.Equal(stay.CheckOut), nil
}

// guestCounts returns the adult count to store; fewer than one adult means one.
func guestCounts(adults, children int) (int, error) {
	if children < 0 {
		return 0, errors.BadRequest("children must not be negative")
	}
	if adults <= 0 {
		adults = 1
	}
	return adults, nil
}

func holdsRoom(status entity.BookingStatus) bool {
	return status == entity.StatusConfirmed || status == entity.StatusCheckedIn
}

func checkCapacity(room roomEntity.Room, adults, children int) error {
	if adults+children > room.Capacity {
		return errors.BadRequest(fmt.Sprintf("room %s holds at most %d guests", room.RoomNumber, room.Capacity))
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func ToResponse(b entity.Booking) response.Booking {
	resp := response.Booking{
		ID:            b.ID,
		Code:          b.Code,
		Status:        string(b.Status),
		CustomerID:    b.CustomerID,
		Customer:      b.CustomerFullName,
		Phone:         b.CustomerPhone,
		RoomID:        b.RoomID,
		RoomNumber:    b.RoomNumber,
		RoomType:      b.RoomTypeName,
		CheckIn:       b.CheckInDate.Format(helpers.DateLayout),
		CheckOut:      b.CheckOutDate.Format(helpers.DateLayout),
		Nights:        b.Nights(),
		PricePerNight: b.PricePerNight,
		Total:         b.TotalPrice,
		Adults:        b.Adults,
		Children:      b.Children,
		CreatedAt:     b.CreatedAt,
	}
	if b.ActualCheckinAt.Valid {
		t := b.ActualCheckinAt.Time
		resp.ActualCheckinAt = &t
	}
	if b.ActualCheckoutAt.Valid {
		t := b.ActualCheckoutAt.Time
		resp.ActualCheckoutAt = &t
	}
	if b.DeletedAt.Valid {
		t := b.DeletedAt.Time
		resp.DeletedAt = &t
	}
	return resp
}
