package postgres

import (
	"context"
	"time"

	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/repository"
	"github.com/nadoran78/mytable/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reservationRepository implements the repository.ReservationRepository interface.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{
		db: db,
	}
}

// withProjection loads the customer uid and the store owner used by notices.
func withProjection(q *gorm.DB) *gorm.DB {
	return q.Preload("Customer").Preload("Store.Partner")
}

// Create persists a new reservation at version 1.
func (repo *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	if reservation.Version == 0 {
		reservation.Version = 1
	}
	reservationM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).Omit("Customer", "Store").Create(reservationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrReservationConflict.WrapMessage("reservation uid already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("invalid customer or store reference")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("missing required reservation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reservation")
	}

	reservation.ID = reservationM.ID
	reservation.CreatedAt = reservationM.CreatedAt
	reservation.UpdatedAt = reservationM.UpdatedAt

	return nil
}

// FindByUID retrieves a reservation with its store projection.
func (repo *reservationRepository) FindByUID(ctx context.Context, uid string) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := withProjection(repo.db.WithContext(ctx)).
		Where("uid = ?", uid).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by uid")
	}

	return toReservationDomain(&reservationM), nil
}

// Save writes the mutable fields guarded by the version column.
func (repo *reservationRepository) Save(ctx context.Context, reservation *entity.Reservation) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("id = ? AND version = ?", reservation.ID, reservation.Version).
		Updates(map[string]any{
			"store_id":            reservation.StoreID,
			"date_time":           reservation.DateTime,
			"under_name":          reservation.UnderName,
			"phone":               reservation.Phone,
			"special_instruction": reservation.SpecialInstruction,
			"number_of_people":    reservation.NumberOfPeople,
			"status":              string(reservation.Status),
			"version":             gorm.Expr("version + 1"),
			"updated_at":          now,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save reservation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStaleReservation
	}

	reservation.Version++
	reservation.UpdatedAt = now

	return nil
}

// FindByCustomer lists a customer's reservations ordered by dateTime.
func (repo *reservationRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, page entity.PageRequest) (entity.Page[*entity.Reservation], error) {
	base := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("customer_id = ?", customerID)

	return repo.findPage(base, page, "failed to find reservations by customer")
}

// FindByStoreBetween lists a store's reservations inside the inclusive range.
func (repo *reservationRepository) FindByStoreBetween(ctx context.Context, storeID uuid.UUID, from, to time.Time, page entity.PageRequest) (entity.Page[*entity.Reservation], error) {
	base := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("store_id = ? AND date_time >= ? AND date_time <= ?", storeID, from, to)

	return repo.findPage(base, page, "failed to find reservations by store")
}

// FindAllByUnderNameAndPhoneAndStoreAndStatus is the kiosk lookup.
func (repo *reservationRepository) FindAllByUnderNameAndPhoneAndStoreAndStatus(
	ctx context.Context,
	underName, phone string,
	storeID uuid.UUID,
	status entity.ReservationStatus,
	page entity.PageRequest,
) (entity.Page[*entity.Reservation], error) {
	base := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("store_id = ? AND under_name = ? AND phone = ? AND status = ?", storeID, underName, phone, string(status))

	return repo.findPage(base, page, "failed to search reservations by guest")
}

// FindAllByStatusAndDateTimeBefore returns every reservation in status dated strictly before the instant.
func (repo *reservationRepository) FindAllByStatusAndDateTimeBefore(ctx context.Context, status entity.ReservationStatus, before time.Time) ([]*entity.Reservation, error) {
	var reservationModels []*model.ReservationModel

	if err := withProjection(repo.db.WithContext(ctx)).
		Where("status = ? AND date_time < ?", string(status), before).
		Order("date_time ASC").
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reservations by status")
	}

	return mapModels(reservationModels, toReservationDomain), nil
}

// ExistsByCustomerAndStore reports whether the customer ever booked the store.
func (repo *reservationRepository) ExistsByCustomerAndStore(ctx context.Context, customerID, storeID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("customer_id = ? AND store_id = ?", customerID, storeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check reservation history")
	}

	return count > 0, nil
}

// Delete removes the reservation.
func (repo *reservationRepository) Delete(ctx context.Context, reservation *entity.Reservation) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", reservation.ID).
		Delete(&model.ReservationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete reservation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

func (repo *reservationRepository) findPage(base *gorm.DB, page entity.PageRequest, msg string) (entity.Page[*entity.Reservation], error) {
	rows, total, err := paginate[model.ReservationModel](base, page, func(q *gorm.DB) *gorm.DB {
		return withProjection(q).Order("date_time ASC, created_at ASC")
	})
	if err != nil {
		return entity.Page[*entity.Reservation]{}, errors.Wrap(err, msg)
	}

	return entity.NewPage(mapModels(rows, toReservationDomain), page, total), nil
}

// --- Mapper Functions ---

func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	if data == nil {
		return nil
	}

	reservation := &entity.Reservation{
		ID:                 data.ID,
		UID:                data.UID,
		CustomerID:         data.CustomerID,
		StoreID:            data.StoreID,
		DateTime:           data.DateTime,
		UnderName:          data.UnderName,
		Phone:              data.Phone,
		SpecialInstruction: data.SpecialInstruction,
		NumberOfPeople:     data.NumberOfPeople,
		Status:             entity.ReservationStatus(data.Status),
		Version:            data.Version,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	if data.Customer != nil {
		reservation.CustomerUID = data.Customer.UID
	}

	if data.Store != nil {
		reservation.Storename = data.Store.Storename
		if data.Store.Partner != nil {
			reservation.PartnerUID = data.Store.Partner.UID
			reservation.PartnerPhone = data.Store.Partner.Phone
		}
	}

	return reservation
}

func fromReservationDomain(data *entity.Reservation) *model.ReservationModel {
	if data == nil {
		return nil
	}

	return &model.ReservationModel{
		ID:                 data.ID,
		UID:                data.UID,
		CustomerID:         data.CustomerID,
		StoreID:            data.StoreID,
		DateTime:           data.DateTime,
		UnderName:          data.UnderName,
		Phone:              data.Phone,
		SpecialInstruction: data.SpecialInstruction,
		NumberOfPeople:     data.NumberOfPeople,
		Status:             string(data.Status),
		Version:            data.Version,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
