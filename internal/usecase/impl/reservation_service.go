package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nadoran78/mytable/config"
	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	"github.com/nadoran78/mytable/internal/domain/constants"
	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/policy"
	"github.com/nadoran78/mytable/internal/domain/repository"
	"github.com/nadoran78/mytable/internal/domain/service"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultBookingWindowMonths = 1
	defaultArrivalWindow       = 10 * time.Minute

	partnerMessageFormat = "%s에 예약이 접수(수정)되었습니다.\n" +
		"- 예약일자 : %s\n" +
		"- 예약자명 : %s\n" +
		"예약 상세내용 바로가기\n" +
		"> %s/partner/reservation/detail?uid=%s"

	customerMessageFormat = "%s에 예약이 %s되었습니다.\n" +
		"- 예약일자 : %s\n" +
		"- 예약자명 : %s\n" +
		"예약 상세내용 바로가기\n" +
		"> %s/customer/reservation/detail?uid=%s"
)

// reservationService implements the reservation lifecycle for customers, partners and the sweep job.
type reservationService struct {
	txManager       repository.TransactionManager
	reservationRepo repository.ReservationRepository
	storeRepo       repository.StoreRepository
	accountRepo     repository.AccountRepository
	dispatcher      service.NotificationDispatcher
	qrCode          service.QRCodeService
	clock           service.Clock
	transitions     policy.Transitions
	windowMonths    int
	arrivalWindow   time.Duration
	location        *time.Location
	baseURL         string
	logger          *slog.Logger
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ReservationRepo repository.ReservationRepository
	StoreRepo       repository.StoreRepository
	AccountRepo     repository.AccountRepository
	Dispatcher      service.NotificationDispatcher
	QRCode          service.QRCodeService
	Clock           service.Clock
	Config          *config.Config
	Logger          *slog.Logger
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	srv := &reservationService{
		txManager:       params.TxManager,
		reservationRepo: params.ReservationRepo,
		storeRepo:       params.StoreRepo,
		accountRepo:     params.AccountRepo,
		dispatcher:      params.Dispatcher,
		qrCode:          params.QRCode,
		clock:           params.Clock,
		windowMonths:    defaultBookingWindowMonths,
		arrivalWindow:   defaultArrivalWindow,
		location:        time.Local,
		logger:          params.Logger,
	}

	if params.Config != nil {
		if rc := params.Config.Reservation; rc != nil {
			if rc.BookingWindowMonths > 0 {
				srv.windowMonths = rc.BookingWindowMonths
			}
			if rc.ArrivalWindow > 0 {
				srv.arrivalWindow = rc.ArrivalWindow
			}
			srv.transitions = policy.Transitions{Strict: rc.StrictTransitions}
			srv.location = rc.Location()
		}
		if nc := params.Config.Notification; nc != nil {
			srv.baseURL = strings.TrimRight(nc.BaseURL, "/")
		}
	}

	if srv.clock == nil {
		srv.clock = service.SystemClock{Location: srv.location}
	}

	return srv
}

func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reservationService) now() time.Time {
	return srv.clock.Now().In(srv.location)
}

// --- Customer operations ---

// Create books a WAITING reservation and notifies the store's partner.
func (srv *reservationService) Create(ctx context.Context, customerUID string, input *usecase.ReservationInput) (*usecase.CreateReservationOutput, error) {
	var created *entity.Reservation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		store, err := findStore(ctx, repoFactory.NewStoreRepository(), input.Storename)
		if err != nil {
			return err
		}

		if !withinBookingWindow(input.DateTime, srv.now(), srv.windowMonths, srv.location) {
			return domainerrors.ErrReservationDateOutOfWindow
		}

		if err := checkNumberOfPeople(store, input.NumberOfPeople); err != nil {
			return err
		}

		customer, err := loadCallerAccount(ctx, repoFactory.NewAccountRepository(), customerIdentity(customerUID))
		if err != nil {
			return err
		}

		reservation := &entity.Reservation{
			UID:                entity.NewExternalUID(),
			CustomerID:         customer.ID,
			CustomerUID:        customer.UID,
			StoreID:            store.ID,
			Storename:          store.Storename,
			PartnerUID:         store.PartnerUID,
			PartnerPhone:       store.PartnerPhone,
			DateTime:           input.DateTime.In(srv.location),
			UnderName:          input.UnderName,
			Phone:              input.Phone,
			SpecialInstruction: input.SpecialInstruction,
			NumberOfPeople:     input.NumberOfPeople,
			Status:             entity.ReservationStatusWaiting,
			Version:            1,
		}

		if err := repoFactory.NewReservationRepository().Create(ctx, reservation); err != nil {
			return errors.Wrap(err, "failed to create reservation")
		}

		created = reservation

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Reservation created",
		slog.String("reservationUid", created.UID),
		slog.String("storename", created.Storename),
		slog.Time("dateTime", created.DateTime))

	if created.UnderName == "" {
		srv.log(ctx).Warn("Reservation stored without under-name, partner not notified", slog.String("reservationUid", created.UID))

		return &usecase.CreateReservationOutput{Reservation: created, Notified: false}, nil
	}

	srv.notifyPartner(ctx, created)

	return &usecase.CreateReservationOutput{Reservation: created, Notified: true}, nil
}

// ListMine pages through the customer's reservations by visit time.
func (srv *reservationService) ListMine(ctx context.Context, customerUID string, page entity.PageRequest) (entity.Page[*entity.Reservation], error) {
	customer, err := loadCallerAccount(ctx, srv.accountRepo, customerIdentity(customerUID))
	if err != nil {
		return entity.Page[*entity.Reservation]{}, err
	}

	reservations, err := srv.reservationRepo.FindByCustomer(ctx, customer.ID, page)
	if err != nil {
		return entity.Page[*entity.Reservation]{}, errors.Wrap(err, "failed to list customer reservations")
	}

	return reservations, nil
}

// GetForCustomer returns a reservation the customer made.
func (srv *reservationService) GetForCustomer(ctx context.Context, customerUID, reservationUID string) (*entity.Reservation, error) {
	reservation, err := findReservation(ctx, srv.reservationRepo, reservationUID)
	if err != nil {
		return nil, err
	}

	if err := policy.RequireReservationOwner(customerUID, reservation); err != nil {
		return nil, err
	}

	return reservation, nil
}

// Update overwrites the visit details, puts the reservation back to WAITING and re-notifies the partner.
func (srv *reservationService) Update(ctx context.Context, customerUID, reservationUID string, input *usecase.ReservationInput) (*entity.Reservation, error) {
	updated, err := srv.transition(ctx, reservationUID, policy.EventUpdate,
		func(reservation *entity.Reservation) error {
			return policy.RequireReservationOwner(customerUID, reservation)
		},
		func(repoFactory repository.RepositoryFactory, reservation *entity.Reservation) error {
			if input.Storename != reservation.Storename {
				return domainerrors.ErrCannotUpdateStore
			}

			if input.NumberOfPeople != nil {
				store, err := findStore(ctx, repoFactory.NewStoreRepository(), reservation.Storename)
				if err != nil {
					return err
				}
				if err := checkNumberOfPeople(store, input.NumberOfPeople); err != nil {
					return err
				}
			}

			reservation.DateTime = input.DateTime.In(srv.location)
			reservation.UnderName = input.UnderName
			reservation.Phone = input.Phone
			reservation.SpecialInstruction = input.SpecialInstruction
			reservation.NumberOfPeople = input.NumberOfPeople

			return nil
		})
	if err != nil {
		return nil, err
	}

	srv.notifyPartner(ctx, updated)

	return updated, nil
}

// Cancel marks the customer's reservation CANCEL. No one is notified.
func (srv *reservationService) Cancel(ctx context.Context, customerUID, reservationUID string) (*entity.Reservation, error) {
	return srv.transition(ctx, reservationUID, policy.EventCancel,
		func(reservation *entity.Reservation) error {
			return policy.RequireReservationOwner(customerUID, reservation)
		}, nil)
}

// CheckInQR renders the check-in code the customer shows at the kiosk.
func (srv *reservationService) CheckInQR(ctx context.Context, customerUID, reservationUID string) ([]byte, error) {
	reservation, err := srv.GetForCustomer(ctx, customerUID, reservationUID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateCheckInQR(reservation.UID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate check-in QR code")
	}

	return png, nil
}

// --- Partner operations ---

// GetForPartner returns a reservation made at one of the partner's stores.
func (srv *reservationService) GetForPartner(ctx context.Context, partnerUID, reservationUID string) (*entity.Reservation, error) {
	reservation, err := findReservation(ctx, srv.reservationRepo, reservationUID)
	if err != nil {
		return nil, err
	}

	if err := policy.RequireReservationStoreOwner(partnerUID, reservation); err != nil {
		return nil, err
	}

	return reservation, nil
}

// Confirm accepts the reservation and notifies the customer.
func (srv *reservationService) Confirm(ctx context.Context, partnerUID, reservationUID string) (*entity.Reservation, error) {
	return srv.decide(ctx, partnerUID, reservationUID, policy.EventConfirm)
}

// Reject denies the reservation and notifies the customer.
func (srv *reservationService) Reject(ctx context.Context, partnerUID, reservationUID string) (*entity.Reservation, error) {
	return srv.decide(ctx, partnerUID, reservationUID, policy.EventReject)
}

func (srv *reservationService) decide(ctx context.Context, partnerUID, reservationUID string, event policy.Event) (*entity.Reservation, error) {
	reservation, err := srv.transition(ctx, reservationUID, event,
		func(reservation *entity.Reservation) error {
			return policy.RequireReservationStoreOwner(partnerUID, reservation)
		}, nil)
	if err != nil {
		return nil, err
	}

	srv.notifyCustomer(ctx, reservation)

	return reservation, nil
}

// ArrivalCheck marks the guest ARRIVED when checked in around the booked time.
func (srv *reservationService) ArrivalCheck(ctx context.Context, partnerUID, reservationUID string) (*entity.Reservation, error) {
	return srv.arrive(ctx, partnerUID, reservationUID, "")
}

// ArrivalCheckByQR resolves a scanned check-in code, verifies it belongs to the kiosk's store, then checks in.
func (srv *reservationService) ArrivalCheckByQR(ctx context.Context, partnerUID, storename, qrData string) (*entity.Reservation, error) {
	reservationUID, err := srv.qrCode.ParseCheckInQR(qrData)
	if err != nil {
		srv.log(ctx).Warn("Unreadable check-in QR code", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidQRCode
	}

	return srv.arrive(ctx, partnerUID, reservationUID, storename)
}

func (srv *reservationService) arrive(ctx context.Context, partnerUID, reservationUID, storename string) (*entity.Reservation, error) {
	reservation, err := srv.transition(ctx, reservationUID, policy.EventArrive,
		func(reservation *entity.Reservation) error {
			if err := policy.RequireReservationStoreOwner(partnerUID, reservation); err != nil {
				return err
			}
			if storename != "" && reservation.Storename != storename {
				return domainerrors.ErrNotReservationStore
			}

			return nil
		},
		func(_ repository.RepositoryFactory, reservation *entity.Reservation) error {
			return srv.checkArrivalWindow(reservation.DateTime)
		})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Guest arrived", slog.String("reservationUid", reservation.UID), slog.String("storename", reservation.Storename))

	return reservation, nil
}

// checkArrivalWindow accepts now within [dateTime - window, dateTime + window].
func (srv *reservationService) checkArrivalWindow(dateTime time.Time) error {
	now := srv.now()

	if now.Before(dateTime.Add(-srv.arrivalWindow)) {
		return domainerrors.ErrEntranceNotOnTime
	}
	if now.After(dateTime.Add(srv.arrivalWindow)) {
		return domainerrors.ErrTimeOver
	}

	return nil
}

// ListByStore pages through a store's reservations visiting between the two dates, both inclusive.
func (srv *reservationService) ListByStore(
	ctx context.Context,
	partnerUID, storename string,
	startDate, endDate time.Time,
	page entity.PageRequest,
) (entity.Page[*entity.Reservation], error) {
	store, err := srv.ownedStore(ctx, partnerUID, storename)
	if err != nil {
		return entity.Page[*entity.Reservation]{}, err
	}

	from := startOfDay(startDate, srv.location)
	to := endOfDay(endDate, srv.location)
	if to.Before(from) {
		return entity.Page[*entity.Reservation]{}, domainerrors.ErrInvalidRequest.WrapMessage("endDate is before startDate")
	}

	reservations, err := srv.reservationRepo.FindByStoreBetween(ctx, store.ID, from, to, page)
	if err != nil {
		return entity.Page[*entity.Reservation]{}, errors.Wrap(err, "failed to list store reservations")
	}

	return reservations, nil
}

// SearchByKiosk finds the guest's confirmed reservations at the store.
func (srv *reservationService) SearchByKiosk(
	ctx context.Context,
	partnerUID, storename, underName, phone string,
	page entity.PageRequest,
) (entity.Page[*entity.Reservation], error) {
	store, err := srv.ownedStore(ctx, partnerUID, storename)
	if err != nil {
		return entity.Page[*entity.Reservation]{}, err
	}

	reservations, err := srv.reservationRepo.FindAllByUnderNameAndPhoneAndStoreAndStatus(
		ctx, underName, phone, store.ID, entity.ReservationStatusConfirm, page)
	if err != nil {
		return entity.Page[*entity.Reservation]{}, errors.Wrap(err, "failed to search reservations")
	}

	if reservations.TotalElements == 0 {
		return entity.Page[*entity.Reservation]{}, domainerrors.ErrConfirmedReservationNotFound
	}

	return reservations, nil
}

func (srv *reservationService) ownedStore(ctx context.Context, partnerUID, storename string) (*entity.Store, error) {
	store, err := findStore(ctx, srv.storeRepo, storename)
	if err != nil {
		return nil, err
	}

	if err := policy.RequireStoreOwner(partnerUID, store); err != nil {
		return nil, err
	}

	return store, nil
}

// --- Sweep ---

// SweepNoShows moves every CONFIRM reservation dated before today to NO_SHOW.
// Each reservation is written on its own; a failure is counted and the sweep moves on.
func (srv *reservationService) SweepNoShows(ctx context.Context) (*usecase.SweepResult, error) {
	cutoff := startOfDay(srv.now(), srv.location)

	candidates, err := srv.reservationRepo.FindAllByStatusAndDateTimeBefore(ctx, entity.ReservationStatusConfirm, cutoff)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load confirmed reservations for sweep")
	}

	result := &usecase.SweepResult{Cutoff: cutoff, Matched: len(candidates)}

	for _, reservation := range candidates {
		if err := srv.sweepOne(ctx, reservation); err != nil {
			result.Failed++
			srv.log(ctx).Warn("No-show sweep skipped reservation",
				slog.String("reservationUid", reservation.UID),
				slog.Any("error", err))

			continue
		}
		result.Swept++
	}

	srv.log(ctx).Info("No-show sweep finished",
		slog.Time("cutoff", cutoff),
		slog.Int("matched", result.Matched),
		slog.Int("swept", result.Swept),
		slog.Int("failed", result.Failed))

	return result, nil
}

func (srv *reservationService) sweepOne(ctx context.Context, reservation *entity.Reservation) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.transitions.Apply(reservation, policy.EventSweep); err != nil {
			return err
		}

		return saveReservation(ctx, repoFactory.NewReservationRepository(), reservation)
	})
}

// --- Shared helpers ---

// transition runs load, guard, mutate, apply and a versioned save in one transaction.
func (srv *reservationService) transition(
	ctx context.Context,
	reservationUID string,
	event policy.Event,
	guard func(*entity.Reservation) error,
	mutate func(repository.RepositoryFactory, *entity.Reservation) error,
) (*entity.Reservation, error) {
	var result *entity.Reservation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reservationRepo := repoFactory.NewReservationRepository()

		reservation, err := findReservation(ctx, reservationRepo, reservationUID)
		if err != nil {
			return err
		}

		if err := guard(reservation); err != nil {
			return err
		}

		if mutate != nil {
			if err := mutate(repoFactory, reservation); err != nil {
				return err
			}
		}

		from := reservation.Status
		if err := srv.transitions.Apply(reservation, event); err != nil {
			return err
		}

		if err := saveReservation(ctx, reservationRepo, reservation); err != nil {
			return err
		}

		srv.log(ctx).Debug("Reservation transitioned",
			slog.String("reservationUid", reservation.UID),
			slog.String("event", string(event)),
			slog.String("from", from.String()),
			slog.String("to", reservation.Status.String()))

		result = reservation

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (srv *reservationService) notifyPartner(ctx context.Context, reservation *entity.Reservation) bool {
	text := fmt.Sprintf(partnerMessageFormat,
		reservation.Storename,
		reservation.DateTime.In(srv.location).Format(constants.MessageTimeLayout),
		reservation.UnderName,
		srv.baseURL,
		reservation.UID)

	return srv.dispatch(ctx, service.ReservationNotice{
		ReservationUID: reservation.UID,
		RecipientUID:   reservation.PartnerUID,
		Phone:          reservation.PartnerPhone,
		Text:           text,
	})
}

func (srv *reservationService) notifyCustomer(ctx context.Context, reservation *entity.Reservation) bool {
	text := fmt.Sprintf(customerMessageFormat,
		reservation.Storename,
		reservation.Status.Message(),
		reservation.DateTime.In(srv.location).Format(constants.MessageTimeLayout),
		reservation.UnderName,
		srv.baseURL,
		reservation.UID)

	return srv.dispatch(ctx, service.ReservationNotice{
		ReservationUID: reservation.UID,
		RecipientUID:   reservation.CustomerUID,
		Phone:          reservation.Phone,
		Text:           text,
	})
}

// dispatch never fails the caller: the transition is already committed.
func (srv *reservationService) dispatch(ctx context.Context, notice service.ReservationNotice) bool {
	result := srv.dispatcher.Dispatch(ctx, notice)
	if !result.Accepted {
		srv.log(ctx).Warn("Reservation notice not accepted",
			slog.String("reservationUid", notice.ReservationUID),
			slog.String("recipientUid", notice.RecipientUID),
			slog.Any("error", result.Err))
	}

	return result.Accepted
}

func findReservation(ctx context.Context, reservationRepo repository.ReservationRepository, uid string) (*entity.Reservation, error) {
	reservation, err := reservationRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, domainerrors.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation")
	}

	return reservation, nil
}

func saveReservation(ctx context.Context, reservationRepo repository.ReservationRepository, reservation *entity.Reservation) error {
	if err := reservationRepo.Save(ctx, reservation); err != nil {
		if errors.Is(err, repository.ErrStaleReservation) {
			return domainerrors.ErrReservationConflict
		}

		return errors.Wrap(err, "failed to save reservation")
	}

	return nil
}

// checkNumberOfPeople rejects parties larger than the restaurant's biggest table.
func checkNumberOfPeople(store *entity.Store, numberOfPeople *int) error {
	if numberOfPeople == nil {
		return nil
	}
	if *numberOfPeople < 1 {
		return domainerrors.ErrInvalidRequest.WrapMessage("numberOfPeople must be positive")
	}
	if store.Restaurant == nil {
		return nil
	}
	if *numberOfPeople > store.Restaurant.MaxTableVolume() {
		return domainerrors.ErrTooManyNumberOfPeople
	}

	return nil
}
