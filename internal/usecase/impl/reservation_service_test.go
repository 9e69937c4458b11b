package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/nadoran78/mytable/config"
	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/repository"
	"github.com/nadoran78/mytable/internal/domain/service"
	mockRepo "github.com/nadoran78/mytable/internal/mocks/repository"
	mockSvc "github.com/nadoran78/mytable/internal/mocks/service"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testCustomerUID  = "c0ffee00c0ffee00c0ffee00c0ffee00"
	testPartnerUID   = "beef0000beef0000beef0000beef0000"
	testPartnerPhone = "010-1111-2222"
	testStorename    = "Noodle House"
	testBaseURL      = "https://mytable.test"
)

// reservationServiceFixtures holds all test dependencies for reservation service tests.
type reservationServiceFixtures struct {
	service         usecase.ReservationUsecase
	txManager       *mockRepo.MockTransactionManager
	reservationRepo *mockRepo.MockReservationRepository
	storeRepo       *mockRepo.MockStoreRepository
	accountRepo     *mockRepo.MockAccountRepository
	dispatcher      *mockSvc.MockNotificationDispatcher
	qrCode          *mockSvc.MockQRCodeService
	clock           *mockSvc.MockClock
	store           *entity.Store
	customer        *entity.Account
}

func createTestReservationService(t *testing.T, now time.Time, strict bool) reservationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reservationRepo := mockRepo.NewMockReservationRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	dispatcher := mockSvc.NewMockNotificationDispatcher(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	clock := mockSvc.NewMockClock(t)

	clock.EXPECT().Now().Return(now).Maybe()
	expectTransactions(t, txManager, txRepos{
		accounts:     accountRepo,
		stores:       storeRepo,
		reservations: reservationRepo,
	})

	cfg := &config.Config{
		Reservation: &config.ReservationConfig{
			BookingWindowMonths: 1,
			ArrivalWindow:       10 * time.Minute,
			StrictTransitions:   strict,
		},
		Notification: &config.NotificationConfig{BaseURL: testBaseURL + "/"},
	}

	srv := NewReservationService(ReservationServiceParams{
		TxManager:       txManager,
		ReservationRepo: reservationRepo,
		StoreRepo:       storeRepo,
		AccountRepo:     accountRepo,
		Dispatcher:      dispatcher,
		QRCode:          qrCode,
		Clock:           clock,
		Config:          cfg,
		Logger:          newDiscardLogger(),
	})

	return reservationServiceFixtures{
		service:         srv,
		txManager:       txManager,
		reservationRepo: reservationRepo,
		storeRepo:       storeRepo,
		accountRepo:     accountRepo,
		dispatcher:      dispatcher,
		qrCode:          qrCode,
		clock:           clock,
		store: &entity.Store{
			ID:           uuid.New(),
			PartnerID:    uuid.New(),
			PartnerUID:   testPartnerUID,
			PartnerPhone: testPartnerPhone,
			Storename:    testStorename,
		},
		customer: &entity.Account{
			ID:    uuid.New(),
			UID:   testCustomerUID,
			Kind:  entity.AccountKindCustomer,
			Name:  "김철수",
			Phone: "010-3333-4444",
			Roles: entity.Roles{entity.RoleCustomer},
		},
	}
}

func (f reservationServiceFixtures) reservation(status entity.ReservationStatus, dateTime time.Time) *entity.Reservation {
	return &entity.Reservation{
		ID:           uuid.New(),
		UID:          entity.NewExternalUID(),
		CustomerID:   f.customer.ID,
		CustomerUID:  f.customer.UID,
		StoreID:      f.store.ID,
		Storename:    f.store.Storename,
		PartnerUID:   f.store.PartnerUID,
		PartnerPhone: f.store.PartnerPhone,
		DateTime:     dateTime,
		UnderName:    "김철수",
		Phone:        "010-3333-4444",
		Status:       status,
		Version:      1,
	}
}

func (f reservationServiceFixtures) expectStore() {
	f.storeRepo.EXPECT().FindByStorename(mock.Anything, testStorename).Return(f.store, nil).Maybe()
}

func (f reservationServiceFixtures) expectCustomer() {
	f.accountRepo.EXPECT().FindByUID(mock.Anything, testCustomerUID).Return(f.customer, nil).Maybe()
}

func (f reservationServiceFixtures) expectDispatch(match func(service.ReservationNotice) bool) {
	f.dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(match)).
		Return(service.DeliveryResult{Accepted: true, EventID: "evt-1"}).
		Once()
}

func reservationInput(dateTime time.Time) *usecase.ReservationInput {
	return &usecase.ReservationInput{
		Storename: testStorename,
		DateTime:  dateTime,
		UnderName: "김철수",
		Phone:     "010-3333-4444",
	}
}

func TestReservationService_Create_Success(t *testing.T) {
	now := at(2024, time.May, 10, 12, 0)
	fx := createTestReservationService(t, now, false)
	fx.expectStore()
	fx.expectCustomer()

	table := newReservationTable()
	table.bind(fx.reservationRepo)

	fx.expectDispatch(func(n service.ReservationNotice) bool {
		return n.Phone == testPartnerPhone &&
			n.RecipientUID == testPartnerUID &&
			strings.HasPrefix(n.Text, "Noodle House에 예약이 접수(수정)되었습니다.\n") &&
			strings.Contains(n.Text, "- 예약일자 : 2024-05-20 19:00:00\n") &&
			strings.Contains(n.Text, "- 예약자명 : 김철수\n") &&
			strings.Contains(n.Text, "> "+testBaseURL+"/partner/reservation/detail?uid="+n.ReservationUID)
	})

	output, err := fx.service.Create(context.Background(), testCustomerUID, reservationInput(at(2024, time.May, 20, 19, 0)))
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.True(t, output.Notified)
	assert.Len(t, output.Reservation.UID, 32)
	assert.Equal(t, entity.ReservationStatusWaiting, output.Reservation.Status)
	assert.Equal(t, int64(1), output.Reservation.Version)
	assert.Equal(t, fx.customer.ID, output.Reservation.CustomerID)
	assert.Equal(t, fx.store.ID, output.Reservation.StoreID)

	stored := table.get(output.Reservation.UID)
	assert.Equal(t, entity.ReservationStatusWaiting, stored.Status)
}

func TestReservationService_Create_BookingWindow(t *testing.T) {
	now := at(2024, time.May, 10, 12, 0)

	tests := []struct {
		name     string
		dateTime time.Time
		wantErr  error
	}{
		{"ten days out", now.AddDate(0, 0, 10), nil},
		{"twenty nine days out", now.AddDate(0, 0, 29), nil},
		{"last day inside the month", at(2024, time.June, 9, 23, 30), nil},
		{"exactly one month out", at(2024, time.June, 10, 9, 0), domainerrors.ErrReservationDateOutOfWindow},
		{"two months out", now.AddDate(0, 2, 0), domainerrors.ErrReservationDateOutOfWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReservationService(t, now, false)
			fx.expectStore()

			if tt.wantErr == nil {
				fx.expectCustomer()
				fx.reservationRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Reservation")).Return(nil).Once()
				fx.expectDispatch(func(service.ReservationNotice) bool { return true })
			}

			output, err := fx.service.Create(context.Background(), testCustomerUID, reservationInput(tt.dateTime))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, output)

				return
			}
			require.NoError(t, err)
			assert.True(t, output.Notified)
		})
	}
}

func TestReservationService_Create_StoreNotFound(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	fx.storeRepo.EXPECT().FindByStorename(mock.Anything, "Nowhere").Return(nil, repository.ErrStoreNotFound)

	input := reservationInput(at(2024, time.May, 20, 19, 0))
	input.Storename = "Nowhere"

	_, err := fx.service.Create(context.Background(), testCustomerUID, input)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestReservationService_Create_EmptyUnderNameSkipsNotice(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	fx.expectStore()
	fx.expectCustomer()
	fx.reservationRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Reservation")).Return(nil).Once()

	input := reservationInput(at(2024, time.May, 20, 19, 0))
	input.UnderName = ""

	output, err := fx.service.Create(context.Background(), testCustomerUID, input)
	require.NoError(t, err)
	assert.False(t, output.Notified)
	fx.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestReservationService_Create_DispatchFailureDoesNotFail(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	fx.expectStore()
	fx.expectCustomer()
	fx.reservationRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Reservation")).Return(nil).Once()
	fx.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).
		Return(service.DeliveryResult{Err: errors.New("broker down")}).Once()

	output, err := fx.service.Create(context.Background(), testCustomerUID, reservationInput(at(2024, time.May, 20, 19, 0)))
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusWaiting, output.Reservation.Status)
}

func TestReservationService_Create_TooManyPeople(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	fx.store.Restaurant = &entity.RestaurantDetail{Tables: []entity.Table{{Volume: 4, Amount: 2}, {Volume: 8, Amount: 0}}}
	fx.expectStore()

	input := reservationInput(at(2024, time.May, 20, 19, 0))
	input.NumberOfPeople = intPtr(6)

	_, err := fx.service.Create(context.Background(), testCustomerUID, input)
	assert.ErrorIs(t, err, domainerrors.ErrTooManyNumberOfPeople)
}

func TestReservationService_GetForCustomer_NotOwner(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	r := fx.reservation(entity.ReservationStatusWaiting, at(2024, time.May, 20, 19, 0))
	fx.reservationRepo.EXPECT().FindByUID(mock.Anything, r.UID).Return(r, nil)

	_, err := fx.service.GetForCustomer(context.Background(), "someone-else", r.UID)
	assert.ErrorIs(t, err, domainerrors.ErrAccessOnlyRequestedCustomer)
}

func TestReservationService_GetForCustomer_NotFound(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	fx.reservationRepo.EXPECT().FindByUID(mock.Anything, "missing").Return(nil, repository.ErrReservationNotFound)

	_, err := fx.service.GetForCustomer(context.Background(), testCustomerUID, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrReservationNotFound)
}

func TestReservationService_Update_CannotMoveStore(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	r := fx.reservation(entity.ReservationStatusWaiting, at(2024, time.May, 20, 19, 0))
	table := newReservationTable(r)
	table.bind(fx.reservationRepo)

	input := reservationInput(at(2024, time.May, 21, 18, 0))
	input.Storename = "Other Store"

	_, err := fx.service.Update(context.Background(), testCustomerUID, r.UID, input)
	assert.ErrorIs(t, err, domainerrors.ErrCannotUpdateStore)

	stored := table.get(r.UID)
	assert.Equal(t, r.DateTime, stored.DateTime)
	assert.Equal(t, int64(1), stored.Version)
	fx.reservationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestReservationService_Update_ResetsToWaitingAndNotifiesPartner(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	r := fx.reservation(entity.ReservationStatusConfirm, at(2024, time.May, 20, 19, 0))
	table := newReservationTable(r)
	table.bind(fx.reservationRepo)

	fx.expectDispatch(func(n service.ReservationNotice) bool {
		return n.RecipientUID == testPartnerUID &&
			strings.Contains(n.Text, "- 예약일자 : 2024-05-21 18:30:00") &&
			strings.Contains(n.Text, "- 예약자명 : 이영희")
	})

	input := reservationInput(at(2024, time.May, 21, 18, 30))
	input.UnderName = "이영희"
	input.SpecialInstruction = "창가 자리"

	updated, err := fx.service.Update(context.Background(), testCustomerUID, r.UID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusWaiting, updated.Status)
	assert.Equal(t, int64(2), updated.Version)

	stored := table.get(r.UID)
	assert.Equal(t, entity.ReservationStatusWaiting, stored.Status)
	assert.Equal(t, "이영희", stored.UnderName)
	assert.Equal(t, "창가 자리", stored.SpecialInstruction)
	assert.Equal(t, fx.store.ID, stored.StoreID)
	assert.Equal(t, fx.customer.ID, stored.CustomerID)
}

func TestReservationService_Update_NotOwner(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	r := fx.reservation(entity.ReservationStatusWaiting, at(2024, time.May, 20, 19, 0))
	newReservationTable(r).bind(fx.reservationRepo)

	_, err := fx.service.Update(context.Background(), "intruder", r.UID, reservationInput(r.DateTime))
	assert.ErrorIs(t, err, domainerrors.ErrAccessOnlyRequestedCustomer)
}

func TestReservationService_Cancel(t *testing.T) {
	t.Run("permissive cancels from any state without notice", func(t *testing.T) {
		fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
		r := fx.reservation(entity.ReservationStatusArrived, at(2024, time.May, 9, 19, 0))
		table := newReservationTable(r)
		table.bind(fx.reservationRepo)

		cancelled, err := fx.service.Cancel(context.Background(), testCustomerUID, r.UID)
		require.NoError(t, err)
		assert.Equal(t, entity.ReservationStatusCancel, cancelled.Status)
		assert.Equal(t, entity.ReservationStatusCancel, table.get(r.UID).Status)
		fx.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})

	t.Run("strict refuses to leave a terminal state", func(t *testing.T) {
		fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), true)
		r := fx.reservation(entity.ReservationStatusArrived, at(2024, time.May, 9, 19, 0))
		table := newReservationTable(r)
		table.bind(fx.reservationRepo)

		_, err := fx.service.Cancel(context.Background(), testCustomerUID, r.UID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
		assert.Equal(t, entity.ReservationStatusArrived, table.get(r.UID).Status)
	})

	t.Run("another customer cannot cancel", func(t *testing.T) {
		fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
		r := fx.reservation(entity.ReservationStatusConfirm, at(2024, time.May, 20, 19, 0))
		table := newReservationTable(r)
		table.bind(fx.reservationRepo)
		before := table.get(r.UID)

		_, err := fx.service.Cancel(context.Background(), "intruder", r.UID)
		assert.ErrorIs(t, err, domainerrors.ErrAccessOnlyRequestedCustomer)
		assert.Equal(t, before, table.get(r.UID))
		fx.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})
}

func TestReservationService_Confirm_NotifiesCustomer(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	r := fx.reservation(entity.ReservationStatusWaiting, at(2024, time.May, 20, 19, 0))
	table := newReservationTable(r)
	table.bind(fx.reservationRepo)

	fx.expectDispatch(func(n service.ReservationNotice) bool {
		return n.Phone == r.Phone &&
			n.RecipientUID == testCustomerUID &&
			n.ReservationUID == r.UID &&
			strings.HasPrefix(n.Text, "Noodle House에 예약이 확정되었습니다.\n") &&
			strings.HasSuffix(n.Text, "> "+testBaseURL+"/customer/reservation/detail?uid="+r.UID)
	})

	confirmed, err := fx.service.Confirm(context.Background(), testPartnerUID, r.UID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusConfirm, confirmed.Status)
	assert.Equal(t, entity.ReservationStatusConfirm, table.get(r.UID).Status)
}

func TestReservationService_Reject_NotifiesCustomer(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	r := fx.reservation(entity.ReservationStatusWaiting, at(2024, time.May, 20, 19, 0))
	newReservationTable(r).bind(fx.reservationRepo)

	fx.expectDispatch(func(n service.ReservationNotice) bool {
		return strings.HasPrefix(n.Text, "Noodle House에 예약이 거절되었습니다.\n")
	})

	rejected, err := fx.service.Reject(context.Background(), testPartnerUID, r.UID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusDenied, rejected.Status)
}

func TestReservationService_Confirm_NotStoreOwner(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	r := fx.reservation(entity.ReservationStatusWaiting, at(2024, time.May, 20, 19, 0))
	table := newReservationTable(r)
	table.bind(fx.reservationRepo)

	_, err := fx.service.Confirm(context.Background(), "other-partner", r.UID)
	assert.ErrorIs(t, err, domainerrors.ErrAccessOnlyStoreOwner)
	assert.Equal(t, entity.ReservationStatusWaiting, table.get(r.UID).Status)
}

func TestReservationService_StrictDecisionsOnlyFromWaiting(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), true)
	r := fx.reservation(entity.ReservationStatusConfirm, at(2024, time.May, 20, 19, 0))
	newReservationTable(r).bind(fx.reservationRepo)

	_, err := fx.service.Reject(context.Background(), testPartnerUID, r.UID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	_, err = fx.service.Confirm(context.Background(), testPartnerUID, r.UID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestReservationService_Confirm_VersionConflict(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	r := fx.reservation(entity.ReservationStatusWaiting, at(2024, time.May, 20, 19, 0))
	fx.reservationRepo.EXPECT().FindByUID(mock.Anything, r.UID).Return(r, nil)
	fx.reservationRepo.EXPECT().Save(mock.Anything, r).Return(repository.ErrStaleReservation)

	_, err := fx.service.Confirm(context.Background(), testPartnerUID, r.UID)
	assert.ErrorIs(t, err, domainerrors.ErrReservationConflict)
	fx.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestReservationService_ArrivalCheck_Window(t *testing.T) {
	visit := at(2024, time.May, 10, 19, 0)

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{"exactly ten minutes early", visit.Add(-10 * time.Minute), nil},
		{"one second too early", visit.Add(-10*time.Minute - time.Second), domainerrors.ErrEntranceNotOnTime},
		{"exactly ten minutes late", visit.Add(10 * time.Minute), nil},
		{"one second too late", visit.Add(10*time.Minute + time.Second), domainerrors.ErrTimeOver},
		{"on time", visit, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReservationService(t, tt.now, false)
			r := fx.reservation(entity.ReservationStatusConfirm, visit)
			table := newReservationTable(r)
			table.bind(fx.reservationRepo)

			arrived, err := fx.service.ArrivalCheck(context.Background(), testPartnerUID, r.UID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, entity.ReservationStatusConfirm, table.get(r.UID).Status)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.ReservationStatusArrived, arrived.Status)
		})
	}
}

func TestReservationService_ArrivalCheck_StrictRequiresConfirm(t *testing.T) {
	visit := at(2024, time.May, 10, 19, 0)
	fx := createTestReservationService(t, visit, true)
	r := fx.reservation(entity.ReservationStatusWaiting, visit)
	newReservationTable(r).bind(fx.reservationRepo)

	_, err := fx.service.ArrivalCheck(context.Background(), testPartnerUID, r.UID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestReservationService_ArrivalCheckByQR(t *testing.T) {
	visit := at(2024, time.May, 10, 19, 0)

	t.Run("unreadable code", func(t *testing.T) {
		fx := createTestReservationService(t, visit, false)
		fx.qrCode.EXPECT().ParseCheckInQR("garbage").Return("", errors.New("invalid payload"))

		_, err := fx.service.ArrivalCheckByQR(context.Background(), testPartnerUID, testStorename, "garbage")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
	})

	t.Run("code for another store", func(t *testing.T) {
		fx := createTestReservationService(t, visit, false)
		r := fx.reservation(entity.ReservationStatusConfirm, visit)
		newReservationTable(r).bind(fx.reservationRepo)
		fx.qrCode.EXPECT().ParseCheckInQR("payload").Return(r.UID, nil)

		_, err := fx.service.ArrivalCheckByQR(context.Background(), testPartnerUID, "Second Branch", "payload")
		assert.ErrorIs(t, err, domainerrors.ErrNotReservationStore)
	})

	t.Run("checks in", func(t *testing.T) {
		fx := createTestReservationService(t, visit.Add(3*time.Minute), false)
		r := fx.reservation(entity.ReservationStatusConfirm, visit)
		table := newReservationTable(r)
		table.bind(fx.reservationRepo)
		fx.qrCode.EXPECT().ParseCheckInQR("payload").Return(r.UID, nil)

		arrived, err := fx.service.ArrivalCheckByQR(context.Background(), testPartnerUID, testStorename, "payload")
		require.NoError(t, err)
		assert.Equal(t, entity.ReservationStatusArrived, arrived.Status)
		assert.Equal(t, entity.ReservationStatusArrived, table.get(r.UID).Status)
	})
}

func TestReservationService_CheckInQR(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	r := fx.reservation(entity.ReservationStatusConfirm, at(2024, time.May, 20, 19, 0))
	fx.reservationRepo.EXPECT().FindByUID(mock.Anything, r.UID).Return(r, nil)
	fx.qrCode.EXPECT().GenerateCheckInQR(r.UID).Return([]byte("png"), nil)

	png, err := fx.service.CheckInQR(context.Background(), testCustomerUID, r.UID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestReservationService_CheckInQR_NotOwner(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	r := fx.reservation(entity.ReservationStatusConfirm, at(2024, time.May, 20, 19, 0))
	table := newReservationTable(r)
	table.bind(fx.reservationRepo)
	before := table.get(r.UID)

	png, err := fx.service.CheckInQR(context.Background(), "intruder", r.UID)
	assert.ErrorIs(t, err, domainerrors.ErrAccessOnlyRequestedCustomer)
	assert.Nil(t, png)
	assert.Equal(t, before, table.get(r.UID))
	fx.qrCode.AssertNotCalled(t, "GenerateCheckInQR", mock.Anything)
}

func TestReservationService_HappyPath(t *testing.T) {
	created := at(2024, time.May, 10, 12, 0)
	visit := at(2024, time.May, 20, 19, 0)

	fx := createTestReservationService(t, created, false)
	fx.expectStore()
	fx.expectCustomer()
	table := newReservationTable()
	table.bind(fx.reservationRepo)
	fx.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(service.DeliveryResult{Accepted: true}).Times(2)

	output, err := fx.service.Create(context.Background(), testCustomerUID, reservationInput(visit))
	require.NoError(t, err)
	uid := output.Reservation.UID
	assert.Equal(t, testPartnerUID, table.get(uid).PartnerUID)

	_, err = fx.service.Confirm(context.Background(), testPartnerUID, uid)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusConfirm, table.get(uid).Status)

	arrivalFx := createTestReservationService(t, visit.Add(-5*time.Minute), false)
	table.bind(arrivalFx.reservationRepo)

	arrived, err := arrivalFx.service.ArrivalCheck(context.Background(), testPartnerUID, uid)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusArrived, arrived.Status)
	assert.Equal(t, entity.ReservationStatusArrived, table.get(uid).Status)
	assert.Equal(t, int64(3), table.get(uid).Version)
}

func TestReservationService_ListByStore(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
	fx.expectStore()

	page := entity.PageRequest{Page: 0, Size: 10}
	from := at(2024, time.May, 1, 0, 0)
	to := at(2024, time.May, 31, 0, 0).AddDate(0, 0, 1).Add(-time.Nanosecond)
	fx.reservationRepo.EXPECT().
		FindByStoreBetween(mock.Anything, fx.store.ID, from, to, page).
		Return(entity.NewPage([]*entity.Reservation{fx.reservation(entity.ReservationStatusWaiting, at(2024, time.May, 31, 21, 0))}, page, 1), nil)

	result, err := fx.service.ListByStore(context.Background(), testPartnerUID, testStorename,
		at(2024, time.May, 1, 15, 0), at(2024, time.May, 31, 8, 0), page)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.TotalElements)

	_, err = fx.service.ListByStore(context.Background(), "other-partner", testStorename, from, to, page)
	assert.ErrorIs(t, err, domainerrors.ErrAccessOnlyStoreOwner)
}

func TestReservationService_SearchByKiosk(t *testing.T) {
	page := entity.PageRequest{Page: 0, Size: 10}

	t.Run("no confirmed match", func(t *testing.T) {
		fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
		fx.expectStore()
		fx.reservationRepo.EXPECT().
			FindAllByUnderNameAndPhoneAndStoreAndStatus(mock.Anything, "김철수", "010-3333-4444", fx.store.ID, entity.ReservationStatusConfirm, page).
			Return(entity.NewPage[*entity.Reservation](nil, page, 0), nil)

		_, err := fx.service.SearchByKiosk(context.Background(), testPartnerUID, testStorename, "김철수", "010-3333-4444", page)
		assert.ErrorIs(t, err, domainerrors.ErrConfirmedReservationNotFound)
		assert.NotErrorIs(t, err, domainerrors.ErrStoreNotFound)
	})

	t.Run("unknown store", func(t *testing.T) {
		fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
		fx.storeRepo.EXPECT().FindByStorename(mock.Anything, "Nowhere").Return(nil, repository.ErrStoreNotFound)

		_, err := fx.service.SearchByKiosk(context.Background(), testPartnerUID, "Nowhere", "김철수", "010-3333-4444", page)
		assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
	})

	t.Run("match", func(t *testing.T) {
		fx := createTestReservationService(t, at(2024, time.May, 10, 12, 0), false)
		fx.expectStore()
		found := fx.reservation(entity.ReservationStatusConfirm, at(2024, time.May, 10, 19, 0))
		fx.reservationRepo.EXPECT().
			FindAllByUnderNameAndPhoneAndStoreAndStatus(mock.Anything, "김철수", "010-3333-4444", fx.store.ID, entity.ReservationStatusConfirm, page).
			Return(entity.NewPage([]*entity.Reservation{found}, page, 1), nil)

		result, err := fx.service.SearchByKiosk(context.Background(), testPartnerUID, testStorename, "김철수", "010-3333-4444", page)
		require.NoError(t, err)
		require.Len(t, result.Content, 1)
		assert.Equal(t, found.UID, result.Content[0].UID)
	})
}

func TestReservationService_SweepNoShows(t *testing.T) {
	now := at(2024, time.May, 10, 0, 5)
	fx := createTestReservationService(t, now, false)

	yesterday := []*entity.Reservation{
		fx.reservation(entity.ReservationStatusConfirm, at(2024, time.May, 9, 12, 0)),
		fx.reservation(entity.ReservationStatusConfirm, at(2024, time.May, 9, 18, 30)),
		fx.reservation(entity.ReservationStatusConfirm, at(2024, time.May, 9, 23, 59)),
	}
	today := fx.reservation(entity.ReservationStatusConfirm, at(2024, time.May, 10, 12, 0))
	waiting := fx.reservation(entity.ReservationStatusWaiting, at(2024, time.May, 9, 12, 0))

	table := newReservationTable(append(yesterday, today, waiting)...)
	table.bind(fx.reservationRepo)

	result, err := fx.service.SweepNoShows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, at(2024, time.May, 10, 0, 0), result.Cutoff)
	assert.Equal(t, 3, result.Matched)
	assert.Equal(t, 3, result.Swept)
	assert.Equal(t, 0, result.Failed)

	for _, r := range yesterday {
		assert.Equal(t, entity.ReservationStatusNoShow, table.get(r.UID).Status)
	}
	assert.Equal(t, entity.ReservationStatusConfirm, table.get(today.UID).Status)
	assert.Equal(t, entity.ReservationStatusWaiting, table.get(waiting.UID).Status)

	again, err := fx.service.SweepNoShows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, again.Matched)
	assert.Equal(t, 0, again.Swept)
}

func TestReservationService_SweepNoShows_SkipsFailures(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 0, 5), false)

	ok1 := fx.reservation(entity.ReservationStatusConfirm, at(2024, time.May, 9, 12, 0))
	stale := fx.reservation(entity.ReservationStatusConfirm, at(2024, time.May, 9, 13, 0))
	ok2 := fx.reservation(entity.ReservationStatusConfirm, at(2024, time.May, 8, 12, 0))

	fx.reservationRepo.EXPECT().
		FindAllByStatusAndDateTimeBefore(mock.Anything, entity.ReservationStatusConfirm, at(2024, time.May, 10, 0, 0)).
		Return([]*entity.Reservation{ok1, stale, ok2}, nil)
	fx.reservationRepo.EXPECT().Save(mock.Anything, stale).Return(repository.ErrStaleReservation).Once()
	fx.reservationRepo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.Reservation")).Return(nil).Twice()

	result, err := fx.service.SweepNoShows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Matched)
	assert.Equal(t, 2, result.Swept)
	assert.Equal(t, 1, result.Failed)
}

func TestReservationService_SweepNoShows_QueryFailure(t *testing.T) {
	fx := createTestReservationService(t, at(2024, time.May, 10, 0, 5), false)
	fx.reservationRepo.EXPECT().
		FindAllByStatusAndDateTimeBefore(mock.Anything, entity.ReservationStatusConfirm, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := fx.service.SweepNoShows(context.Background())
	assert.Error(t, err)
}
