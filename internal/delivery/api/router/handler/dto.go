package handler

import (
	"time"

	"github.com/nadoran78/mytable/internal/domain/entity"
)

const (
	timeLayout     = "15:04:05"
	maskedPassword = "**********"
)

// --- Accounts ---

// SignUpRequest is the body of POST /sign-up/{kind}.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,membername"`
	Password string `json:"password" validate:"required,password"`
	Phone    string `json:"phone" validate:"required,mobile"`
	Birth    string `json:"birth" validate:"required,datetime=2006-01-02"`
}

// SignInRequest is the body of POST /sign-in/{kind}.
type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignInResponse carries the issued identity token.
type SignInResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}

// UpdateMemberRequest replaces the caller's profile; omitted fields are kept.
type UpdateMemberRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Name     string `json:"name" validate:"omitempty,membername"`
	Password string `json:"password" validate:"omitempty,password"`
	Phone    string `json:"phone" validate:"omitempty,mobile"`
	Birth    string `json:"birth" validate:"omitempty,datetime=2006-01-02"`
}

// WithdrawRequest re-confirms the password before deleting an account.
type WithdrawRequest struct {
	Password string `json:"password" validate:"required"`
}

// MemberInfoResponse is the public view of an account. The password is always masked.
type MemberInfoResponse struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Birth    string `json:"birth"`
}

func newMemberInfoResponse(a *entity.Account) MemberInfoResponse {
	resp := MemberInfoResponse{
		UID:      a.UID,
		Email:    a.Email,
		Name:     a.Name,
		Password: maskedPassword,
		Phone:    a.Phone,
	}
	if !a.Birth.IsZero() {
		resp.Birth = a.Birth.Format(dateLayout)
	}

	return resp
}

// --- Stores ---

// TableRequest describes one group of identical tables.
type TableRequest struct {
	Volume int `json:"volume" validate:"min=1"`
	Amount int `json:"amount" validate:"min=0"`
}

// StoreRequest is the body of store registration and update.
type StoreRequest struct {
	Storename     string         `json:"storename" validate:"required"`
	Phone         string         `json:"phone" validate:"omitempty,phone"`
	Sido          string         `json:"sido" validate:"required"`
	Sigungu       string         `json:"sigungu" validate:"required"`
	Roadname      string         `json:"roadname" validate:"required"`
	DetailAddress string         `json:"detailAddress" validate:"required"`
	Description   string         `json:"description" validate:"required"`
	Tables        []TableRequest `json:"tables" validate:"omitempty,dive"`
}

func (r *StoreRequest) tables() []entity.Table {
	if len(r.Tables) == 0 {
		return nil
	}

	tables := make([]entity.Table, len(r.Tables))
	for i, t := range r.Tables {
		tables[i] = entity.Table{Volume: t.Volume, Amount: t.Amount}
	}

	return tables
}

// AddressResponse is the structured store address.
type AddressResponse struct {
	Sido          string `json:"sido"`
	Sigungu       string `json:"sigungu"`
	Roadname      string `json:"roadname"`
	DetailAddress string `json:"detailAddress"`
}

// StoreResponse is the public view of a store.
type StoreResponse struct {
	Storename   string          `json:"storename"`
	Phone       string          `json:"phone"`
	Address     AddressResponse `json:"address"`
	Description string          `json:"description"`
	Tables      []TableRequest  `json:"tables,omitempty"`
}

func newStoreResponse(s *entity.Store) StoreResponse {
	resp := StoreResponse{
		Storename: s.Storename,
		Phone:     s.Phone,
		Address: AddressResponse{
			Sido:          s.Address.Sido,
			Sigungu:       s.Address.Sigungu,
			Roadname:      s.Address.Roadname,
			DetailAddress: s.Address.DetailAddress,
		},
		Description: s.Description,
	}

	if s.Restaurant != nil {
		for _, t := range s.Restaurant.Tables {
			resp.Tables = append(resp.Tables, TableRequest{Volume: t.Volume, Amount: t.Amount})
		}
	}

	return resp
}

// --- Reservations ---

// ReservationRequest is the body of reservation create and update. uid and status are
// server-assigned and must be absent.
type ReservationRequest struct {
	UID                *string `json:"uid" validate:"isdefault"`
	Date               string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time               string  `json:"time" validate:"required,datetime=15:04:05"`
	UnderName          *string `json:"underName" validate:"required"`
	Phone              string  `json:"phone" validate:"required,mobile"`
	SpecialInstruction string  `json:"specialInstruction"`
	Storename          string  `json:"storename" validate:"required"`
	Status             *string `json:"status" validate:"isdefault"`
	NumberOfPeople     *int    `json:"numberOfPeople" validate:"omitempty,min=1"`
}

// ArrivalQRRequest is a kiosk scan of a customer's check-in code.
type ArrivalQRRequest struct {
	Storename string `json:"storename" validate:"required"`
	QRData    string `json:"qrData" validate:"required"`
}

// ReservationResponse is the external view of a reservation.
type ReservationResponse struct {
	UID                string `json:"uid"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	UnderName          string `json:"underName"`
	Phone              string `json:"phone"`
	SpecialInstruction string `json:"specialInstruction"`
	Storename          string `json:"storename"`
	Status             string `json:"status"`
	NumberOfPeople     *int   `json:"numberOfPeople,omitempty"`
}

func reservationMapper(loc *time.Location) func(*entity.Reservation) ReservationResponse {
	return func(r *entity.Reservation) ReservationResponse {
		local := r.DateTime.In(loc)

		return ReservationResponse{
			UID:                r.UID,
			Date:               local.Format(dateLayout),
			Time:               local.Format(timeLayout),
			UnderName:          r.UnderName,
			Phone:              r.Phone,
			SpecialInstruction: r.SpecialInstruction,
			Storename:          r.Storename,
			Status:             r.Status.String(),
			NumberOfPeople:     r.NumberOfPeople,
		}
	}
}

// CreateReservationResponse reports SUCCESS when the partner was notified and FAIL otherwise.
type CreateReservationResponse struct {
	Result      string              `json:"result"`
	Reservation ReservationResponse `json:"reservation"`
}

// --- Reviews ---

// ReviewRequest is the body of review create and update.
type ReviewRequest struct {
	Storename string `json:"storename" validate:"required"`
	Title     string `json:"title" validate:"required,min=2,max=30"`
	Text      string `json:"text" validate:"required,min=5,max=300"`
}

// ReviewResponse is the public view of a review with the writer's name masked.
type ReviewResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Storename string    `json:"storename"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// newReviewResponse expects an already masked name; see maskedReviewResponse.
func newReviewResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID.String(),
		Name:      r.CustomerName,
		Storename: r.Storename,
		Title:     r.Title,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

func maskedReviewResponse(r *entity.Review) ReviewResponse {
	resp := newReviewResponse(r)
	resp.Name = entity.MaskName(r.CustomerName)

	return resp
}
