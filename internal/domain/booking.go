package domain

import (
	"time"

	"github.com/premiermedia/AdBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusDraft     BookingStatus = "DRAFT"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Valid returns true for a known booking status
func (s BookingStatus) Valid() bool {
	return s == StatusDraft || s == StatusConfirmed || s == StatusCancelled
}

// ConsumesCapacity returns true if bookings in this status count against inventory
func (s BookingStatus) ConsumesCapacity() bool {
	return s == StatusConfirmed
}

// Department identifies the business unit that owns a booking
type Department string

const (
	DepartmentSales       Department = "SALES"
	DepartmentMarketing   Department = "MARKETING"
	DepartmentFundraising Department = "FUNDRAISING"
	DepartmentInternal    Department = "INTERNAL"
)

// Valid returns true for a known department
func (d Department) Valid() bool {
	switch d {
	case DepartmentSales, DepartmentMarketing, DepartmentFundraising, DepartmentInternal:
		return true
	}
	return false
}

// Booking represents a confirmed reservation of inventory, or an
// administrator-created blackout record (IsBlocked = true).
type Booking struct {
	ID           string
	ClientName   string
	CampaignName string

	// StartDate/EndDate are the inclusive flight range. For email-type
	// bookings they are derived as min/max of EmailDates and are not
	// independently meaningful.
	StartDate types.DateString
	EndDate   types.DateString

	BookingType ChannelType
	Department  Department
	Status      BookingStatus

	// AudioTargetID points at a specific AUDIO channel; nil means
	// run-of-network, consuming only the aggregate type total.
	AudioTargetID *string

	AudioSpots         int
	DisplayImpressions int

	// EmailDates is the explicit set of send dates for the email types;
	// each date consumes exactly one slot.
	EmailDates []types.DateString

	// TargetChannelID is the explicit ADS_IN_ESEND channel reference,
	// recorded at creation time.
	TargetChannelID *string

	// TargetListIDs are the distribution list ids selected for a bespoke
	// send, recorded at creation time.
	TargetListIDs []string

	AdditionalDetails map[string]interface{}

	ContractNumber *string
	BookerName     *string
	GeoTarget      *string

	IsBlocked bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Consumption returns the amount this booking counts against the aggregate
// capacity of the given channel type.
func (b *Booking) Consumption(t ChannelType) int {
	switch t {
	case TypeAudio:
		return b.AudioSpots
	case TypeDisplay:
		return b.DisplayImpressions
	default:
		if t.IsEmail() {
			return len(b.EmailDates)
		}
		return 0
	}
}

// HasEmailDate returns true if the booking sends on the exact given date
func (b *Booking) HasEmailDate(d types.DateString) bool {
	for _, ed := range b.EmailDates {
		if ed == d {
			return true
		}
	}
	return false
}

// TargetsChannel returns true if the booking was recorded against the given
// ads-in-esend channel.
func (b *Booking) TargetsChannel(channelID string) bool {
	return b.TargetChannelID != nil && *b.TargetChannelID == channelID
}

// UsesList returns true if the booking was recorded against the given
// distribution list.
func (b *Booking) UsesList(listID string) bool {
	for _, id := range b.TargetListIDs {
		if id == listID {
			return true
		}
	}
	return false
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Status     *BookingStatus // опционально
	Type       *ChannelType   // опционально
	Department *Department    // опционально

	// OverlapStart/OverlapEnd отбирают бронирования, чей диапазон дат
	// пересекается с окном запроса (booking.start <= end AND booking.end >= start).
	OverlapStart *types.DateString
	OverlapEnd   *types.DateString

	// ExcludeID исключает бронирование из выборки. Используется при
	// ревалидации правил во время редактирования.
	ExcludeID *string
}
