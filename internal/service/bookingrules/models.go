package bookingrules

import (
	"github.com/premiermedia/AdBookingService/internal/domain"
	"github.com/premiermedia/AdBookingService/pkg/types"
)

// Rule identifiers reported in validation results
const (
	RuleSundayBlackout        = "sunday_blackout"
	RuleDepartmentExclusivity = "department_exclusivity"
	RuleSalesWeeklyCap        = "sales_weekly_cap"
	RuleMonthlyListCap        = "monthly_list_cap"
)

// Request описывает проверяемое бронирование
type Request struct {
	Department  domain.Department
	BookingType domain.ChannelType
	Dates       []types.DateString
	ListIDs     []string

	// ExcludeBookingID исключает бронирование из существующей занятости.
	// Передается при ревалидации во время редактирования, чтобы
	// бронирование не конфликтовало само с собой.
	ExcludeBookingID *string
}

// Result результат проверки правил. При Valid == false заполнены Rule и
// Message - первое нарушенное правило; проверки никогда не агрегируются.
type Result struct {
	Valid   bool
	Rule    string
	Message string
}

func ok() *Result {
	return &Result{Valid: true}
}

func violated(rule, message string) *Result {
	return &Result{Valid: false, Rule: rule, Message: message}
}
