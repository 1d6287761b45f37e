package domain

// Date/time format constants for user-facing rule messages
const (
	MonthFormat = "Jan 2006"
	DayFormat   = "Jan 2"
)

// DefaultDepartment подставляется для legacy-записей без департамента
const DefaultDepartment = DepartmentSales

// BlockedClientName sentinel-имя клиента для административных блокировок дат
const BlockedClientName = "ADMIN BLOCK"

// SalesWeeklyESendCap максимум bespoke-рассылок отдела продаж за ISO-неделю
const SalesWeeklyESendCap = 2

// monthlyCappedLists maps distribution list ids to display names for the
// lists limited to one send per calendar month. Bookings reference lists by
// id; display names appear only in error messages.
var monthlyCappedLists = map[string]string{
	"list-marketplace":        "Marketplace",
	"list-jobsearch":          "Jobsearch",
	"list-magazines":          "Magazines",
	"list-impact-fundraising": "Impact/Fundraising",
	"list-e-appeal":           "E-appeal",
	"list-united-prayer":      "United Prayer",
}

// IsMonthlyCappedList returns true if the list is limited to 1 send per month
func IsMonthlyCappedList(listID string) bool {
	_, ok := monthlyCappedLists[listID]
	return ok
}

// ListDisplayName returns the display label for a capped list id.
// Unknown ids are returned as-is.
func ListDisplayName(listID string) string {
	if name, ok := monthlyCappedLists[listID]; ok {
		return name
	}
	return listID
}
