package slot

import "time"

type TimeSlot struct {
	ID        int       `db:"id" json:"id"`
	Date      time.Time `db:"slot_date" json:"date"`
	Time      string    `db:"slot_time" json:"time"`
	Available bool      `db:"available" json:"available"`
	ServiceID *int      `db:"service_id" json:"serviceId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type CreateSlotRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type UpdateSlotRequest struct {
	Available *bool `json:"available" binding:"required"`
}

type BulkGenerateRequest struct {
	StartDate string `json:"startDate" binding:"required"`
}

// DailyTimes is the fixed schedule grid offered by the clinic.
var DailyTimes = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

const dateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
