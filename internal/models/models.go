package models

import "time"

// Payment status values for User.PaymentStatus.
const (
	PaymentPaid    = "PAID"
	PaymentPending = "PENDING"
	PaymentOverdue = "OVERDUE"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	FullName    string `json:"fullName"`
	DisplayName string `json:"displayName,omitempty"`
	Phone       string `gorm:"uniqueIndex;not null" json:"phone"` // normalized, unique trainee identity
	Email       string `json:"email,omitempty"`

	JoinDate      time.Time `json:"joinDate"`
	PaymentStatus string    `json:"paymentStatus"` // PAID | PENDING | OVERDUE
	IsNew         bool      `json:"isNew,omitempty"`
	IsRestricted  bool      `json:"isRestricted,omitempty"`
	Color         string    `json:"color,omitempty"`

	// Historical best monthly attendance, kept as a record on the trainee.
	BestMonthlyCount int    `json:"bestMonthlyCount,omitempty"`
	BestMonth        string `json:"bestMonth,omitempty"` // "2025-03"

	// Health waiver. DeclarationAt nil until signed.
	HealthDeclarationAt *time.Time `json:"healthDeclarationAt,omitempty"`
	HealthDeclarationID string     `json:"healthDeclarationId,omitempty"` // signature token
	HealthFileName      string     `json:"healthFileName,omitempty"`
	HealthFileData      string     `json:"-"` // inline file content (data URL)
}

type TrainingSession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Type        string    `json:"type"`
	Date        time.Time `gorm:"index" json:"date"` // calendar day, midnight
	StartTime   string    `json:"time"`              // "HH:MM"
	Location    string    `json:"location"`
	MaxCapacity int       `json:"maxCapacity"`
	Description string    `json:"description,omitempty"`

	Registered PhoneList `gorm:"type:text" json:"registeredPhoneNumbers"`
	// Attended is tri-state: nil = attendance never reported (registration is
	// assumed), non-nil = authoritative record, possibly empty.
	Attended    *PhoneList `gorm:"type:text" json:"attendedPhoneNumbers,omitempty"`
	WaitingList PhoneList  `gorm:"type:text" json:"waitingList,omitempty"`

	Color            string `json:"color,omitempty"`
	IsTrial          bool   `json:"isTrial,omitempty"`
	IsZoomSession    bool   `json:"isZoomSession,omitempty"`
	ZoomLink         string `json:"zoomLink,omitempty"`
	IsHidden         bool   `json:"isHidden,omitempty"`
	IsCancelled      bool   `json:"isCancelled,omitempty"`
	ManualHasStarted bool   `json:"manualHasStarted,omitempty"`
}

// StartAt combines the session's calendar day and "HH:MM" start time in loc.
// A malformed StartTime yields midnight.
func (s TrainingSession) StartAt(loc *time.Location) time.Time {
	hour, min := 0, 0
	if t, err := time.Parse("15:04", s.StartTime); err == nil {
		hour, min = t.Hour(), t.Minute()
	}
	d := s.Date
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, loc)
}

// AttendanceReported reports whether the coach has recorded attendance.
func (s TrainingSession) AttendanceReported() bool {
	return s.Attended != nil
}

type LocationDef struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name    string `gorm:"uniqueIndex" json:"name"`
	Address string `json:"address,omitempty"`
	Color   string `json:"color,omitempty"`
}

type WorkoutType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name  string `gorm:"uniqueIndex" json:"name"`
	Color string `json:"color,omitempty"`
}

// AppConfig is a singleton row (ID 1).
type AppConfig struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UpdatedAt time.Time `json:"-"`

	CoachNameHe string `json:"coachNameHe"`
	CoachNameEn string `json:"coachNameEn"`
	CoachPhone  string `json:"coachPhone"`
	CoachEmail  string `json:"coachEmail"`
	DefaultCity string `json:"defaultCity"`

	// Admin panel password. Lives in the legacy "phone2" column, which
	// originally held a secondary contact number.
	AdminPassword string `gorm:"column:phone2" json:"-"`

	// Broadcast banner shown to every trainee when non-empty.
	UrgentMessage string `json:"urgentMessage,omitempty"`
}

type Quote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Text string `json:"text"`
}
