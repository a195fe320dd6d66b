package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarDay is the attendance record for one (user, date) pair. The
// composite unique index is what makes get-or-create safe under
// concurrent requests for the same date.
type CalendarDay struct {
	ID                    uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID     `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_calendar_days_user_date"`
	Date                  string        `json:"date" gorm:"not null;uniqueIndex:idx_calendar_days_user_date"` // YYYY-MM-DD
	WentToCollege         bool          `json:"wentToCollege" gorm:"default:true"`
	AbsenceType           *string       `json:"absenceType"` // personal, sick, permission
	AbsenceNote           *string       `json:"absenceNote"`
	AbsenceAttachmentURL  *string       `json:"absenceAttachmentUrl"`
	CompletedPlannedTasks bool          `json:"completedPlannedTasks" gorm:"default:false"`
	CreatedAt             time.Time     `json:"createdAt"`
	UpdatedAt             time.Time     `json:"updatedAt"`
	PlannedTasks          []PlannedTask `json:"plannedTasks,omitempty" gorm:"foreignKey:CalendarDayID"`
}

func (d *CalendarDay) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// PlannedTask links a calendar day to a kanban card planned for it.
type PlannedTask struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CalendarDayID uuid.UUID `json:"calendarDayId" gorm:"type:uuid;index;not null"`
	CardID        uuid.UUID `json:"cardId" gorm:"type:uuid;index;not null"`
	Completed     bool      `json:"completed" gorm:"default:false"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (p *PlannedTask) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Attendance DTOs
type UpdateAttendanceRequest struct {
	WentToCollege        *bool   `json:"wentToCollege"`
	AbsenceType          *string `json:"absenceType" validate:"omitempty,oneof=personal sick permission"`
	AbsenceNote          *string `json:"absenceNote"`
	AbsenceAttachmentURL *string `json:"absenceAttachmentUrl"`
}

type MarkTasksCompletedRequest struct {
	Completed bool `json:"completed"`
}

type AddPlannedTaskRequest struct {
	CardID uuid.UUID `json:"cardId" validate:"required"`
}
