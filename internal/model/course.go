// internal/model/course.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ValidationMode string

const (
	ValidationModeRead ValidationMode = "read"
	ValidationModePro  ValidationMode = "pro"
	ValidationModeQCM  ValidationMode = "qcm"
)

func (m ValidationMode) Valid() bool {
	switch m {
	case ValidationModeRead, ValidationModePro, ValidationModeQCM:
		return true
	}
	return false
}

// Course は講師が所有するレッスンの集合です
type Course struct {
	CourseID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"course_id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Published   bool      `gorm:"not null;default:false" json:"published"`
	// 講師ごとの表示順。一意性は保証しない
	Position  int       `gorm:"not null;default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner   *User    `gorm:"foreignKey:OwnerID;references:UserID" json:"-"`
	Lessons []Lesson `gorm:"foreignKey:CourseID;references:CourseID" json:"lessons,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Lesson はコース内の順序付きの学習単位です
type Lesson struct {
	LessonID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"lesson_id"`
	CourseID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_course_position,unique" json:"course_id"`
	Position       int            `gorm:"not null;index:idx_course_position,unique" json:"order"`
	Title          string         `gorm:"not null" json:"title"`
	ValidationMode ValidationMode `gorm:"type:varchar(10);not null;default:'read'" json:"validation_mode"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Course *Course `gorm:"foreignKey:CourseID;references:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Lesson) TableName() string {
	return "lessons"
}

type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Published   bool   `json:"published"`
}

// CreateLessonRequest は order を受け付けない。末尾に追加される。
type CreateLessonRequest struct {
	Title          string         `json:"title" validate:"required,max=200"`
	ValidationMode ValidationMode `json:"validation_mode" validate:"required,oneof=read pro qcm"`
}

// ReorderRequest は並び替えAPIのリクエストボディ
type ReorderRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

type ReorderCoursesResponse struct {
	UpdatedCount int64 `json:"updated_count"`
}
