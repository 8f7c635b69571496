package model

import "time"

type Task struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Deadline time.Time `gorm:"not null"`
	Title    string    `gorm:"not null"`
	Memo     string    `gorm:"not null"`
}

// NewTask is the insert payload built from a validated create request.
type NewTask struct {
	Deadline time.Time
	Title    string
	Memo     string
}
