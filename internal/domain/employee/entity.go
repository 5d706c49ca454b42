package employee

import "time"

type Employee struct {
	ID          string
	Name        string
	Email       string
	Phone       *string
	Designation *string
	JoiningDate time.Time
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
