package models

import "time"

// StudentStatus enumerates the payment standing of a student.
type StudentStatus string

const (
	StatusActive StudentStatus = "active"
	StatusLate   StudentStatus = "late"
)

// DueDateLayout is the display format for membership due dates.
const DueDateLayout = "02/01/2006"

// Student represents an enrolled gym member.
type Student struct {
	ID      string
	Name    string
	Phone   string
	Plan    string
	DueDate time.Time
	Status  StudentStatus
}

// PlanLabels lists the membership plans offered at registration.
var PlanLabels = []string{"Mensal", "Trimestral", "Semestral", "Anual"}
