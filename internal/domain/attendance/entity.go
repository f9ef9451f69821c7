package attendance

import "time"

// Event kinds as stored by the biometric devices.
const (
	EventEntry = "entrada"
	EventExit  = "salida"
)

// Company policy constants. Lateness uses strict greater-than: an entry at
// exactly 08:10:00 is on time.
const (
	LateThreshold = "08:10:00"
	WorkDayEnd    = "17:00:00"
)

// Record is one punch from a biometric device. Append-only; a day may hold
// zero, one or many entries/exits per employee.
type Record struct {
	ID                 int64
	EmployeeID         int64
	DeviceID           string
	EventKind          string
	OccurredAt         time.Time
	BiometricValidated bool
	Note               *string
}
