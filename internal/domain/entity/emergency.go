package entity

import "time"

// Severidad de un reporte de emergencia.
const (
	EmergencySeverityNormal   = "NORMAL"
	EmergencySeverityCritical = "CRITICAL"
)

// EmergencyReport es un registro del log de emergencias (emergencies.txt).
// Es un formato colaborador de solo-append, separado por pipes; no forma
// parte del modelo de entidades estructurado.
type EmergencyReport struct {
	ID          string
	UserID      string
	UserName    string
	Kind        string
	Location    string
	Description string
	Contact     string
	BookingID   string
	Severity    string
	ReportedOn  time.Time
}
