package flatfile

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/viajenepal/tourism-core/internal/domain/entity"
	"github.com/viajenepal/tourism-core/internal/domain/repository"
)

var _ repository.EmergencyLog = (*EmergencyLog)(nil)

// EmergencyLog escribe reportes de emergencia en emergencies.txt: un log de
// solo-append delimitado por pipes, fuera del modelo de entidades
// estructurado.
type EmergencyLog struct {
	mu   sync.Mutex
	path string
}

// NewEmergencyLog construye el log sobre la ruta dada.
func NewEmergencyLog(path string) *EmergencyLog {
	return &EmergencyLog{path: path}
}

// Append agrega un reporte al final del log.
func (l *EmergencyLog) Append(r *entity.EmergencyReport) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	record := strings.Join([]string{
		r.ID,
		r.UserID,
		r.UserName,
		r.Kind,
		r.Location,
		r.Description,
		r.Contact,
		r.BookingID,
		r.Severity,
		r.ReportedOn.Format(bookingDateLayout),
	}, "|")

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("abrir %s para append: %w", l.path, err)
	}
	if _, err := f.WriteString(record + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("escribir en %s: %w", l.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", l.path, err)
	}
	return nil
}
