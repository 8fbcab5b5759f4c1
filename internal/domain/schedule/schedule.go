// Package schedule contiene las reglas de horario de los coworkings: conversión de horas
// "HH:MM" a minutos desde medianoche (reloj de 24 horas) y el control de admisión de reservas.
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/coco-api/internal/domain"
)

// MinutesPerDay minutos de un día operativo.
const MinutesPerDay = 24 * 60

// ToMinutes convierte "HH:MM" o "HH:MM:SS" a minutos desde medianoche.
// Los segundos se aceptan pero se descartan.
func ToMinutes(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: hora %q, se espera HH:MM", domain.ErrInvalidInput, clock)
	}
	hh, err := parseField(parts[0], 23)
	if err != nil {
		return 0, fmt.Errorf("%w: hora %q", domain.ErrInvalidInput, clock)
	}
	mm, err := parseField(parts[1], 59)
	if err != nil {
		return 0, fmt.Errorf("%w: minutos %q", domain.ErrInvalidInput, clock)
	}
	if len(parts) == 3 {
		if _, err := parseField(parts[2], 59); err != nil {
			return 0, fmt.Errorf("%w: segundos %q", domain.ErrInvalidInput, clock)
		}
	}
	return hh*60 + mm, nil
}

func parseField(s string, max int) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, fmt.Errorf("longitud inválida")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > max {
		return 0, fmt.Errorf("fuera de rango")
	}
	return n, nil
}

// Format devuelve la forma canónica "HH:MM" de una cantidad de minutos desde medianoche.
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Normalize valida una hora y la devuelve en forma canónica "HH:MM".
func Normalize(clock string) (string, error) {
	m, err := ToMinutes(clock)
	if err != nil {
		return "", err
	}
	return Format(m), nil
}

// Window horario de atención [Open, Close] en minutos, ambos inclusivos.
type Window struct {
	Open  int
	Close int
}

// NewWindow construye el horario desde las horas de apertura y cierre.
// Devuelve ErrInvalidInput si alguna no es válida o si Open > Close (no hay horarios nocturnos).
func NewWindow(open, close string) (Window, error) {
	o, err := ToMinutes(open)
	if err != nil {
		return Window{}, err
	}
	c, err := ToMinutes(close)
	if err != nil {
		return Window{}, err
	}
	if o > c {
		return Window{}, fmt.Errorf("%w: apertura %s posterior al cierre %s", domain.ErrInvalidInput, open, close)
	}
	return Window{Open: o, Close: c}, nil
}

// Contains informa si minute está dentro del horario (límites inclusivos).
func (w Window) Contains(minute int) bool {
	return minute >= w.Open && minute <= w.Close
}

// Admit valida una hora de reserva contra el horario.
// Una reserva exactamente a la hora de apertura o de cierre se acepta.
func (w Window) Admit(reservationTime string) error {
	m, err := ToMinutes(reservationTime)
	if err != nil {
		return err
	}
	if !w.Contains(m) {
		return fmt.Errorf("%w: la hora de reserva %s es antes de la apertura (%s) o después del cierre (%s)",
			domain.ErrOutOfHours, reservationTime, Format(w.Open), Format(w.Close))
	}
	return nil
}
