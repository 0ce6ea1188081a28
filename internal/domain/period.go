package domain

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var ErrInvalidPeriod = errors.New("período inválido")

// Period identifica um mês de apuração
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewPeriod valida ano e mês
func NewPeriod(year, month int) (Period, error) {
	p := Period{Year: year, Month: month}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// ParsePeriod lê mês (01-12) e ano (4 dígitos) vindos de query string ou formulário
func ParsePeriod(month, year string) (Period, error) {
	if len(year) != 4 {
		return Period{}, fmt.Errorf("%w: ano deve ter quatro dígitos", ErrInvalidPeriod)
	}

	m, err := strconv.Atoi(month)
	if err != nil {
		return Period{}, fmt.Errorf("%w: mês %q", ErrInvalidPeriod, month)
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return Period{}, fmt.Errorf("%w: ano %q", ErrInvalidPeriod, year)
	}

	return NewPeriod(y, m)
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: mês %d", ErrInvalidPeriod, p.Month)
	}
	if p.Year < 2000 || p.Year > 9999 {
		return fmt.Errorf("%w: ano %d", ErrInvalidPeriod, p.Year)
	}
	return nil
}

// String formata o período como mm-yyyy
func (p Period) String() string {
	return fmt.Sprintf("%02d-%04d", p.Month, p.Year)
}

// FirstDay retorna o primeiro dia do mês
func (p Period) FirstDay() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// PeriodOf retorna o período que contém a data
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}
