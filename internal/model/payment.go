package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// monthNames — допустимые названия месяцев, хранятся в нижнем регистре.
var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

func isValidMonth(month string) bool {
	for _, m := range monthNames {
		if m == month {
			return true
		}
	}
	return false
}

// Payment — оплата курсов студентом за месяц.
type Payment struct {
	ID          uuid.UUID
	Student     *Student
	Month       string
	Year        int
	Courses     []*Course
	TotalAmount float64
	Status      PaymentStatus
	PaymentDate *time.Time
}

// NewPayment создаёт платёж в статусе pending.
// Месяц сравнивается без учёта регистра, хранится в нижнем.
func NewPayment(student *Student, month string, year int) (*Payment, error) {
	if student == nil {
		return nil, fmt.Errorf("%w: payment requires a student", ErrValidation)
	}
	if year < 2020 || year > 2030 {
		return nil, fmt.Errorf("%w: year %d is out of range [2020, 2030]", ErrValidation, year)
	}
	normalized := strings.ToLower(month)
	if !isValidMonth(normalized) {
		return nil, fmt.Errorf("%w: %q is not a month name", ErrValidation, month)
	}

	return &Payment{
		ID:      uuid.New(),
		Student: student,
		Month:   normalized,
		Year:    year,
		Status:  PaymentStatusPending,
	}, nil
}

// AddCourse добавляет курс в платёж и увеличивает сумму на месячную
// цену курса. Дубликаты отклоняются.
func (p *Payment) AddCourse(course *Course) error {
	if course == nil {
		return fmt.Errorf("%w: course must not be nil", ErrPayment)
	}
	if p.HasCourse(course.ID) {
		return fmt.Errorf("%w: course %q is already in the payment", ErrPayment, course.Name)
	}
	amount, err := ParsePrice(course.MonthPrice)
	if err != nil {
		return fmt.Errorf("%w: course %q price %q: %v", ErrPayment, course.Name, course.MonthPrice, err)
	}
	p.Courses = append(p.Courses, course)
	p.TotalAmount += amount
	return nil
}

// HasCourse проверяет, входит ли курс в платёж.
func (p *Payment) HasCourse(id uuid.UUID) bool {
	for _, c := range p.Courses {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Process проводит платёж: проверяет, что есть курсы, сумма
// положительная и платёж ещё не проведён, затем фиксирует статус
// и время оплаты.
func (p *Payment) Process() error {
	if p.Status == PaymentStatusPaid {
		return fmt.Errorf("%w: payment for %s %d is already paid", ErrPayment, p.Month, p.Year)
	}
	if len(p.Courses) == 0 {
		return fmt.Errorf("%w: payment for %s %d has no courses", ErrPayment, p.Month, p.Year)
	}
	if p.TotalAmount <= 0 {
		return fmt.Errorf("%w: payment total %.2f must be positive", ErrPayment, p.TotalAmount)
	}
	now := time.Now()
	p.Status = PaymentStatusPaid
	p.PaymentDate = &now
	return nil
}

// Info возвращает краткое описание платежа.
func (p *Payment) Info() string {
	names := make([]string, len(p.Courses))
	for i, c := range p.Courses {
		names[i] = c.Name
	}
	return fmt.Sprintf("Платеж за %s: %s - %.1f руб.", p.Month, strings.Join(names, ", "), p.TotalAmount)
}

// ParsePrice извлекает число из строки цены: остаются цифры, запятая и
// точка, запятая считается десятичным разделителем. Цена должна быть
// положительной.
func ParsePrice(price string) (float64, error) {
	var b strings.Builder
	for _, r := range price {
		if r >= '0' && r <= '9' || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.ReplaceAll(b.String(), ",", ".")
	if cleaned == "" {
		return 0, fmt.Errorf("no digits in price %q", price)
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", price, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("price %q must be positive", price)
	}
	return value, nil
}
