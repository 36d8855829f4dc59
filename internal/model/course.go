package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type CourseStatus string

const (
	CourseStatusActive    CourseStatus = "active"
	CourseStatusCompleted CourseStatus = "completed"
	CourseStatusCancelled CourseStatus = "cancelled"
)

// IsValid проверяет, что статус курса входит в допустимый набор.
func (s CourseStatus) IsValid() bool {
	switch s {
	case CourseStatusActive, CourseStatusCompleted, CourseStatusCancelled:
		return true
	}
	return false
}

// Course — курс, который ведёт один репетитор.
// MonthPrice хранится строкой как ввёл пользователь ("1500 руб."),
// числовое значение извлекается через ParsePrice.
type Course struct {
	ID          uuid.UUID
	Name        string
	Tutor       *Tutor
	Subject     string
	Description string
	Time        string
	MonthPrice  string
	Status      CourseStatus
	Students    []*Student
	Lessons     []*Lesson
}

// NewCourse создаёт курс. Все проверки выполняются до присвоения полей —
// частично валидных курсов не бывает.
func NewCourse(name string, tutor *Tutor, subject, description, timeSlot, monthPrice string, status CourseStatus) (*Course, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: course name must not be blank", ErrValidation)
	}
	if tutor == nil {
		return nil, fmt.Errorf("%w: course %q requires a tutor", ErrValidation, name)
	}
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("%w: course %q subject must not be blank", ErrValidation, name)
	}
	if _, err := ParsePrice(monthPrice); err != nil {
		return nil, fmt.Errorf("%w: course %q price %q: %v", ErrValidation, name, monthPrice, err)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: course %q status %q is not one of active/completed/cancelled", ErrValidation, name, status)
	}

	return &Course{
		ID:          uuid.New(),
		Name:        name,
		Tutor:       tutor,
		Subject:     subject,
		Description: description,
		Time:        timeSlot,
		MonthPrice:  monthPrice,
		Status:      status,
	}, nil
}

// AddStudent записывает студента на курс. Обе стороны связи обновляются
// вместе, повторная запись отклоняется до изменения любой из сторон.
func (c *Course) AddStudent(student *Student) error {
	if student == nil {
		return fmt.Errorf("%w: student must not be nil", ErrEnrollment)
	}
	if c.HasStudent(student.ID) || student.IsEnrolledIn(c) {
		return fmt.Errorf("%w: student %q is already enrolled in course %q", ErrEnrollment, student.FullName(), c.Name)
	}
	c.Students = append(c.Students, student)
	student.EnrolledCourses = append(student.EnrolledCourses, c)
	return nil
}

// HasStudent проверяет, записан ли студент на курс.
func (c *Course) HasStudent(id uuid.UUID) bool {
	for _, s := range c.Students {
		if s.ID == id {
			return true
		}
	}
	return false
}

// AddLesson добавляет урок в курс, дубликаты отклоняются.
func (c *Course) AddLesson(lesson *Lesson) error {
	if lesson == nil {
		return fmt.Errorf("%w: lesson must not be nil", ErrLesson)
	}
	if c.HasLesson(lesson.ID) {
		return fmt.Errorf("%w: lesson %q is already in course %q", ErrLesson, lesson.Name, c.Name)
	}
	c.Lessons = append(c.Lessons, lesson)
	return nil
}

// HasLesson проверяет, входит ли урок в курс.
func (c *Course) HasLesson(id uuid.UUID) bool {
	for _, l := range c.Lessons {
		if l.ID == id {
			return true
		}
	}
	return false
}

// ChangeStatus меняет статус курса с проверкой допустимости.
func (c *Course) ChangeStatus(status CourseStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: status %q is not one of active/completed/cancelled", ErrValidation, status)
	}
	c.Status = status
	return nil
}
