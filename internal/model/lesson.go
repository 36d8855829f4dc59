package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Lesson — занятие в рамках курса.
// Date — "YYYY-MM-DD", StartTime/EndTime — "HH:MM"; при таком формате
// лексикографическое сравнение совпадает с хронологическим.
type Lesson struct {
	ID          uuid.UUID
	Name        string
	Description string
	Course      *Course
	StartTime   string
	EndTime     string
	Date        string
	Homeworks   []*Homework
}

// NewLesson создаёт урок. Время начала должно быть строго меньше времени
// окончания.
func NewLesson(name, description string, course *Course, startTime, endTime, date string) (*Lesson, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: lesson name must not be blank", ErrValidation)
	}
	if course == nil {
		return nil, fmt.Errorf("%w: lesson %q requires a course", ErrValidation, name)
	}
	if startTime >= endTime {
		return nil, fmt.Errorf("%w: lesson %q start time %q must be before end time %q", ErrValidation, name, startTime, endTime)
	}

	return &Lesson{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Course:      course,
		StartTime:   startTime,
		EndTime:     endTime,
		Date:        date,
	}, nil
}

// AddHomework прикрепляет домашнее задание к уроку, дубликаты отклоняются.
func (l *Lesson) AddHomework(homework *Homework) error {
	if homework == nil {
		return fmt.Errorf("%w: homework must not be nil", ErrValidation)
	}
	if l.HasHomework(homework.ID) {
		return fmt.Errorf("%w: homework %q is already attached to lesson %q", ErrValidation, homework.Title, l.Name)
	}
	l.Homeworks = append(l.Homeworks, homework)
	return nil
}

// HasHomework проверяет, прикреплено ли задание к уроку.
func (l *Lesson) HasHomework(id uuid.UUID) bool {
	for _, h := range l.Homeworks {
		if h.ID == id {
			return true
		}
	}
	return false
}
