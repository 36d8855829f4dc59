package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Homework — домашнее задание, прикреплённое к уроку.
// Submissions ключуются идентификатором студента: повторная сдача
// заменяет предыдущую.
type Homework struct {
	ID          uuid.UUID
	Title       string
	Description string
	Lesson      *Lesson
	Deadline    string
	MaxScore    int
	Attachments []string
	Submissions map[uuid.UUID]*HomeworkSubmission
}

// NewHomework создаёт домашнее задание.
func NewHomework(title, description string, lesson *Lesson, deadline string, maxScore int) (*Homework, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: homework title must not be blank", ErrValidation)
	}
	if lesson == nil {
		return nil, fmt.Errorf("%w: homework %q requires a lesson", ErrValidation, title)
	}
	if maxScore <= 0 {
		return nil, fmt.Errorf("%w: homework %q max score %d must be positive", ErrValidation, title, maxScore)
	}

	return &Homework{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Lesson:      lesson,
		Deadline:    deadline,
		MaxScore:    maxScore,
		Submissions: make(map[uuid.UUID]*HomeworkSubmission),
	}, nil
}

// AddAttachment прикрепляет материал к заданию.
func (h *Homework) AddAttachment(path string) {
	h.Attachments = append(h.Attachments, path)
}

// AddSubmission регистрирует сдачу. Повторная сдача того же студента
// заменяет предыдущую.
func (h *Homework) AddSubmission(sub *HomeworkSubmission) error {
	if sub == nil {
		return fmt.Errorf("%w: submission must not be nil", ErrValidation)
	}
	if sub.Homework == nil || sub.Homework.ID != h.ID {
		return fmt.Errorf("%w: submission belongs to a different homework", ErrValidation)
	}
	h.Submissions[sub.Student.ID] = sub
	return nil
}

// HomeworkSubmission — сдача домашнего задания студентом.
type HomeworkSubmission struct {
	ID            uuid.UUID
	Student       *Student
	Homework      *Homework
	Answer        string
	SubmittedDate string
	Score         *int
	Feedback      string
}

// NewHomeworkSubmission создаёт сдачу задания.
func NewHomeworkSubmission(student *Student, homework *Homework, answer, submittedDate string) (*HomeworkSubmission, error) {
	if student == nil {
		return nil, fmt.Errorf("%w: submission requires a student", ErrValidation)
	}
	if homework == nil {
		return nil, fmt.Errorf("%w: submission requires a homework", ErrValidation)
	}
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("%w: submission answer must not be blank", ErrValidation)
	}

	return &HomeworkSubmission{
		ID:            uuid.New(),
		Student:       student,
		Homework:      homework,
		Answer:        answer,
		SubmittedDate: submittedDate,
	}, nil
}

// SetScore выставляет оценку с отзывом. Оценка должна попадать в
// диапазон [0, MaxScore].
func (s *HomeworkSubmission) SetScore(score int, feedback string) error {
	if score < 0 {
		return fmt.Errorf("%w: score %d must not be negative", ErrValidation, score)
	}
	if score > s.Homework.MaxScore {
		return fmt.Errorf("%w: score %d exceeds max score %d", ErrValidation, score, s.Homework.MaxScore)
	}
	s.Score = &score
	s.Feedback = feedback
	return nil
}

// ScorePercentage возвращает процент от максимальной оценки,
// 0 если оценка не выставлена.
func (s *HomeworkSubmission) ScorePercentage() float64 {
	if s.Score == nil {
		return 0
	}
	return float64(*s.Score) / float64(s.Homework.MaxScore) * 100
}

// GradeLetter переводит процент в пятибалльную оценку.
func (s *HomeworkSubmission) GradeLetter() string {
	percentage := s.ScorePercentage()
	switch {
	case percentage >= 90:
		return "5"
	case percentage >= 70:
		return "4"
	case percentage >= 50:
		return "3"
	default:
		return "2"
	}
}
