package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Test — проверочная работа по уроку.
type Test struct {
	ID        uuid.UUID
	Title     string
	Lesson    *Lesson
	Questions []*Question
}

// NewTest создаёт проверочную работу.
func NewTest(title string, lesson *Lesson) (*Test, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: test title must not be blank", ErrValidation)
	}
	if lesson == nil {
		return nil, fmt.Errorf("%w: test %q requires a lesson", ErrValidation, title)
	}

	return &Test{ID: uuid.New(), Title: title, Lesson: lesson}, nil
}

// AddQuestion добавляет вопрос, повторное добавление того же вопроса
// отклоняется.
func (t *Test) AddQuestion(question *Question) error {
	if question == nil {
		return fmt.Errorf("%w: question must not be nil", ErrValidation)
	}
	for _, q := range t.Questions {
		if q == question {
			return fmt.Errorf("%w: question %q is already in test %q", ErrValidation, question.Text, t.Title)
		}
	}
	t.Questions = append(t.Questions, question)
	return nil
}

// CalculateScore считает количество точных совпадений индексов ответов.
// Число ответов должно совпадать с числом вопросов.
func (t *Test) CalculateScore(answers []int) (int, error) {
	if len(answers) != len(t.Questions) {
		return 0, fmt.Errorf("%w: got %d answers for %d questions", ErrValidation, len(answers), len(t.Questions))
	}
	score := 0
	for i, q := range t.Questions {
		if answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score, nil
}

// Question — вопрос с вариантами ответов. Собственной идентичности
// не имеет, живёт внутри проверочной работы.
type Question struct {
	Text          string
	Options       []string
	CorrectAnswer int
}

// NewQuestion создаёт вопрос: минимум два варианта, индекс правильного
// ответа в границах вариантов.
func NewQuestion(text string, options []string, correctAnswer int) (*Question, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: question text must not be blank", ErrValidation)
	}
	if len(options) < 2 {
		return nil, fmt.Errorf("%w: question %q needs at least 2 options, got %d", ErrValidation, text, len(options))
	}
	if correctAnswer < 0 || correctAnswer >= len(options) {
		return nil, fmt.Errorf("%w: question %q correct answer index %d is out of range [0, %d)", ErrValidation, text, correctAnswer, len(options))
	}

	return &Question{Text: text, Options: options, CorrectAnswer: correctAnswer}, nil
}
