package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestion_Validation(t *testing.T) {
	_, err := NewQuestion("", []string{"a", "b"}, 0)
	assert.ErrorIs(t, err, ErrValidation, "blank text")

	_, err = NewQuestion("Вопрос?", []string{"a"}, 0)
	assert.ErrorIs(t, err, ErrValidation, "single option")

	_, err = NewQuestion("Вопрос?", []string{"a", "b"}, 2)
	assert.ErrorIs(t, err, ErrValidation, "index out of range")

	_, err = NewQuestion("Вопрос?", []string{"a", "b"}, -1)
	assert.ErrorIs(t, err, ErrValidation, "negative index")
}

func TestAddQuestion_DuplicateRejected(t *testing.T) {
	course := newTestCourse(t, newTestTutor(t))
	lesson := newTestLesson(t, course, "Урок", "17:00", "18:00", "2024-09-02")
	test, err := NewTest("Самопроверка", lesson)
	require.NoError(t, err)

	question, err := NewQuestion("Вопрос?", []string{"a", "b"}, 0)
	require.NoError(t, err)

	require.NoError(t, test.AddQuestion(question))
	assert.ErrorIs(t, test.AddQuestion(question), ErrValidation)
	assert.Len(t, test.Questions, 1)
}

func TestCalculateScore(t *testing.T) {
	course := newTestCourse(t, newTestTutor(t))
	lesson := newTestLesson(t, course, "Урок", "17:00", "18:00", "2024-09-02")
	test, err := NewTest("Самопроверка", lesson)
	require.NoError(t, err)

	for _, correct := range []int{1, 1, 2} {
		question, err := NewQuestion("Вопрос?", []string{"a", "b", "c"}, correct)
		require.NoError(t, err)
		require.NoError(t, test.AddQuestion(question))
	}

	score, err := test.CalculateScore([]int{1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, score)

	score, err = test.CalculateScore([]int{1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, score)

	// Число ответов должно совпадать с числом вопросов
	_, err = test.CalculateScore([]int{1, 0})
	assert.ErrorIs(t, err, ErrValidation)
}
