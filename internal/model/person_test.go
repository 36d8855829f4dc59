package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTutor(t *testing.T) *Tutor {
	t.Helper()
	tutor, err := NewTutor("Анна", "Петрова", 35, "+79001234567", "anna@example.com", 1, "Математика", 10, "bio")
	require.NoError(t, err)
	return tutor
}

func newTestStudent(t *testing.T) *Student {
	t.Helper()
	student, err := NewStudent("Иван", "Иванов", 16, "+79007654321", "ivan@example.com", 2, 10)
	require.NoError(t, err)
	return student
}

func newTestCourse(t *testing.T, tutor *Tutor) *Course {
	t.Helper()
	course, err := NewCourse("Алгебра", tutor, "Математика", "", "пн 17:00", "1500 руб.", CourseStatusActive)
	require.NoError(t, err)
	return course
}

func TestNewStudent(t *testing.T) {
	student := newTestStudent(t)

	assert.Equal(t, "Иван Иванов", student.FullName())
	assert.Equal(t, RoleStudent, student.Role)
	assert.Equal(t, 10, student.Grade)
	assert.NotNil(t, student.Schedule)
	assert.Same(t, student, student.Schedule.Student)
	assert.NotEqual(t, uuid.Nil, student.ID)
}

func TestNewStudent_Validation(t *testing.T) {
	cases := []struct {
		name      string
		firstName string
		lastName  string
		age       int
		email     string
		grade     int
	}{
		{"digits in first name", "Ivan42", "Иванов", 16, "ivan@example.com", 10},
		{"blank last name", "Иван", "", 16, "ivan@example.com", 10},
		{"email without at", "Иван", "Иванов", 16, "ivan.example.com", 10},
		{"age above range", "Иван", "Иванов", 101, "ivan@example.com", 10},
		{"age below range", "Иван", "Иванов", -1, "ivan@example.com", 10},
		{"grade too low", "Иван", "Иванов", 16, "ivan@example.com", 0},
		{"grade too high", "Иван", "Иванов", 16, "ivan@example.com", 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewStudent(tc.firstName, tc.lastName, tc.age, "+7900", tc.email, 1, tc.grade)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNewStudent_HyphenatedName(t *testing.T) {
	student, err := NewStudent("Анна-Мария", "Иванова", 15, "+7900", "am@example.com", 3, 9)
	require.NoError(t, err)
	assert.Equal(t, "Анна-Мария Иванова", student.FullName())
}

func TestNewTutor_Validation(t *testing.T) {
	_, err := NewTutor("Анна", "Петрова", 35, "+7900", "anna@example.com", 1, "   ", 10, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewTutor("Анна", "Петрова", 35, "+7900", "anna@example.com", 1, "Математика", -1, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChooseCourse(t *testing.T) {
	tutor := newTestTutor(t)
	student := newTestStudent(t)
	course := newTestCourse(t, tutor)

	require.NoError(t, student.ChooseCourse(course))

	// Обе стороны связи обновлены, ровно по одному разу
	assert.Len(t, student.EnrolledCourses, 1)
	assert.Len(t, course.Students, 1)
	assert.True(t, student.IsEnrolledIn(course))
	assert.True(t, course.HasStudent(student.ID))
}

func TestChooseCourse_DuplicateRejected(t *testing.T) {
	tutor := newTestTutor(t)
	student := newTestStudent(t)
	course := newTestCourse(t, tutor)

	require.NoError(t, student.ChooseCourse(course))
	err := student.ChooseCourse(course)
	assert.ErrorIs(t, err, ErrEnrollment)

	// Повторная запись не меняет ни одну из сторон
	assert.Len(t, student.EnrolledCourses, 1)
	assert.Len(t, course.Students, 1)
}

func TestTutorCreateCourse(t *testing.T) {
	tutor := newTestTutor(t)

	course, err := tutor.CreateCourse("Геометрия", "Математика", "", "вт 16:00", "2000 руб.", CourseStatusActive)
	require.NoError(t, err)

	assert.True(t, tutor.Teaches(course))
	assert.Same(t, tutor, course.Tutor)
}
