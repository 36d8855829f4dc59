// Package model содержит доменную модель платформы онлайн-обучения.
// Здесь нет внешних зависимостей кроме uuid — вся бизнес-логика локальна.
//
// Даты и время хранятся строками фиксированного формата: "YYYY-MM-DD" для
// дат и "HH:MM" для времени. Такие строки сравниваются лексикографически.
package model

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Роли пользователей
const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
)

// Person — общий набор полей студента и репетитора.
// Конкретная роль определяется полем Role.
type Person struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Age       int
	Phone     string
	Email     string
	UserID    int64
	Role      string
}

// FullName возвращает "Имя Фамилия" — вторичный ключ персоны.
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

func newPerson(firstName, lastName string, age int, phone, email string, userID int64, role string) (Person, error) {
	if !isValidName(firstName) {
		return Person{}, fmt.Errorf("%w: first name %q must contain only letters", ErrValidation, firstName)
	}
	if !isValidName(lastName) {
		return Person{}, fmt.Errorf("%w: last name %q must contain only letters", ErrValidation, lastName)
	}
	if age < 0 || age > 100 {
		return Person{}, fmt.Errorf("%w: age %d is out of range [0, 100]", ErrValidation, age)
	}
	if !strings.Contains(email, "@") {
		return Person{}, fmt.Errorf("%w: email %q must contain '@'", ErrValidation, email)
	}

	return Person{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
		Phone:     phone,
		Email:     email,
		UserID:    userID,
		Role:      role,
	}, nil
}

// isValidName — только буквы и дефисы, не пустое.
func isValidName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != '-' {
			return false
		}
	}
	return true
}

// Student — ученик с классом и списком выбранных курсов.
type Student struct {
	Person
	Grade           int
	EnrolledCourses []*Course
	Schedule        *Schedule
}

// NewStudent создаёт студента. Расписание создаётся вместе со студентом.
func NewStudent(firstName, lastName string, age int, phone, email string, userID int64, grade int) (*Student, error) {
	person, err := newPerson(firstName, lastName, age, phone, email, userID, RoleStudent)
	if err != nil {
		return nil, err
	}
	if grade < 1 || grade > 11 {
		return nil, fmt.Errorf("%w: grade %d is out of range [1, 11]", ErrValidation, grade)
	}

	student := &Student{Person: person, Grade: grade}
	student.Schedule = newStudentSchedule(student)
	return student, nil
}

// ChooseCourse записывает студента на курс. Обе стороны связи
// обновляются вместе; повторная запись — ошибка.
func (s *Student) ChooseCourse(course *Course) error {
	return course.AddStudent(s)
}

// IsEnrolledIn проверяет, записан ли студент на курс.
func (s *Student) IsEnrolledIn(course *Course) bool {
	for _, c := range s.EnrolledCourses {
		if c.ID == course.ID {
			return true
		}
	}
	return false
}

// Tutor — репетитор с предметом, опытом и ведомыми курсами.
type Tutor struct {
	Person
	Subject       string
	Experience    int
	Bio           string
	CoursesTaught []*Course
	Schedule      *Schedule
}

// NewTutor создаёт репетитора.
func NewTutor(firstName, lastName string, age int, phone, email string, userID int64, subject string, experience int, bio string) (*Tutor, error) {
	person, err := newPerson(firstName, lastName, age, phone, email, userID, RoleTutor)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("%w: tutor subject must not be blank", ErrValidation)
	}
	if experience < 0 {
		return nil, fmt.Errorf("%w: experience %d must not be negative", ErrValidation, experience)
	}

	tutor := &Tutor{Person: person, Subject: subject, Experience: experience, Bio: bio}
	tutor.Schedule = newTutorSchedule(tutor)
	return tutor, nil
}

// CreateCourse создаёт курс и записывает его в список ведомых.
func (t *Tutor) CreateCourse(name, subject, description, timeSlot, monthPrice string, status CourseStatus) (*Course, error) {
	course, err := NewCourse(name, t, subject, description, timeSlot, monthPrice, status)
	if err != nil {
		return nil, err
	}
	t.CoursesTaught = append(t.CoursesTaught, course)
	return course, nil
}

// Teaches проверяет, ведёт ли репетитор курс.
func (t *Tutor) Teaches(course *Course) bool {
	for _, c := range t.CoursesTaught {
		if c.ID == course.ID {
			return true
		}
	}
	return false
}
