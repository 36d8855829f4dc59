package model

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Schedule — личное расписание. Владелец ровно один: либо студент,
// либо репетитор.
type Schedule struct {
	ID      uuid.UUID
	Student *Student
	Tutor   *Tutor
	Lessons []*Lesson
}

func newStudentSchedule(student *Student) *Schedule {
	return &Schedule{ID: uuid.New(), Student: student}
}

func newTutorSchedule(tutor *Tutor) *Schedule {
	return &Schedule{ID: uuid.New(), Tutor: tutor}
}

// OwnerRole возвращает роль владельца расписания.
func (sc *Schedule) OwnerRole() string {
	if sc.Student != nil {
		return RoleStudent
	}
	return RoleTutor
}

// OwnerID возвращает идентификатор владельца.
func (sc *Schedule) OwnerID() uuid.UUID {
	if sc.Student != nil {
		return sc.Student.ID
	}
	return sc.Tutor.ID
}

// OwnerName возвращает полное имя владельца.
func (sc *Schedule) OwnerName() string {
	if sc.Student != nil {
		return sc.Student.FullName()
	}
	return sc.Tutor.FullName()
}

// AddLesson добавляет урок в расписание, дубликаты отклоняются.
func (sc *Schedule) AddLesson(lesson *Lesson) error {
	if lesson == nil {
		return fmt.Errorf("%w: lesson must not be nil", ErrLesson)
	}
	if sc.HasLesson(lesson.ID) {
		return fmt.Errorf("%w: lesson %q is already in the schedule of %s", ErrLesson, lesson.Name, sc.OwnerName())
	}
	sc.Lessons = append(sc.Lessons, lesson)
	return nil
}

// HasLesson проверяет, есть ли урок в расписании.
func (sc *Schedule) HasLesson(id uuid.UUID) bool {
	for _, l := range sc.Lessons {
		if l.ID == id {
			return true
		}
	}
	return false
}

// CancelLesson убирает первый урок с таким названием из расписания.
// Отсутствие урока — мягкий отказ: возвращается false, ошибки нет.
func (sc *Schedule) CancelLesson(name string) bool {
	for i, l := range sc.Lessons {
		if l.Name == name {
			sc.Lessons = append(sc.Lessons[:i], sc.Lessons[i+1:]...)
			return true
		}
	}
	return false
}

// UpcomingLessons возвращает уроки, отсортированные по дате и времени
// начала. Порядок вставки значения не имеет.
func (sc *Schedule) UpcomingLessons() []*Lesson {
	lessons := make([]*Lesson, len(sc.Lessons))
	copy(lessons, sc.Lessons)
	sort.SliceStable(lessons, func(i, j int) bool {
		if lessons[i].Date != lessons[j].Date {
			return lessons[i].Date < lessons[j].Date
		}
		return lessons[i].StartTime < lessons[j].StartTime
	})
	return lessons
}

// LessonsByDate возвращает уроки заданного дня, отсортированные по
// времени начала.
func (sc *Schedule) LessonsByDate(date string) []*Lesson {
	var lessons []*Lesson
	for _, l := range sc.Lessons {
		if l.Date == date {
			lessons = append(lessons, l)
		}
	}
	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].StartTime < lessons[j].StartTime
	})
	return lessons
}
