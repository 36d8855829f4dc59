// Package system содержит агрегат платформы: девять коллекций сущностей
// и операции над ними, включая сохранение и двухфазную загрузку.
package system

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/online-edu/platform/internal/model"
)

// System владеет всеми коллекциями сущностей. Подтверждения операций
// идут в структурированный лог, а не в консоль.
type System struct {
	logger *zap.Logger

	CreatedAt   time.Time
	Students    []*model.Student
	Tutors      []*model.Tutor
	Courses     []*model.Course
	Lessons     []*model.Lesson
	Homeworks   []*model.Homework
	Tests       []*model.Test
	Submissions []*model.HomeworkSubmission
	Payments    []*model.Payment
	Schedules   []*model.Schedule
}

// New создаёт пустую систему.
func New(logger *zap.Logger) *System {
	return &System{
		logger:    logger,
		CreatedAt: time.Now(),
	}
}

// AddStudent регистрирует студента; его расписание попадает в коллекцию
// расписаний. Повторная регистрация отклоняется.
func (s *System) AddStudent(student *model.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student must not be nil", model.ErrValidation)
	}
	for _, existing := range s.Students {
		if existing.ID == student.ID {
			return fmt.Errorf("%w: student %q is already registered", model.ErrValidation, student.FullName())
		}
	}
	s.Students = append(s.Students, student)
	s.Schedules = append(s.Schedules, student.Schedule)

	s.logger.Info("Student registered",
		zap.String("student", student.FullName()),
		zap.Int("grade", student.Grade),
	)
	return nil
}

// AddTutor регистрирует репетитора.
func (s *System) AddTutor(tutor *model.Tutor) error {
	if tutor == nil {
		return fmt.Errorf("%w: tutor must not be nil", model.ErrValidation)
	}
	for _, existing := range s.Tutors {
		if existing.ID == tutor.ID {
			return fmt.Errorf("%w: tutor %q is already registered", model.ErrValidation, tutor.FullName())
		}
	}
	s.Tutors = append(s.Tutors, tutor)
	s.Schedules = append(s.Schedules, tutor.Schedule)

	s.logger.Info("Tutor registered",
		zap.String("tutor", tutor.FullName()),
		zap.String("subject", tutor.Subject),
	)
	return nil
}

// CreateCourse создаёт курс от имени репетитора и добавляет его в
// систему.
func (s *System) CreateCourse(tutor *model.Tutor, name, subject, description, timeSlot, monthPrice string, status model.CourseStatus) (*model.Course, error) {
	if tutor == nil {
		return nil, fmt.Errorf("%w: course %q requires a tutor", model.ErrValidation, name)
	}
	course, err := tutor.CreateCourse(name, subject, description, timeSlot, monthPrice, status)
	if err != nil {
		return nil, err
	}
	s.Courses = append(s.Courses, course)

	s.logger.Info("Course created",
		zap.String("course", course.Name),
		zap.String("tutor", tutor.FullName()),
		zap.String("price", course.MonthPrice),
	)
	return course, nil
}

// Enroll записывает студента на курс: обе стороны связи обновляются
// вместе.
func (s *System) Enroll(student *model.Student, course *model.Course) error {
	if err := student.ChooseCourse(course); err != nil {
		return err
	}
	s.logger.Info("Student enrolled",
		zap.String("student", student.FullName()),
		zap.String("course", course.Name),
	)
	return nil
}

// ScheduleLesson создаёт урок, прикрепляет его к курсу и добавляет в
// систему.
func (s *System) ScheduleLesson(course *model.Course, name, description, startTime, endTime, date string) (*model.Lesson, error) {
	if course == nil {
		return nil, fmt.Errorf("%w: lesson %q requires a course", model.ErrValidation, name)
	}
	lesson, err := model.NewLesson(name, description, course, startTime, endTime, date)
	if err != nil {
		return nil, err
	}
	if err := course.AddLesson(lesson); err != nil {
		return nil, err
	}
	s.Lessons = append(s.Lessons, lesson)

	s.logger.Info("Lesson scheduled",
		zap.String("lesson", lesson.Name),
		zap.String("course", course.Name),
		zap.String("date", lesson.Date),
	)
	return lesson, nil
}

// AddLessonToSchedule добавляет урок в личное расписание.
func (s *System) AddLessonToSchedule(schedule *model.Schedule, lesson *model.Lesson) error {
	if err := schedule.AddLesson(lesson); err != nil {
		return err
	}
	s.logger.Info("Lesson added to schedule",
		zap.String("lesson", lesson.Name),
		zap.String("owner", schedule.OwnerName()),
	)
	return nil
}

// CancelLesson убирает урок из личного расписания. Отсутствие урока —
// мягкий отказ: пишется предупреждение, ошибки нет.
func (s *System) CancelLesson(schedule *model.Schedule, name string) bool {
	if schedule.CancelLesson(name) {
		s.logger.Info("Lesson canceled",
			zap.String("lesson", name),
			zap.String("owner", schedule.OwnerName()),
		)
		return true
	}
	s.logger.Warn("Lesson not found in schedule",
		zap.String("lesson", name),
		zap.String("owner", schedule.OwnerName()),
	)
	return false
}

// AddHomework создаёт домашнее задание, прикрепляет к уроку и
// добавляет в систему.
func (s *System) AddHomework(lesson *model.Lesson, title, description, deadline string, maxScore int) (*model.Homework, error) {
	if lesson == nil {
		return nil, fmt.Errorf("%w: homework %q requires a lesson", model.ErrValidation, title)
	}
	homework, err := model.NewHomework(title, description, lesson, deadline, maxScore)
	if err != nil {
		return nil, err
	}
	if err := lesson.AddHomework(homework); err != nil {
		return nil, err
	}
	s.Homeworks = append(s.Homeworks, homework)

	s.logger.Info("Homework added",
		zap.String("homework", homework.Title),
		zap.String("lesson", lesson.Name),
	)
	return homework, nil
}

// SubmitHomework регистрирует сдачу задания студентом.
func (s *System) SubmitHomework(student *model.Student, homework *model.Homework, answer, submittedDate string) (*model.HomeworkSubmission, error) {
	sub, err := model.NewHomeworkSubmission(student, homework, answer, submittedDate)
	if err != nil {
		return nil, err
	}
	if err := homework.AddSubmission(sub); err != nil {
		return nil, err
	}
	s.Submissions = append(s.Submissions, sub)

	s.logger.Info("Homework submitted",
		zap.String("student", student.FullName()),
		zap.String("homework", homework.Title),
	)
	return sub, nil
}

// CreateTest создаёт проверочную работу по уроку.
func (s *System) CreateTest(lesson *model.Lesson, title string) (*model.Test, error) {
	test, err := model.NewTest(title, lesson)
	if err != nil {
		return nil, err
	}
	s.Tests = append(s.Tests, test)

	s.logger.Info("Test created",
		zap.String("test", test.Title),
		zap.String("lesson", lesson.Name),
	)
	return test, nil
}

// CreatePayment создаёт платёж студента за месяц.
func (s *System) CreatePayment(student *model.Student, month string, year int) (*model.Payment, error) {
	payment, err := model.NewPayment(student, month, year)
	if err != nil {
		return nil, err
	}
	s.Payments = append(s.Payments, payment)

	s.logger.Info("Payment created",
		zap.String("student", student.FullName()),
		zap.String("month", payment.Month),
		zap.Int("year", payment.Year),
	)
	return payment, nil
}

// ProcessPayment проводит платёж и логирует итог.
func (s *System) ProcessPayment(payment *model.Payment) error {
	if err := payment.Process(); err != nil {
		return err
	}
	s.logger.Info("Payment processed",
		zap.String("student", payment.Student.FullName()),
		zap.String("month", payment.Month),
		zap.Float64("total", payment.TotalAmount),
	)
	return nil
}

// FindStudent ищет студента по полному имени, nil если не найден.
func (s *System) FindStudent(fullName string) *model.Student {
	for _, student := range s.Students {
		if student.FullName() == fullName {
			return student
		}
	}
	return nil
}

// FindTutor ищет репетитора по полному имени, nil если не найден.
func (s *System) FindTutor(fullName string) *model.Tutor {
	for _, tutor := range s.Tutors {
		if tutor.FullName() == fullName {
			return tutor
		}
	}
	return nil
}

// FindCourse ищет курс по названию, nil если не найден.
func (s *System) FindCourse(name string) *model.Course {
	for _, course := range s.Courses {
		if course.Name == name {
			return course
		}
	}
	return nil
}

// FindLesson ищет урок по названию, nil если не найден.
func (s *System) FindLesson(name string) *model.Lesson {
	for _, lesson := range s.Lessons {
		if lesson.Name == name {
			return lesson
		}
	}
	return nil
}

// Clear сбрасывает все девять коллекций. Выполняется перед каждой
// загрузкой: частичного слияния не бывает.
func (s *System) Clear() {
	s.Students = nil
	s.Tutors = nil
	s.Courses = nil
	s.Lessons = nil
	s.Homeworks = nil
	s.Tests = nil
	s.Submissions = nil
	s.Payments = nil
	s.Schedules = nil
}
