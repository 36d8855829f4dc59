package document

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/online-edu/platform/internal/model"
)

// Decode-методы восстанавливают сущности из записей. Каждый метод
// получает только уже восстановленные коллекции своих зависимостей
// (id -> сущность); отсутствие ссылки — жёсткая ошибка загрузки с
// указанием недостающего идентификатора. Полное восстановление графа
// здесь не выполняется — перекрёстные связи доделывает отдельный
// проход системы.

// Decode восстанавливает студента. Курсы на этом этапе не
// привязываются.
func (r StudentRecord) Decode() (*model.Student, error) {
	student, err := model.NewStudent(r.FirstName, r.LastName, r.Age, r.Phone, r.Email, r.UserID, r.Grade)
	if err != nil {
		return nil, fmt.Errorf("decode student %q: %w", r.FirstName+" "+r.LastName, err)
	}
	if err := assignID(&student.ID, r.ID); err != nil {
		return nil, fmt.Errorf("decode student %q: %w", r.FirstName+" "+r.LastName, err)
	}
	return student, nil
}

// Decode восстанавливает репетитора.
func (r TutorRecord) Decode() (*model.Tutor, error) {
	tutor, err := model.NewTutor(r.FirstName, r.LastName, r.Age, r.Phone, r.Email, r.UserID, r.Subject, r.Experience, r.Bio)
	if err != nil {
		return nil, fmt.Errorf("decode tutor %q: %w", r.FirstName+" "+r.LastName, err)
	}
	if err := assignID(&tutor.ID, r.ID); err != nil {
		return nil, fmt.Errorf("decode tutor %q: %w", r.FirstName+" "+r.LastName, err)
	}
	return tutor, nil
}

// Decode восстанавливает курс по уже восстановленным репетиторам.
func (r CourseRecord) Decode(tutors map[string]*model.Tutor) (*model.Course, error) {
	tutor, ok := tutors[r.TutorID]
	if !ok {
		return nil, fmt.Errorf("%w: tutor %s referenced by course %q", model.ErrUserNotFound, r.TutorID, r.Name)
	}
	course, err := model.NewCourse(r.Name, tutor, r.Subject, r.Description, r.Time, r.MonthPrice, model.CourseStatus(r.Status))
	if err != nil {
		return nil, fmt.Errorf("decode course %q: %w", r.Name, err)
	}
	if err := assignID(&course.ID, r.ID); err != nil {
		return nil, fmt.Errorf("decode course %q: %w", r.Name, err)
	}
	return course, nil
}

// Decode восстанавливает урок по уже восстановленным курсам.
func (r LessonRecord) Decode(courses map[string]*model.Course) (*model.Lesson, error) {
	course, ok := courses[r.CourseID]
	if !ok {
		return nil, fmt.Errorf("%w: course %s referenced by lesson %q", model.ErrCourseNotFound, r.CourseID, r.Name)
	}
	lesson, err := model.NewLesson(r.Name, r.Description, course, r.StartTime, r.EndTime, r.Date)
	if err != nil {
		return nil, fmt.Errorf("decode lesson %q: %w", r.Name, err)
	}
	if err := assignID(&lesson.ID, r.ID); err != nil {
		return nil, fmt.Errorf("decode lesson %q: %w", r.Name, err)
	}
	return lesson, nil
}

// Decode восстанавливает домашнее задание по уже восстановленным
// урокам.
func (r HomeworkRecord) Decode(lessons map[string]*model.Lesson) (*model.Homework, error) {
	lesson, ok := lessons[r.LessonID]
	if !ok {
		return nil, fmt.Errorf("%w: lesson %s referenced by homework %q", model.ErrLessonNotFound, r.LessonID, r.Title)
	}
	homework, err := model.NewHomework(r.Title, r.Description, lesson, r.Deadline, r.MaxScore)
	if err != nil {
		return nil, fmt.Errorf("decode homework %q: %w", r.Title, err)
	}
	for _, attachment := range r.Attachments {
		homework.AddAttachment(attachment)
	}
	if err := assignID(&homework.ID, r.ID); err != nil {
		return nil, fmt.Errorf("decode homework %q: %w", r.Title, err)
	}
	return homework, nil
}

// Decode восстанавливает проверочную работу по уже восстановленным
// урокам.
func (r TestRecord) Decode(lessons map[string]*model.Lesson) (*model.Test, error) {
	lesson, ok := lessons[r.LessonID]
	if !ok {
		return nil, fmt.Errorf("%w: lesson %s referenced by test %q", model.ErrLessonNotFound, r.LessonID, r.Title)
	}
	test, err := model.NewTest(r.Title, lesson)
	if err != nil {
		return nil, fmt.Errorf("decode test %q: %w", r.Title, err)
	}
	for _, qr := range r.Questions {
		question, err := model.NewQuestion(qr.Text, qr.Options, qr.CorrectAnswer)
		if err != nil {
			return nil, fmt.Errorf("decode test %q: %w", r.Title, err)
		}
		if err := test.AddQuestion(question); err != nil {
			return nil, fmt.Errorf("decode test %q: %w", r.Title, err)
		}
	}
	if err := assignID(&test.ID, r.ID); err != nil {
		return nil, fmt.Errorf("decode test %q: %w", r.Title, err)
	}
	return test, nil
}

// Decode восстанавливает сдачу задания по уже восстановленным студентам
// и заданиям. Оценка и отзыв восстанавливаются как были, вычисляемые
// поля записи игнорируются.
func (r SubmissionRecord) Decode(students map[string]*model.Student, homeworks map[string]*model.Homework) (*model.HomeworkSubmission, error) {
	student, ok := students[r.StudentID]
	if !ok {
		return nil, fmt.Errorf("%w: student %s referenced by submission %s", model.ErrUserNotFound, r.StudentID, r.ID)
	}
	homework, ok := homeworks[r.HomeworkID]
	if !ok {
		return nil, fmt.Errorf("%w: homework %s referenced by submission %s", model.ErrHomeworkNotFound, r.HomeworkID, r.ID)
	}
	sub, err := model.NewHomeworkSubmission(student, homework, r.Answer, r.SubmittedDate)
	if err != nil {
		return nil, fmt.Errorf("decode submission %s: %w", r.ID, err)
	}
	if r.Score != nil {
		score := *r.Score
		sub.Score = &score
	}
	sub.Feedback = r.Feedback
	if err := assignID(&sub.ID, r.ID); err != nil {
		return nil, fmt.Errorf("decode submission: %w", err)
	}
	return sub, nil
}

// Decode восстанавливает платёж по уже восстановленным студентам и
// курсам. Сумма, статус и дата оплаты берутся из записи как есть —
// проведённый платёж не проводится заново.
func (r PaymentRecord) Decode(students map[string]*model.Student, courses map[string]*model.Course) (*model.Payment, error) {
	student, ok := students[r.StudentID]
	if !ok {
		return nil, fmt.Errorf("%w: student %s referenced by payment %s", model.ErrUserNotFound, r.StudentID, r.ID)
	}
	payment, err := model.NewPayment(student, r.Month, r.Year)
	if err != nil {
		return nil, fmt.Errorf("decode payment %s: %w", r.ID, err)
	}
	for _, ref := range r.Courses {
		course, ok := courses[ref.ID]
		if !ok {
			return nil, fmt.Errorf("%w: course %s referenced by payment %s", model.ErrCourseNotFound, ref.ID, r.ID)
		}
		payment.Courses = append(payment.Courses, course)
	}
	payment.TotalAmount = r.TotalAmount
	payment.Status = model.PaymentStatus(r.Status)
	if r.PaymentDate != "" {
		paidAt, err := time.Parse(time.RFC3339, r.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("decode payment %s date %q: %w", r.ID, r.PaymentDate, err)
		}
		payment.PaymentDate = &paidAt
	}
	if err := assignID(&payment.ID, r.ID); err != nil {
		return nil, fmt.Errorf("decode payment: %w", err)
	}
	return payment, nil
}

// Decode находит расписание владельца, восстанавливает его
// идентификатор и наполняет уроками. Возвращается расписание,
// созданное вместе с владельцем — владелец у расписания всегда один.
func (r ScheduleRecord) Decode(students map[string]*model.Student, tutors map[string]*model.Tutor, lessons map[string]*model.Lesson) (*model.Schedule, error) {
	var schedule *model.Schedule
	switch r.OwnerRole {
	case model.RoleStudent:
		student, ok := students[r.OwnerID]
		if !ok {
			return nil, fmt.Errorf("%w: student %s owning schedule %s", model.ErrUserNotFound, r.OwnerID, r.ID)
		}
		schedule = student.Schedule
	case model.RoleTutor:
		tutor, ok := tutors[r.OwnerID]
		if !ok {
			return nil, fmt.Errorf("%w: tutor %s owning schedule %s", model.ErrUserNotFound, r.OwnerID, r.ID)
		}
		schedule = tutor.Schedule
	default:
		return nil, fmt.Errorf("%w: schedule %s owner role %q", model.ErrValidation, r.ID, r.OwnerRole)
	}

	if err := assignID(&schedule.ID, r.ID); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	for _, ref := range r.Lessons {
		lesson, ok := lessons[ref.ID]
		if !ok {
			return nil, fmt.Errorf("%w: lesson %s referenced by schedule %s", model.ErrLessonNotFound, ref.ID, r.ID)
		}
		if !schedule.HasLesson(lesson.ID) {
			if err := schedule.AddLesson(lesson); err != nil {
				return nil, fmt.Errorf("decode schedule %s: %w", r.ID, err)
			}
		}
	}
	return schedule, nil
}

// assignID заменяет сгенерированный конструктором идентификатор
// сохранённым.
func assignID(dst *uuid.UUID, raw string) error {
	id, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse id %q: %w", raw, err)
	}
	*dst = id
	return nil
}
