package document

import (
	"time"

	"github.com/online-edu/platform/internal/model"
)

// NewStudentRecord переводит студента в сериализуемую запись.
func NewStudentRecord(s *model.Student) StudentRecord {
	return StudentRecord{
		ID:              s.ID.String(),
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		Age:             s.Age,
		Phone:           s.Phone,
		Email:           s.Email,
		UserID:          s.UserID,
		Role:            s.Role,
		Grade:           s.Grade,
		EnrolledCourses: courseRefs(s.EnrolledCourses),
		ScheduleID:      s.Schedule.ID.String(),
	}
}

// NewTutorRecord переводит репетитора в сериализуемую запись.
func NewTutorRecord(t *model.Tutor) TutorRecord {
	return TutorRecord{
		ID:            t.ID.String(),
		FirstName:     t.FirstName,
		LastName:      t.LastName,
		Age:           t.Age,
		Phone:         t.Phone,
		Email:         t.Email,
		UserID:        t.UserID,
		Role:          t.Role,
		Subject:       t.Subject,
		Experience:    t.Experience,
		Bio:           t.Bio,
		CoursesTaught: courseRefs(t.CoursesTaught),
		ScheduleID:    t.Schedule.ID.String(),
	}
}

// NewCourseRecord переводит курс в сериализуемую запись. Студенты и
// уроки пишутся краткими ссылками, не вложенными копиями.
func NewCourseRecord(c *model.Course) CourseRecord {
	students := make([]StudentRef, 0, len(c.Students))
	for _, s := range c.Students {
		students = append(students, StudentRef{ID: s.ID.String(), FullName: s.FullName()})
	}
	return CourseRecord{
		ID:          c.ID.String(),
		Name:        c.Name,
		TutorID:     c.Tutor.ID.String(),
		TutorName:   c.Tutor.FullName(),
		Subject:     c.Subject,
		Description: c.Description,
		Time:        c.Time,
		MonthPrice:  c.MonthPrice,
		Status:      string(c.Status),
		Students:    students,
		Lessons:     lessonRefs(c.Lessons),
	}
}

// NewLessonRecord переводит урок в сериализуемую запись.
func NewLessonRecord(l *model.Lesson) LessonRecord {
	homeworks := make([]HomeworkRef, 0, len(l.Homeworks))
	for _, h := range l.Homeworks {
		homeworks = append(homeworks, HomeworkRef{ID: h.ID.String(), Title: h.Title})
	}
	return LessonRecord{
		ID:          l.ID.String(),
		Name:        l.Name,
		Description: l.Description,
		CourseID:    l.Course.ID.String(),
		CourseName:  l.Course.Name,
		StartTime:   l.StartTime,
		EndTime:     l.EndTime,
		Date:        l.Date,
		Homeworks:   homeworks,
	}
}

// NewHomeworkRecord переводит домашнее задание в сериализуемую запись.
func NewHomeworkRecord(h *model.Homework) HomeworkRecord {
	attachments := make([]string, len(h.Attachments))
	copy(attachments, h.Attachments)
	return HomeworkRecord{
		ID:               h.ID.String(),
		Title:            h.Title,
		Description:      h.Description,
		LessonID:         h.Lesson.ID.String(),
		LessonName:       h.Lesson.Name,
		Deadline:         h.Deadline,
		MaxScore:         h.MaxScore,
		Attachments:      attachments,
		SubmissionsCount: len(h.Submissions),
	}
}

// NewTestRecord переводит проверочную работу в сериализуемую запись.
func NewTestRecord(t *model.Test) TestRecord {
	questions := make([]QuestionRecord, 0, len(t.Questions))
	for _, q := range t.Questions {
		options := make([]string, len(q.Options))
		copy(options, q.Options)
		questions = append(questions, QuestionRecord{
			Text:          q.Text,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return TestRecord{
		ID:         t.ID.String(),
		Title:      t.Title,
		LessonID:   t.Lesson.ID.String(),
		LessonName: t.Lesson.Name,
		Questions:  questions,
	}
}

// NewSubmissionRecord переводит сдачу задания в сериализуемую запись.
// Процент и оценка — вычисляемые поля только для чтения файла.
func NewSubmissionRecord(s *model.HomeworkSubmission) SubmissionRecord {
	record := SubmissionRecord{
		ID:              s.ID.String(),
		StudentID:       s.Student.ID.String(),
		StudentName:     s.Student.FullName(),
		HomeworkID:      s.Homework.ID.String(),
		HomeworkTitle:   s.Homework.Title,
		Answer:          s.Answer,
		SubmittedDate:   s.SubmittedDate,
		Feedback:        s.Feedback,
		ScorePercentage: s.ScorePercentage(),
		GradeLetter:     s.GradeLetter(),
	}
	if s.Score != nil {
		score := *s.Score
		record.Score = &score
	}
	return record
}

// NewPaymentRecord переводит платёж в сериализуемую запись.
func NewPaymentRecord(p *model.Payment) PaymentRecord {
	record := PaymentRecord{
		ID:          p.ID.String(),
		StudentID:   p.Student.ID.String(),
		StudentName: p.Student.FullName(),
		Month:       p.Month,
		Year:        p.Year,
		Courses:     courseRefs(p.Courses),
		TotalAmount: p.TotalAmount,
		Status:      string(p.Status),
	}
	if p.PaymentDate != nil {
		record.PaymentDate = p.PaymentDate.Format(time.RFC3339)
	}
	return record
}

// NewScheduleRecord переводит расписание в сериализуемую запись.
func NewScheduleRecord(sc *model.Schedule) ScheduleRecord {
	return ScheduleRecord{
		ID:        sc.ID.String(),
		OwnerRole: sc.OwnerRole(),
		OwnerID:   sc.OwnerID().String(),
		OwnerName: sc.OwnerName(),
		Lessons:   lessonRefs(sc.Lessons),
	}
}

func courseRefs(courses []*model.Course) []CourseRef {
	refs := make([]CourseRef, 0, len(courses))
	for _, c := range courses {
		refs = append(refs, CourseRef{ID: c.ID.String(), Name: c.Name})
	}
	return refs
}

func lessonRefs(lessons []*model.Lesson) []LessonRef {
	refs := make([]LessonRef, 0, len(lessons))
	for _, l := range lessons {
		refs = append(refs, LessonRef{
			ID:        l.ID.String(),
			Name:      l.Name,
			Date:      l.Date,
			StartTime: l.StartTime,
		})
	}
	return refs
}
