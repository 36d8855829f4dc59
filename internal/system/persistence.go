package system

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/online-edu/platform/internal/document"
	"github.com/online-edu/platform/internal/model"
)

// Snapshot сериализует все девять коллекций в документ.
func (s *System) Snapshot() *document.Document {
	doc := &document.Document{
		SystemInfo: document.SystemInfo{
			CreatedAt:        s.CreatedAt.Format(time.RFC3339),
			StudentsCount:    len(s.Students),
			TutorsCount:      len(s.Tutors),
			CoursesCount:     len(s.Courses),
			LessonsCount:     len(s.Lessons),
			HomeworksCount:   len(s.Homeworks),
			TestsCount:       len(s.Tests),
			SubmissionsCount: len(s.Submissions),
			PaymentsCount:    len(s.Payments),
			SchedulesCount:   len(s.Schedules),
		},
	}
	for _, t := range s.Tutors {
		doc.Tutors = append(doc.Tutors, document.NewTutorRecord(t))
	}
	for _, st := range s.Students {
		doc.Students = append(doc.Students, document.NewStudentRecord(st))
	}
	for _, c := range s.Courses {
		doc.Courses = append(doc.Courses, document.NewCourseRecord(c))
	}
	for _, l := range s.Lessons {
		doc.Lessons = append(doc.Lessons, document.NewLessonRecord(l))
	}
	for _, h := range s.Homeworks {
		doc.Homeworks = append(doc.Homeworks, document.NewHomeworkRecord(h))
	}
	for _, t := range s.Tests {
		doc.Tests = append(doc.Tests, document.NewTestRecord(t))
	}
	for _, sub := range s.Submissions {
		doc.Submissions = append(doc.Submissions, document.NewSubmissionRecord(sub))
	}
	for _, p := range s.Payments {
		doc.Payments = append(doc.Payments, document.NewPaymentRecord(p))
	}
	for _, sc := range s.Schedules {
		doc.Schedules = append(doc.Schedules, document.NewScheduleRecord(sc))
	}
	return doc
}

// Save пишет снимок системы в файл; формат выбирается по расширению.
func (s *System) Save(path string) error {
	doc := s.Snapshot()
	if err := document.WriteFile(path, doc); err != nil {
		return fmt.Errorf("save system: %w", err)
	}
	s.logger.Info("System saved",
		zap.String("path", path),
		zap.String("format", document.FormatForPath(path)),
		zap.Int("students", len(s.Students)),
		zap.Int("courses", len(s.Courses)),
		zap.Int("lessons", len(s.Lessons)),
	)
	return nil
}

// Load читает файл и восстанавливает систему в два строгих прохода:
// сначала сущности в порядке зависимостей, затем перекрёстные связи.
// Любая ошибка очищает систему — наполовину загруженного состояния
// не остаётся.
func (s *System) Load(path string) error {
	doc, err := document.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load system: %w", err)
	}

	s.Clear()
	idx, err := s.reconstruct(doc)
	if err != nil {
		s.Clear()
		return fmt.Errorf("load system: reconstruct: %w", err)
	}
	if err := s.link(doc, idx); err != nil {
		s.Clear()
		return fmt.Errorf("load system: link: %w", err)
	}

	if createdAt, err := time.Parse(time.RFC3339, doc.SystemInfo.CreatedAt); err == nil {
		s.CreatedAt = createdAt
	}

	s.logger.Info("System loaded",
		zap.String("path", path),
		zap.Int("students", len(s.Students)),
		zap.Int("tutors", len(s.Tutors)),
		zap.Int("courses", len(s.Courses)),
		zap.Int("lessons", len(s.Lessons)),
	)
	return nil
}

// index — карты id -> сущность, наполняемые по ходу восстановления.
type index struct {
	tutors    map[string]*model.Tutor
	students  map[string]*model.Student
	courses   map[string]*model.Course
	lessons   map[string]*model.Lesson
	homeworks map[string]*model.Homework
}

// reconstruct — первая фаза загрузки. Коллекции восстанавливаются в
// фиксированном порядке зависимостей; каждый шаг видит только уже
// восстановленные коллекции.
func (s *System) reconstruct(doc *document.Document) (*index, error) {
	idx := &index{
		tutors:    make(map[string]*model.Tutor, len(doc.Tutors)),
		students:  make(map[string]*model.Student, len(doc.Students)),
		courses:   make(map[string]*model.Course, len(doc.Courses)),
		lessons:   make(map[string]*model.Lesson, len(doc.Lessons)),
		homeworks: make(map[string]*model.Homework, len(doc.Homeworks)),
	}

	for _, r := range doc.Tutors {
		tutor, err := r.Decode()
		if err != nil {
			return nil, err
		}
		s.Tutors = append(s.Tutors, tutor)
		idx.tutors[r.ID] = tutor
	}
	for _, r := range doc.Students {
		student, err := r.Decode()
		if err != nil {
			return nil, err
		}
		s.Students = append(s.Students, student)
		idx.students[r.ID] = student
	}
	for _, r := range doc.Courses {
		course, err := r.Decode(idx.tutors)
		if err != nil {
			return nil, err
		}
		s.Courses = append(s.Courses, course)
		idx.courses[r.ID] = course
	}
	for _, r := range doc.Lessons {
		lesson, err := r.Decode(idx.courses)
		if err != nil {
			return nil, err
		}
		s.Lessons = append(s.Lessons, lesson)
		idx.lessons[r.ID] = lesson
	}
	for _, r := range doc.Homeworks {
		homework, err := r.Decode(idx.lessons)
		if err != nil {
			return nil, err
		}
		s.Homeworks = append(s.Homeworks, homework)
		idx.homeworks[r.ID] = homework
	}
	for _, r := range doc.Tests {
		test, err := r.Decode(idx.lessons)
		if err != nil {
			return nil, err
		}
		s.Tests = append(s.Tests, test)
	}
	for _, r := range doc.Submissions {
		sub, err := r.Decode(idx.students, idx.homeworks)
		if err != nil {
			return nil, err
		}
		if err := sub.Homework.AddSubmission(sub); err != nil {
			return nil, err
		}
		s.Submissions = append(s.Submissions, sub)
	}
	for _, r := range doc.Payments {
		payment, err := r.Decode(idx.students, idx.courses)
		if err != nil {
			return nil, err
		}
		s.Payments = append(s.Payments, payment)
	}
	for _, r := range doc.Schedules {
		schedule, err := r.Decode(idx.students, idx.tutors, idx.lessons)
		if err != nil {
			return nil, err
		}
		s.Schedules = append(s.Schedules, schedule)
	}

	return idx, nil
}

// link — вторая фаза загрузки: повторный проход по записям документа,
// восстанавливающий перекрёстные связи, которые первая фаза разрешить
// не могла. Проход идемпотентен — существующая связь не добавляется
// второй раз.
func (s *System) link(doc *document.Document, idx *index) error {
	for _, r := range doc.Students {
		student := idx.students[r.ID]
		for _, ref := range r.EnrolledCourses {
			course, ok := idx.courses[ref.ID]
			if !ok {
				return fmt.Errorf("%w: course %s enrolled by student %q", model.ErrCourseNotFound, ref.ID, student.FullName())
			}
			linkEnrollment(student, course)
		}
	}
	for _, r := range doc.Tutors {
		tutor := idx.tutors[r.ID]
		for _, ref := range r.CoursesTaught {
			course, ok := idx.courses[ref.ID]
			if !ok {
				return fmt.Errorf("%w: course %s taught by tutor %q", model.ErrCourseNotFound, ref.ID, tutor.FullName())
			}
			if !tutor.Teaches(course) {
				tutor.CoursesTaught = append(tutor.CoursesTaught, course)
			}
		}
	}
	for _, r := range doc.Courses {
		course := idx.courses[r.ID]
		for _, ref := range r.Lessons {
			lesson, ok := idx.lessons[ref.ID]
			if !ok {
				return fmt.Errorf("%w: lesson %s listed in course %q", model.ErrLessonNotFound, ref.ID, course.Name)
			}
			if !course.HasLesson(lesson.ID) {
				course.Lessons = append(course.Lessons, lesson)
			}
		}
	}
	for _, r := range doc.Lessons {
		lesson := idx.lessons[r.ID]
		for _, ref := range r.Homeworks {
			homework, ok := idx.homeworks[ref.ID]
			if !ok {
				return fmt.Errorf("%w: homework %s listed in lesson %q", model.ErrHomeworkNotFound, ref.ID, lesson.Name)
			}
			if !lesson.HasHomework(homework.ID) {
				lesson.Homeworks = append(lesson.Homeworks, homework)
			}
		}
	}
	return nil
}

// linkEnrollment восстанавливает двустороннюю связь студент-курс,
// не дублируя уже существующую сторону.
func linkEnrollment(student *model.Student, course *model.Course) {
	if !course.HasStudent(student.ID) {
		course.Students = append(course.Students, student)
	}
	if !student.IsEnrolledIn(course) {
		student.EnrolledCourses = append(student.EnrolledCourses, course)
	}
}
