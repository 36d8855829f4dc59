package system

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/online-edu/platform/internal/document"
	"github.com/online-edu/platform/internal/model"
)

// seedSystem наполняет систему маленьким связным графом: репетитор,
// два студента, курс с уроком, задание со сдачей, работа, платёж.
func seedSystem(t *testing.T) *System {
	t.Helper()
	sys := New(zap.NewNop())

	tutor, err := model.NewTutor("Анна", "Петрова", 35, "+7900", "anna@example.com", 1, "Математика", 10, "bio")
	require.NoError(t, err)
	require.NoError(t, sys.AddTutor(tutor))

	student, err := model.NewStudent("Иван", "Иванов", 16, "+7901", "ivan@example.com", 2, 10)
	require.NoError(t, err)
	require.NoError(t, sys.AddStudent(student))

	second, err := model.NewStudent("Мария", "Смирнова", 15, "+7902", "maria@example.com", 3, 9)
	require.NoError(t, err)
	require.NoError(t, sys.AddStudent(second))

	course, err := sys.CreateCourse(tutor, "Алгебра", "Математика", "Описание", "пн 17:00", "1500 руб.", model.CourseStatusActive)
	require.NoError(t, err)
	require.NoError(t, sys.Enroll(student, course))
	require.NoError(t, sys.Enroll(second, course))

	lesson, err := sys.ScheduleLesson(course, "Квадратные уравнения", "Дискриминант", "17:00", "18:00", "2024-09-02")
	require.NoError(t, err)
	require.NoError(t, sys.AddLessonToSchedule(student.Schedule, lesson))
	require.NoError(t, sys.AddLessonToSchedule(tutor.Schedule, lesson))

	homework, err := sys.AddHomework(lesson, "Решить 10 уравнений", "Задания 1-10", "2024-09-09", 100)
	require.NoError(t, err)
	sub, err := sys.SubmitHomework(student, homework, "Решения во вложении", "2024-09-08")
	require.NoError(t, err)
	require.NoError(t, sub.SetScore(92, "Отлично"))

	test, err := sys.CreateTest(lesson, "Самопроверка")
	require.NoError(t, err)
	question, err := model.NewQuestion("Сколько корней при D > 0?", []string{"Один", "Два"}, 1)
	require.NoError(t, err)
	require.NoError(t, test.AddQuestion(question))

	payment, err := sys.CreatePayment(student, "september", 2024)
	require.NoError(t, err)
	require.NoError(t, payment.AddCourse(course))
	require.NoError(t, sys.ProcessPayment(payment))

	return sys
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"system.json", "system.xml"} {
		t.Run(name, func(t *testing.T) {
			sys := seedSystem(t)
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, sys.Save(path))

			fresh := New(zap.NewNop())
			require.NoError(t, fresh.Load(path))

			// Счётчики коллекций совпадают
			assert.Len(t, fresh.Students, len(sys.Students))
			assert.Len(t, fresh.Tutors, len(sys.Tutors))
			assert.Len(t, fresh.Courses, len(sys.Courses))
			assert.Len(t, fresh.Lessons, len(sys.Lessons))
			assert.Len(t, fresh.Homeworks, len(sys.Homeworks))
			assert.Len(t, fresh.Tests, len(sys.Tests))
			assert.Len(t, fresh.Submissions, len(sys.Submissions))
			assert.Len(t, fresh.Payments, len(sys.Payments))
			assert.Len(t, fresh.Schedules, len(sys.Schedules))

			student := fresh.FindStudent("Иван Иванов")
			require.NotNil(t, student)
			tutor := fresh.FindTutor("Анна Петрова")
			require.NotNil(t, tutor)
			course := fresh.FindCourse("Алгебра")
			require.NotNil(t, course)
			lesson := fresh.FindLesson("Квадратные уравнения")
			require.NotNil(t, lesson)

			// Запись на курс восстановлена с обеих сторон, без дублей
			require.Len(t, student.EnrolledCourses, 1)
			assert.Same(t, course, student.EnrolledCourses[0])
			assert.Len(t, course.Students, 2)
			assert.True(t, course.HasStudent(student.ID))

			// Авторство и состав курса
			assert.Same(t, tutor, course.Tutor)
			assert.True(t, tutor.Teaches(course))
			require.Len(t, course.Lessons, 1)
			assert.Same(t, lesson, course.Lessons[0])
			assert.Same(t, course, lesson.Course)

			// Задание, сдача и оценка
			require.Len(t, lesson.Homeworks, 1)
			homework := lesson.Homeworks[0]
			require.Contains(t, homework.Submissions, student.ID)
			sub := homework.Submissions[student.ID]
			require.NotNil(t, sub.Score)
			assert.Equal(t, 92, *sub.Score)
			assert.Equal(t, "5", sub.GradeLetter())

			// Личное расписание
			assert.True(t, student.Schedule.HasLesson(lesson.ID))
			assert.True(t, tutor.Schedule.HasLesson(lesson.ID))

			// Платёж восстановлен как проведённый
			require.Len(t, fresh.Payments, 1)
			payment := fresh.Payments[0]
			assert.Equal(t, model.PaymentStatusPaid, payment.Status)
			assert.InDelta(t, 1500.0, payment.TotalAmount, 1e-9)
			assert.NotNil(t, payment.PaymentDate)
			assert.Same(t, student, payment.Student)
			require.Len(t, payment.Courses, 1)
			assert.Same(t, course, payment.Courses[0])

			// Проверочная работа с вопросами
			require.Len(t, fresh.Tests, 1)
			require.Len(t, fresh.Tests[0].Questions, 1)
			score, err := fresh.Tests[0].CalculateScore([]int{1})
			require.NoError(t, err)
			assert.Equal(t, 1, score)
		})
	}
}

func TestLoad_MissingReferenceClearsSystem(t *testing.T) {
	sys := seedSystem(t)
	doc := sys.Snapshot()
	// Курс ссылается на несуществующего репетитора
	doc.Courses[0].TutorID = uuid.NewString()

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, document.WriteFile(path, doc))

	fresh := New(zap.NewNop())
	err := fresh.Load(path)
	require.ErrorIs(t, err, model.ErrUserNotFound)

	// Наполовину загруженного состояния не остаётся
	assert.Empty(t, fresh.Students)
	assert.Empty(t, fresh.Tutors)
	assert.Empty(t, fresh.Courses)
	assert.Empty(t, fresh.Lessons)
	assert.Empty(t, fresh.Schedules)
}

func TestLoad_ReplacesPreviousState(t *testing.T) {
	sys := seedSystem(t)
	path := filepath.Join(t.TempDir(), "system.json")
	require.NoError(t, sys.Save(path))

	other := seedSystem(t)
	extra, err := model.NewStudent("Пётр", "Сидоров", 17, "+7903", "petr@example.com", 9, 11)
	require.NoError(t, err)
	require.NoError(t, other.AddStudent(extra))

	require.NoError(t, other.Load(path))

	// Загрузка полностью заменяет прежнее состояние, слияния нет
	assert.Len(t, other.Students, 2)
	assert.Nil(t, other.FindStudent("Пётр Сидоров"))
}

func TestLoad_MissingFile(t *testing.T) {
	sys := New(zap.NewNop())
	err := sys.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestAddStudent_DuplicateRejected(t *testing.T) {
	sys := New(zap.NewNop())
	student, err := model.NewStudent("Иван", "Иванов", 16, "+7901", "ivan@example.com", 2, 10)
	require.NoError(t, err)

	require.NoError(t, sys.AddStudent(student))
	assert.ErrorIs(t, sys.AddStudent(student), model.ErrValidation)
	assert.Len(t, sys.Students, 1)
	assert.Len(t, sys.Schedules, 1)
}

func TestCancelLesson_SoftMiss(t *testing.T) {
	sys := seedSystem(t)
	student := sys.FindStudent("Иван Иванов")
	require.NotNil(t, student)

	assert.False(t, sys.CancelLesson(student.Schedule, "Нет такого урока"))
	assert.True(t, sys.CancelLesson(student.Schedule, "Квадратные уравнения"))
	assert.Empty(t, student.Schedule.Lessons)
}
