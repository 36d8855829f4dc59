// Package document описывает сериализуемое представление системы.
//
// Одни и те же записи несут теги json и xml, поэтому оба формата
// порождают семантически эквивалентные деревья. Межсущностные ссылки
// сериализуются идентификаторами; человекочитаемые поля (имена,
// названия) пишутся рядом только для удобства чтения файла и при
// загрузке не используются.
package document

import "encoding/xml"

// SystemInfo — сводка документа: время создания системы и счётчики
// коллекций.
type SystemInfo struct {
	CreatedAt        string `json:"created_at" xml:"created_at"`
	StudentsCount    int    `json:"students_count" xml:"students_count"`
	TutorsCount      int    `json:"tutors_count" xml:"tutors_count"`
	CoursesCount     int    `json:"courses_count" xml:"courses_count"`
	LessonsCount     int    `json:"lessons_count" xml:"lessons_count"`
	HomeworksCount   int    `json:"homeworks_count" xml:"homeworks_count"`
	TestsCount       int    `json:"tests_count" xml:"tests_count"`
	SubmissionsCount int    `json:"submissions_count" xml:"submissions_count"`
	PaymentsCount    int    `json:"payments_count" xml:"payments_count"`
	SchedulesCount   int    `json:"schedules_count" xml:"schedules_count"`
}

// Document — корень сериализованной системы: сводка и девять секций
// коллекций.
type Document struct {
	XMLName     xml.Name           `json:"-" xml:"education_system"`
	SystemInfo  SystemInfo         `json:"system_info" xml:"system_info"`
	Tutors      []TutorRecord      `json:"tutors" xml:"tutors>tutor"`
	Students    []StudentRecord    `json:"students" xml:"students>student"`
	Courses     []CourseRecord     `json:"courses" xml:"courses>course"`
	Lessons     []LessonRecord     `json:"lessons" xml:"lessons>lesson"`
	Homeworks   []HomeworkRecord   `json:"homeworks" xml:"homeworks>homework"`
	Tests       []TestRecord       `json:"tests" xml:"tests>test"`
	Submissions []SubmissionRecord `json:"submissions" xml:"submissions>submission"`
	Payments    []PaymentRecord    `json:"payments" xml:"payments>payment"`
	Schedules   []ScheduleRecord   `json:"schedules" xml:"schedules>schedule"`
}

// CourseRef — ссылка на курс внутри другой записи.
type CourseRef struct {
	ID   string `json:"id" xml:"id"`
	Name string `json:"name" xml:"name"`
}

// LessonRef — краткая сводка урока внутри другой записи: только
// идентификатор, название, дата и время начала.
type LessonRef struct {
	ID        string `json:"id" xml:"id"`
	Name      string `json:"name" xml:"name"`
	Date      string `json:"date" xml:"date"`
	StartTime string `json:"start_time" xml:"start_time"`
}

// HomeworkRef — ссылка на домашнее задание внутри записи урока.
type HomeworkRef struct {
	ID    string `json:"id" xml:"id"`
	Title string `json:"title" xml:"title"`
}

// StudentRef — ссылка на студента внутри записи курса.
type StudentRef struct {
	ID       string `json:"id" xml:"id"`
	FullName string `json:"full_name" xml:"full_name"`
}

// StudentRecord — сериализованный студент.
type StudentRecord struct {
	ID              string      `json:"id" xml:"id"`
	FirstName       string      `json:"first_name" xml:"first_name"`
	LastName        string      `json:"last_name" xml:"last_name"`
	Age             int         `json:"age" xml:"age"`
	Phone           string      `json:"phone" xml:"phone"`
	Email           string      `json:"email" xml:"email"`
	UserID          int64       `json:"user_id" xml:"user_id"`
	Role            string      `json:"role" xml:"role"`
	Grade           int         `json:"grade" xml:"grade"`
	EnrolledCourses []CourseRef `json:"enrolled_courses" xml:"enrolled_courses>course"`
	ScheduleID      string      `json:"schedule_id" xml:"schedule_id"`
}

// TutorRecord — сериализованный репетитор.
type TutorRecord struct {
	ID            string      `json:"id" xml:"id"`
	FirstName     string      `json:"first_name" xml:"first_name"`
	LastName      string      `json:"last_name" xml:"last_name"`
	Age           int         `json:"age" xml:"age"`
	Phone         string      `json:"phone" xml:"phone"`
	Email         string      `json:"email" xml:"email"`
	UserID        int64       `json:"user_id" xml:"user_id"`
	Role          string      `json:"role" xml:"role"`
	Subject       string      `json:"subject" xml:"subject"`
	Experience    int         `json:"experience" xml:"experience"`
	Bio           string      `json:"bio" xml:"bio"`
	CoursesTaught []CourseRef `json:"courses_taught" xml:"courses_taught>course"`
	ScheduleID    string      `json:"schedule_id" xml:"schedule_id"`
}

// CourseRecord — сериализованный курс. TutorName — информационное поле,
// ссылка разрешается по TutorID.
type CourseRecord struct {
	ID          string       `json:"id" xml:"id"`
	Name        string       `json:"name" xml:"name"`
	TutorID     string       `json:"tutor_id" xml:"tutor_id"`
	TutorName   string       `json:"tutor_name" xml:"tutor_name"`
	Subject     string       `json:"subject" xml:"subject"`
	Description string       `json:"description" xml:"description"`
	Time        string       `json:"time" xml:"time"`
	MonthPrice  string       `json:"month_price" xml:"month_price"`
	Status      string       `json:"status" xml:"status"`
	Students    []StudentRef `json:"students" xml:"students>student"`
	Lessons     []LessonRef  `json:"lessons" xml:"lessons>lesson"`
}

// LessonRecord — сериализованный урок.
type LessonRecord struct {
	ID          string        `json:"id" xml:"id"`
	Name        string        `json:"name" xml:"name"`
	Description string        `json:"description" xml:"description"`
	CourseID    string        `json:"course_id" xml:"course_id"`
	CourseName  string        `json:"course_name" xml:"course_name"`
	StartTime   string        `json:"start_time" xml:"start_time"`
	EndTime     string        `json:"end_time" xml:"end_time"`
	Date        string        `json:"date" xml:"date"`
	Homeworks   []HomeworkRef `json:"homeworks" xml:"homeworks>homework"`
}

// HomeworkRecord — сериализованное домашнее задание. SubmissionsCount —
// информационное поле, сами сдачи лежат в своей секции.
type HomeworkRecord struct {
	ID               string   `json:"id" xml:"id"`
	Title            string   `json:"title" xml:"title"`
	Description      string   `json:"description" xml:"description"`
	LessonID         string   `json:"lesson_id" xml:"lesson_id"`
	LessonName       string   `json:"lesson_name" xml:"lesson_name"`
	Deadline         string   `json:"deadline" xml:"deadline"`
	MaxScore         int      `json:"max_score" xml:"max_score"`
	Attachments      []string `json:"attachments" xml:"attachments>attachment"`
	SubmissionsCount int      `json:"submissions_count" xml:"submissions_count"`
}

// QuestionRecord — сериализованный вопрос проверочной работы.
type QuestionRecord struct {
	Text          string   `json:"text" xml:"text"`
	Options       []string `json:"options" xml:"options>option"`
	CorrectAnswer int      `json:"correct_answer" xml:"correct_answer"`
}

// TestRecord — сериализованная проверочная работа.
type TestRecord struct {
	ID         string           `json:"id" xml:"id"`
	Title      string           `json:"title" xml:"title"`
	LessonID   string           `json:"lesson_id" xml:"lesson_id"`
	LessonName string           `json:"lesson_name" xml:"lesson_name"`
	Questions  []QuestionRecord `json:"questions" xml:"questions>question"`
}

// SubmissionRecord — сериализованная сдача задания. ScorePercentage и
// GradeLetter — вычисляемые поля, при загрузке не читаются.
type SubmissionRecord struct {
	ID              string  `json:"id" xml:"id"`
	StudentID       string  `json:"student_id" xml:"student_id"`
	StudentName     string  `json:"student_name" xml:"student_name"`
	HomeworkID      string  `json:"homework_id" xml:"homework_id"`
	HomeworkTitle   string  `json:"homework_title" xml:"homework_title"`
	Answer          string  `json:"answer" xml:"answer"`
	SubmittedDate   string  `json:"submitted_date" xml:"submitted_date"`
	Score           *int    `json:"score,omitempty" xml:"score,omitempty"`
	Feedback        string  `json:"feedback" xml:"feedback"`
	ScorePercentage float64 `json:"score_percentage" xml:"score_percentage"`
	GradeLetter     string  `json:"grade_letter" xml:"grade_letter"`
}

// PaymentRecord — сериализованный платёж.
type PaymentRecord struct {
	ID          string      `json:"id" xml:"id"`
	StudentID   string      `json:"student_id" xml:"student_id"`
	StudentName string      `json:"student_name" xml:"student_name"`
	Month       string      `json:"month" xml:"month"`
	Year        int         `json:"year" xml:"year"`
	Courses     []CourseRef `json:"courses" xml:"courses>course"`
	TotalAmount float64     `json:"total_amount" xml:"total_amount"`
	Status      string      `json:"status" xml:"status"`
	PaymentDate string      `json:"payment_date,omitempty" xml:"payment_date,omitempty"`
}

// ScheduleRecord — сериализованное расписание с владельцем.
type ScheduleRecord struct {
	ID        string      `json:"id" xml:"id"`
	OwnerRole string      `json:"owner_role" xml:"owner_role"`
	OwnerID   string      `json:"owner_id" xml:"owner_id"`
	OwnerName string      `json:"owner_name" xml:"owner_name"`
	Lessons   []LessonRef `json:"lessons" xml:"lessons>lesson"`
}
