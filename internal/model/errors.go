package model

import "errors"

// Доменные ошибки. Проверяются через errors.Is, в местах возникновения
// оборачиваются через fmt.Errorf("...: %w", Err...) с контекстом.
var (
	// ErrValidation — базовая ошибка валидации при конструировании сущностей.
	ErrValidation = errors.New("validation error")

	// ErrUserNotFound — студент или репетитор не найден по идентификатору.
	ErrUserNotFound = errors.New("user not found")

	// ErrCourseNotFound — курс не найден по идентификатору.
	ErrCourseNotFound = errors.New("course not found")

	// ErrLessonNotFound — урок не найден по идентификатору.
	ErrLessonNotFound = errors.New("lesson not found")

	// ErrHomeworkNotFound — домашнее задание не найдено по идентификатору.
	ErrHomeworkNotFound = errors.New("homework not found")

	// ErrEnrollment — нарушение правил записи на курс (дубликат и т.п.).
	ErrEnrollment = errors.New("enrollment error")

	// ErrPayment — нарушение правил оплаты.
	ErrPayment = errors.New("payment error")

	// ErrLesson — нарушение правил работы с расписанием и уроками.
	ErrLesson = errors.New("lesson error")
)

// IsNotFound проверяет, что ошибка означает отсутствие сущности.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrLessonNotFound) ||
		errors.Is(err, ErrHomeworkNotFound)
}

// IsValidation проверяет, что ошибка возникла при валидации.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
