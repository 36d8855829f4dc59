package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		price string
		want  float64
	}{
		{"1500 руб.", 1500},
		{"1500", 1500},
		{"99,90", 99.9},
		{"2 000.50 руб.", 2000.5},
	}
	for _, tc := range cases {
		got, err := ParsePrice(tc.price)
		require.NoError(t, err, tc.price)
		assert.InDelta(t, tc.want, got, 1e-9, tc.price)
	}

	_, err := ParsePrice("бесплатно")
	assert.Error(t, err)

	_, err = ParsePrice("0 руб.")
	assert.Error(t, err)
}

func TestNewPayment_Validation(t *testing.T) {
	student := newTestStudent(t)

	_, err := NewPayment(nil, "september", 2024)
	assert.ErrorIs(t, err, ErrValidation, "nil student")

	_, err = NewPayment(student, "september", 2019)
	assert.ErrorIs(t, err, ErrValidation, "year below range")

	_, err = NewPayment(student, "september", 2031)
	assert.ErrorIs(t, err, ErrValidation, "year above range")

	_, err = NewPayment(student, "smarch", 2024)
	assert.ErrorIs(t, err, ErrValidation, "not a month")

	// Месяц сравнивается без учёта регистра и хранится в нижнем
	payment, err := NewPayment(student, "September", 2024)
	require.NoError(t, err)
	assert.Equal(t, "september", payment.Month)
	assert.Equal(t, PaymentStatusPending, payment.Status)
	assert.Nil(t, payment.PaymentDate)
}

func TestPaymentAddCourse(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, newTestTutor(t)) // 1500 руб.
	payment, err := NewPayment(student, "september", 2024)
	require.NoError(t, err)

	require.NoError(t, payment.AddCourse(course))
	assert.InDelta(t, 1500.0, payment.TotalAmount, 1e-9)

	err = payment.AddCourse(course)
	assert.ErrorIs(t, err, ErrPayment)
	assert.Len(t, payment.Courses, 1)
	assert.InDelta(t, 1500.0, payment.TotalAmount, 1e-9)
}

func TestProcessPayment(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, newTestTutor(t))
	payment, err := NewPayment(student, "september", 2024)
	require.NoError(t, err)

	// Платёж без курсов не проводится
	assert.ErrorIs(t, payment.Process(), ErrPayment)

	require.NoError(t, payment.AddCourse(course))
	require.NoError(t, payment.Process())
	assert.Equal(t, PaymentStatusPaid, payment.Status)
	require.NotNil(t, payment.PaymentDate)

	// Повторное проведение отклоняется
	assert.ErrorIs(t, payment.Process(), ErrPayment)
}

func TestPaymentInfo(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, newTestTutor(t))
	payment, err := NewPayment(student, "september", 2024)
	require.NoError(t, err)
	require.NoError(t, payment.AddCourse(course))

	assert.Contains(t, payment.Info(), "september")
	assert.Contains(t, payment.Info(), course.Name)
	assert.Contains(t, payment.Info(), "1500.0 руб.")
}
