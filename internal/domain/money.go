package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MoneyEpsilon допустимое расхождение денежных сумм при сверке
var MoneyEpsilon = decimal.New(1, -2)

// AmountsMatch сравнивает суммы с точностью до MoneyEpsilon
func AmountsMatch(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(MoneyEpsilon)
}

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ParseBookingDate разбирает дату в формате YYYY-MM-DD
func ParseBookingDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return d, nil
}

// ParseClock разбирает время HH:MM и возвращает количество минут от начала суток
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("time must be HH:MM: %w", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Overlaps проверяет пересечение полуинтервалов [aStart, aEnd) и [bStart, bEnd)
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// HourlyCost считает стоимость аренды за интервал в минутах
func HourlyCost(pricePerHour decimal.Decimal, minutes int) decimal.Decimal {
	return pricePerHour.Mul(decimal.NewFromInt(int64(minutes))).Div(decimal.NewFromInt(60)).Round(2)
}
