// Package scoring разбирает файл результата и считает итоговый балл
package scoring

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sast/hwboard/pkg/api"
)

var (
	// ErrSubCount количество чисел в файле не равно api.SubCount
	ErrSubCount = errors.New("wrong number of sub-scores")

	// ErrNotFinite одно из чисел NaN или бесконечность
	ErrNotFinite = errors.New("sub-score must be a finite number")
)

// Parse разбирает содержимое result.txt: ровно три числа через пробелы или переводы строк
func Parse(content string) (api.Subs, error) {
	var subs api.Subs

	fields := strings.Fields(content)
	if len(fields) != api.SubCount {
		return subs, fmt.Errorf("%w: want %d, got %d", ErrSubCount, api.SubCount, len(fields))
	}

	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return subs, fmt.Errorf("sub-score %d: invalid number %q", i+1, f)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return subs, fmt.Errorf("sub-score %d: %w", i+1, ErrNotFinite)
		}
		subs[i] = v
	}

	return subs, nil
}

// Score итоговый балл посылки: среднее подзадач
func Score(subs api.Subs) float64 {
	return subs.Average()
}
