package history

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sast/hwboard/pkg/api"
)

// TimeLayout формат локального времени посылки
const TimeLayout = "2006-01-02 15:04:05"

// Fetcher загружает историю посылок пользователя
type Fetcher interface {
	GetHistory(ctx context.Context, user string) ([]api.HistoryEntry, error)
}

// Row одна посылка в истории, подготовленная к отображению
type Row struct {
	Time    time.Time // локальное время посылки
	Local   string    // время в формате TimeLayout
	Ago     string    // относительное время ("3 hours ago")
	Subs    api.Subs
	Score   float64
	Average float64
}

// View история посылок одного пользователя
type View struct {
	Title string
	User  string
	Rows  []Row
}

// Viewer загружает историю при каждом открытии, без кэширования
type Viewer struct {
	fetcher  Fetcher
	logger   *slog.Logger
	location *time.Location
	now      func() time.Time
}

// NewViewer создает просмотрщик истории в локальном часовом поясе
func NewViewer(fetcher Fetcher, logger *slog.Logger) *Viewer {
	return &Viewer{
		fetcher:  fetcher,
		logger:   logger,
		location: time.Local,
		now:      time.Now,
	}
}

// Open загружает историю пользователя и строит строки по возрастанию времени.
// Ошибки чтения возвращаются вызывающему.
func (v *Viewer) Open(ctx context.Context, user string) (*View, error) {
	entries, err := v.fetcher.GetHistory(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for %s: %w", user, err)
	}

	v.logger.Debug("History loaded", "user", user, "entries", len(entries))

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b api.HistoryEntry) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	})

	now := v.now()
	rows := make([]Row, 0, len(sorted))
	for _, e := range sorted {
		ts := time.Unix(e.Time, 0).In(v.location)
		rows = append(rows, Row{
			Time:    ts,
			Local:   ts.Format(TimeLayout),
			Ago:     humanize.RelTime(ts, now, "ago", "from now"),
			Subs:    e.Subs,
			Score:   e.Score,
			Average: e.Subs.Average(),
		})
	}

	return &View{
		Title: user + " submission history",
		User:  user,
		Rows:  rows,
	}, nil
}

// FormatUnix переводит Unix seconds в локальное время в формате TimeLayout
func FormatUnix(sec int64) string {
	return time.Unix(sec, 0).Local().Format(TimeLayout)
}
