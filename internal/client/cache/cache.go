package cache

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/sast/hwboard/internal/clock"
	"github.com/sast/hwboard/pkg/api"
)

// Key единственный ключ кэша таблицы лидеров
const Key = "leaderboard"

// Fetcher загружает актуальную таблицу лидеров
type Fetcher interface {
	GetLeaderboard(ctx context.Context) ([]api.LeaderboardEntry, error)
}

// Listener получает новое значение таблицы после каждой записи в кэш
type Listener func(entries []api.LeaderboardEntry)

// Cache хранит таблицу лидеров по одному ключу (stale-while-revalidate).
// Ключ существует только пока открыт gate (адрес API подтвержден).
// Конкурентные записи не упорядочиваются: побеждает последняя.
type Cache struct {
	fetcher   Fetcher
	logger    *slog.Logger
	clock     *clock.Clock
	group     singleflight.Group
	lastErr   error
	listeners []Listener
	data      []api.LeaderboardEntry
	epoch     int64 // поколение gate; результаты прошлых поколений отбрасываются
	revision  int64 // отметка последней записи
	base      int64 // отметка последней записи ответа сервера
	mu        sync.Mutex
	confirmed bool
	present   bool
}

// New создает кэш с закрытым gate
func New(fetcher Fetcher, logger *slog.Logger) *Cache {
	c := clock.New()
	return &Cache{
		fetcher: fetcher,
		clock:   c,
		logger:  logger.With("cache", Key, "node_id", c.NodeID()),
	}
}

// SetConfirmed открывает или закрывает gate.
// Открытие запускает ровно одну фоновую загрузку, закрытие сбрасывает значение.
func (c *Cache) SetConfirmed(ctx context.Context, confirmed bool) {
	c.mu.Lock()
	if c.confirmed == confirmed {
		c.mu.Unlock()
		return
	}

	c.confirmed = confirmed
	c.epoch++
	epoch := c.epoch

	if !confirmed {
		c.data = nil
		c.present = false
		c.lastErr = nil
		c.mu.Unlock()
		c.logger.Debug("Gate closed, cached value dropped")
		return
	}
	c.mu.Unlock()

	c.logger.Debug("Gate opened, starting initial fetch")
	c.revalidate(ctx, epoch)
}

// Confirmed сообщает, открыт ли gate
func (c *Cache) Confirmed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.confirmed
}

// Read возвращает последнее известное значение и запускает фоновую перезагрузку.
// Повторные вызовы до завершения загрузки не создают новых запросов.
// Второй результат false означает, что значения нет (gate закрыт или первая загрузка не завершена).
func (c *Cache) Read(ctx context.Context) ([]api.LeaderboardEntry, bool) {
	c.mu.Lock()
	if !c.confirmed {
		c.mu.Unlock()
		return nil, false
	}
	entries, present := slices.Clone(c.data), c.present
	epoch := c.epoch
	c.mu.Unlock()

	c.revalidate(ctx, epoch)
	return entries, present
}

// Peek возвращает текущее значение без перезагрузки
func (c *Cache) Peek() ([]api.LeaderboardEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.confirmed {
		return nil, false
	}
	return slices.Clone(c.data), c.present
}

// Revalidate загружает таблицу и ждет результата.
// Если загрузка уже идет, присоединяется к ней.
func (c *Cache) Revalidate(ctx context.Context) ([]api.LeaderboardEntry, error) {
	c.mu.Lock()
	if !c.confirmed {
		c.mu.Unlock()
		return nil, ErrNotConfirmed
	}
	epoch := c.epoch
	c.mu.Unlock()

	select {
	case res := <-c.revalidate(ctx, epoch):
		if res.Err != nil {
			return nil, res.Err
		}
		entries, _ := res.Val.([]api.LeaderboardEntry)
		return slices.Clone(entries), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// revalidate регистрирует загрузку синхронно, поэтому параллельные вызовы
// до получения ответа делят один запрос
func (c *Cache) revalidate(ctx context.Context, epoch int64) <-chan singleflight.Result {
	// Запрос не отменяется вызывающей стороной
	fetchCtx := context.WithoutCancel(ctx)
	key := fmt.Sprintf("%s#%d", Key, epoch)

	return c.group.DoChan(key, func() (any, error) {
		entries, err := c.fetcher.GetLeaderboard(fetchCtx)
		// Ответ получен: последующие чтения запускают новую загрузку
		c.group.Forget(key)
		if err != nil {
			c.recordError(epoch, err)
			return nil, err
		}
		c.store(epoch, entries, "revalidate")
		return entries, nil
	})
}

// Replace сохраняет готовый набор записей без загрузки (оптимистичное обновление).
// Возвращает false, если gate закрыт и значение не сохранено.
func (c *Cache) Replace(entries []api.LeaderboardEntry) bool {
	c.mu.Lock()
	epoch := c.epoch
	c.mu.Unlock()

	return c.store(epoch, entries, "replace")
}

// Delta описывает локальное изменение таблицы и обратное к нему.
// Revert применяется к текущему значению, а не к снимку,
// поэтому перекрывающиеся изменения откатываются независимо.
type Delta struct {
	Apply  func([]api.LeaderboardEntry) []api.LeaderboardEntry
	Revert func([]api.LeaderboardEntry) []api.LeaderboardEntry
}

// Mutate выполняет двухфазное обновление: сначала применяет delta.Apply к текущему
// значению, затем вызывает commit и заменяет значение его ответом.
// При ошибке commit применяется delta.Revert, если с момента изменения
// в кэш не записывался ответ сервера. delta может быть nil.
func (c *Cache) Mutate(
	ctx context.Context,
	delta *Delta,
	commit func(ctx context.Context) ([]api.LeaderboardEntry, error),
) error {
	c.mu.Lock()
	epoch, base := c.epoch, c.base
	applied := false
	var specEntries []api.LeaderboardEntry
	if c.confirmed && c.present && delta != nil {
		specEntries = delta.Apply(slices.Clone(c.data))
		c.data = specEntries
		c.revision = c.clock.Tick()
		applied = true
	}
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	if applied {
		c.notify(listeners, specEntries)
	}

	entries, err := commit(ctx)
	if err != nil {
		if applied {
			c.rollback(epoch, base, delta.Revert)
		}
		return err
	}

	c.store(epoch, entries, "mutate")
	return nil
}

// rollback отменяет локальное изменение. Если после него пришел ответ сервера,
// значение уже не содержит изменения и откат не нужен.
func (c *Cache) rollback(epoch, base int64, revert func([]api.LeaderboardEntry) []api.LeaderboardEntry) {
	c.mu.Lock()
	if !c.present || c.epoch != epoch || c.base != base {
		c.mu.Unlock()
		c.logger.Debug("Rollback skipped, cache was overwritten")
		return
	}
	c.data = revert(slices.Clone(c.data))
	c.revision = c.clock.Tick()
	entries := slices.Clone(c.data)
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	c.logger.Debug("Speculative update rolled back")
	c.notify(listeners, entries)
}

// store записывает значение, если gate открыт и поколение не сменилось
func (c *Cache) store(epoch int64, entries []api.LeaderboardEntry, source string) bool {
	c.mu.Lock()
	if !c.confirmed || c.epoch != epoch {
		c.mu.Unlock()
		c.logger.Debug("Discarding stale write", "source", source)
		return false
	}
	c.data = slices.Clone(entries)
	c.present = true
	c.revision = c.clock.Tick()
	c.base = c.revision
	if source == "revalidate" {
		c.lastErr = nil
	}
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	c.logger.Debug("Cache updated", "source", source, "entries", len(entries))
	c.notify(listeners, entries)
	return true
}

func (c *Cache) recordError(epoch int64, err error) {
	c.mu.Lock()
	if c.epoch == epoch {
		c.lastErr = err
	}
	c.mu.Unlock()

	c.logger.Warn("Failed to fetch leaderboard", "error", err)
}

// LastError возвращает ошибку последней фоновой загрузки или nil
func (c *Cache) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastErr
}

// Revision возвращает отметку последней записи в кэш
func (c *Cache) Revision() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.revision
}

// Subscribe регистрирует получателя изменений
func (c *Cache) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listeners = append(c.listeners, l)
}

func (c *Cache) notify(listeners []Listener, entries []api.LeaderboardEntry) {
	for _, l := range listeners {
		l(slices.Clone(entries))
	}
}
