package clock

import (
	"sync"

	"github.com/google/uuid"
)

// Clock локальный счетчик ревизий кэша. Каждая запись получает новую
// отметку через Tick, что позволяет определить, была ли запись
// перезаписана кем-то позже. Между процессами отметки не сравниваются.
type Clock struct {
	nodeID  string     // уникальный идентификатор экземпляра
	counter int64      // монотонно возрастающий счетчик
	mu      sync.Mutex // мьютекс для потокобезопасности
}

// New создает часы с уникальным идентификатором узла (UUID)
func New() *Clock {
	return &Clock{nodeID: uuid.New().String()}
}

// Tick увеличивает счетчик и возвращает новую отметку
func (c *Clock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counter++
	return c.counter
}

// NodeID возвращает идентификатор экземпляра
func (c *Clock) NodeID() string {
	return c.nodeID
}
