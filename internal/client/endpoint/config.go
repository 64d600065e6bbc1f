package endpoint

import "sync"

// Source отдает текущий базовый URL API.
// Значение читается в момент каждого вызова, поэтому смена адреса
// влияет только на последующие запросы.
type Source interface {
	Get() string
}

// Config хранит базовый URL API, изменяемый во время работы.
// Безопасен для конкурентного использования.
type Config struct {
	baseURL    string
	configured bool
	mu         sync.RWMutex
}

// New создает конфигурацию с адресом по умолчанию.
// Адрес по умолчанию не считается настроенным до вызова Set или Confirm.
func New(defaultURL string) *Config {
	return &Config{baseURL: defaultURL}
}

// Get возвращает текущий базовый URL
func (c *Config) Get() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.baseURL
}

// Set заменяет базовый URL. Пустая строка игнорируется, форма URL не проверяется.
func (c *Config) Set(url string) {
	if url == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.baseURL = url
	c.configured = true
}

// Confirm помечает текущее значение (в том числе значение по умолчанию) как подтвержденное
func (c *Config) Confirm() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.configured = true
}

// Configured сообщает, был ли адрес задан или подтвержден
func (c *Config) Configured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.configured
}
