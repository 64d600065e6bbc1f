package api

// SubCount количество под-оценок в каждой посылке (Mountain, Sky, Water)
const SubCount = 3

// Subs представляет три под-оценки посылки в фиксированном порядке
type Subs [SubCount]float64

// Mountain возвращает первую под-оценку
func (s Subs) Mountain() float64 { return s[0] }

// Sky возвращает вторую под-оценку
func (s Subs) Sky() float64 { return s[1] }

// Water возвращает третью под-оценку
func (s Subs) Water() float64 { return s[2] }

// Average возвращает среднее арифметическое под-оценок
func (s Subs) Average() float64 {
	return (s[0] + s[1] + s[2]) / SubCount
}

// LeaderboardEntry представляет последнюю посылку пользователя в таблице лидеров
type LeaderboardEntry struct {
	User   string  `json:"user"`             // уникальный идентификатор пользователя
	Avatar string  `json:"avatar,omitempty"` // base64 изображение, пусто если аватара нет
	Subs   Subs    `json:"subs"`             // под-оценки последней посылки
	Score  float64 `json:"score"`            // оценка, вычисленная сервером
	Time   int64   `json:"time"`             // Unix seconds последней посылки
	Votes  int     `json:"votes"`            // количество голосов
}

// HistoryEntry представляет одну прошлую посылку пользователя
type HistoryEntry struct {
	Subs  Subs    `json:"subs"`
	Score float64 `json:"score"`
	Time  int64   `json:"time"`
}

// SubmitRequest представляет посылку результата
type SubmitRequest struct {
	User    string `json:"user"`             // идентификатор (номер студента)
	Content string `json:"content"`          // содержимое result.txt
	Avatar  string `json:"avatar,omitempty"` // base64 аватара, опционально
}

// VoteRequest представляет голос за пользователя
type VoteRequest struct {
	User string `json:"user"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
