package models

import "github.com/sast/hwboard/pkg/api"

// Submission представляет одну посылку студента
type Submission struct {
	ID     string   // UUID посылки
	User   string   // идентификатор студента
	Avatar string   // base64 аватара, пустая строка если аватар не прислан
	Subs   api.Subs // баллы подзадач
	Score  float64  // итоговый балл
	Time   int64    // unix время приема, секунды
}

// HistoryEntry возвращает строку истории для посылки
func (s *Submission) HistoryEntry() api.HistoryEntry {
	return api.HistoryEntry{
		Subs:  s.Subs,
		Score: s.Score,
		Time:  s.Time,
	}
}
