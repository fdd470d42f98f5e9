package repoargs

import "time"

// BanUpsert аргументы создания/обновления бана. Повторный бан того же юзера
// перезаписывает прежнюю запись (последняя запись выигрывает).
type BanUpsert struct {
	Username  string
	ExpiresAt *time.Time
}
