package service

import (
	"time"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
)

// BanPermanentToken токен перманентного бана, у него нет срока истечения.
const BanPermanentToken = "permanent"

type banDuration struct {
	Token    string
	Duration time.Duration
}

// banDurations закрытый словарь токенов длительности бана. Порядок фиксирован,
// SPA показывает список в этом порядке. "1 month" считается как 30 суток.
var banDurations = []banDuration{
	{Token: "1 hour", Duration: time.Hour},
	{Token: "1 day", Duration: 24 * time.Hour},
	{Token: "1 week", Duration: 7 * 24 * time.Hour},
	{Token: "1 month", Duration: 30 * 24 * time.Hour},
	{Token: BanPermanentToken},
}

// BanDurationOptions возвращает упорядоченный список токенов длительности.
func BanDurationOptions() []string {
	options := make([]string, len(banDurations))
	for i, d := range banDurations {
		options[i] = d.Token
	}
	return options
}

// ParseBanDuration разбирает токен длительности. Второе значение true означает
// перманентный бан (длительность при этом нулевая). Неизвестный токен -
// domain.ErrInvalidBanDuration.
func ParseBanDuration(token string) (time.Duration, bool, error) {
	for _, d := range banDurations {
		if d.Token == token {
			return d.Duration, d.Token == BanPermanentToken, nil
		}
	}
	return 0, false, domain.ErrInvalidBanDuration
}
