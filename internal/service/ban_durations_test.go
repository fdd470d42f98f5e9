package service

import (
	"testing"
	"time"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanDurationOptions(t *testing.T) {
	want := []string{"1 hour", "1 day", "1 week", "1 month", "permanent"}

	assert.Equal(t, want, BanDurationOptions())
}

func TestParseBanDuration(t *testing.T) {
	cases := []struct {
		token         string
		wantDuration  time.Duration
		wantPermanent bool
		wantErr       error
	}{
		{token: "1 hour", wantDuration: time.Hour},
		{token: "1 day", wantDuration: 24 * time.Hour},
		{token: "1 week", wantDuration: 7 * 24 * time.Hour},
		// месяц считается как 30 суток.
		{token: "1 month", wantDuration: 30 * 24 * time.Hour},
		{token: "permanent", wantPermanent: true},
		{token: "2 hours", wantErr: domain.ErrInvalidBanDuration},
		{token: "", wantErr: domain.ErrInvalidBanDuration},
	}

	for _, tt := range cases {
		t.Run(tt.token, func(t *testing.T) {
			duration, permanent, err := ParseBanDuration(tt.token)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDuration, duration)
			assert.Equal(t, tt.wantPermanent, permanent)
		})
	}
}
