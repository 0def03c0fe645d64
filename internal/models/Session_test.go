package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLayoutGrid(t *testing.T) {
	cases := map[Layout][2]int{
		LayoutSingle: {1, 1},
		Layout2x2:    {2, 2},
		Layout3x3:    {3, 3},
		Layout4x4:    {4, 4},
		"5x5":        {1, 1},
	}
	for l, want := range cases {
		r, c := l.Grid()
		assert.Equal(t, want, [2]int{r, c}, l)
	}
}

func TestSessionStats_Quality(t *testing.T) {
	start := time.Unix(1000, 0)
	s := &Session{
		Config:     SessionConfig{TotalPhotos: 2},
		StartedAt:  start,
		FinishedAt: start.Add(4500 * time.Millisecond),
		Photos:     []*Photo{{}, {}},
	}
	st := s.Stats()
	assert.Equal(t, QualityExcellent, st.Quality)
	assert.Equal(t, 4, st.DurationSeconds)
	assert.Equal(t, 2, st.PhotoCount)

	s.Photos = s.Photos[:1]
	s.Skipped = 1
	st = s.Stats()
	assert.Equal(t, QualityGood, st.Quality)
	assert.Equal(t, 2, s.Attempts())
}

func TestSessionStats_EmptySessionIsExcellent(t *testing.T) {
	s := &Session{Config: SessionConfig{TotalPhotos: 0}, StartedAt: time.Now(), FinishedAt: time.Now()}
	assert.Equal(t, QualityExcellent, s.Stats().Quality)
}

func TestSessionPhoto(t *testing.T) {
	s := &Session{Photos: []*Photo{{Index: 0}}}
	_, ok := s.Photo(0)
	assert.True(t, ok)
	_, ok = s.Photo(1)
	assert.False(t, ok)
	_, ok = s.Photo(-1)
	assert.False(t, ok)
}
