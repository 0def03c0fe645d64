package testutil

import (
	"fmt"
	"photobooth/internal/models"
	"sync"
)

// RecordingObserver records session events as short strings, e.g.
// "started", "countdown:3", "captured:1/4", "failed:2/4", "completed:4",
// "aborted:1".
type RecordingObserver struct {
	mu        sync.Mutex
	Events    []string
	Photos    []*models.Photo
	Completed []models.Session
	Stats     []models.SessionStats
}

func (r *RecordingObserver) add(ev string) {
	r.Events = append(r.Events, ev)
}

func (r *RecordingObserver) SessionStarted(_ models.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add("started")
}

func (r *RecordingObserver) Countdown(remaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(fmt.Sprintf("countdown:%d", remaining))
}

func (r *RecordingObserver) Captured(p *models.Photo, taken, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Photos = append(r.Photos, p)
	r.add(fmt.Sprintf("captured:%d/%d", taken, total))
}

func (r *RecordingObserver) CaptureFailed(_ error, attempt, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(fmt.Sprintf("failed:%d/%d", attempt, total))
}

func (r *RecordingObserver) SessionCompleted(s models.Session, stats models.SessionStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Completed = append(r.Completed, s)
	r.Stats = append(r.Stats, stats)
	r.add(fmt.Sprintf("completed:%d", len(s.Photos)))
}

func (r *RecordingObserver) SessionAborted(s models.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(fmt.Sprintf("aborted:%d", len(s.Photos)))
}

func (r *RecordingObserver) Snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Events...)
}

// Countdowns returns the published countdown values in order.
func (r *RecordingObserver) Countdowns() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []int
	for _, ev := range r.Events {
		var n int
		if _, err := fmt.Sscanf(ev, "countdown:%d", &n); err == nil {
			out = append(out, n)
		}
	}
	return out
}
