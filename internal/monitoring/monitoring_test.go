package monitoring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordEventCounts(t *testing.T) {
	s := NewService(Config{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RecordEvent("dataset.generated", map[string]string{"kind": "users"})
		}()
	}
	wg.Wait()
	s.RecordEvent("snapshot.expired", nil)

	counts := s.EventCounts()
	assert.Equal(t, int64(50), counts["dataset.generated"])
	assert.Equal(t, int64(1), counts["snapshot.expired"])

	counts["dataset.generated"] = 0
	assert.Equal(t, int64(50), s.EventCounts()["dataset.generated"])
	assert.Equal(t, int64(1), s.GetEventMetrics().Events["snapshot.expired"])
}

func TestFormatLabels(t *testing.T) {
	assert.Equal(t, "{a=1, b=2}", formatLabels(map[string]string{"b": "2", "a": "1"}))
	assert.Equal(t, "{}", formatLabels(nil))
}
