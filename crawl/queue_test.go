package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	t.Run("Should preserve discovery order and reject duplicates", func(t *testing.T) {
		q := NewQueue()
		q.Add("https://example.com/a")
		q.Add("https://example.com/b")
		q.Add("https://example.com/a")
		q.Add("https://example.com/c")

		assert.Equal(t, 3, q.Visited())
		assert.Equal(t, []string{
			"https://example.com/a",
			"https://example.com/b",
			"https://example.com/c",
		}, q.All())
	})

	t.Run("Should drain in FIFO order", func(t *testing.T) {
		q := NewQueue()
		q.Add("first")
		q.Add("second")

		assert.True(t, q.HasNext())
		assert.Equal(t, "first", q.Next())
		assert.Equal(t, "second", q.Next())
		assert.False(t, q.HasNext())
	})

	t.Run("Should count duplicates once even after draining", func(t *testing.T) {
		q := NewQueue()
		q.Add("page")
		_ = q.Next()
		q.Add("page")

		assert.False(t, q.HasNext())
		assert.Equal(t, 1, q.Visited())
	})
}
