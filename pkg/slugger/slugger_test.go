package slugger_test

import (
	"testing"

	"hirelens-backend/pkg/slugger"

	"github.com/stretchr/testify/assert"
)

func TestJobSlug(t *testing.T) {
	t.Run("Should normalize every segment and append the id", func(t *testing.T) {
		got := slugger.JobSlug("Señor Backend Engineer!", "Acme & Co.", "Berlin, Germany", "abc123")
		assert.Equal(t, "senor-backend-engineer-at-acme-and-co-in-berlin-germany-abc123", got)
	})

	t.Run("Empty location falls back to remote", func(t *testing.T) {
		got := slugger.JobSlug("Data Analyst", "Umbrella", "", "id9")
		assert.Equal(t, "data-analyst-at-umbrella-in-remote-id9", got)
	})

	t.Run("Identical postings still differ by id", func(t *testing.T) {
		a := slugger.JobSlug("SRE", "Initech", "Austin", "one")
		b := slugger.JobSlug("SRE", "Initech", "Austin", "two")
		assert.NotEqual(t, a, b)
	})
}
