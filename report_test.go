package trendwatch_test

import (
	"testing"

	"github.com/fwojciec/trendwatch"
	"github.com/stretchr/testify/assert"
)

func TestReport_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		r := &trendwatch.Report{Username: "demo", Markdown: "# Report"}
		assert.NoError(t, r.Validate())
	})

	t.Run("missing username", func(t *testing.T) {
		t.Parallel()
		r := &trendwatch.Report{Markdown: "# Report"}
		assert.Equal(t, trendwatch.EINVALID, trendwatch.ErrorCode(r.Validate()))
	})

	t.Run("missing body", func(t *testing.T) {
		t.Parallel()
		r := &trendwatch.Report{Username: "demo"}
		assert.Equal(t, trendwatch.EINVALID, trendwatch.ErrorCode(r.Validate()))
	})
}
