package port

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields_Merge(t *testing.T) {
	base := Fields{"component": "rest", "trace_id": "t1"}

	merged := base.Merge(Fields{"trace_id": "t2", "session_id": "s1"})

	assert.Equal(t, Fields{"component": "rest", "trace_id": "t2", "session_id": "s1"}, merged)
	assert.Equal(t, "t1", base["trace_id"])
	assert.Empty(t, Fields(nil).Merge(nil))
}
