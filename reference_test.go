package blnk

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReference(t *testing.T) {
	ref := NewReference("txn")
	require.True(t, strings.HasPrefix(ref, "txn_"))
	_, err := uuid.Parse(strings.TrimPrefix(ref, "txn_"))
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(NewReference(""), "ref_"))
	assert.NotEqual(t, NewReference("txn"), NewReference("txn"))
}
