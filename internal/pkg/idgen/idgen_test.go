package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/godbound-api/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("msg")
	assert.Equal(t, "msg_1", gen.Generate())
	assert.Equal(t, "msg_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("subject").Generate()
	require.True(t, strings.HasPrefix(id, "subject_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "subject_"))
	assert.NoError(t, err)

	a, b := idgen.NewUUID("").Generate(), idgen.NewUUID("").Generate()
	assert.NotEqual(t, a, b)
}
