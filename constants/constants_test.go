package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("FRETFINDER_PORT", "")
	t.Setenv("FRETFINDER_MAX_FRET", "")
	t.Setenv("FRETFINDER_MAX_EASE", "")
	t.Setenv("FRETFINDER_DYNAMODB_TABLE", "")

	assert := assert.New(t)
	assert.Equal("8080", GetPort())
	assert.Equal(20, GetMaxFret())
	assert.Equal(4, GetMaxEase())
	assert.Equal(DefaultDynamoTable, GetDynamoTable())
}

func TestOverrides(t *testing.T) {
	t.Setenv("FRETFINDER_PORT", "9090")
	t.Setenv("FRETFINDER_MAX_FRET", "13")
	t.Setenv("FRETFINDER_MAX_EASE", "not a number")
	t.Setenv("FRETFINDER_DYNAMODB_ENDPOINT", "http://localhost:8000")

	assert := assert.New(t)
	assert.Equal("9090", GetPort())
	assert.Equal(13, GetMaxFret())
	assert.Equal(4, GetMaxEase())
	assert.Equal("http://localhost:8000", GetDynamoEndpoint())
}
