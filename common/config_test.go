package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiments.yaml")
	data := "experiments:\n" +
		"  - trials: 10\n" +
		"    prob: 0.3\n" +
		"  - trials: 7\n" +
		"    prob: 0.5\n"
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	conf, err := NewConfig(path)
	assert.NoError(t, err)

	entries, ok := conf.Get(EXPERIMENTS).([]interface{})
	assert.True(t, ok)
	assert.Len(t, entries, 2)

	first, ok := entries[0].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, 10, first[TRIALS])
	assert.Equal(t, 0.3, first[PROB])
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
