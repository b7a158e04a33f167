package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Guard(t *testing.T) {
	var guard Guard

	first := guard.Renew()
	assert.True(t, first.Current())

	second := guard.Renew()
	assert.False(t, first.Current())
	assert.True(t, second.Current())

	guard.Renew()
	assert.False(t, second.Current())
}

func Test_Guard_zeroGenIsNeverCurrent(t *testing.T) {
	var gn Gen
	assert.False(t, gn.Current())
}
