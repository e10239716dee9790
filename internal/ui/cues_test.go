package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diarselimi/crux/internal/timer"
)

var _ timer.CueSink = TermCues{}

func TestTermCuesRingsBell(t *testing.T) {
	var buf bytes.Buffer
	c := TermCues{W: &buf}

	c.PlayCue(timer.Cue60)
	assert.Equal(t, "\a", buf.String())

	// Vibration has no terminal equivalent.
	c.Vibrate(30)
	assert.Equal(t, "\a", buf.String())
}
