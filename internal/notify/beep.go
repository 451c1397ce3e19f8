package notify

import (
	"time"

	"github.com/gen2brain/beeep"
)

// A toneSequence is a series of beeps played back to back.
type toneSequence struct {
	frequencies []float64
	duration    time.Duration
}

var (
	// Three urgent high tones for a ringing alarm.
	alarmSequence = toneSequence{
		frequencies: []float64{800, 800, 800},
		duration:    200 * time.Millisecond,
	}
	// Descending pair for a finished timer.
	timerSequence = toneSequence{
		frequencies: []float64{600, 400},
		duration:    300 * time.Millisecond,
	}
	// Single low tone for a stopped stopwatch.
	stopwatchSequence = toneSequence{
		frequencies: []float64{400},
		duration:    200 * time.Millisecond,
	}
)

// playAsync plays the sequence on its own goroutine so the notification is
// not delayed by the audio backend.
func playAsync(seq toneSequence) {
	go func() {
		millis := int(seq.duration / time.Millisecond)
		for _, freq := range seq.frequencies {
			// Beep errors are deliberately ignored: the desktop
			// notification is the primary signal and headless hosts
			// have no audio device.
			_ = beeep.Beep(freq, millis)
			time.Sleep(seq.duration + 50*time.Millisecond)
		}
	}()
}
