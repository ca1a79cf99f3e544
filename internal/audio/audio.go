package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	mu          sync.Mutex
	initialized bool
)

// Init initializes the audio system
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		speaker.Close()
		initialized = false
	}
}

func ready() bool {
	mu.Lock()
	defer mu.Unlock()
	return initialized
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// melody plays the notes one after another
func melody(freqs []float64, each time.Duration) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = squareWave(f, each)
	}
	return beep.Seq(notes...)
}

// PlayReturn plays the sound for a hand returning the ball
func PlayReturn() {
	if !ready() {
		return
	}
	speaker.Play(squareWave(880, 50*time.Millisecond))
}

// PlayWallBounce plays the sound for ball hitting top/bottom wall
func PlayWallBounce() {
	if !ready() {
		return
	}
	speaker.Play(squareWave(440, 30*time.Millisecond))
}

// PlayPoint plays the descending tone when a side scores on a miss
func PlayPoint() {
	if !ready() {
		return
	}
	speaker.Play(melody([]float64{660, 440, 330}, 100*time.Millisecond))
}

// PlayGameOver plays the closing jingle
func PlayGameOver() {
	if !ready() {
		return
	}
	speaker.Play(melody([]float64{523, 392, 330, 262}, 150*time.Millisecond))
}

// Speaker plays the game sounds on the default output device
type Speaker struct{}

func (Speaker) Return()     { PlayReturn() }
func (Speaker) WallBounce() { PlayWallBounce() }
func (Speaker) Point()      { PlayPoint() }
func (Speaker) GameOver()   { PlayGameOver() }
