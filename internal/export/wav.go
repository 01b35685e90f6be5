// Package export renders saved sounds to WAV files. The dump is one-way:
// the file is for listening outside the app, not for re-import.
package export

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cartmarsh/toneSamples/core/bank"
	"github.com/cartmarsh/toneSamples/core/play"
	"github.com/cartmarsh/toneSamples/internal/synth"
)

// WriteSound renders a saved sound offline through the same scheduling path
// as live playback and writes it as 16-bit mono WAV.
func WriteSound(path string, sound bank.Sound, canvasH float64, layers ...play.Layer) error {
	off := synth.NewOffline()
	off.SetOscillatorShape(sound.Shape)
	off.SetReverbWet(sound.Reverb)
	off.SetDistortionAmount(sound.Distortion)

	player := play.NewPlayer(off, canvasH, layers...)
	dur := player.Play(sound.Points, 0, 0)
	if dur == 0 {
		return fmt.Errorf("export: sound %q has no points", sound.Name)
	}
	samples := off.Render(dur)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, synth.SampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: synth.SampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s * 32767)
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
