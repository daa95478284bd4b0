package timer

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// prepSoundStream returns an audio stream for the sound file at path and
// initialises the speaker for its sample rate.
func prepSoundStream(path string) (beep.StreamSeekCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errOpenSound.Fmt(path).Wrap(err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, errInvalidSoundFormat.Fmt(path)
	}

	if err != nil {
		_ = f.Close()
		return nil, err
	}

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		_ = stream.Close()
		return nil, err
	}

	return stream, nil
}

// playSound plays the sound file at path and blocks until it ends. Without
// a file, the terminal bell is used.
func playSound(path string) error {
	if path == "" {
		return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
	}

	stream, err := prepSoundStream(path)
	if err != nil {
		return err
	}

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	_ = stream.Close()

	speaker.Clear()
	speaker.Close()

	return nil
}
