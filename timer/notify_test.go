package timer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSessionCmd(t *testing.T) {
	assert.NoError(t, runSessionCmd(""))
	assert.Error(t, runSessionCmd("echo 'unterminated"))
	assert.Error(t, runSessionCmd("focusboard-no-such-binary --flag"))
}

func TestPrepSoundStreamErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := prepSoundStream(filepath.Join(dir, "missing.mp3"))
	assert.ErrorIs(t, err, errOpenSound)

	txt := filepath.Join(dir, "bell.txt")
	assert.NoError(t, os.WriteFile(txt, []byte("ding"), 0o600))

	_, err = prepSoundStream(txt)
	assert.ErrorIs(t, err, errInvalidSoundFormat)
}
