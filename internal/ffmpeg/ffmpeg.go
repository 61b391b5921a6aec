package ffmpeg

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// overrides every other lookup when set
const PathEnv = "SRTKIT_FFMPEG_PATH"

var ErrNotFound = errors.New("ffmpeg binary not found")

// Path resolves the ffmpeg binary: PathEnv first, then configured, then
// the first ffmpeg on PATH.
func Path(configured string) (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return checkBinary(p)
	}
	if configured != "" {
		return checkBinary(configured)
	}

	found, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", fmt.Errorf(
			"%w: install ffmpeg or set %s",
			ErrNotFound,
			PathEnv,
		)
	}
	return found, nil
}

func checkBinary(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	return path, nil
}
