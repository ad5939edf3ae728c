// Package audio wraps the external ffprobe and eyeD3 binaries. Both are
// treated as opaque collaborators: castpress only builds their command lines
// and consumes ffprobe's JSON output.
package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// Info is the technical metadata ffprobe reports for an audio file.
type Info struct {
	Format  Format   `json:"format"`
	Streams []Stream `json:"streams"`
}

// Format describes the container. ffprobe reports size and duration as
// decimal strings.
type Format struct {
	Filename   string `json:"filename"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
}

type Stream struct {
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
}

// SizeBytes returns the container byte size.
func (i *Info) SizeBytes() (int64, error) {
	size, err := strconv.ParseInt(i.Format.Size, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable probe size %q: %w", i.Format.Size, err)
	}
	return size, nil
}

// DurationSeconds returns the container duration in seconds.
func (i *Info) DurationSeconds() (float64, error) {
	secs, err := strconv.ParseFloat(i.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable probe duration %q: %w", i.Format.Duration, err)
	}
	return secs, nil
}

// Prober shells out to ffprobe.
type Prober struct {
	binary string
}

func NewProber() *Prober {
	return &Prober{binary: "ffprobe"}
}

// Run probes a single file and decodes the JSON report.
func (p *Prober) Run(ctx context.Context, path string) (*Info, error) {
	cmd := exec.CommandContext(ctx, p.binary,
		"-loglevel", "0", "-print_format", "json", "-show_format", "-show_streams", path)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	var info Info
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fmt.Errorf("failed to decode ffprobe output for %s: %w", path, err)
	}

	return &info, nil
}
