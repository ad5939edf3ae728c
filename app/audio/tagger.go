package audio

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// TagOptions is the parameter set written into an MP3's ID3 metadata. Zero
// values mean "leave the corresponding frame alone".
type TagOptions struct {
	Author          string
	AlbumName       string
	TrackTitle      string
	TrackNumber     int
	Genre           string
	Year            int
	Comment         string
	CommentLanguage string // ISO 639-2, defaults to "eng"
	URL             string // canonical source URL, stored as a WOAS frame
	CoverImage      string // local image path, embedded as FRONT_COVER
}

// Args builds the eyeD3 argument list for the option set, excluding the
// target filename. Exposed separately so command construction is testable
// without the binary installed.
func (o TagOptions) Args() []string {
	var args []string
	if o.Author != "" {
		args = append(args, "-a", o.Author)
	}
	if o.AlbumName != "" {
		args = append(args, "-A", o.AlbumName)
	}
	if o.TrackTitle != "" {
		args = append(args, "-t", o.TrackTitle)
	}
	if o.TrackNumber > 0 {
		args = append(args, "-n", strconv.Itoa(o.TrackNumber))
	}
	if o.Genre != "" {
		args = append(args, "-G", o.Genre)
	}
	if o.Year > 0 {
		args = append(args, "-Y", strconv.Itoa(o.Year))
	}
	if o.Comment != "" {
		lang := o.CommentLanguage
		if lang == "" {
			lang = "eng"
		}
		args = append(args, "--add-comment", fmt.Sprintf("%s:comment:%s", o.Comment, lang))
	}
	if o.URL != "" {
		args = append(args, "--url-frame", "WOAS:"+o.URL)
	}
	if o.CoverImage != "" {
		args = append(args, "--add-image", o.CoverImage+":FRONT_COVER")
	}
	return args
}

// Tagger shells out to eyeD3 to mutate a file's embedded metadata in place.
type Tagger struct {
	binary string
}

func NewTagger() *Tagger {
	return &Tagger{binary: "eyeD3"}
}

// Tag writes the given option set into the file.
func (t *Tagger) Tag(ctx context.Context, path string, opts TagOptions) error {
	args := append(opts.Args(), path)
	cmd := exec.CommandContext(ctx, t.binary, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("eyeD3 failed for %s: %w (output: %s)", path, err, out)
	}
	return nil
}

// StripTags removes all embedded metadata from the file.
func (t *Tagger) StripTags(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, t.binary, "--remove-all", path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("eyeD3 --remove-all failed for %s: %w (output: %s)", path, err, out)
	}
	return nil
}
