package project

import (
	"time"
)

// Project is the on-disk podcast description: channel metadata plus the
// ordered episode list. The YAML layout mirrors what ends up in the feed.
type Project struct {
	Meta     Channel   `yaml:"meta"`
	Episodes []Episode `yaml:"episodes"`
}

// Channel holds the channel-level feed metadata.
type Channel struct {
	Title            string      `yaml:"title"`
	Description      string      `yaml:"description"`
	DescriptionShort string      `yaml:"description_short"`
	Author           []string    `yaml:"author"`
	AuthorJoin       string      `yaml:"author_join,omitempty"`
	Email            string      `yaml:"email"`
	Category         string      `yaml:"category"`
	Keywords         []string    `yaml:"keywords"`
	Locale           Locale      `yaml:"locale"`
	RemoteURI        ChannelURIs `yaml:"remote_uri"`
	CoverImageFile   string      `yaml:"cover_image_file,omitempty"` // local path, embedded into MP3s when tagging
}

// Locale carries the language codes: RSS is the feed <language> element,
// Spoken is the ISO 639-2 code used for ID3 comment frames.
type Locale struct {
	RSS    string `yaml:"rss"`
	Spoken string `yaml:"spoken,omitempty"`
}

type ChannelURIs struct {
	Website    string `yaml:"website"`
	RSSFeed    string `yaml:"rss_feed"`
	CoverImage string `yaml:"cover_image"`
}

// Episode describes a single episode. The derived fields at the bottom are
// filled in after probing the local audio file and are never written back to
// the project file.
type Episode struct {
	Title            string      `yaml:"title"`
	Description      string      `yaml:"description"`
	DescriptionShort string      `yaml:"description_short"`
	PubDate          string      `yaml:"pubdate"`
	GUID             string      `yaml:"guid,omitempty"`
	Filename         string      `yaml:"filename,omitempty"`
	TrackNumber      int         `yaml:"track_number,omitempty"`
	Genre            string      `yaml:"genre,omitempty"`
	RemoteURI        EpisodeURIs `yaml:"remote_uri"`

	PublishedAt time.Time `yaml:"-"`
	HaveAudio   bool      `yaml:"-"`
	AudioSize   int64     `yaml:"-"`
	AudioFormat string    `yaml:"-"`
	Duration    string    `yaml:"-"`
}

type EpisodeURIs struct {
	Episode string `yaml:"episode"`
}
