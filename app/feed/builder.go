package feed

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/castpress/castpress/app/project"
	"github.com/castpress/castpress/app/timeutil"
)

// Builder turns channel metadata and an episode list into a feed document.
// Element order is fixed because feed readers may render positionally.
type Builder struct {
	channel                *project.Channel
	episodes               []project.Episode
	showEpisodesWithoutMP3 bool
	diagnostics            []string
}

// NewBuilder creates a builder over caller-owned metadata. The builder does
// not retain the inputs beyond Make.
func NewBuilder(channel *project.Channel, episodes []project.Episode, showEpisodesWithoutMP3 bool) *Builder {
	return &Builder{
		channel:                channel,
		episodes:               episodes,
		showEpisodesWithoutMP3: showEpisodesWithoutMP3,
	}
}

// Diagnostics returns the per-episode skip notices recorded during the last
// Make call. Skips are informational and never fail the build.
func (b *Builder) Diagnostics() []string {
	return b.diagnostics
}

// Make builds the feed document in one pass. It fails with a
// MissingFieldError when required metadata is absent.
func (b *Builder) Make() (*Document, error) {
	b.diagnostics = nil

	if err := b.validateChannel(); err != nil {
		return nil, err
	}

	root := newElement("", "rss", "")
	root.attr("version", "2.0")
	for _, ns := range namespaces {
		root.attr("xmlns:"+ns.Prefix, ns.URI)
	}

	channel := root.child("", "channel", "")
	authors := b.channel.Authors()

	channel.child("", "title", b.channel.Title)
	channel.child(NSAtom, "link", "").
		attr("href", b.channel.RemoteURI.RSSFeed).
		attr("rel", "self").
		attr("type", "application/rss+xml")

	owner := channel.child(NSITunes, "owner", "")
	owner.child(NSITunes, "name", authors)
	owner.child(NSITunes, "email", b.channel.Email)

	channel.child(NSITunes, "author", authors)
	channel.child(NSITunes, "category", "").attr("text", b.channel.Category)
	// No explicit-content detection is implemented; the flag is fixed.
	channel.child(NSITunes, "explicit", "no")
	channel.child(NSITunes, "keywords", strings.Join(b.channel.Keywords, ","))
	channel.child(NSITunes, "subtitle", b.channel.DescriptionShort)
	channel.child(NSITunes, "type", "episodic")
	channel.child(NSITunes, "summary", b.channel.Description)
	channel.child(NSGooglePlay, "category", "").attr("text", b.channel.Category)
	channel.child("", "description", b.channel.Description)
	channel.child(NSITunes, "image", "").attr("href", b.channel.RemoteURI.CoverImage)
	channel.child("", "language", b.channel.Locale.RSS)
	channel.child("", "link", b.channel.RemoteURI.Website)

	for i := range b.episodes {
		if err := b.addEpisode(channel, i); err != nil {
			return nil, err
		}
	}

	return &Document{Root: root}, nil
}

func (b *Builder) addEpisode(channel *Element, index int) error {
	ep := &b.episodes[index]

	if ep.GUID == "" {
		diag := fmt.Sprintf("episode %q has no GUID set, not including it in the feed; run castpress --add-guids to assign one", ep.Title)
		b.diagnostics = append(b.diagnostics, diag)
		slog.Warn("Episode skipped", "episode", ep.Title, "reason", "no GUID", "hint", "run castpress --add-guids")
		return nil
	}

	if !b.showEpisodesWithoutMP3 && !ep.HaveAudio {
		return nil
	}

	if err := b.validateEpisode(ep, index); err != nil {
		return err
	}

	item := channel.child("", "item", "")
	item.child("", "title", ep.Title)
	item.child("", "description", ep.Description)
	item.child(NSITunes, "title", ep.Title)
	item.child(NSITunes, "subtitle", ep.DescriptionShort)
	item.child(NSITunes, "author", b.channel.Authors())
	item.child(NSITunes, "summary", ep.Description)
	item.child("", "pubDate", timeutil.FormatRFC822(ep.PublishedAt))
	item.child("", "enclosure", "").
		attr("url", ep.RemoteURI.Episode).
		attr("type", "audio/mpeg").
		attr("length", strconv.FormatInt(ep.AudioSize, 10))
	// Pre-formatted by the prober pass, passed through verbatim
	item.child(NSITunes, "duration", ep.Duration)
	item.child("", "guid", ep.GUID).attr("isPermaLink", "false")

	return nil
}

func (b *Builder) validateChannel() error {
	required := []struct {
		field string
		ok    bool
	}{
		{"title", b.channel.Title != ""},
		{"description", b.channel.Description != ""},
		{"description_short", b.channel.DescriptionShort != ""},
		{"author", len(b.channel.Author) > 0},
		{"email", b.channel.Email != ""},
		{"category", b.channel.Category != ""},
		{"locale.rss", b.channel.Locale.RSS != ""},
		{"remote_uri.website", b.channel.RemoteURI.Website != ""},
		{"remote_uri.rss_feed", b.channel.RemoteURI.RSSFeed != ""},
		{"remote_uri.cover_image", b.channel.RemoteURI.CoverImage != ""},
	}

	for _, r := range required {
		if !r.ok {
			return &MissingFieldError{Field: r.field, Entity: "channel"}
		}
	}

	return nil
}

func (b *Builder) validateEpisode(ep *project.Episode, index int) error {
	entity := fmt.Sprintf("episode %d", index)

	required := []struct {
		field string
		ok    bool
	}{
		{"title", ep.Title != ""},
		{"description", ep.Description != ""},
		{"description_short", ep.DescriptionShort != ""},
		{"pubdate", !ep.PublishedAt.IsZero()},
		{"remote_uri.episode", ep.RemoteURI.Episode != ""},
	}

	for _, r := range required {
		if !r.ok {
			return &MissingFieldError{Field: r.field, Entity: entity}
		}
	}

	return nil
}
