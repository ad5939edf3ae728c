package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleProject = `meta:
  title: Test Podcast
  description: A longer description of the test podcast.
  description_short: Short description.
  author:
    - Jane Doe
    - John Roe
  email: podcast@example.com
  category: Technology
  keywords:
    - testing
    - go
  locale:
    rss: en-us
  remote_uri:
    website: https://podcast.example.com
    rss_feed: https://podcast.example.com/feed.xml
    cover_image: https://podcast.example.com/cover.png
episodes:
  - title: Episode One
    description: The first episode.
    description_short: First.
    pubdate: "2022-06-09 12:34:56 Europe/Berlin"
    guid: 11111111-1111-1111-1111-111111111111
    remote_uri:
      episode: https://podcast.example.com/episodes/episode_one.mp3
  - title: Episode Two
    description: The second episode.
    description_short: Second.
    pubdate: "2022-07-01"
    remote_uri:
      episode: https://podcast.example.com/episodes/episode_two.mp3
`

func writeProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "podcast.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test project: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	p, err := Load(writeProject(t, sampleProject))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if p.Meta.Title != "Test Podcast" {
		t.Errorf("Expected title 'Test Podcast', got %q", p.Meta.Title)
	}
	if len(p.Episodes) != 2 {
		t.Fatalf("Expected 2 episodes, got %d", len(p.Episodes))
	}

	// Zoned pubdate resolves to the correct absolute instant
	want := time.Date(2022, 6, 9, 10, 34, 56, 0, time.UTC)
	if !p.Episodes[0].PublishedAt.UTC().Equal(want) {
		t.Errorf("Expected pubdate %v, got %v", want, p.Episodes[0].PublishedAt.UTC())
	}

	// Date-only pubdate resolves to midnight UTC
	want = time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
	if !p.Episodes[1].PublishedAt.Equal(want) {
		t.Errorf("Expected pubdate %v, got %v", want, p.Episodes[1].PublishedAt)
	}

	if p.Meta.Locale.Spoken != "eng" {
		t.Errorf("Expected default spoken locale 'eng', got %q", p.Meta.Locale.Spoken)
	}
}

func TestLoadInvalidPubdate(t *testing.T) {
	content := strings.Replace(sampleProject, "2022-07-01", "2022-13-01", 1)
	_, err := Load(writeProject(t, content))
	if err == nil {
		t.Fatal("Expected error for out-of-range pubdate, got none")
	}
	if !strings.Contains(err.Error(), "episode 1") {
		t.Errorf("Error should name the offending episode, got: %v", err)
	}
}

func TestLoadInvalidLanguage(t *testing.T) {
	content := strings.Replace(sampleProject, "rss: en-us", "rss: not a language", 1)
	_, err := Load(writeProject(t, content))
	if err == nil {
		t.Fatal("Expected error for invalid language code, got none")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeProject(t, sampleProject)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if err := p.Save(path); err != nil {
		t.Fatalf("Failed to save project: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to reload saved project: %v", err)
	}

	if reloaded.Meta.Title != p.Meta.Title {
		t.Errorf("Title changed across save/load: %q != %q", reloaded.Meta.Title, p.Meta.Title)
	}
	if len(reloaded.Episodes) != len(p.Episodes) {
		t.Errorf("Episode count changed across save/load: %d != %d", len(reloaded.Episodes), len(p.Episodes))
	}
	if reloaded.Episodes[0].GUID != p.Episodes[0].GUID {
		t.Errorf("GUID changed across save/load")
	}
}
