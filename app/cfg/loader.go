package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Input/output paths
	ProjectFile string `short:"p" long:"project" env:"CASTPRESS_PROJECT" default:"podcast.yml" description:"Podcast project file"`
	EpisodesDir string `short:"d" long:"episodes-dir" env:"CASTPRESS_EPISODES_DIR" default:"./episodes" description:"Directory containing the episode MP3 files"`
	OutputFile  string `short:"o" long:"output" env:"CASTPRESS_OUTPUT" default:"feed.xml" description:"Path the generated feed is written to"`
	CachePath   string `long:"cache" env:"CASTPRESS_CACHE" default:"castpress-cache.db" description:"Probe cache database path"`

	// Feed options
	ShowEpisodesWithoutMP3 bool `long:"show-episodes-without-mp3" env:"CASTPRESS_SHOW_EPISODES_WITHOUT_MP3" description:"Include episodes whose audio file is not present"`

	// Actions
	AddGUIDs  bool `short:"a" long:"add-guids" description:"Assign a GUID to every episode missing one and rewrite the project file"`
	Tag       bool `short:"t" long:"tag" description:"Write ID3 tags into the episode MP3 files"`
	StripTags bool `long:"strip-tags" description:"Remove all ID3 tags before tagging"`
	NoVerify  bool `long:"no-verify" description:"Skip re-parsing the generated feed"`

	// Preview server
	Serve bool   `short:"s" long:"serve" description:"Serve the generated feed and episodes over HTTP after building"`
	Port  string `long:"port" env:"PORT" default:"8080" description:"Preview server port"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		ProjectFile:            raw.ProjectFile,
		EpisodesDir:            raw.EpisodesDir,
		OutputFile:             raw.OutputFile,
		CachePath:              raw.CachePath,
		ShowEpisodesWithoutMP3: raw.ShowEpisodesWithoutMP3,
		AddGUIDs:               raw.AddGUIDs,
		Tag:                    raw.Tag,
		StripTags:              raw.StripTags,
		NoVerify:               raw.NoVerify,
		Serve:                  raw.Serve,
		Port:                   raw.Port,
		Debug:                  raw.Debug,
		Version:                GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
