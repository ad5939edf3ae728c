package cfg

type Cfg struct {
	// Input/output paths
	ProjectFile string
	EpisodesDir string
	OutputFile  string
	CachePath   string

	// Feed options
	ShowEpisodesWithoutMP3 bool

	// Actions
	AddGUIDs  bool
	Tag       bool
	StripTags bool
	NoVerify  bool

	// Preview server
	Serve bool
	Port  string

	// Application metadata
	Debug   bool
	Version string
}
