package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// CheckCommand — check identifiers against the reference catalogue.
type CheckCommand struct {
	Input     []string `long:"input" short:"i" description:"Raw query input; repeatable, each occurrence is one batch"`
	File      string   `long:"file" short:"f" description:"Read bulk query input from a file"`
	Bulk      bool     `long:"bulk" description:"Treat input as newline-separated identifiers"`
	Dataset   string   `long:"dataset" description:"Load the catalogue from a JSON snapshot file instead of the cache"`
	LookupURL string   `long:"lookup-url" description:"Override the outbound lookup URL template (one %d verb)"`

	globals *GlobalFlags
	version string
	maxRows int
}

// ImportCommand — import a JSON dataset snapshot into the local cache.
type ImportCommand struct {
	File string `long:"file" short:"f" description:"Path to the JSON snapshot file (required)"`

	globals *GlobalFlags
	version string
}

// StatusCommand — show cached snapshot information and database stats.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}
