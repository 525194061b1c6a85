package identify

// Config holds configuration for identification runs.
type Config struct {
	// Workers bounds concurrent identifications.
	Workers int `mapstructure:"workers" default:"8"`
	// Paths is the path corpus location: a local file or s3://<object key>.
	Paths string `mapstructure:"paths" default:"CurrentPathList.gz"`
	// BNpc is the battle NPC link file location.
	BNpc string `mapstructure:"bnpc" default:"bnpc.json"`
	// Output is the file the batch command writes its JSON document to.
	Output string `mapstructure:"output" default:"affects.json"`
	// GamePrefix is the folder in the bucket holding extracted game files.
	GamePrefix string `mapstructure:"game_prefix" default:"game"`
	// ProgressSeconds is the minimum time between batch progress log lines.
	ProgressSeconds int `mapstructure:"progress_seconds" default:"3"`
}
