// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

// RotatingWriterConfig describes the on-disk log files. If [Directory] is
// empty, logs are only displayed.
type RotatingWriterConfig struct {
	Directory string `json:"directory"`
	// Maximum size of a log file, in megabytes, before it is rotated.
	MaxSize int `json:"maxSize"`
	// Maximum number of rotated files to keep. 0 keeps them all.
	MaxFiles int `json:"maxFiles"`
	// Maximum number of days to keep a rotated file. 0 keeps them forever.
	MaxAge   int  `json:"maxAge"`
	Compress bool `json:"compress"`
}

// Config defines the configuration of a logger factory
type Config struct {
	RotatingWriterConfig
	DisableWriterDisplaying bool      `json:"disableWriterDisplaying"`
	LogLevel                Level     `json:"logLevel"`
	DisplayLevel            Level     `json:"displayLevel"`
	DisplayHighlight        Highlight `json:"displayHighlight"`
}

// DefaultConfig displays INFO and above and doesn't write any files.
func DefaultConfig() Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:  8, // 8 MB
			MaxFiles: 7,
			MaxAge:   7,
		},
		LogLevel:         Info,
		DisplayLevel:     Info,
		DisplayHighlight: Plain,
	}
}
