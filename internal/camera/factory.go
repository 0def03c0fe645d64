package camera

import (
	"fmt"
	"photobooth/internal/structures"
)

const (
	SourcePattern   = "pattern"
	SourceDirectory = "directory"
)

// NewSourceProvider picks the frame source named by camera.source.
func NewSourceProvider(conf *structures.Config) (Source, error) {
	switch conf.Camera.Source {
	case SourcePattern, "":
		return NewPatternSource(conf.Camera.Width, conf.Camera.Height), nil
	case SourceDirectory:
		if conf.Camera.Dir == "" {
			return nil, fmt.Errorf("camera.dir is required for the %s source", SourceDirectory)
		}
		return NewDirectorySource(conf.Camera.Dir), nil
	default:
		return nil, fmt.Errorf("unknown camera source %q", conf.Camera.Source)
	}
}
