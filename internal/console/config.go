package console

import (
	"io"
	"os"
)

type Config struct {
	ShowRepoIndex bool
}

// Streams are the writers the presentation layer prints to. Detail lines and
// traversal headings go to Out, pull progress to Err.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

func StdStreams() Streams {
	return Streams{
		Out: os.Stdout,
		Err: os.Stderr,
	}
}
