/*

Package repparser parses a decoded replay buffer (the output of
github.com/aoe2rec/aoe2rec/envelope) into a github.com/aoe2rec/aoe2rec/rep.Replay:
the tagged-node metadata tree, the build string and profile-key table, and
(unless disabled via Config) the command-group stream.

The package is safe for concurrent use: Parse and friends take an input
buffer and return a fresh, independent Replay with no shared state between
calls.

*/
package repparser

import (
	"errors"
	"log"
	"os"

	"github.com/aoe2rec/aoe2rec/envelope"
	"github.com/aoe2rec/aoe2rec/rep"
)

// ErrEmptyInput is returned when Parse is given a zero-length buffer.
var ErrEmptyInput = errors.New("repparser: empty input")

// Config controls optional parsing behavior. The zero value parses only
// metadata; use DefaultConfig for the typical Commands: true case.
type Config struct {
	// Commands controls whether the command-group stream is parsed at all.
	// Some callers only want metadata and can skip this comparatively
	// expensive pass.
	Commands bool

	// Debug, when set, retains the raw decompressed buffer on the returned
	// Replay (Replay.Data) for callers that want to re-derive offsets.
	Debug bool

	// Logger receives parse-time warnings (e.g. multiple FH/ST nodes) and,
	// when non-nil, is used in place of log.Default().
	Logger *log.Logger

	_ struct{} // to prevent unkeyed literals
}

// DefaultConfig is the configuration used by Parse and ParseFile: command
// groups are parsed, the raw buffer is not retained.
var DefaultConfig = Config{Commands: true}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// Parse decodes an already-envelope-stripped, decompressed replay buffer
// using DefaultConfig.
func Parse(data []byte) (*rep.Replay, error) {
	return ParseConfig(data, DefaultConfig)
}

// ParseConfig decodes data, an already-decompressed replay buffer, per cfg.
func ParseConfig(data []byte, cfg Config) (replay *rep.Replay, err error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	return parseProtected(data, cfg)
}

// ParseFile reads path (an l33t envelope), decompresses it, and parses the
// result using DefaultConfig.
func ParseFile(path string) (*rep.Replay, error) {
	return ParseFileConfig(path, DefaultConfig)
}

// ParseFileConfig reads path, decompresses its l33t envelope, and parses the
// result per cfg.
func ParseFileConfig(path string, cfg Config) (*rep.Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := envelope.Decode(f)
	if err != nil {
		return nil, err
	}

	return ParseConfig(data, cfg)
}

// parseProtected runs the unprotected parse steps and recovers any
// *ParseError panic into a returned error. Every reader in this package
// panics on a bounds or validation failure instead of threading an error
// return through every call; input is untrusted, so this boundary is
// load-bearing, exactly as the teacher's own parseProtected documents.
func parseProtected(data []byte, cfg Config) (replay *rep.Replay, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			err = pe
		}
	}()

	logger := cfg.logger()

	root := buildNodeTree(data, logger)
	buildString := readBuildString(root, data, logger)
	profileKeys := readProfileKeys(root, data, logger)

	replay = &rep.Replay{
		Root:        root,
		BuildString: buildString,
		ProfileKeys: profileKeys,
	}

	if cfg.Commands {
		replay.CommandGroups = parseCommandGroups(data, root.EndOffset())
	}

	if cfg.Debug {
		replay.Data = data
	}

	return replay, nil
}
