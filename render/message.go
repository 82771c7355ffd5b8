package render

// MsgKind discriminates pipeline messages. Stop is a poison pill: once a
// consuming loop observes it, the loop terminates after finishing any
// in-flight item.
type MsgKind uint8

const (
	// MsgProcess asks a worker to render one tile.
	MsgProcess MsgKind = iota + 1
	// MsgMerge carries one rendered tile to the merger.
	MsgMerge
	// MsgStop terminates the consuming loop.
	MsgStop
)

// WorkMessage travels on the work queue from the scheduler to the
// worker pool.
type WorkMessage struct {
	Kind MsgKind
	Tile Tile
}

// ResultMessage travels on the result queue from the workers to the
// merger. Pixels is an owned RGBA block of exactly the clipped tile's
// size, row-major, consumed exactly once.
type ResultMessage struct {
	Kind   MsgKind
	Tile   Tile
	Pixels []byte
}

// Signal is the payload-less stop message used on the control queues
// (scheduler, ticker, coordinator input, done).
type Signal struct{}

func processTile(t Tile) WorkMessage { return WorkMessage{Kind: MsgProcess, Tile: t} }
func stopWork() WorkMessage          { return WorkMessage{Kind: MsgStop} }

func mergeResult(t Tile, pixels []byte) ResultMessage {
	return ResultMessage{Kind: MsgMerge, Tile: t, Pixels: pixels}
}
func stopResult() ResultMessage { return ResultMessage{Kind: MsgStop} }
