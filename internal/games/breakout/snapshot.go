package breakout

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a read-only copy of the simulation state.
type Snapshot struct {
	State      GameState
	Difficulty Difficulty
	Paddle     Paddle
	Ball       Ball
	Blocks     []Block
	Score      int
	Destroyed  int
	RunTime    time.Duration
	ClearTime  time.Duration

	// RNGState is the random source position, zero when the source cannot report it.
	RNGState uint64
}

// Snapshot copies the world. The block slice is not shared.
func (w World) Snapshot() Snapshot {
	blocks := make([]Block, len(w.Blocks))
	copy(blocks, w.Blocks)

	return Snapshot{
		State:      w.State,
		Difficulty: w.Difficulty,
		Paddle:     w.Paddle,
		Ball:       w.Ball,
		Blocks:     blocks,
		Score:      w.Score,
		Destroyed:  w.Destroyed,
		RunTime:    w.RunTime,
		ClearTime:  w.ClearTime,
	}
}

// Hash returns an xxhash digest of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so equal hashes mean bit-identical runs.
func (snap *Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	putF := func(v float64) { putU(math.Float64bits(v)) }
	putI := func(v int64) { putU(uint64(v)) } //#nosec G115 -- hash computation

	putI(int64(snap.State))
	putI(int64(snap.Difficulty))
	putF(snap.Paddle.X)
	putF(snap.Paddle.Y)
	putF(snap.Ball.Pos.X)
	putF(snap.Ball.Pos.Y)
	putF(snap.Ball.Vel.X)
	putF(snap.Ball.Vel.Y)
	putI(int64(len(snap.Blocks)))
	for _, b := range snap.Blocks {
		putF(b.X)
		putF(b.Y)
	}
	putI(int64(snap.Score))
	putI(int64(snap.Destroyed))
	putI(int64(snap.RunTime))
	putI(int64(snap.ClearTime))
	putU(snap.RNGState)

	return d.Sum64()
}
