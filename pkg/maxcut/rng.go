package maxcut

import "golang.org/x/exp/rand"

// NewRand returns a PCG backed generator for seed. Two generators built from the same seed
// produce the same stream.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(uint64(seed)))
}

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer), giving every GRASP
// iteration its own stream that depends only on (parent, stream).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
