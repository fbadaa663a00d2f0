package lz4f

//go:generate go run github.com/dmarkham/enumer -type stage -trimprefix stage -output stage_enum.go

// stage is the position of a Decompressor within the frame.
//
// The store stages accumulate a field that arrived split across calls; the
// matching get stage reads it directly from src when it is complete.
type stage byte

const (
	stageGetHeader stage = iota
	stageStoreHeader
	stageGetBlockSize
	stageStoreBlockSize
	stageCopyDirect
	stageGetBlock
	stageStoreBlock
	stageDecodeBlock
	stageDecodeIntoDst
	stageDecodeIntoTmp
	stageFlushOut
	stageGetSuffix
	stageStoreSuffix
	stageGetSkipSize
	stageStoreSkipSize
	stageSkip
	stageFailed
)

// midFrame reports whether s is between the header and the suffix of a
// normal frame.
func (s stage) midFrame() bool {
	return s >= stageGetBlockSize && s <= stageFlushOut
}
