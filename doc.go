// Package lz4f implements the LZ4 frame format with incremental,
// caller-buffered compression and decompression.
//
// A Compressor turns a sequence of Update calls into a frame: Begin writes
// the header, every full block is compressed as soon as it is available,
// and End writes the end mark and the optional content checksum. Linked
// frames let each block refer to the 64 KiB of plaintext before it.
//
// A Decompressor is a resumable state machine. Each Decompress call takes
// whatever input and output space the caller has and reports how much of
// each it used, together with a hint of how much input it wants next.
// Skippable frames are passed over.
//
// Compress and Decompress are one-shot helpers, and Writer and Reader adapt
// the codec to io.Writer and io.Reader.
//
// The block format itself lives in the block subpackage.
package lz4f
