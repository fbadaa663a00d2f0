package lz4f

// optimalBlockSize returns the smallest block size that holds n bytes,
// without exceeding the requested one.
func optimalBlockSize(requested BlockSizeID, n uint64) BlockSizeID {
	requested = requested.resolve()
	if requested.Size() == 0 {
		return requested
	}
	id, size := Block64KB, uint64(64<<10)
	for requested > id {
		if n <= size {
			return id
		}
		id++
		size <<= 2
	}
	return requested
}

// CompressBound returns the largest output of a single Compressor.Update
// call with n bytes of input, plus what Compressor.End may add. A nil prefs
// stands for the defaults with the content checksum enabled.
func CompressBound(n int, prefs *Preferences) int {
	p := Preferences{FrameInfo: FrameInfo{ContentChecksum: true}}
	if prefs != nil {
		p = *prefs
	}
	bs := p.BlockSize.Size()
	if bs == 0 {
		bs = BlockSizeDefault.Size()
	}

	blocks := n/bs + 1
	last := bs
	if p.AutoFlush {
		last = n % bs
	}
	end := blockHeaderSize
	if p.ContentChecksum {
		end += checksumSize
	}
	return blockHeaderSize*blocks + bs*(blocks-1) + last + end
}

// CompressFrameBound returns the largest frame CompressFrame can produce for
// n bytes of input.
func CompressFrameBound(n int, prefs *Preferences) int {
	var p Preferences
	if prefs != nil {
		p = *prefs
	}
	p.BlockSize = optimalBlockSize(p.BlockSize, uint64(n))
	p.AutoFlush = true
	return MaxHeaderSize + CompressBound(n, &p)
}
