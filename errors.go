package lz4f

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrorCode is a failure reported by the frame codec.
//
// Functions return an ErrorCode wrapped with context; use errors.Is or
// AsCode to recover it.
type ErrorCode byte

// Error codes.
const (
	ErrGeneric ErrorCode = iota + 1
	ErrMaxBlockSizeInvalid
	ErrBlockModeInvalid
	ErrHeaderVersionWrong
	ErrBlockChecksumUnsupported
	ErrReservedFlagSet
	ErrDstMaxSizeTooSmall
	ErrFrameHeaderIncomplete
	ErrFrameTypeUnknown
	ErrFrameSizeWrong
	ErrSrcPtrWrong
	ErrDecompressionFailed
	ErrHeaderChecksumInvalid
	ErrContentChecksumInvalid
	ErrBlockSizeInvalid
	ErrStageWrong
)

func (e ErrorCode) String() string {
	switch e {
	case ErrGeneric:
		return "generic error"
	case ErrMaxBlockSizeInvalid:
		return "invalid block size identifier"
	case ErrBlockModeInvalid:
		return "invalid block mode"
	case ErrHeaderVersionWrong:
		return "unsupported frame version"
	case ErrBlockChecksumUnsupported:
		return "block checksums are not supported"
	case ErrReservedFlagSet:
		return "reserved flag set"
	case ErrDstMaxSizeTooSmall:
		return "destination buffer too small"
	case ErrFrameHeaderIncomplete:
		return "frame header incomplete"
	case ErrFrameTypeUnknown:
		return "unknown frame type"
	case ErrFrameSizeWrong:
		return "content size does not match"
	case ErrSrcPtrWrong:
		return "source is not the continuation of the previous input"
	case ErrDecompressionFailed:
		return "block decompression failed"
	case ErrHeaderChecksumInvalid:
		return "header checksum mismatch"
	case ErrContentChecksumInvalid:
		return "content checksum mismatch"
	case ErrBlockSizeInvalid:
		return "block larger than maximum block size"
	case ErrStageWrong:
		return "operation not allowed in current stage"
	default:
		return fmt.Sprintf("ErrorCode(%d)", byte(e))
	}
}

func (e ErrorCode) Error() string {
	return e.String()
}

// AsCode extracts the ErrorCode from err.
func AsCode(err error) (ErrorCode, bool) {
	var code ErrorCode
	if errors.As(err, &code) {
		return code, true
	}
	return 0, false
}

// IsCode reports whether err carries one of codes.
func IsCode(err error, codes ...ErrorCode) bool {
	code, ok := AsCode(err)
	if !ok {
		return false
	}
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
