package fs

import (
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// UnicodeEncoding identifies a byte-order-mark detected at the start of content.
type UnicodeEncoding int

const (
	EncodingUnknown UnicodeEncoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

func (e UnicodeEncoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8 (bom)"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

var (
	// ErrInvalidEncoding is returned by DecodeText when content is not valid UTF-8.
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")
	// ErrTooLarge is returned by ReadFileLimited when the file exceeds the limit.
	ErrTooLarge = errors.New("file too large")
)

// ReadFileHead returns up to limit bytes from the beginning of path.
func ReadFileHead(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return io.ReadAll(io.LimitReader(f, limit))
}

// ReadFileLimited reads the whole file, failing with ErrTooLarge when it holds
// more than limit bytes.
func ReadFileLimited(path string, limit int64) ([]byte, error) {
	content, err := ReadFileHead(path, limit+1)
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > limit {
		return nil, ErrTooLarge
	}
	return content, nil
}

// DetectUnicodeEncoding inspects a leading byte-order-mark.
func DetectUnicodeEncoding(sample []byte) UnicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return EncodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return EncodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return EncodingUTF16BE
		}
	}
	return EncodingUnknown
}

// DecodeText converts raw file content to a string. UTF-16 with a BOM is
// transcoded; any other content is returned byte-for-byte, UTF-8 BOM and NUL
// bytes included, as long as it is valid UTF-8.
func DecodeText(content []byte) (string, error) {
	if len(content) == 0 {
		return "", nil
	}

	switch DetectUnicodeEncoding(content) {
	case EncodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case EncodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	}

	if !utf8.Valid(content) {
		return "", ErrInvalidEncoding
	}
	return string(content), nil
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
