package estree

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeBoundaryBytes normalizes the raw bytes of a serialized AST document
// to UTF-8, sniffing a byte-order mark first. A document crossing a host
// boundary (conceptually, a browser handing over `JSON.stringify(ast)`) is
// not guaranteed to arrive as plain UTF-8: it may carry a BOM, or be UTF-16
// if the host's transport serialized a JS string natively instead of
// encoding it as UTF-8 first.
func decodeBoundaryBytes(data []byte) ([]byte, error) {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:], nil
	}
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		return decodeUTF16(data, unicode.LittleEndian)
	}
	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		return decodeUTF16(data, unicode.BigEndian)
	}
	if utf8.Valid(data) {
		return data, nil
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return []byte(string(runes)), nil
}

func decodeUTF16(data []byte, endianness unicode.Endianness) ([]byte, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	utf8Data, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, err
	}
	if len(utf8Data) >= 3 && utf8Data[0] == 0xEF && utf8Data[1] == 0xBB && utf8Data[2] == 0xBF {
		utf8Data = utf8Data[3:]
	}
	utf8Data = bytes.TrimPrefix(utf8Data, []byte("﻿"))
	return utf8Data, nil
}
