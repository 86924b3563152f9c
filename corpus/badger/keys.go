package badger

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// Key prefixes for different data types
const (
	noteRecordPrefix = "notrec"
	wordIndexPrefix  = "notftw"
)

// makeNoteKey generates a key for a note record by uuid.
func makeNoteKey(uuid string) []byte {
	return []byte(noteRecordPrefix + ":" + uuid)
}

// hashWord derives a compact fixed-width key segment for an indexed word.
// BLAKE2b keeps arbitrary-length words at a constant 8 bytes in the key
// space, so prefix scans over one word stay tight.
func hashWord(word string) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(word))
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}

// makeWordIndexKey generates a composite key for the full-text word index.
// Format: prefix:wordhash:uuid
func makeWordIndexKey(word, uuid string) []byte {
	prefix := wordIndexPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8+len(uuid))
	offset := copy(buf, prefixBytes)
	// BigEndian so all entries for one word sort contiguously
	binary.BigEndian.PutUint64(buf[offset:], hashWord(word))
	offset += 8
	copy(buf[offset:], uuid)
	return buf
}

// makePartialWordIndexKey generates a partial key covering every entry
// for one word.
func makePartialWordIndexKey(word string) []byte {
	prefix := wordIndexPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], hashWord(word))
	return buf
}

// wordIndexUUID extracts the uuid suffix from a word index key.
func wordIndexUUID(key []byte) string {
	prefixLen := len(wordIndexPrefix) + 1 + 8
	if len(key) <= prefixLen {
		return ""
	}
	return string(key[prefixLen:])
}
