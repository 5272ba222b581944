package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/viralscope/core"
)

// Key prefixes for different data types
const (
	searchRecordPrefix     = "searec"
	searchRecordDatePrefix = "searecd"
	searchRecordIDSeq      = "searecseq"
	imageRecordPrefix      = "imgrec"
	imageSearchScorePrefix = "imgrecs"
	imageRecordIDSeq       = "imgrecseq"
)

// makeSearchRecordKey generates a key for a search record by ID.
func makeSearchRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", searchRecordPrefix, id))
}

// makeSearchDateKey generates a composite key for the creation-date index.
// Format: prefix:timestamp:id
func makeSearchDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := searchRecordDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialSearchDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func makePartialSearchDateKey(timestamp time.Time) []byte {
	prefix := searchRecordDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// makeImageKey generates a key for a viral image by ID.
func makeImageKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", imageRecordPrefix, id))
}

// makeImageScoreKey generates a composite key for the per-search score index.
// Format: prefix:searchID:invertedScore:imageID
// The score is bitwise-inverted so a forward iteration yields images in
// descending score order; the trailing ID breaks ties deterministically.
func makeImageScoreKey(searchID core.ID, score int, imageID core.ID) []byte {
	prefix := imageSearchScorePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 24 // 8 bytes each for searchID, score, imageID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(searchID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], ^uint64(score))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(imageID))
	return buf
}

// makePartialImageScoreKey generates a partial key for per-search queries.
// Format: prefix:searchID
func makePartialImageScoreKey(searchID core.ID) []byte {
	prefix := imageSearchScorePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for searchID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(searchID))
	return buf
}
