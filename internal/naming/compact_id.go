package naming

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	compactTimeLen   = 7
	compactRandomLen = 5
	// 36^7 and 36^5
	compactTimeLimit   = 78364164096
	compactRandomLimit = 60466176
)

// NewCompactID returns a 12 character, lowercase base36 ID: a 7 character
// timestamp (seconds) followed by 5 random characters. IDs sort by creation
// second.
func NewCompactID() (string, error) {
	ts := time.Now().UTC().Unix()
	if ts < 0 || ts >= compactTimeLimit {
		return "", fmt.Errorf("timestamp %d out of compact ID range", ts)
	}
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	r := uint64(binary.BigEndian.Uint32(b[:])) % compactRandomLimit
	return padBase36(strconv.FormatInt(ts, 36), compactTimeLen) + padBase36(strconv.FormatUint(r, 36), compactRandomLen), nil
}

// NewPrefixedID returns prefix + "-" + NewCompactID().
func NewPrefixedID(prefix string) (string, error) {
	id, err := NewCompactID()
	if err != nil {
		return "", err
	}
	return prefix + "-" + id, nil
}

func padBase36(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}
