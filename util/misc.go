package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// JsonHash derives a stable key for any JSON-marshalable value. Map keys are
// sorted by json.Marshal, so the key does not depend on iteration order.
func JsonHash(s interface{}) string {
	bs, _ := json.Marshal(s)
	hash := sha256.Sum256(bs)
	return hex.EncodeToString(hash[:])
}

func CopyFloatSlice(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
