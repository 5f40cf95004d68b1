package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	mrand "math/rand"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// GenerateDeterministicID создает ID из локального rng.
// При одном сиде забега монстры получают одни и те же ID.
func GenerateDeterministicID(rng *mrand.Rand, prefix string) string {
	return fmt.Sprintf("%s%08x", prefix, rng.Uint32())
}

// StringToSeed превращает строку в сид для rand.NewSource.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
