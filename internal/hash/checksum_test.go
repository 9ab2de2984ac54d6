package hash

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty input", "", 0xef46db3751d8e999},
		{"short input", "test", 0x4fdcca5ddb678139},
		{"long input", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another input", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum([]byte(tt.data)))
			assert.True(t, Verify([]byte(tt.data), tt.sum))
			assert.False(t, Verify([]byte(tt.data+"x"), tt.sum))
		})
	}
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 64*1024)
	rand.New(rand.NewSource(1)).Read(data)

	b.SetBytes(int64(len(data)))
	for b.Loop() {
		Checksum(data)
	}
}
