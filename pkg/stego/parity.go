package stego

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/reedsolomon"
)

// Reed-Solomon configuration for the optional payload armor.
const (
	rsDataShards   = 4
	rsParityShards = 2
	rsTotalShards  = rsDataShards + rsParityShards

	// bytes appended to each shard for its CRC32 checksum
	shardSumSize = 4
)

// armorMessage wraps raw message bytes in Reed-Solomon parity and encodes
// the result as base64 text. Each shard carries its own CRC32 so the
// decode side can tell which shards survived and mark the rest for
// reconstruction. The base64 alphabet contains no '#', so the armored
// payload can never collide with the default delimiter, and every
// character fits in a single byte for the bit codec.
func armorMessage(data []byte) (string, error) {
	enc, err := reedsolomon.New(rsDataShards, rsParityShards)
	if err != nil {
		return "", err
	}

	// Prepend length (4 bytes) so shard padding can be stripped later
	header := make([]byte, 4)
	binary.BigEndian.PutUint32(header, uint32(len(data)))
	payload := append(header, data...)

	shards, err := enc.Split(payload)
	if err != nil {
		return "", err
	}

	if err := enc.Encode(shards); err != nil {
		return "", err
	}

	var joined []byte
	for _, shard := range shards {
		sum := make([]byte, shardSumSize)
		binary.BigEndian.PutUint32(sum, crc32.ChecksumIEEE(shard))
		joined = append(joined, shard...)
		joined = append(joined, sum...)
	}
	return base64.RawStdEncoding.EncodeToString(joined), nil
}

// unarmorMessage reverses armorMessage. Shards whose checksum does not
// match are treated as lost and rebuilt from the parity shards; damage
// beyond the parity budget surfaces as ErrPayloadCorrupted, never as
// silently wrong data.
func unarmorMessage(text string) ([]byte, error) {
	data, err := base64.RawStdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid armored payload: %w", err)
	}

	if len(data) == 0 || len(data)%rsTotalShards != 0 {
		return nil, errors.New("invalid armored payload: truncated shard stream")
	}
	chunk := len(data) / rsTotalShards
	if chunk <= shardSumSize {
		return nil, errors.New("recovered data too short")
	}
	perShard := chunk - shardSumSize

	enc, err := reedsolomon.New(rsDataShards, rsParityShards)
	if err != nil {
		return nil, err
	}

	shards := make([][]byte, rsTotalShards)
	damaged := 0
	for i := range shards {
		block := data[i*chunk : (i+1)*chunk]
		shard := block[:perShard]
		sum := binary.BigEndian.Uint32(block[perShard:])
		if crc32.ChecksumIEEE(shard) != sum {
			// leave nil so reconstruction treats it as lost
			damaged++
			continue
		}
		shards[i] = shard
	}

	if damaged > 0 {
		if err := enc.Reconstruct(shards); err != nil {
			return nil, fmt.Errorf("%w: %d of %d shards damaged", ErrPayloadCorrupted, damaged, rsTotalShards)
		}
	}
	if ok, err := enc.Verify(shards); err != nil || !ok {
		return nil, ErrPayloadCorrupted
	}

	var joined []byte
	for i := 0; i < rsDataShards; i++ {
		joined = append(joined, shards[i]...)
	}

	if len(joined) < 4 {
		return nil, errors.New("recovered data too short")
	}
	length := binary.BigEndian.Uint32(joined[:4])
	if uint32(len(joined)-4) < length {
		return nil, errors.New("recovered data length mismatch")
	}

	return joined[4 : 4+length], nil
}
