package chain

import (
	"encoding/binary"
	"fmt"
	"time"

	"xdao.co/wot/keyid"
	"xdao.co/wot/wire"
)

// recordPrefix scopes the engine's keyspace inside the KV store so a prefix
// scan recovers exactly the indexed edges.
const recordPrefix = "link/"

// recordKey derives the durable key for an (issuer, subject) edge. One record
// exists per edge; replacing an edge overwrites its record in place.
func recordKey(issuer, subject []byte) []byte {
	fp := recordPrefix + keyid.Fingerprint(issuer) + "/" + keyid.Fingerprint(subject)
	return []byte(fp)
}

// encodeRecord serializes an edge: frames [issuer][subject][raw][expiry].
// Issuer, subject and expiry are stored alongside the raw link so startup
// rehydration never re-parses link bytes.
func encodeRecord(issuer, subject, raw []byte, expiry time.Time) []byte {
	var exp [8]byte
	binary.BigEndian.PutUint64(exp[:], uint64(expiry.Unix()))
	return wire.Encode(issuer, subject, raw, exp[:])
}

// decodeRecord parses a durable edge record.
func decodeRecord(value []byte) (issuer, subject, raw []byte, expiry time.Time, err error) {
	frames, err := wire.Decode(value)
	if err != nil {
		return nil, nil, nil, time.Time{}, fmt.Errorf("chain: bad record: %w", err)
	}
	if len(frames) != 4 || len(frames[3]) != 8 {
		return nil, nil, nil, time.Time{}, fmt.Errorf("chain: bad record: want 4 frames with 8-byte expiry, got %d", len(frames))
	}
	sec := int64(binary.BigEndian.Uint64(frames[3]))
	return frames[0], frames[1], frames[2], time.Unix(sec, 0).UTC(), nil
}
