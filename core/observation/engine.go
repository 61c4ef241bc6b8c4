package observation

import (
	"github.com/google/uuid"

	"veristack/core/hashchain"
)

// -----------------------------------------------------------------------------
// Observation Engine — PASSIVE CAPTURE ONLY
//
// This file defines the only legitimate way to append to an EvidenceChain.
// It never executes, interprets, or mutates raw_data; it signs and links.
// -----------------------------------------------------------------------------

// CaptureEvidence appends one record to prior, deriving a new EvidenceChain.
// If ctx.IsHalted, the appended record is forced to
// ObservationPoint=HALT_ENTRY, EvidenceType=STOP_CONDITION,
// raw_data="CONTEXT_HALTED" regardless of the requested point/type/data;
// otherwise fields pass through unchanged. The returned chain's HeadHash
// equals the new record's SelfHash and Length increments by one.
func CaptureEvidence(
	ctx ObservationContext,
	point ObservationPoint,
	evType EvidenceType,
	rawData []byte,
	timestamp string,
	prior EvidenceChain,
) EvidenceChain {
	effectivePoint, effectiveType, effectiveData := point, evType, rawData
	if ctx.IsHalted {
		effectivePoint = PointHaltEntry
		effectiveType = TypeStopCondition
		effectiveData = []byte("CONTEXT_HALTED")
	}

	priorHash := prior.HeadHash
	recordID := "REC-" + uuid.NewString()
	selfHash := recordHash(recordID, effectivePoint, effectiveType, timestamp, effectiveData, priorHash)

	record := EvidenceRecord{
		RecordID:         recordID,
		ObservationPoint: effectivePoint,
		EvidenceType:     effectiveType,
		Timestamp:        timestamp,
		RawData:          effectiveData,
		PriorHash:        priorHash,
		SelfHash:         selfHash,
	}

	records := hashchain.AppendRecord(prior.Records, record)

	chainID := prior.ChainID
	if chainID == "" {
		chainID = "CHAIN-" + uuid.NewString()
	}

	return EvidenceChain{
		ChainID:  chainID,
		Records:  records,
		HeadHash: selfHash,
		Length:   len(records),
	}
}

// recordHash implements the §4.1 hash algorithm:
//
//	SHA256(record_id ‖ 0x00 ‖ point.name ‖ 0x00 ‖ type.name ‖ 0x00 ‖
//	       timestamp ‖ 0x00 ‖ raw_data ‖ 0x00 ‖ prior_hash)
func recordHash(recordID string, point ObservationPoint, evType EvidenceType, timestamp string, rawData []byte, priorHash string) string {
	return hashchain.Sum(
		[]byte(recordID),
		[]byte(point),
		[]byte(evType),
		[]byte(timestamp),
		rawData,
		[]byte(priorHash),
	)
}

// ValidateChain recomputes every record's self-hash, checks prior_hash
// linkage, and checks Length/HeadHash. An empty chain is valid iff
// HeadHash == "" and Length == 0.
func ValidateChain(chain EvidenceChain) bool {
	if len(chain.Records) == 0 {
		return chain.HeadHash == "" && chain.Length == 0
	}
	if chain.Length != len(chain.Records) {
		return false
	}
	if chain.HeadHash != hashchain.HeadHash(chain.Records) {
		return false
	}
	return hashchain.ValidateChain(chain.Records, func(r EvidenceRecord) string {
		return recordHash(r.RecordID, r.ObservationPoint, r.EvidenceType, r.Timestamp, r.RawData, r.PriorHash)
	})
}
