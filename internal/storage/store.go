package storage

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tca/internal/logging"
	"tca/internal/types"
)

// Store manages the protocol collection on top of a KV capability. It is
// constructed once per session and passed to consumers; it holds no state
// of its own beyond the injected dependencies, so every operation
// recomputes from what the substrate currently holds.
type Store struct {
	kv     KV
	logger *logging.Logger
	now    func() time.Time
}

// NewStore creates a store over the given key-value capability
func NewStore(kv KV, logger *logging.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger.With(map[string]interface{}{"component": "store"}),
		now:    time.Now,
	}
}

// newStoreAt is like NewStore with an injected clock, for tests
func newStoreAt(kv KV, logger *logging.Logger, now func() time.Time) *Store {
	s := NewStore(kv, logger)
	s.now = now
	return s
}

// GetAll returns every stored protocol. An absent key or a parse failure
// yields an empty list; parse failures are logged, not raised.
func (s *Store) GetAll() []types.Protocol {
	data, ok := s.kv.Get(protocolsKey)
	if !ok {
		return []types.Protocol{}
	}

	var protocols []types.Protocol
	if err := json.Unmarshal([]byte(data), &protocols); err != nil {
		s.logger.Error("Failed to parse stored protocols", map[string]interface{}{
			"error": err.Error(),
		})
		return []types.Protocol{}
	}
	return protocols
}

// GetByID returns the protocol with the given id, or nil
func (s *Store) GetByID(id string) *types.Protocol {
	for _, p := range s.GetAll() {
		if p.ID == id {
			found := p
			return &found
		}
	}
	return nil
}

// Save stamps the update time on a copy of the record and writes it into
// the collection, replacing an existing entry with the same id or
// appending a new one. On success the backup snapshot is refreshed. A
// rejected write leaves the stored collection untouched and returns false.
func (s *Store) Save(p *types.Protocol) bool {
	protocols := s.GetAll()

	stamped := *p
	stamped.UpdatedAt = s.now()

	replaced := false
	for i := range protocols {
		if protocols[i].ID == stamped.ID {
			protocols[i] = stamped
			replaced = true
			break
		}
	}
	if !replaced {
		protocols = append(protocols, stamped)
	}

	if !s.writeProtocols(protocols) {
		return false
	}
	s.CreateBackup()
	return true
}

// DeleteByID removes the protocol with the given id and rewrites the
// collection. The backup snapshot is refreshed on success.
func (s *Store) DeleteByID(id string) bool {
	protocols := s.GetAll()

	kept := protocols[:0]
	for _, p := range protocols {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if !s.writeProtocols(kept) {
		return false
	}
	s.CreateBackup()
	return true
}

// writeProtocols persists the whole collection under one key
func (s *Store) writeProtocols(protocols []types.Protocol) bool {
	data, err := json.Marshal(protocols)
	if err != nil {
		s.logger.Error("Failed to serialize protocols", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	if !s.kv.Set(protocolsKey, string(data)) {
		s.logger.Warn("Persistence rejected protocol write", map[string]interface{}{
			"count": len(protocols),
		})
		return false
	}
	return true
}

// Filter returns the protocols matching every set criterion
func (s *Store) Filter(f types.ProtocolFilters) []types.Protocol {
	matched := []types.Protocol{}
	for _, p := range s.GetAll() {
		if matchesFilters(p, f) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matchesFilters(p types.Protocol, f types.ProtocolFilters) bool {
	if len(f.Status) > 0 && !containsStatus(f.Status, p.Status) {
		return false
	}
	if len(f.VehicleType) > 0 {
		if p.VehicleData == nil || !containsVehicleType(f.VehicleType, p.VehicleData.VehicleType) {
			return false
		}
	}
	if len(f.AssessmentType) > 0 && !containsAssessmentType(f.AssessmentType, p.AssessmentType) {
		return false
	}
	if f.DateFrom != nil && p.IssueDate.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && p.IssueDate.After(*f.DateTo) {
		return false
	}
	if f.Depot != "" && !strings.Contains(strings.ToLower(p.Depot), strings.ToLower(f.Depot)) {
		return false
	}
	if f.ProtocolNumber != "" && !strings.Contains(strings.ToLower(p.ProtocolNumber), strings.ToLower(f.ProtocolNumber)) {
		return false
	}
	return true
}

func containsStatus(list []types.ProtocolStatus, v types.ProtocolStatus) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsVehicleType(list []types.VehicleType, v types.VehicleType) bool {
	for _, t := range list {
		if t == v {
			return true
		}
	}
	return false
}

func containsAssessmentType(list []types.AssessmentType, v types.AssessmentType) bool {
	for _, a := range list {
		if a == v {
			return true
		}
	}
	return false
}

// Statistics summarizes the stored collection. Recent counts the
// protocols created within the last 30 days, boundary included.
func (s *Store) Statistics() types.ProtocolStatistics {
	protocols := s.GetAll()
	cutoff := s.now().AddDate(0, 0, -30)

	stats := types.ProtocolStatistics{
		Total:            len(protocols),
		ByStatus:         make(map[types.ProtocolStatus]int),
		ByVehicleType:    make(map[types.VehicleType]int),
		ByAssessmentType: make(map[types.AssessmentType]int),
	}

	for _, p := range protocols {
		stats.ByStatus[p.Status]++
		if p.VehicleData != nil {
			stats.ByVehicleType[p.VehicleData.VehicleType]++
		}
		stats.ByAssessmentType[p.AssessmentType]++
		if !p.CreatedAt.Before(cutoff) {
			stats.Recent++
		}
	}
	return stats
}

// sequencePattern extracts the sequence segment of a protocol number
var sequencePattern = regexp.MustCompile(`/(\d+)/`)

// NextProtocolNumber computes the next free number in the
// depot-code/sequence/year scheme. The result is derived from the current
// collection on every call, so repeated calls without an intervening save
// return the same number.
func (s *Store) NextProtocolNumber(depot string) string {
	currentYear := s.now().Year()
	yearText := strconv.Itoa(currentYear)

	runes := []rune(depot)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	depotCode := strings.ToUpper(string(runes))

	maxSequence := 0
	for _, p := range s.GetAll() {
		if !strings.Contains(p.ProtocolNumber, yearText) || !strings.HasPrefix(p.ProtocolNumber, depotCode) {
			continue
		}
		match := sequencePattern.FindStringSubmatch(p.ProtocolNumber)
		if match == nil {
			continue
		}
		seq, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if seq > maxSequence {
			maxSequence = seq
		}
	}

	return fmt.Sprintf("%s/%03d/%d", depotCode, maxSequence+1, currentYear)
}

// ClearAll removes the protocol collection and its backup. Settings are
// kept.
func (s *Store) ClearAll() {
	s.kv.Remove(protocolsKey)
	s.kv.Remove(backupKey)
}
