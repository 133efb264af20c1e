// Package signing produces record fingerprints and electronic signature
// entries. The fingerprint is a BLAKE2b-256 digest over the protocol's
// canonical JSON form with the signature list excluded, so adding a
// signature does not invalidate the digest it carries.
package signing

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"tca/internal/types"
)

// Algorithm names the digest used for record fingerprints
const Algorithm = "BLAKE2b-256"

// Fingerprint computes the hex digest of the protocol content. The
// signature list is zeroed before hashing so the digest stays stable as
// members sign.
func Fingerprint(p *types.Protocol) (string, error) {
	content := *p
	content.Signatures = nil

	data, err := json.Marshal(&content)
	if err != nil {
		return "", fmt.Errorf("failed to serialize protocol for fingerprinting: %w", err)
	}

	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Sign builds a signed electronic signature entry for a commission
// member. The member must belong to the protocol's commission and the
// declarations must all be accepted.
func Sign(p *types.Protocol, memberID, location string, declarations types.Declarations) (*types.Signature, error) {
	return signAt(p, memberID, location, declarations, time.Now())
}

func signAt(p *types.Protocol, memberID, location string, declarations types.Declarations, now time.Time) (*types.Signature, error) {
	member := findMember(p.Commission, memberID)
	if member == nil {
		return nil, fmt.Errorf("member %s is not part of the commission", memberID)
	}
	if !declarations.Complete() {
		return nil, fmt.Errorf("member %s has not accepted all mandatory declarations", member.FullName())
	}

	digest, err := Fingerprint(p)
	if err != nil {
		return nil, err
	}

	return &types.Signature{
		ID:            uuid.New().String(),
		MemberID:      memberID,
		SignatureDate: now,
		SignatureTime: now.Format("15:04"),
		Location:      location,
		Kind:          types.SignatureElectronic,
		Status:        types.SignatureSigned,
		Digital: &types.DigitalSignatureData{
			Algorithm: Algorithm,
			Timestamp: now.Format(time.RFC3339),
			Hash:      digest,
		},
		Declarations: declarations,
	}, nil
}

// Verify recomputes the fingerprint and compares it with the digest the
// signature carries. A signature without digital data never verifies.
func Verify(p *types.Protocol, sig *types.Signature) (bool, error) {
	if sig.Digital == nil || sig.Digital.Hash == "" {
		return false, nil
	}
	digest, err := Fingerprint(p)
	if err != nil {
		return false, err
	}
	return digest == sig.Digital.Hash, nil
}

func findMember(members []types.CommissionMember, id string) *types.CommissionMember {
	for i := range members {
		if members[i].ID == id {
			return &members[i]
		}
	}
	return nil
}
