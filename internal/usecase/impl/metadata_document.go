package impl

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
	"time"

	"provenance/internal/domain/constants"
	"provenance/internal/domain/entity"
)

const (
	metadataName        = "Authenticated Image"
	metadataDescription = "Authenticated image with blockchain verification"
)

// metadataDocument is the token metadata uploaded before minting.
type metadataDocument struct {
	Name             string                 `json:"name"`
	Description      string                 `json:"description"`
	Image            string                 `json:"image"`
	WatermarkedImage string                 `json:"watermarked_image"`
	Attributes       []metadataAttribute    `json:"attributes"`
	Authentication   metadataAuthentication `json:"authentication"`
}

type metadataAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type metadataAuthentication struct {
	SHA256Hash        string    `json:"sha256Hash"`
	PerceptualHash    string    `json:"pHash"`
	FingerprintDigest string    `json:"fingerprintDigest"`
	WatermarkVersion  string    `json:"watermarkVersion"`
	Timestamp         time.Time `json:"timestamp"`
	AuthenticatedAt   time.Time `json:"authenticatedAt"`
}

func buildMetadataDocument(record *entity.AuthenticatedRecord, vector []float32, url func(ref string) string, authenticatedAt time.Time) *metadataDocument {
	digest := fingerprintDigest(vector)

	return &metadataDocument{
		Name:             metadataName,
		Description:      metadataDescription,
		Image:            url(record.OriginalRef),
		WatermarkedImage: url(record.WatermarkedRef),
		Attributes: []metadataAttribute{
			{TraitType: "SHA256 Hash", Value: record.ContentHash},
			{TraitType: "Perceptual Hash", Value: record.PerceptualHash},
			{TraitType: "Creator ID", Value: record.OwnerID.String()},
			{TraitType: "Created At", Value: record.CreatedAt.UTC().Format(time.RFC3339)},
			{TraitType: "Authenticated At", Value: authenticatedAt.UTC().Format(time.RFC3339)},
			{TraitType: "Fingerprint Digest", Value: digest},
		},
		Authentication: metadataAuthentication{
			SHA256Hash:        record.ContentHash,
			PerceptualHash:    record.PerceptualHash,
			FingerprintDigest: digest,
			WatermarkVersion:  constants.WatermarkVersion,
			Timestamp:         record.CreatedAt.UTC(),
			AuthenticatedAt:   authenticatedAt.UTC(),
		},
	}
}

// fingerprintDigest hashes the little-endian float32 encoding of the vector
func fingerprintDigest(vector []float32) string {
	buf := make([]byte, 4*len(vector))
	for i, v := range vector {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	sum := sha256.Sum256(buf)

	return hex.EncodeToString(sum[:])
}
