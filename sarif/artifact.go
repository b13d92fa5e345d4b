package sarif

import (
	"encoding/json"
	"time"

	"github.com/resultdoc/go-sarif/derive"
)

// ArtifactLocation refers to an artifact by URI and/or by its index in the
// run's artifacts. Index is -1 when unset.
type ArtifactLocation struct {
	URI         string      `json:"uri,omitempty"`
	URIBaseID   string      `json:"uriBaseId,omitempty"`
	Index       int         `json:"index"`
	Description *Message    `json:"description,omitempty"`
	Properties  PropertyBag `json:"properties,omitzero"`
}

var ArtifactLocationType = derive.New[ArtifactLocation]("artifactLocation",
	derive.String("uri", func(a *ArtifactLocation) *string { return &a.URI }),
	derive.String("uriBaseId", func(a *ArtifactLocation) *string { return &a.URIBaseID }),
	derive.Int("index", func(a *ArtifactLocation) *int { return &a.Index }),
	derive.Nested("description", func(a *ArtifactLocation) **Message { return &a.Description }, MessageType),
	properties(func(a *ArtifactLocation) *PropertyBag { return &a.Properties }),
)

// NewArtifactLocation returns a location referring to uri, with no index.
func NewArtifactLocation(uri string) *ArtifactLocation {
	return &ArtifactLocation{URI: uri, Index: -1}
}

func (*ArtifactLocation) Kind() Kind { return KindArtifactLocation }

func (a *ArtifactLocation) DeepClone() (*ArtifactLocation, error) {
	return ArtifactLocationType.DeepClone(a)
}

func (a *ArtifactLocation) UnmarshalJSON(d []byte) error {
	type plain ArtifactLocation
	p := plain{Index: -1}
	if err := json.Unmarshal(d, &p); err != nil {
		return err
	}
	*a = ArtifactLocation(p)
	return nil
}

// Artifact is a file or other item analyzed or produced by a run.
type Artifact struct {
	Location         *ArtifactLocation `json:"location,omitempty"`
	Length           int64             `json:"length,omitempty"`
	Roles            ArtifactRoles     `json:"roles,omitempty"`
	MimeType         string            `json:"mimeType,omitempty"`
	Hashes           map[string]string `json:"hashes,omitzero"`
	LastModifiedTime time.Time         `json:"lastModifiedTimeUtc,omitzero"`
	Description      *Message          `json:"description,omitempty"`
	Properties       PropertyBag       `json:"properties,omitzero"`
}

var ArtifactType = derive.New[Artifact]("artifact",
	derive.Nested("location", func(a *Artifact) **ArtifactLocation { return &a.Location }, ArtifactLocationType),
	derive.Int("length", func(a *Artifact) *int64 { return &a.Length }),
	derive.Int("roles", func(a *Artifact) *ArtifactRoles { return &a.Roles }),
	derive.String("mimeType", func(a *Artifact) *string { return &a.MimeType }),
	derive.Map("hashes", func(a *Artifact) *map[string]string { return &a.Hashes }, derive.Strings),
	derive.Time("lastModifiedTimeUtc", func(a *Artifact) *time.Time { return &a.LastModifiedTime }),
	derive.Nested("description", func(a *Artifact) **Message { return &a.Description }, MessageType),
	properties(func(a *Artifact) *PropertyBag { return &a.Properties }),
)

func (*Artifact) Kind() Kind { return KindArtifact }

func (a *Artifact) DeepClone() (*Artifact, error) { return ArtifactType.DeepClone(a) }
