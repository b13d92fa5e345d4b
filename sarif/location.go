package sarif

import "github.com/resultdoc/go-sarif/derive"

// Region is a contiguous part of an artifact. Lines and columns are 1 based;
// 0 means unset.
type Region struct {
	StartLine      int         `json:"startLine,omitempty"`
	StartColumn    int         `json:"startColumn,omitempty"`
	EndLine        int         `json:"endLine,omitempty"`
	EndColumn      int         `json:"endColumn,omitempty"`
	CharOffset     int         `json:"charOffset,omitempty"`
	CharLength     int         `json:"charLength,omitempty"`
	ByteOffset     int         `json:"byteOffset,omitempty"`
	ByteLength     int         `json:"byteLength,omitempty"`
	SourceLanguage string      `json:"sourceLanguage,omitempty"`
	Message        *Message    `json:"message,omitempty"`
	Properties     PropertyBag `json:"properties,omitzero"`
}

var RegionType = derive.New[Region]("region",
	derive.Int("startLine", func(r *Region) *int { return &r.StartLine }),
	derive.Int("startColumn", func(r *Region) *int { return &r.StartColumn }),
	derive.Int("endLine", func(r *Region) *int { return &r.EndLine }),
	derive.Int("endColumn", func(r *Region) *int { return &r.EndColumn }),
	derive.Int("charOffset", func(r *Region) *int { return &r.CharOffset }),
	derive.Int("charLength", func(r *Region) *int { return &r.CharLength }),
	derive.Int("byteOffset", func(r *Region) *int { return &r.ByteOffset }),
	derive.Int("byteLength", func(r *Region) *int { return &r.ByteLength }),
	derive.String("sourceLanguage", func(r *Region) *string { return &r.SourceLanguage }),
	derive.Nested("message", func(r *Region) **Message { return &r.Message }, MessageType),
	properties(func(r *Region) *PropertyBag { return &r.Properties }),
)

func (*Region) Kind() Kind { return KindRegion }

func (r *Region) DeepClone() (*Region, error) { return RegionType.DeepClone(r) }

// Location is where a result was detected, physically and/or logically.
type Location struct {
	ID               int                `json:"id,omitempty"`
	PhysicalLocation *PhysicalLocation  `json:"physicalLocation,omitempty"`
	LogicalLocations []*LogicalLocation `json:"logicalLocations,omitzero"`
	Message          *Message           `json:"message,omitempty"`
	Properties       PropertyBag        `json:"properties,omitzero"`
}

var LocationType = derive.New[Location]("location",
	derive.Int("id", func(l *Location) *int { return &l.ID }),
	derive.Nested("physicalLocation", func(l *Location) **PhysicalLocation { return &l.PhysicalLocation }, PhysicalLocationType),
	derive.Seq("logicalLocations", func(l *Location) *[]*LogicalLocation { return &l.LogicalLocations }, LogicalLocationType),
	derive.Nested("message", func(l *Location) **Message { return &l.Message }, MessageType),
	properties(func(l *Location) *PropertyBag { return &l.Properties }),
)

func (*Location) Kind() Kind { return KindLocation }

func (l *Location) DeepClone() (*Location, error) { return LocationType.DeepClone(l) }

// PhysicalLocation is a region within an artifact.
type PhysicalLocation struct {
	ArtifactLocation *ArtifactLocation `json:"artifactLocation,omitempty"`
	Region           *Region           `json:"region,omitempty"`
	ContextRegion    *Region           `json:"contextRegion,omitempty"`
	Properties       PropertyBag       `json:"properties,omitzero"`
}

var PhysicalLocationType = derive.New[PhysicalLocation]("physicalLocation",
	derive.Nested("artifactLocation", func(p *PhysicalLocation) **ArtifactLocation { return &p.ArtifactLocation }, ArtifactLocationType),
	derive.Nested("region", func(p *PhysicalLocation) **Region { return &p.Region }, RegionType),
	derive.Nested("contextRegion", func(p *PhysicalLocation) **Region { return &p.ContextRegion }, RegionType),
	properties(func(p *PhysicalLocation) *PropertyBag { return &p.Properties }),
)

func (*PhysicalLocation) Kind() Kind { return KindPhysicalLocation }

func (p *PhysicalLocation) DeepClone() (*PhysicalLocation, error) {
	return PhysicalLocationType.DeepClone(p)
}

// LogicalLocation is a programmatic construct such as a function or type.
type LogicalLocation struct {
	Name               string      `json:"name,omitempty"`
	FullyQualifiedName string      `json:"fullyQualifiedName,omitempty"`
	DecoratedName      string      `json:"decoratedName,omitempty"`
	LocationKind       string      `json:"kind,omitempty"`
	Properties         PropertyBag `json:"properties,omitzero"`
}

var LogicalLocationType = derive.New[LogicalLocation]("logicalLocation",
	derive.String("name", func(l *LogicalLocation) *string { return &l.Name }),
	derive.String("fullyQualifiedName", func(l *LogicalLocation) *string { return &l.FullyQualifiedName }),
	derive.String("decoratedName", func(l *LogicalLocation) *string { return &l.DecoratedName }),
	derive.String("kind", func(l *LogicalLocation) *string { return &l.LocationKind }),
	properties(func(l *LogicalLocation) *PropertyBag { return &l.Properties }),
)

func (*LogicalLocation) Kind() Kind { return KindLogicalLocation }

func (l *LogicalLocation) DeepClone() (*LogicalLocation, error) {
	return LogicalLocationType.DeepClone(l)
}
