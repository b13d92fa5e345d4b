package sarif

import (
	"github.com/google/uuid"
	"github.com/resultdoc/go-sarif/derive"
)

// Tool is the analysis tool which produced a run: its driver and any
// extensions (plugins) which contributed rules.
type Tool struct {
	Driver     *ToolComponent   `json:"driver"`
	Extensions []*ToolComponent `json:"extensions,omitzero"`
	Properties PropertyBag      `json:"properties,omitzero"`
}

var ToolType = derive.New[Tool]("tool",
	derive.Nested("driver", func(t *Tool) **ToolComponent { return &t.Driver }, ToolComponentType),
	derive.Seq("extensions", func(t *Tool) *[]*ToolComponent { return &t.Extensions }, ToolComponentType),
	properties(func(t *Tool) *PropertyBag { return &t.Properties }),
)

func (*Tool) Kind() Kind { return KindTool }

func (t *Tool) DeepClone() (*Tool, error) { return ToolType.DeepClone(t) }

// ToolComponent is a tool driver or extension.
type ToolComponent struct {
	GUID            uuid.UUID              `json:"guid,omitzero"`
	Name            string                 `json:"name"`
	Organization    string                 `json:"organization,omitempty"`
	Version         string                 `json:"version,omitempty"`
	SemanticVersion string                 `json:"semanticVersion,omitempty"`
	InformationURI  string                 `json:"informationUri,omitempty"`
	Rules           []*ReportingDescriptor `json:"rules,omitzero"`
	Notifications   []*ReportingDescriptor `json:"notifications,omitzero"`
	Properties      PropertyBag            `json:"properties,omitzero"`
}

var ToolComponentType = derive.New[ToolComponent]("toolComponent",
	derive.Value("guid", func(t *ToolComponent) *uuid.UUID { return &t.GUID }, derive.UUIDs),
	derive.String("name", func(t *ToolComponent) *string { return &t.Name }),
	derive.String("organization", func(t *ToolComponent) *string { return &t.Organization }),
	derive.String("version", func(t *ToolComponent) *string { return &t.Version }),
	derive.String("semanticVersion", func(t *ToolComponent) *string { return &t.SemanticVersion }),
	derive.String("informationUri", func(t *ToolComponent) *string { return &t.InformationURI }),
	derive.Seq("rules", func(t *ToolComponent) *[]*ReportingDescriptor { return &t.Rules }, ReportingDescriptorType),
	derive.Seq("notifications", func(t *ToolComponent) *[]*ReportingDescriptor { return &t.Notifications }, ReportingDescriptorType),
	properties(func(t *ToolComponent) *PropertyBag { return &t.Properties }),
)

func (*ToolComponent) Kind() Kind { return KindToolComponent }

func (t *ToolComponent) DeepClone() (*ToolComponent, error) { return ToolComponentType.DeepClone(t) }

// RuleIndex returns the index of the rule with the given id, or -1.
func (t *ToolComponent) RuleIndex(id string) int {
	if t == nil {
		return -1
	}
	for i, r := range t.Rules {
		if r != nil && r.ID == id {
			return i
		}
	}
	return -1
}

// ReportingDescriptor describes a rule or a notification.
type ReportingDescriptor struct {
	ID               string              `json:"id"`
	GUID             uuid.UUID           `json:"guid,omitzero"`
	Name             string              `json:"name,omitempty"`
	ShortDescription *Message            `json:"shortDescription,omitempty"`
	FullDescription  *Message            `json:"fullDescription,omitempty"`
	MessageStrings   map[string]*Message `json:"messageStrings,omitzero"`
	HelpURI          string              `json:"helpUri,omitempty"`
	Help             *Message            `json:"help,omitempty"`
	Properties       PropertyBag         `json:"properties,omitzero"`
}

var ReportingDescriptorType = derive.New[ReportingDescriptor]("reportingDescriptor",
	derive.String("id", func(r *ReportingDescriptor) *string { return &r.ID }),
	derive.Value("guid", func(r *ReportingDescriptor) *uuid.UUID { return &r.GUID }, derive.UUIDs),
	derive.String("name", func(r *ReportingDescriptor) *string { return &r.Name }),
	derive.Nested("shortDescription", func(r *ReportingDescriptor) **Message { return &r.ShortDescription }, MessageType),
	derive.Nested("fullDescription", func(r *ReportingDescriptor) **Message { return &r.FullDescription }, MessageType),
	derive.Map("messageStrings", func(r *ReportingDescriptor) *map[string]*Message { return &r.MessageStrings }, MessageType),
	derive.String("helpUri", func(r *ReportingDescriptor) *string { return &r.HelpURI }),
	derive.Nested("help", func(r *ReportingDescriptor) **Message { return &r.Help }, MessageType),
	properties(func(r *ReportingDescriptor) *PropertyBag { return &r.Properties }),
)

func (*ReportingDescriptor) Kind() Kind { return KindReportingDescriptor }

func (r *ReportingDescriptor) DeepClone() (*ReportingDescriptor, error) {
	return ReportingDescriptorType.DeepClone(r)
}
