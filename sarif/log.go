package sarif

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/resultdoc/go-sarif/derive"
)

const (
	Version = "2.1.0"
	Schema  = "https://json.schemastore.org/sarif-2.1.0.json"
)

// Log is the root of a document.
type Log struct {
	Version    string      `json:"version"`
	Schema     string      `json:"$schema,omitempty"`
	Runs       []*Run      `json:"runs"`
	Properties PropertyBag `json:"properties,omitzero"`
}

var LogType = derive.New[Log]("log",
	derive.String("version", func(l *Log) *string { return &l.Version }),
	derive.String("$schema", func(l *Log) *string { return &l.Schema }),
	derive.Seq("runs", func(l *Log) *[]*Run { return &l.Runs }, RunType),
	properties(func(l *Log) *PropertyBag { return &l.Properties }),
)

// NewLog returns an empty log of the current version.
func NewLog() *Log {
	return &Log{Version: Version, Schema: Schema, Runs: []*Run{}}
}

func (*Log) Kind() Kind { return KindLog }

func (l *Log) DeepClone() (*Log, error) { return LogType.DeepClone(l) }

// ReadLog decodes a log from r.
func ReadLog(r io.Reader) (*Log, error) {
	l := &Log{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(l); err != nil {
		return nil, fmt.Errorf("decoding log: %w", err)
	}
	return l, nil
}

// WriteLog encodes l to w, indented.
func WriteLog(w io.Writer, l *Log) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(l)
}

// Run is a single invocation of a single analysis tool, with its results.
type Run struct {
	Tool               *Tool                        `json:"tool"`
	Invocations        []*Invocation                `json:"invocations,omitzero"`
	OriginalURIBaseIDs map[string]*ArtifactLocation `json:"originalUriBaseIds,omitzero"`
	Artifacts          []*Artifact                  `json:"artifacts,omitzero"`
	Results            []*Result                    `json:"results,omitzero"`
	AutomationGUID     uuid.UUID                    `json:"automationGuid,omitzero"`
	Language           string                       `json:"language,omitempty"`
	Properties         PropertyBag                  `json:"properties,omitzero"`
}

var RunType = derive.New[Run]("run",
	derive.Nested("tool", func(r *Run) **Tool { return &r.Tool }, ToolType),
	derive.Seq("invocations", func(r *Run) *[]*Invocation { return &r.Invocations }, InvocationType),
	derive.Map("originalUriBaseIds", func(r *Run) *map[string]*ArtifactLocation { return &r.OriginalURIBaseIDs }, ArtifactLocationType),
	derive.Seq("artifacts", func(r *Run) *[]*Artifact { return &r.Artifacts }, ArtifactType),
	derive.Seq("results", func(r *Run) *[]*Result { return &r.Results }, ResultType),
	derive.Value("automationGuid", func(r *Run) *uuid.UUID { return &r.AutomationGUID }, derive.UUIDs),
	derive.String("language", func(r *Run) *string { return &r.Language }),
	properties(func(r *Run) *PropertyBag { return &r.Properties }),
)

func (*Run) Kind() Kind { return KindRun }

func (r *Run) DeepClone() (*Run, error) { return RunType.DeepClone(r) }

// Rule returns the rule a result refers to, by index if it has one and
// otherwise by id. It returns nil if the rule is not in the driver.
func (r *Run) Rule(res *Result) *ReportingDescriptor {
	if r == nil || r.Tool == nil || r.Tool.Driver == nil || res == nil {
		return nil
	}
	rules := r.Tool.Driver.Rules
	if res.RuleIndex >= 0 && res.RuleIndex < len(rules) {
		return rules[res.RuleIndex]
	}
	if i := r.Tool.Driver.RuleIndex(res.RuleID); i >= 0 {
		return rules[i]
	}
	return nil
}
