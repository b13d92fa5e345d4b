package sarif

import (
	"encoding/json"

	"github.com/resultdoc/go-sarif/derive"
)

// Result is one finding of an analysis tool.
type Result struct {
	RuleID              string            `json:"ruleId,omitempty"`
	RuleIndex           int               `json:"ruleIndex"`
	ResultKind          ResultKind        `json:"kind,omitempty"`
	Level               Level             `json:"level,omitempty"`
	Locations           []*Location       `json:"locations,omitzero"`
	Message             *Message          `json:"message,omitempty"`
	RelatedLocations    []*Location       `json:"relatedLocations,omitzero"`
	CodeFlows           []*CodeFlow       `json:"codeFlows,omitzero"`
	Stacks              []*Stack          `json:"stacks,omitzero"`
	Fingerprints        map[string]string `json:"fingerprints,omitzero"`
	PartialFingerprints map[string]string `json:"partialFingerprints,omitzero"`
	BaselineState       BaselineState     `json:"baselineState,omitempty"`
	Rank                *float64          `json:"rank,omitempty"`
	Properties          PropertyBag       `json:"properties,omitzero"`
}

var ResultType = derive.New[Result]("result",
	derive.String("ruleId", func(r *Result) *string { return &r.RuleID }),
	derive.Int("ruleIndex", func(r *Result) *int { return &r.RuleIndex }),
	derive.Int("kind", func(r *Result) *ResultKind { return &r.ResultKind }),
	derive.Int("level", func(r *Result) *Level { return &r.Level }),
	derive.Seq("locations", func(r *Result) *[]*Location { return &r.Locations }, LocationType),
	derive.Nested("message", func(r *Result) **Message { return &r.Message }, MessageType),
	derive.Seq("relatedLocations", func(r *Result) *[]*Location { return &r.RelatedLocations }, LocationType),
	derive.Seq("codeFlows", func(r *Result) *[]*CodeFlow { return &r.CodeFlows }, CodeFlowType),
	derive.Seq("stacks", func(r *Result) *[]*Stack { return &r.Stacks }, StackType),
	derive.Map("fingerprints", func(r *Result) *map[string]string { return &r.Fingerprints }, derive.Strings),
	derive.Map("partialFingerprints", func(r *Result) *map[string]string { return &r.PartialFingerprints }, derive.Strings),
	derive.Int("baselineState", func(r *Result) *BaselineState { return &r.BaselineState }),
	derive.Optional("rank", func(r *Result) **float64 { return &r.Rank }, derive.Floats),
	properties(func(r *Result) *PropertyBag { return &r.Properties }),
)

// NewResult returns a result with no rule index.
func NewResult() *Result {
	return &Result{RuleIndex: -1}
}

func (*Result) Kind() Kind { return KindResult }

func (r *Result) DeepClone() (*Result, error) { return ResultType.DeepClone(r) }

func (r *Result) UnmarshalJSON(d []byte) error {
	type plain Result
	p := plain{RuleIndex: -1}
	if err := json.Unmarshal(d, &p); err != nil {
		return err
	}
	*r = Result(p)
	return nil
}

// Message is plain text and/or markdown, or a reference by ID to a message
// string of the rule, with arguments.
type Message struct {
	Text       string      `json:"text,omitempty"`
	Markdown   string      `json:"markdown,omitempty"`
	ID         string      `json:"id,omitempty"`
	Arguments  []string    `json:"arguments,omitzero"`
	Properties PropertyBag `json:"properties,omitzero"`
}

var MessageType = derive.New[Message]("message",
	derive.String("text", func(m *Message) *string { return &m.Text }),
	derive.String("markdown", func(m *Message) *string { return &m.Markdown }),
	derive.String("id", func(m *Message) *string { return &m.ID }),
	derive.Seq("arguments", func(m *Message) *[]string { return &m.Arguments }, derive.Strings),
	properties(func(m *Message) *PropertyBag { return &m.Properties }),
)

// TextMessage returns a message with the given text.
func TextMessage(text string) *Message {
	return &Message{Text: text}
}

func (*Message) Kind() Kind { return KindMessage }

func (m *Message) DeepClone() (*Message, error) { return MessageType.DeepClone(m) }
