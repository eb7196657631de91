package domain

// Resource is one support contact offered alongside a crisis response.
type Resource struct {
	Name         string `json:"name"         yaml:"name"`
	Contact      string `json:"contact"      yaml:"contact"`
	Availability string `json:"availability" yaml:"availability"`
	Category     string `json:"category"     yaml:"category"`
}

// ResponseBundle is the canned human-readable response and resource list for
// a non-SAFE tier. SAFE has no bundle; the caller proceeds with the normal
// conversational flow.
type ResponseBundle struct {
	Message                 string     `json:"message"                   yaml:"message"`
	Resources               []Resource `json:"resources"                 yaml:"resources"`
	Escalate                bool       `json:"escalate"                  yaml:"escalate"`
	ImmediateActionRequired bool       `json:"immediate_action_required" yaml:"immediate_action_required"`
}
