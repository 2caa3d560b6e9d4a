package model

// TaskConfig is the caller-declared swap intent attached to a task. Untrusted:
// it must be validated against the route registry before use.
type TaskConfig struct {
	Pair             string `json:"pair" mapstructure:"pair"`
	Direction        string `json:"direction" mapstructure:"direction"`
	RequiredAmountIn string `json:"required_amount_in" mapstructure:"required-amount-in"`
}
